package gamemath

// Viewport is the size of the world region visible on a screen of the given
// size at zoom. A non-positive zoom counts as 1.
func Viewport(screenW, screenH, zoom float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	return screenW / zoom, screenH / zoom
}

// CameraFocus returns the top-left corner of the view, in world pixels, that
// keeps focus centred horizontally without showing anything past the level's
// side edges. With lockBottom the view rests on the level floor; otherwise
// focus is centred and clamped vertically too.
func CameraFocus(focus, level, screen Vec2, zoom float64, lockBottom bool) Vec2 {
	viewW, viewH := Viewport(screen.X, screen.Y, zoom)

	x := Clamp(focus.X-viewW/2, 0, max(level.X-viewW, 0))

	var y float64
	if lockBottom {
		y = level.Y - viewH
	} else {
		y = Clamp(focus.Y-viewH/2, 0, max(level.Y-viewH, 0))
	}
	return V(x, y)
}
