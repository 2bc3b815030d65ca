package engine

import (
	"math"

	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/solarlune/resolv"
)

// SpatialIndex mirrors the enabled colliders into a resolv space for region
// queries made by gameplay (block bumps, culling, proximity checks). It is
// synced at the end of every frame, so queries pad their region by the
// furthest a body can travel in one frame and then filter candidates against
// live bounds.
type SpatialIndex struct {
	space   *resolv.Space
	objects map[*Collider]*resolv.Object
	seen    map[*Collider]struct{}
	pad     float64
}

func newSpatialIndex(width, height float64, s Settings) *SpatialIndex {
	cell := s.CellSize
	if cell <= 0 {
		cell = int(s.TileSize)
	}
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w < cell {
		w = cell
	}
	if h < cell {
		h = cell
	}
	return &SpatialIndex{
		space:   resolv.NewSpace(w, h, cell, cell),
		objects: make(map[*Collider]*resolv.Object),
		seen:    make(map[*Collider]struct{}),
		pad:     math.Ceil(s.maxTravel()),
	}
}

// Space exposes the underlying resolv space for debug drawing.
func (s *SpatialIndex) Space() *resolv.Space {
	return s.space
}

// Sync mirrors the enabled colliders' current bounds.
func (s *SpatialIndex) Sync(colliders []*Collider) {
	seen := s.seen
	clear(seen)
	for _, c := range colliders {
		if !c.enabled {
			continue
		}
		seen[c] = struct{}{}
		min, max := c.Min(), c.Max()
		obj, ok := s.objects[c]
		if !ok {
			obj = resolv.NewObject(min.X, min.Y, max.X-min.X, max.Y-min.Y, c.layer.String())
			obj.Data = c
			s.objects[c] = obj
			s.space.Add(obj)
			continue
		}
		if !obj.HasTags(c.layer.String()) {
			s.space.Remove(obj)
			obj = resolv.NewObject(min.X, min.Y, max.X-min.X, max.Y-min.Y, c.layer.String())
			obj.Data = c
			s.objects[c] = obj
			s.space.Add(obj)
			continue
		}
		obj.X, obj.Y = min.X, min.Y
		obj.W, obj.H = max.X-min.X, max.Y-min.Y
		obj.Update()
	}
	for c := range s.objects {
		if _, ok := seen[c]; !ok {
			s.remove(c)
		}
	}
}

func (s *SpatialIndex) remove(c *Collider) {
	obj, ok := s.objects[c]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.objects, c)
}

// Len is the number of mirrored colliders.
func (s *SpatialIndex) Len() int {
	return len(s.objects)
}

// Query returns the enabled colliders whose live bounds touch [min, max],
// restricted to layers when any are given. Results follow no particular
// order.
func (s *SpatialIndex) Query(min, max gamemath.Vec2, layers ...Layer) []*Collider {
	tags := make([]string, 0, len(layers))
	for _, l := range layers {
		tags = append(tags, l.String())
	}

	region := resolv.NewObject(min.X-s.pad, min.Y-s.pad, max.X-min.X+2*s.pad, max.Y-min.Y+2*s.pad)
	s.space.Add(region)
	defer s.space.Remove(region)

	check := region.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var out []*Collider
	seen := make(map[*Collider]struct{})
	for _, obj := range check.Objects {
		c, ok := obj.Data.(*Collider)
		if !ok || !c.enabled {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if len(layers) > 0 && !hasLayer(layers, c.layer) {
			continue
		}
		if boxesIntersect(min, max, c.Min(), c.Max()) {
			out = append(out, c)
		}
	}
	return out
}

func hasLayer(layers []Layer, l Layer) bool {
	for _, x := range layers {
		if x == l {
			return true
		}
	}
	return false
}
