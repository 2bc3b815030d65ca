package engine

// FrameStats counts what the world did during one frame.
type FrameStats struct {
	Frame              uint64
	Actors             int
	Colliders          int
	Spawned            int
	Swept              int
	HorizontalContacts int
	VerticalContacts   int
	Resolutions        int
	ClampedPushes      int
	TriggerHits        int
}
