package engine

// Component is a unit of per-actor behaviour updated by its owner in
// ascending UpdateOrder.
type Component interface {
	Owner() *Actor
	UpdateOrder() int
	Enabled() bool
	SetEnabled(enabled bool)
	Update(dt float64)
	ProcessInput(in Input)

	// destroy releases whatever the component registered with the world.
	destroy()
}

// BaseComponent carries the bookkeeping shared by every component. Embed it
// and override Update/ProcessInput as needed.
type BaseComponent struct {
	owner   *Actor
	order   int
	enabled bool
}

// NewBaseComponent returns an enabled component base for owner.
func NewBaseComponent(owner *Actor, order int) BaseComponent {
	return BaseComponent{owner: owner, order: order, enabled: true}
}

func (c *BaseComponent) Owner() *Actor           { return c.owner }
func (c *BaseComponent) UpdateOrder() int        { return c.order }
func (c *BaseComponent) Enabled() bool           { return c.enabled }
func (c *BaseComponent) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *BaseComponent) Update(float64)          {}
func (c *BaseComponent) ProcessInput(Input)      {}
func (c *BaseComponent) destroy()                {}

// World returns the owner's world.
func (c *BaseComponent) World() *World { return c.owner.world }
