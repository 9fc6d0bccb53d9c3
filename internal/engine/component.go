package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that run once per fixed physics step.
// now is the fixed-step clock in seconds, step the fixed delta.
type FixedUpdater interface {
	FixedUpdate(now float64, step float32)
}

// Activator is implemented by components whose Start can fail because a
// required collaborator is missing. The scene logs the error and leaves the
// component inert.
type Activator interface {
	Activate() error
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
