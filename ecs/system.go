package ecs

// System represents a behavior that operates on entities with specific components.
// User-defined systems implement this interface and can include Query and
// Singleton fields, which the Scheduler wires at registration, as well as
// custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface. Function systems
// have no fields, so they reach the world through frame.Storage and frame.Commands.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}

// NamedSystem overrides the name a system is reported under in SchedulerStats.
// Without it the system's type name is used.
type NamedSystem interface {
	System
	SystemName() string
}
