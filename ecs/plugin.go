package ecs

// Plugin bundles component registration, singletons and systems so a feature
// can be installed with one call.
type Plugin interface {
	Build(scheduler *Scheduler)
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(scheduler *Scheduler)

func (f PluginFunc) Build(scheduler *Scheduler) {
	f(scheduler)
}

// AddPlugins builds each plugin in order.
func (s *Scheduler) AddPlugins(plugins ...Plugin) *Scheduler {
	for _, p := range plugins {
		p.Build(s)
	}
	return s
}
