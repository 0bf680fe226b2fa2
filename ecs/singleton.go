package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry owns the heap cell of one singleton. The cell never moves,
// so cached pointers stay valid across AddSingleton overwrites.
type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores value as the process-wide instance of its type. An
// existing instance is overwritten in place. Pointers are dereferenced.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		panic("cannot add nil singleton")
	}
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if entry, ok := s.singletons[v.Type()]; ok {
		entry.value.Set(v)
		return
	}

	cell := reflect.New(v.Type())
	cell.Elem().Set(v)
	s.singletons[v.Type()] = &singletonEntry{
		typ:     v.Type(),
		value:   cell.Elem(),
		dataPtr: cell.UnsafePointer(),
	}
}

// RemoveSingleton drops the singleton of the given type. Singleton accessors
// created earlier keep pointing at the detached value.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// ReadSingleton returns the singleton of type T, or nil if none was added.
func ReadSingleton[T any](s *Storage) *T {
	entry := s.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Singleton provides cached access to a single component instance that is not
// associated with any entity. Use it for process-wide resources such as
// timers, input state or configuration.
type Singleton[T any] struct {
	storage      *Storage
	componentPtr unsafe.Pointer
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If the singleton does not exist yet it is created from initializer, or from
// the zero value. This guarantees the singleton exists after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage. The Scheduler calls it for Singleton
// fields during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentPtr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not been
// added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return (*T)(s.componentPtr)
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.componentPtr = entry.dataPtr
	}
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
