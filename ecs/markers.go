package ecs

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
)

// markerIndex is the set of live entities carrying one marker type. Markers
// are zero-size struct components; the index lets tag queries skip the
// archetype scan.
type markerIndex struct {
	ids *intmap.Map[EntityId, struct{}]
}

func newMarkerIndex() *markerIndex {
	return &markerIndex{ids: intmap.New[EntityId, struct{}](16)}
}

func (s *Storage) indexMarkers(id EntityId, types []reflect.Type) {
	for _, typ := range types {
		if !isMarker(typ) {
			continue
		}
		idx, ok := s.markers[typ]
		if !ok {
			idx = newMarkerIndex()
			s.markers[typ] = idx
		}
		idx.ids.Put(id, struct{}{})
	}
}

func (s *Storage) unindexMarkers(id EntityId, types []reflect.Type) {
	for _, typ := range types {
		if idx, ok := s.markers[typ]; ok {
			idx.ids.Del(id)
		}
	}
}

// TaggedCount returns how many live entities carry the marker type T.
func TaggedCount[T any](s *Storage) int {
	idx, ok := s.markers[reflect.TypeFor[T]()]
	if !ok {
		return 0
	}
	return idx.ids.Len()
}

// Tagged iterates the entities carrying the marker type T. T must be a
// zero-size struct. The storage must not be structurally modified while
// iterating; use Commands for that.
func Tagged[T any](s *Storage) iter.Seq[EntityId] {
	t := reflect.TypeFor[T]()
	if !isMarker(t) {
		panic("Tagged requires a zero-size struct marker, got " + t.String())
	}

	return func(yield func(EntityId) bool) {
		idx, ok := s.markers[t]
		if !ok {
			return
		}
		idx.ids.ForEach(func(id EntityId, _ struct{}) bool {
			return yield(id)
		})
	}
}
