package ecs

import "iter"

// iComponentStorage is a type-erased column holding one component type.
type iComponentStorage interface {
	Append(item any) int
	Set(index int, item any) bool
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}
