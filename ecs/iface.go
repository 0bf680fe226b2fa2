package ecs

import "unsafe"

// iface mirrors the runtime layout of an interface{} value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
