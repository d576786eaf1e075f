package gram

import "unsafe"

// ptrValue gives a stable, comparable value for a node's identity, used
// only as the last-resort tie-breaker in the total order (order.go).
func ptrValue(n Node) uintptr {
	return uintptr(unsafe.Pointer(n.p))
}
