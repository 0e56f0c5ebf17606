// Package core provides the module system foundation for milkybridge.
package core

// ModuleID is the unique identifier of a module, namespaced by dots
// (e.g. "channel.milky", "gateway.http").
type ModuleID string

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	// ID is the unique module identifier.
	ID ModuleID

	// New returns a fresh, unconfigured instance of the module.
	New func() Module
}

// Module is the minimal interface every module implements. Lifecycle
// behavior is added through the optional interfaces in lifecycle.go.
type Module interface {
	ModuleInfo() ModuleInfo
}
