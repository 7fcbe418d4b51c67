// Package hooking lets containers report what happens inside them to
// observers without depending on those observers.
package hooking

import "slices"

// HookPos identifies one kind of change a container can announce, such as an
// insertion or a growth of its storage.
type HookPos struct {
	Name string
}

// HookCtx describes a single change. Domain is the container that changed,
// Item is the element involved, if any, and Detail holds container-specific
// data such as the affected index.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is implemented by containers that observers can attach to.
type Hookable interface {
	// AcceptHook attaches an observer.
	AcceptHook(hook Hook)

	// NumHooks tells how many observers are attached.
	NumHooks() int

	// Hooks lists the attached observers in the order they were attached.
	Hooks() []Hook
}

// NamedHookable is a Hookable that also has a name.
type NamedHookable interface {
	Hookable
	Name() string
}

// Hook observes changes announced by a container.
type Hook interface {
	// Func is called once for every announced change.
	Func(ctx HookCtx)
}

// HookableBase keeps the observer list of a container. A container embeds it
// and calls InvokeHook after each change it wants to announce.
type HookableBase struct {
	observers []Hook
}

// NumHooks tells how many observers are attached.
func (h *HookableBase) NumHooks() int {
	return len(h.observers)
}

// Hooks lists the attached observers.
func (h *HookableBase) Hooks() []Hook {
	return h.observers
}

// AcceptHook attaches an observer. The same observer cannot be attached
// twice.
func (h *HookableBase) AcceptHook(hook Hook) {
	if slices.Contains(h.observers, hook) {
		panic("duplicated hook")
	}

	h.observers = append(h.observers, hook)
}

// InvokeHook announces a change to every observer, earliest attached first.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, observer := range h.observers {
		observer.Func(ctx)
	}
}
