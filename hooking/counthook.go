package hooking

import (
	"sync"
)

// CountHook counts how many times each hook position fires.
type CountHook struct {
	lock sync.Mutex

	posNames []string
	counts   map[string]uint64
}

// NewCountHook creates a CountHook with no counts.
func NewCountHook() *CountHook {
	return &CountHook{
		counts: make(map[string]uint64),
	}
}

// Func counts the position of the invocation.
func (h *CountHook) Func(ctx HookCtx) {
	if ctx.Pos == nil {
		return
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	_, ok := h.counts[ctx.Pos.Name]
	if !ok {
		h.posNames = append(h.posNames, ctx.Pos.Name)
	}

	h.counts[ctx.Pos.Name]++
}

// PosNames returns the names of the positions seen so far, in the order they
// were first seen.
func (h *CountHook) PosNames() []string {
	h.lock.Lock()
	defer h.lock.Unlock()

	names := make([]string, len(h.posNames))
	copy(names, h.posNames)

	return names
}

// Count returns how many times the given position fired.
func (h *CountHook) Count(pos *HookPos) uint64 {
	h.lock.Lock()
	defer h.lock.Unlock()

	return h.counts[pos.Name]
}

// Total returns the number of invocations over all positions.
func (h *CountHook) Total() uint64 {
	h.lock.Lock()
	defer h.lock.Unlock()

	var total uint64
	for _, c := range h.counts {
		total += c
	}

	return total
}
