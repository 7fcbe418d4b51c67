package hooking

import (
	"log"
)

// LogHook writes one line into a logger for every hook invocation.
type LogHook struct {
	*log.Logger
}

// NewLogHook returns a LogHook that writes into the logger.
func NewLogHook(logger *log.Logger) *LogHook {
	h := new(LogHook)
	h.Logger = logger

	return h
}

// Func writes the invocation site, the item, and the detail into the logger.
func (h *LogHook) Func(ctx HookCtx) {
	domainName := "?"
	if named, ok := ctx.Domain.(NamedHookable); ok {
		domainName = named.Name()
	}

	posName := "?"
	if ctx.Pos != nil {
		posName = ctx.Pos.Name
	}

	h.Logger.Printf("%s,%s,%v,%+v\n", domainName, posName, ctx.Item, ctx.Detail)
}
