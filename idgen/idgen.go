// Package idgen generates IDs for recorded operations.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// Generator can generate IDs.
type Generator interface {
	// Generate returns a new ID.
	Generate() string
}

// NewSequential returns a generator that produces "1", "2", "3", and so on.
// IDs are deterministic within one generator.
func NewSequential() Generator {
	return &sequentialGenerator{}
}

// NewParallel returns a generator backed by xid. IDs are globally unique but
// not deterministic.
func NewParallel() Generator {
	return parallelGenerator{}
}

type sequentialGenerator struct {
	nextID uint64
}

func (g *sequentialGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}

type parallelGenerator struct {
}

func (g parallelGenerator) Generate() string {
	return xid.New().String()
}
