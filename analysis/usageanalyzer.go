// Package analysis summarizes how sequences are used over their lifetime.
package analysis

import (
	"log"
	"sync"

	"github.com/sarchlab/dynseq/hooking"
	"github.com/sarchlab/dynseq/sequence"
)

// UsageSummary describes the life of one watched sequence.
type UsageSummary struct {
	Name         string
	NumOps       int
	NumResizes   int
	PeakLength   int
	Capacity     int
	AverageUsage float64
}

// UsageAnalyzer is a hook that tracks the length and capacity of sequences
// after every insertion and removal.
type UsageAnalyzer struct {
	lock   sync.Mutex
	logger *log.Logger

	names     []string
	sequences map[string]*seqInfo
}

type seqInfo struct {
	numOps     int
	numResizes int
	peakLength int
	capacity   int
	usageSum   float64
}

func (i seqInfo) averageUsage() float64 {
	if i.numOps == 0 {
		return 0
	}

	return i.usageSum / float64(i.numOps)
}

// NewUsageAnalyzer creates a UsageAnalyzer that reports into the logger.
func NewUsageAnalyzer(logger *log.Logger) *UsageAnalyzer {
	return &UsageAnalyzer{
		logger:    logger,
		sequences: make(map[string]*seqInfo),
	}
}

// Watch starts analyzing the sequence. Sequences are told apart by name, so
// watching two sequences with the same name panics.
func (a *UsageAnalyzer) Watch(seq *sequence.Sequence) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if _, ok := a.sequences[seq.Name()]; ok {
		panic("sequence " + seq.Name() + " is already watched")
	}

	a.names = append(a.names, seq.Name())
	a.sequences[seq.Name()] = &seqInfo{
		peakLength: seq.Len(),
		capacity:   seq.Capacity(),
	}

	seq.AcceptHook(a)
}

// Func updates the statistics of the sequence that triggered the hook.
func (a *UsageAnalyzer) Func(ctx hooking.HookCtx) {
	seq, ok := ctx.Domain.(*sequence.Sequence)
	if !ok {
		return
	}

	a.lock.Lock()
	defer a.lock.Unlock()

	info, ok := a.sequences[seq.Name()]
	if !ok {
		panic("sequence " + seq.Name() + " is not watched by UsageAnalyzer")
	}

	info.capacity = seq.Capacity()

	switch ctx.Pos {
	case sequence.HookPosResize:
		info.numResizes++
	case sequence.HookPosInsert, sequence.HookPosRemove:
		info.numOps++
		info.usageSum += seq.Usage()

		if seq.Len() > info.peakLength {
			info.peakLength = seq.Len()
		}
	}
}

// Summaries returns one summary per watched sequence, in the order they were
// watched.
func (a *UsageAnalyzer) Summaries() []UsageSummary {
	a.lock.Lock()
	defer a.lock.Unlock()

	summaries := make([]UsageSummary, 0, len(a.names))
	for _, name := range a.names {
		info := a.sequences[name]
		summaries = append(summaries, UsageSummary{
			Name:         name,
			NumOps:       info.numOps,
			NumResizes:   info.numResizes,
			PeakLength:   info.peakLength,
			Capacity:     info.capacity,
			AverageUsage: info.averageUsage(),
		})
	}

	return summaries
}

// Report writes the summaries into the logger.
func (a *UsageAnalyzer) Report() {
	for _, s := range a.Summaries() {
		a.logger.Printf(
			"%s: ops=%d resizes=%d peak=%d cap=%d avg_usage=%.2f%%\n",
			s.Name, s.NumOps, s.NumResizes, s.PeakLength, s.Capacity,
			s.AverageUsage)
	}
}
