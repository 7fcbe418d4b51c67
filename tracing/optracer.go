// Package tracing records the operations performed on sequences.
package tracing

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sarchlab/dynseq/hooking"
	"github.com/sarchlab/dynseq/idgen"
	"github.com/sarchlab/dynseq/recording"
	"github.com/sarchlab/dynseq/sequence"
)

// DefaultTableName is the table OpTracer writes into unless told otherwise.
const DefaultTableName = "dynseq_ops"

// OpRecord is one observed sequence operation.
type OpRecord struct {
	ID       string
	Sequence string
	Op       string
	Index    int
	Value    string
	Length   int
	Capacity int
}

var opNames = map[*hooking.HookPos]string{
	sequence.HookPosInsert: "insert",
	sequence.HookPosRemove: "remove",
	sequence.HookPosResize: "resize",
}

// OpTracer is a hook that writes an OpRecord into a DataRecorder for every
// insertion, removal, and growth of the sequences it is attached to.
type OpTracer struct {
	lock sync.Mutex

	recorder  recording.DataRecorder
	idGen     idgen.Generator
	tableName string
	count     uint64
}

// Func records the operation that triggered the hook. Invocations from other
// hook positions are ignored.
func (t *OpTracer) Func(ctx hooking.HookCtx) {
	op, ok := opNames[ctx.Pos]
	if !ok {
		return
	}

	detail, ok := ctx.Detail.(sequence.OpDetail)
	if !ok {
		return
	}

	value, _ := ctx.Item.(string)

	seqName := ""
	if named, ok := ctx.Domain.(hooking.NamedHookable); ok {
		seqName = named.Name()
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.recorder.InsertData(t.tableName, OpRecord{
		ID:       t.idGen.Generate(),
		Sequence: seqName,
		Op:       op,
		Index:    detail.Index,
		Value:    value,
		Length:   detail.Length,
		Capacity: detail.Capacity,
	})
	t.count++
}

// Count returns the number of records written.
func (t *OpTracer) Count() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.count
}

// TableName returns the table the tracer writes into.
func (t *OpTracer) TableName() string {
	return t.tableName
}

// CollectTrace attaches the tracer to the domain. It panics if the tracer is
// already attached.
func CollectTrace(domain hooking.NamedHookable, tracer hooking.Hook) {
	for _, hook := range domain.Hooks() {
		if hook == tracer {
			panic(fmt.Sprintf(
				"domain %s already has tracer %s",
				domain.Name(), reflect.TypeOf(tracer)))
		}
	}

	domain.AcceptHook(tracer)
}
