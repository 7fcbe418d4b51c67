package tracing

import (
	"github.com/sarchlab/dynseq/idgen"
	"github.com/sarchlab/dynseq/recording"
)

// Builder can build OpTracers.
type Builder struct {
	recorder  recording.DataRecorder
	idGen     idgen.Generator
	tableName string
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		tableName: DefaultTableName,
	}
}

// WithRecorder sets the recorder that receives the records. It is required.
func (b Builder) WithRecorder(r recording.DataRecorder) Builder {
	b.recorder = r
	return b
}

// WithIDGenerator sets how record IDs are generated. The default is a
// sequential generator owned by the tracer.
func (b Builder) WithIDGenerator(g idgen.Generator) Builder {
	b.idGen = g
	return b
}

// WithTableName sets the table to write into.
func (b Builder) WithTableName(name string) Builder {
	b.tableName = name
	return b
}

// Build creates the tracer and its table.
func (b Builder) Build() *OpTracer {
	if b.recorder == nil {
		panic("recorder is not set")
	}

	idGen := b.idGen
	if idGen == nil {
		idGen = idgen.NewSequential()
	}

	b.recorder.CreateTable(b.tableName, OpRecord{})

	return &OpTracer{
		recorder:  b.recorder,
		idGen:     idGen,
		tableName: b.tableName,
	}
}
