package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/sarchlab/dynseq/analysis"
	"github.com/sarchlab/dynseq/hooking"
	"github.com/sarchlab/dynseq/idgen"
	"github.com/sarchlab/dynseq/recording"
	"github.com/sarchlab/dynseq/sequence"
	"github.com/sarchlab/dynseq/tracing"
)

// A session owns a sequence and the observers attached to it for one
// command.
type session struct {
	seq      *sequence.Sequence
	recorder recording.DataRecorder
	tracer   *tracing.OpTracer
	analyzer *analysis.UsageAnalyzer
}

func newSession(
	seq *sequence.Sequence,
	o options,
	logOut io.Writer,
) (*session, error) {
	s := &session{seq: seq}

	if o.traceDB != "" {
		recorder, err := openRecorder(o.traceDB)
		if err != nil {
			return nil, err
		}

		s.recorder = recorder
	}

	if o.verbose {
		seq.AcceptHook(hooking.NewLogHook(log.New(logOut, "", log.LstdFlags)))
	}

	if o.report {
		s.analyzer = analysis.NewUsageAnalyzer(log.New(logOut, "", 0))
		s.analyzer.Watch(seq)
	}

	if s.recorder != nil {
		var gen idgen.Generator
		if o.parallelID {
			gen = idgen.NewParallel()
		} else {
			gen = idgen.NewSequential()
		}

		s.tracer = tracing.MakeBuilder().
			WithRecorder(s.recorder).
			WithIDGenerator(gen).
			Build()
		tracing.CollectTrace(seq, s.tracer)
	}

	return s, nil
}

// openRecorder creates the trace database, refusing to reuse an existing
// file.
func openRecorder(path string) (r recording.DataRecorder, err error) {
	filename := path + ".sqlite3"

	_, err = os.Stat(filename)
	if err == nil {
		return nil, fmt.Errorf("trace database %s already exists", filename)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking trace database %s: %w", filename, err)
	}

	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = fmt.Errorf("opening trace database %s: %v", filename, p)
		}
	}()

	return recording.New(path), nil
}

// close reports usage and closes the recorder, if there are any.
func (s *session) close() error {
	if s.analyzer != nil {
		s.analyzer.Report()
	}

	if s.recorder == nil {
		return nil
	}

	return s.recorder.Close()
}
