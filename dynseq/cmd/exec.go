package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/dynseq/sequence"
)

var execCmd = &cobra.Command{
	Use:   "exec OP...",
	Short: "Run a script of operations on a new sequence.",
	Long: `exec creates an empty sequence and applies the operations in order, ` +
		`printing one line per operation. Operations are insert=V, get=I, ` +
		`remove=I, delete=I, contains=V, indexof=V, usage, show, len, and cap.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := parseOps(args)
		if err != nil {
			return err
		}

		return runExec(cmd.OutOrStdout(), cmd.ErrOrStderr(), ops, opts)
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().Int("capacity", sequence.DefaultCapacity,
		"Initial capacity (default from DYNSEQ_CAPACITY)")
}

type opKind int

const (
	opInsert opKind = iota
	opGet
	opRemove
	opDelete
	opContains
	opIndexOf
	opUsage
	opShow
	opLen
	opCap
)

type argKind int

const (
	argNone argKind = iota
	argValue
	argIndex
)

var opTable = map[string]struct {
	kind opKind
	arg  argKind
}{
	"insert":   {opInsert, argValue},
	"get":      {opGet, argIndex},
	"remove":   {opRemove, argIndex},
	"delete":   {opDelete, argIndex},
	"contains": {opContains, argValue},
	"indexof":  {opIndexOf, argValue},
	"usage":    {opUsage, argNone},
	"show":     {opShow, argNone},
	"len":      {opLen, argNone},
	"cap":      {opCap, argNone},
}

type op struct {
	name  string
	kind  opKind
	value string
	index int
}

// parseOps parses the whole script before anything runs, so a malformed
// script leaves no partial output.
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))

	for i, arg := range args {
		parsed, err := parseOp(arg)
		if err != nil {
			return nil, fmt.Errorf("operation %d (%q): %w", i+1, arg, err)
		}

		ops = append(ops, parsed)
	}

	return ops, nil
}

func parseOp(arg string) (op, error) {
	name, param, hasParam := strings.Cut(arg, "=")

	entry, ok := opTable[strings.ToLower(name)]
	if !ok {
		return op{}, fmt.Errorf("unknown operation %q", name)
	}

	o := op{name: strings.ToLower(name), kind: entry.kind}

	switch entry.arg {
	case argNone:
		if hasParam {
			return op{}, fmt.Errorf("%s takes no argument", o.name)
		}
	case argValue:
		if !hasParam {
			return op{}, fmt.Errorf("%s needs a value", o.name)
		}

		o.value = param
	case argIndex:
		if !hasParam {
			return op{}, fmt.Errorf("%s needs an index", o.name)
		}

		index, err := strconv.Atoi(param)
		if err != nil {
			return op{}, fmt.Errorf("%s needs an integer index: %w", o.name, err)
		}

		o.index = index
	}

	return o, nil
}

func runExec(out, logOut io.Writer, ops []op, o options) (err error) {
	seq := sequence.MakeBuilder().WithCapacity(o.capacity).Build("Exec.Seq")

	s, err := newSession(seq, o, logOut)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := s.close(); err == nil {
			err = closeErr
		}
	}()

	for _, step := range ops {
		fmt.Fprintln(out, apply(seq, step))
	}

	return nil
}

func apply(seq *sequence.Sequence, o op) string {
	switch o.kind {
	case opInsert:
		seq.Insert(o.value)
		return fmt.Sprintf("insert %q: len=%d cap=%d",
			o.value, seq.Len(), seq.Capacity())
	case opGet:
		v, ok := seq.Get(o.index)
		return fmt.Sprintf("get %d: %s", o.index, quoteOrAbsent(v, ok))
	case opRemove:
		v, ok := seq.Remove(o.index)
		return fmt.Sprintf("remove %d: %s", o.index, quoteOrAbsent(v, ok))
	case opDelete:
		seq.Delete(o.index)
		return fmt.Sprintf("delete %d: len=%d", o.index, seq.Len())
	case opContains:
		return fmt.Sprintf("contains %q: %t", o.value, seq.Contains(o.value))
	case opIndexOf:
		return fmt.Sprintf("indexof %q: %d", o.value, seq.IndexOf(o.value))
	case opUsage:
		return fmt.Sprintf("usage: %.2f", seq.Usage())
	case opShow:
		return seq.String()
	case opLen:
		return fmt.Sprintf("len: %d", seq.Len())
	case opCap:
		return fmt.Sprintf("cap: %d", seq.Capacity())
	}

	panic("unknown operation kind")
}

func quoteOrAbsent(v string, ok bool) string {
	if !ok {
		return "absent"
	}

	return strconv.Quote(v)
}
