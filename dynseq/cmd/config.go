package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/dynseq/sequence"
)

// Environment variables that provide flag defaults. They may be set in a
// .env file in the working directory.
const (
	envCapacity   = "DYNSEQ_CAPACITY"
	envTraceDB    = "DYNSEQ_TRACE_DB"
	envParallelID = "DYNSEQ_PARALLEL_ID"
)

type options struct {
	capacity   int
	traceDB    string
	parallelID bool
	verbose    bool
	report     bool
}

// loadEnv loads the env files into the process environment. Variables that
// are already set win, and missing files are skipped.
func loadEnv(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

func envOptions() (options, error) {
	o := options{capacity: sequence.DefaultCapacity}

	if v := os.Getenv(envCapacity); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return o, fmt.Errorf("parsing %s: %w", envCapacity, err)
		}

		o.capacity = capacity
	}

	o.traceDB = os.Getenv(envTraceDB)

	if v := os.Getenv(envParallelID); v != "" {
		parallel, err := strconv.ParseBool(v)
		if err != nil {
			return o, fmt.Errorf("parsing %s: %w", envParallelID, err)
		}

		o.parallelID = parallel
	}

	return o, nil
}

// resolve fills the options from the environment, then overrides them with
// the flags that the user set explicitly.
func (o *options) resolve(cmd *cobra.Command, files ...string) error {
	err := loadEnv(files...)
	if err != nil {
		return err
	}

	env, err := envOptions()
	if err != nil {
		return err
	}

	*o = env

	flags := cmd.Flags()

	if flags.Changed("capacity") {
		o.capacity, _ = flags.GetInt("capacity")
	}

	if flags.Changed("trace") {
		o.traceDB, _ = flags.GetString("trace")
	}

	if flags.Changed("parallel-id") {
		o.parallelID, _ = flags.GetBool("parallel-id")
	}

	o.verbose, _ = flags.GetBool("verbose")
	o.report, _ = flags.GetBool("report")

	return nil
}
