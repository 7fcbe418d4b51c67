// Package cmd provides the command-line interface for dynseq.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var opts options

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dynseq",
	Short: "dynseq builds and exercises resizable text sequences.",
	Long: `dynseq builds and exercises resizable text sequences. It can run ` +
		`the built-in demonstration or a script of operations, optionally ` +
		`recording every operation into a SQLite database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return opts.resolve(cmd, envFiles...)
	},
}

var envFiles = []string{".env"}

// Execute adds all child commands to the root command and sets flags
// appropriately. It exits through atexit so that recorders are flushed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().String("trace", "",
		"Record every operation into <trace>.sqlite3 "+
			"(default from DYNSEQ_TRACE_DB)")
	rootCmd.PersistentFlags().Bool("parallel-id", false,
		"Use globally unique record IDs (default from DYNSEQ_PARALLEL_ID)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Log every operation to stderr")
	rootCmd.PersistentFlags().Bool("report", false,
		"Print a usage summary to stderr when the command finishes")
}
