package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sarchlab/dynseq/sequence"
)

var demoLanguages = []string{"Java", "Python", "C", "C++", "Fortran"}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration.",
	Long: "`demo` builds a sequence from five language names and prints it, " +
		"the index of a value, and the usage percentage.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		find, _ := cmd.Flags().GetString("find")
		return runDemo(cmd.OutOrStdout(), cmd.ErrOrStderr(), find, opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().String("find", "C", "The value to look up")
}

func runDemo(out, logOut io.Writer, find string, o options) (err error) {
	data := make([]string, len(demoLanguages))
	copy(data, demoLanguages)

	seq := sequence.MakeBuilder().WithData(data).Build("Demo.Languages")

	s, err := newSession(seq, o, logOut)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := s.close(); err == nil {
			err = closeErr
		}
	}()

	fmt.Fprintln(out, seq)
	fmt.Fprintf(out, "Index of %s: %d\n", find, seq.IndexOf(find))
	fmt.Fprintf(out, "Usage: %.2f%%\n", seq.Usage())

	return nil
}
