// Command dynseq demonstrates and exercises resizable text sequences.
package main

import "github.com/sarchlab/dynseq/dynseq/cmd"

func main() {
	cmd.Execute()
}
