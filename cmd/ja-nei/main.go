// Command ja-nei runs the proposal page in the terminal and exports its plan
package main

import (
	"fmt"
	"os"
)

func main() {
	root, ctx := newRootCommand()
	err := root.Execute()
	ctx.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
