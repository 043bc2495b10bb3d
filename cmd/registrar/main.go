// Command registrar edits the records of the student-registry database,
// either interactively (registrar edit) or one operation per invocation.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "registrar:", err)
	}
	os.Exit(exitCodeFor(err))
}
