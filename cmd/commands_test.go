package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// runCommand executes sub under a fresh root command and returns its output.
func runCommand(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{sub.Name()}, args...))

	err := root.Execute()

	return out.String(), err
}
