// Package shell runs external commands the way the installer reports
// them: the literal command line is printed first, then executed.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes whitespace-split command lines in the current working
// directory, streaming child output to Stdout and Stderr.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner wired to the process stdout and stderr.
func New() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Call prints command, then runs it and blocks until the child exits.
// The exit status is deliberately not inspected: failed tools report on
// their own stderr and later pipeline stages run against whatever state
// was left behind. Inspecting it here would change the installer's
// observable failure behavior.
func (r *Runner) Call(command string) {
	fmt.Fprintln(r.Stdout, command)
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	_ = cmd.Run()
}
