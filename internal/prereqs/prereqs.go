// Package prereqs installs the OS packages the OpenCV build needs.
package prereqs

import (
	"fmt"
	"io"
	"strings"
)

// packages is the fixed list of development packages installed before
// building.
var packages = []string{
	"build-essential", "cmake", "git", "pkg-config",
	"libjpeg8-dev", "libjasper-dev", "libpng12-dev", "libgtk2.0-dev",
	"libavcodec-dev", "libavformat-dev", "libswscale-dev", "libv4l-dev",
	"libatlas-base-dev", "gfortran",
	"python-dev", "python-numpy", "python3-dev", "python3-numpy",
}

// CommandRunner executes a single echoed command line.
type CommandRunner interface {
	Call(command string)
}

// Install refreshes the package index, upgrades the system and installs
// the build prerequisites. Like the rest of the pipeline, apt-get exit
// statuses are not inspected: a missing package surfaces later as a
// configure or compile error.
func Install(out io.Writer, run CommandRunner) {
	fmt.Fprintln(out, "Installing prerequisites...")
	run.Call("sudo apt-get update")
	run.Call("sudo apt-get upgrade")
	run.Call("sudo apt-get install " + strings.Join(packages, " "))
}
