// Package installer drives the download/configure/build/install pipeline
// for a from-source OpenCV installation.
package installer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cvtools/cvinstall/internal/buildopts"
)

// Upstream repositories cloned by the source fetcher.
const (
	OpenCVRemote  = "https://github.com/Itseez/opencv.git"
	ContribRemote = "https://github.com/Itseez/opencv_contrib.git"
)

// DefaultTag is the OpenCV release installed when no tag is given.
const DefaultTag = "3.3.1"

// buildJobs is the fixed -j hint passed to make. It is a constant, not
// derived from the host CPU count.
const buildJobs = 3

// Config is the resolved installation configuration. It is read-only
// after flag parsing.
type Config struct {
	Tag              string
	Force            bool
	BuildDir         string
	InstallPrereqs   bool
	BuildOptionsFile string
	WithContrib      bool
}

// CommandRunner executes a single echoed command line. The production
// implementation is shell.Runner; tests substitute a recorder.
type CommandRunner interface {
	Call(command string)
}

// Installer runs the pipeline stages in order against one Config.
// Stages must not be reordered: each depends on the working directory
// its predecessor left behind.
type Installer struct {
	cfg  Config
	dirs Dirs
	run  CommandRunner
	in   io.Reader
	out  io.Writer
}

// New resolves the directory layout for cfg and returns an Installer
// reading confirmation input from in and reporting on out.
func New(cfg Config, run CommandRunner, in io.Reader, out io.Writer) (*Installer, error) {
	dirs, err := NewDirs(cfg.BuildDir)
	if err != nil {
		return nil, fmt.Errorf("resolve build dir %s: %w", cfg.BuildDir, err)
	}
	return &Installer{cfg: cfg, dirs: dirs, run: run, in: in, out: out}, nil
}

// Dirs returns the directory layout the pipeline works against.
func (inst *Installer) Dirs() Dirs { return inst.dirs }

// Run executes the whole pipeline: confirmation gate, source fetch,
// configure, build, install. A declined confirmation returns nil with no
// side effects. A directory-access failure returns an error, which is
// fatal for the process: no retry, no cleanup of partial state.
func (inst *Installer) Run() error {
	inst.printConfig()

	if !inst.cfg.Force {
		fmt.Fprint(inst.out, "Proceed with the installation? ")
		line, _ := bufio.NewReader(inst.in).ReadString('\n')
		if !Proceed(line) {
			fmt.Fprintln(inst.out, "Exiting.")
			return nil
		}
	}

	if err := inst.downloadSource(); err != nil {
		return err
	}
	if err := inst.configureBuild(); err != nil {
		return err
	}
	if err := inst.build(); err != nil {
		return err
	}
	return inst.install()
}

func (inst *Installer) printConfig() {
	fmt.Fprintln(inst.out, "\nSelected installation options:")
	fmt.Fprintf(inst.out, "tag: %s\n", inst.cfg.Tag)
	fmt.Fprintf(inst.out, "force: %v\n", inst.cfg.Force)
	fmt.Fprintf(inst.out, "build dir: %s\n", inst.dirs.Root)
	fmt.Fprintf(inst.out, "install prereqs: %v\n", inst.cfg.InstallPrereqs)
	fmt.Fprintf(inst.out, "build options file: %s\n", inst.cfg.BuildOptionsFile)
	fmt.Fprintf(inst.out, "contrib modules: %v\n", inst.cfg.WithContrib)
	fmt.Fprintln(inst.out)
}

// downloadSource clones the upstream repository under Root and checks out
// the configured tag. The clone and checkout exit statuses are not
// inspected; a failed clone surfaces when a later stage finds the tree
// missing.
func (inst *Installer) downloadSource() error {
	fmt.Fprintln(inst.out, "Downloading source...")

	if err := chdir(inst.dirs.Root); err != nil {
		return err
	}
	inst.run.Call("git clone " + OpenCVRemote)

	if err := chdir(inst.dirs.Source); err != nil {
		return err
	}
	inst.run.Call("git checkout tags/" + inst.cfg.Tag)

	if inst.cfg.WithContrib {
		if err := chdir(inst.dirs.Root); err != nil {
			return err
		}
		inst.run.Call("git clone " + ContribRemote)
		if err := chdir(inst.contribDir()); err != nil {
			return err
		}
		inst.run.Call("git checkout tags/" + inst.cfg.Tag)
	}

	return chdir(inst.dirs.Root)
}

// configureBuild creates the build directory, loads the option set and
// invokes CMake with one -D flag per option, using the parent directory
// as the source tree. Option names and values pass through verbatim.
func (inst *Installer) configureBuild() error {
	if err := os.MkdirAll(inst.dirs.Build, 0o755); err != nil {
		return fmt.Errorf("create build dir %s: %w", inst.dirs.Build, err)
	}
	if err := chdir(inst.dirs.Build); err != nil {
		return err
	}

	set, err := buildopts.Load(inst.cfg.BuildOptionsFile)
	if err != nil {
		return err
	}

	fmt.Fprintln(inst.out, "Building OpenCV with the following options:")
	for _, opt := range set {
		fmt.Fprintf(inst.out, "%s: %s\n", opt.Name, opt.Value)
	}
	fmt.Fprintln(inst.out)

	args := set.DefineArgs()
	if inst.cfg.WithContrib {
		args += " -D OPENCV_EXTRA_MODULES_PATH=" + filepath.Join(inst.contribDir(), "modules")
	}
	inst.run.Call("cmake " + args + " ..")
	return nil
}

func (inst *Installer) build() error {
	if err := chdir(inst.dirs.Build); err != nil {
		return err
	}
	inst.run.Call(fmt.Sprintf("make -j %d", buildJobs))
	return nil
}

func (inst *Installer) install() error {
	if err := chdir(inst.dirs.Build); err != nil {
		return err
	}
	inst.run.Call("sudo make install")
	inst.run.Call("sudo ldconfig")
	return nil
}

func (inst *Installer) contribDir() string {
	return filepath.Join(inst.dirs.Root, "opencv_contrib")
}

// chdir moves the process working directory, the one piece of implicit
// state shared between stages. Failure aborts the whole pipeline.
func chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir into %s: %w", dir, err)
	}
	return nil
}
