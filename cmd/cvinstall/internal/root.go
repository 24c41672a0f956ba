package internal

import (
	"log"
	"os"

	"github.com/cvtools/cvinstall/internal/installer"
	"github.com/cvtools/cvinstall/internal/prereqs"
	"github.com/cvtools/cvinstall/internal/shell"
	"github.com/spf13/cobra"
)

var (
	flagTag         string
	flagForce       bool
	flagBuildDir    string
	flagSkipPrereqs bool
	flagOptionsFile string
	flagContrib     bool
)

var rootCmd = &cobra.Command{
	Use:   "cvinstall",
	Short: "cvinstall builds and installs OpenCV from source",
	Long: `cvinstall downloads a tagged OpenCV release, configures it with CMake,
builds it and installs it system-wide. It does only minimal error checking:
the external tools it invokes report failures on their own stderr.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	rootCmd.Flags().StringVarP(&flagTag, "tag", "t", installer.DefaultTag, "OpenCV tag to download and install")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Don't ask for confirmation before installing")
	rootCmd.Flags().StringVarP(&flagBuildDir, "build-dir", "d", wd, "Directory to build OpenCV in (an opencv directory is created inside it)")
	rootCmd.Flags().BoolVarP(&flagSkipPrereqs, "prereqs", "p", false, "Do NOT install the OpenCV build prerequisites. Without them the build will likely fail")
	rootCmd.Flags().StringVarP(&flagOptionsFile, "build-options-file", "b", "", "YAML or JSON file with the CMake options for the build")
	rootCmd.Flags().BoolVar(&flagContrib, "contrib", false, "Also fetch and enable the opencv_contrib modules")
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg := installer.Config{
		Tag:      flagTag,
		Force:    flagForce,
		BuildDir: flagBuildDir,
		// --prereqs is a skip switch: leaving it out means install them.
		InstallPrereqs:   !flagSkipPrereqs,
		BuildOptionsFile: flagOptionsFile,
		WithContrib:      flagContrib,
	}

	run := shell.New()
	if cfg.InstallPrereqs {
		prereqs.Install(os.Stdout, run)
	}

	inst, err := installer.New(cfg, run, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return inst.Run()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
