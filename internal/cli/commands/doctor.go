package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qtweb-tools/qtweb/internal/cli/config"
	"github.com/qtweb-tools/qtweb/internal/qt"
)

var doctorVerbose bool

// NewDoctorCommand creates the doctor command
func NewDoctorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check whether a Qt 6 installation can be found",
		Long: `Run Qt 6 discovery and report what was found.

The exit code is zero whether or not Qt is found; doctor is a
diagnostic, not a gate.`,
		Example: `  qtweb doctor
  qtweb doctor --verbose   # show every strategy and candidate tried`,
		RunE: runDoctor,
	}

	cmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "Show every discovery strategy and candidate")

	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan)

	userConfigDir, _ := os.UserConfigDir()
	cfg, err := config.Load(userConfigDir)
	if err != nil {
		cfg = &config.Config{}
	}

	logger := zap.NewNop()
	if discoveryVerbose(doctorVerbose, cfg) {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	profile := qt.DetectProfile(runtime.GOOS)
	infoColor.Printf("Platform: %s\n", profile.Kind)

	root := qt.NewEngine(profile, logger).Discover(cmd.Context())
	if root == "" {
		warningColor.Println("No Qt 6 installation found.")
		fmt.Println("Run with --verbose to see which locations were checked.")
		return nil
	}

	successColor.Printf("✓ Qt 6 found: %s\n", root)

	res := qt.NewValidator(profile, logger).Validate(root)
	infoColor.Printf("  markers:   %v\n", res.Markers)
	infoColor.Printf("  libraries: %v\n", res.Libraries)
	infoColor.Printf("  headers:   %v\n", res.Headers)

	return nil
}
