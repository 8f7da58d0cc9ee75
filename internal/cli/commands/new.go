package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qtweb-tools/qtweb/internal/cli/config"
	"github.com/qtweb-tools/qtweb/internal/cli/ui"
	"github.com/qtweb-tools/qtweb/internal/prompt"
	"github.com/qtweb-tools/qtweb/internal/qt"
	"github.com/qtweb-tools/qtweb/internal/scaffold"
)

var (
	newFramework      string
	newLanguage       string
	newNoFrontend     bool
	newNoBackend      bool
	newFeatures       []string
	newQtPath         string
	newNonInteractive bool
	newVerbose        bool
)

// prompter and discoverQt are swapped by tests; production talks to the
// terminal and runs the real discovery engine.
var (
	prompter prompt.Prompter = prompt.NewSurvey()

	discoverQt = func(cmd *cobra.Command, profile qt.Profile, logger *zap.Logger) string {
		return qt.NewEngine(profile, logger).Discover(cmd.Context())
	}
)

// validateProjectName validates project name with security checks
func validateProjectName(name string) error {
	name = strings.TrimSpace(name)

	// Check length
	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("project name must be 1-100 characters")
	}

	// Check for absolute paths
	if filepath.IsAbs(name) {
		return fmt.Errorf("project name cannot be an absolute path")
	}

	// Only allow alphanumeric, dash, and underscore
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]+$`, name)
	if !matched {
		return fmt.Errorf("project name can only contain letters, numbers, dashes, and underscores")
	}

	return nil
}

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Qt 6 hybrid application project",
		Long: `Create a new project pairing a Qt 6 native shell with a web frontend.

If no project name is provided, you will be prompted to enter one.
Qt 6 is located automatically; when that fails you can enter the path
interactively, pass --qt-path, or fix it up later in the generated
qtweb.json.

Examples:
  qtweb new my-app
  qtweb new my-app --framework vue --language javascript
  qtweb new my-app --qt-path ~/Qt/6.8.0/gcc_64
  qtweb new my-app --non-interactive --no-frontend`,
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newFramework, "framework", "f", "", "Frontend framework (react, vue, svelte, vanilla)")
	cmd.Flags().StringVarP(&newLanguage, "language", "l", "", "Frontend language (typescript, javascript)")
	cmd.Flags().BoolVar(&newNoFrontend, "no-frontend", false, "Skip the web frontend")
	cmd.Flags().BoolVar(&newNoBackend, "no-backend", false, "Skip the native backend bridge")
	cmd.Flags().StringSliceVar(&newFeatures, "feature", nil, "Backend features to enable (filesystem, dialogs)")
	cmd.Flags().StringVar(&newQtPath, "qt-path", "", "Qt installation root (skips automatic discovery)")
	cmd.Flags().BoolVar(&newNonInteractive, "non-interactive", false, "Never prompt; rely on flags and defaults")
	cmd.Flags().BoolVarP(&newVerbose, "verbose", "v", false, "Show discovery diagnostics")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)
	promptColor := color.New(color.FgYellow)

	userConfigDir, _ := os.UserConfigDir()
	cfg, cfgErr := config.Load(userConfigDir)
	if cfgErr != nil {
		cfg = &config.Config{}
	}

	logger := zap.NewNop()
	if discoveryVerbose(newVerbose, cfg) {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	if cfgErr != nil {
		logger.Debug("config load failed", zap.Error(cfgErr))
	}

	answers := prompt.Answers{
		Frontend:  !newNoFrontend,
		Backend:   !newNoBackend,
		Framework: firstNonEmpty(newFramework, cfg.Framework),
		Language:  firstNonEmpty(newLanguage, cfg.Language),
	}
	if len(args) > 0 {
		answers.Name = args[0]
	}
	for _, feature := range newFeatures {
		switch feature {
		case "filesystem":
			answers.FeatureFilesystem = true
		case "dialogs":
			answers.FeatureDialogs = true
		default:
			return fmt.Errorf("unknown backend feature %q (supported: filesystem, dialogs)", feature)
		}
	}

	if !newNonInteractive {
		var err error
		answers, err = prompter.Ask(answers)
		if err != nil {
			return err
		}
	}

	if err := validateProjectName(answers.Name); err != nil {
		return err
	}
	if answers.Frontend {
		if answers.Framework == "" {
			answers.Framework = scaffold.FrameworkVanilla
		}
		if answers.Language == "" {
			answers.Language = scaffold.LanguageTypeScript
		}
		if err := validateChoice("framework", answers.Framework, scaffold.Frameworks); err != nil {
			return err
		}
		if err := validateChoice("language", answers.Language, scaffold.Languages); err != nil {
			return err
		}
	}

	// Locate Qt. An explicit --qt-path (or configured path) bypasses the
	// discovery engine and goes straight to user-path resolution.
	profile := qt.DetectProfile(runtime.GOOS)
	resolver := qt.NewResolver(profile, logger)

	qtRoot := ""
	explicitPath := firstNonEmpty(newQtPath, cfg.Qt.Path)
	if explicitPath != "" {
		qtRoot = resolver.Resolve(explicitPath)
		if qtRoot == "" {
			fmt.Print(ui.Format(ui.Options{
				Level:   ui.LevelWarning,
				Context: "invalid qt path",
				Problem: fmt.Sprintf("%s is not a usable Qt 6 installation", explicitPath),
				Suggestions: []string{
					"Check the path points at (or above) a root containing lib/, include/ and bin/",
				},
			}))
		}
	} else {
		infoColor.Println("Looking for a Qt 6 installation...")
		qtRoot = discoverQt(cmd, profile, logger)

		if qtRoot == "" && !newNonInteractive {
			manual, err := prompter.AskQtPath()
			if err != nil {
				return err
			}
			if strings.TrimSpace(manual) != "" {
				qtRoot = resolver.Resolve(manual)
				if qtRoot == "" {
					fmt.Print(ui.Format(ui.Options{
						Level:   ui.LevelWarning,
						Context: "invalid qt path",
						Problem: fmt.Sprintf("%s is not a usable Qt 6 installation", manual),
					}))
				}
			}
		}
	}

	if qtRoot != "" {
		infoColor.Printf("Using Qt at: %s\n\n", qtRoot)
	} else {
		fmt.Print(ui.QtNotFound(scaffold.RecordFileName))
		fmt.Println()
	}

	infoColor.Printf("Creating project: %s\n\n", answers.Name)

	err := scaffold.Run(scaffold.Options{
		Name:      answers.Name,
		Frontend:  answers.Frontend,
		Framework: answers.Framework,
		Language:  answers.Language,
		Backend:   answers.Backend,
		Features: scaffold.Features{
			Filesystem: answers.FeatureFilesystem,
			Dialogs:    answers.FeatureDialogs,
		},
		QtPath:  qtRoot,
		Profile: profile,
		Log:     logger,
	})
	if err != nil {
		return err
	}

	successColor.Printf("✓ Created project: %s\n\n", answers.Name)

	promptColor.Println("Get started:")
	fmt.Printf("  cd %s\n", answers.Name)
	if answers.Frontend {
		fmt.Println("  npm install")
		fmt.Println("  npm run dev")
	}
	fmt.Println("  npm run qt:build")
	fmt.Println()

	return nil
}

func validateChoice(what, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s %q (supported: %s)", what, value, strings.Join(allowed, ", "))
}

// discoveryVerbose decides whether discovery diagnostics are shown: the
// --verbose flag or the qt.verbose config key turns them on.
func discoveryVerbose(flag bool, cfg *config.Config) bool {
	return flag || (cfg != nil && cfg.Qt.Verbose)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
