package qt

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// envVarNames are checked in order by the environment-variable strategy.
var envVarNames = []string{"QTDIR", "QT_DIR", "QT6_DIR", "QT_HOME", "Qt6_DIR"}

// locatorTools are the executables whose location implies a Qt root, in
// preference order.
var locatorTools = []string{"qmake6", "qmake"}

// Strategy produces candidate installation roots. Candidates are returned
// in preference order; a strategy that finds nothing returns an empty
// slice and never an error, since every failure mode (missing tool,
// permission denied, timeout) just means "this approach found nothing".
type Strategy interface {
	Name() string
	Candidates(ctx context.Context) []string
}

// Engine runs the discovery strategies in order and returns the first
// candidate that validates. The function fields exist so tests can
// substitute the process environment; production code uses NewEngine and
// leaves them alone.
type Engine struct {
	Profile   Profile
	Validator *Validator

	LookPath func(file string) (string, error)
	Getenv   func(key string) string
	Run      func(ctx context.Context, name string, args ...string) (string, error)
	Home     string
	Timeout  time.Duration

	log *zap.Logger
}

// NewEngine builds an engine wired to the real process environment.
func NewEngine(profile Profile, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	home, _ := os.UserHomeDir()
	return &Engine{
		Profile:   profile,
		Validator: NewValidator(profile, logger),
		LookPath:  exec.LookPath,
		Getenv:    os.Getenv,
		Run:       runCommand,
		Home:      home,
		Timeout:   5 * time.Second,
		log:       logger,
	}
}

// runCommand executes an external tool with no interactive stdin and
// returns its trimmed stdout.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Discover tries each strategy in order and returns the first candidate
// root that passes validation, or "" when nothing is found. It never
// returns an error: an absent Qt installation is an expected outcome, and
// any individual strategy failure is swallowed and logged.
func (e *Engine) Discover(ctx context.Context) string {
	for _, strategy := range e.strategies() {
		for _, candidate := range strategy.Candidates(ctx) {
			if candidate == "" {
				continue
			}
			candidate = filepath.Clean(candidate)
			if e.Validator.Validate(candidate).Valid {
				e.log.Debug("discovery succeeded",
					zap.String("strategy", strategy.Name()),
					zap.String("root", candidate))
				return candidate
			}
			e.log.Debug("candidate rejected",
				zap.String("strategy", strategy.Name()),
				zap.String("candidate", candidate))
		}
	}
	e.log.Debug("discovery exhausted all strategies")
	return ""
}

// strategies returns the ordered strategy list. The order is a trust
// ranking: a locator tool on PATH beats a guessed well-known directory.
func (e *Engine) strategies() []Strategy {
	return []Strategy{
		&toolStrategy{engine: e},
		&queryStrategy{engine: e},
		&envStrategy{engine: e},
		&wellKnownStrategy{engine: e},
		&searchStrategy{engine: e},
	}
}

// toolStrategy derives a root from a locator tool found on PATH. The tool
// conventionally lives in <root>/bin, so the root is two levels up from
// the executable.
type toolStrategy struct {
	engine *Engine
}

func (s *toolStrategy) Name() string { return "locator-tool" }

func (s *toolStrategy) Candidates(context.Context) []string {
	var candidates []string
	for _, tool := range locatorTools {
		path, err := s.engine.LookPath(tool)
		if err != nil {
			continue
		}
		candidates = append(candidates, filepath.Dir(filepath.Dir(path)))
	}
	return candidates
}

// queryStrategy asks the locator tool for its installation prefix.
type queryStrategy struct {
	engine *Engine
}

func (s *queryStrategy) Name() string { return "query-tool" }

func (s *queryStrategy) Candidates(ctx context.Context) []string {
	var candidates []string
	for _, tool := range locatorTools {
		if _, err := s.engine.LookPath(tool); err != nil {
			continue
		}
		runCtx, cancel := context.WithTimeout(ctx, s.engine.Timeout)
		out, err := s.engine.Run(runCtx, tool, "-query", "QT_INSTALL_PREFIX")
		cancel()
		if err != nil || out == "" {
			continue
		}
		candidates = append(candidates, out)
	}
	return candidates
}

// envStrategy checks well-known environment variables in a fixed order.
type envStrategy struct {
	engine *Engine
}

func (s *envStrategy) Name() string { return "environment" }

func (s *envStrategy) Candidates(context.Context) []string {
	var candidates []string
	for _, name := range envVarNames {
		if value := s.engine.Getenv(name); value != "" {
			candidates = append(candidates, value)
		}
	}
	return candidates
}

// wellKnownStrategy enumerates the installer's default locations, newest
// release first.
type wellKnownStrategy struct {
	engine *Engine
}

func (s *wellKnownStrategy) Name() string { return "well-known-paths" }

func (s *wellKnownStrategy) Candidates(context.Context) []string {
	return s.engine.Profile.WellKnownRoots(s.engine.Home)
}

// searchStrategy is the last resort: run the platform's file-find facility
// over a few broad roots looking for the core library artifact, then strip
// the lib/include segment off the first hits.
type searchStrategy struct {
	engine *Engine
}

func (s *searchStrategy) Name() string { return "filesystem-search" }

func (s *searchStrategy) Candidates(ctx context.Context) []string {
	var candidates []string
	for _, root := range s.engine.Profile.SearchRoots {
		root = expandHome(root, s.engine.Home)
		runCtx, cancel := context.WithTimeout(ctx, s.engine.Timeout)
		out, err := s.searchRoot(runCtx, root)
		cancel()
		if err != nil || out == "" {
			continue
		}
		for _, hit := range strings.Split(out, "\n") {
			if derived := rootFromArtifact(strings.TrimSpace(hit)); derived != "" {
				candidates = append(candidates, derived)
			}
		}
	}
	return candidates
}

func (s *searchStrategy) searchRoot(ctx context.Context, root string) (string, error) {
	if s.engine.Profile.Kind == KindWindows {
		return s.engine.Run(ctx, "where", "/r", root, s.engine.Profile.CoreLibPattern)
	}
	return s.engine.Run(ctx, "find", root, "-maxdepth", "6",
		"-name", s.engine.Profile.CoreLibPattern, "-not", "-path", "*/.*")
}

// rootFromArtifact walks up from a found library or header entry to the
// directory above the lib/include segment.
func rootFromArtifact(path string) string {
	if path == "" {
		return ""
	}
	dir := filepath.Dir(path)
	for dir != filepath.Dir(dir) {
		base := filepath.Base(dir)
		if base == "lib" || base == "include" || base == "bin" {
			return filepath.Dir(dir)
		}
		dir = filepath.Dir(dir)
	}
	return ""
}
