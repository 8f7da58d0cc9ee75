package qt

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Result reports what a validation pass found under a candidate root. It
// is produced fresh per call and never mutated afterwards.
type Result struct {
	Valid     bool
	Markers   []string
	Libraries []string
	Headers   []string
}

// Validator decides whether a directory is a plausible Qt installation
// root. It only reads the filesystem; unreadable entries count as absent.
type Validator struct {
	profile Profile
	log     *zap.Logger
}

// NewValidator creates a validator for the given platform profile. Pass
// nil to disable the diagnostic trail.
func NewValidator(profile Profile, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{profile: profile, log: logger}
}

// markerDirs are the structural subdirectories every supported Qt layout
// places directly under the installation root.
var markerDirs = []string{"lib", "include", "bin"}

// Validate checks whether path looks like a Qt installation root. A root
// is valid when at least one structural marker directory exists and either
// a compiled-library artifact or a header tree is present. A partial
// installation (headers without libraries, or the reverse) is accepted.
func (v *Validator) Validate(path string) Result {
	res := Result{}

	if path == "" {
		return res
	}
	if _, err := os.Stat(path); err != nil {
		v.log.Debug("candidate does not exist", zap.String("path", path))
		return res
	}

	for _, marker := range markerDirs {
		if isDir(filepath.Join(path, marker)) {
			res.Markers = append(res.Markers, marker)
		}
	}
	if len(res.Markers) == 0 {
		v.log.Debug("no marker directories", zap.String("path", path))
		return res
	}

	res.Libraries = v.findLibraries(path)
	res.Headers = v.findHeaders(path)

	res.Valid = len(res.Libraries) > 0 || len(res.Headers) > 0
	v.log.Debug("validated candidate",
		zap.String("path", path),
		zap.Bool("valid", res.Valid),
		zap.Strings("markers", res.Markers),
		zap.Strings("libraries", res.Libraries),
		zap.Strings("headers", res.Headers))
	return res
}

func (v *Validator) findLibraries(root string) []string {
	var found []string
	for _, rel := range v.profile.LibraryPaths {
		if exists(filepath.Join(root, rel)) {
			found = append(found, rel)
		}
	}
	if len(found) > 0 {
		return found
	}

	// Packaging channels disagree on the exact artifact name (online
	// installer, homebrew, distro packages), so fall back to scanning the
	// lib directory for anything that looks like the core library.
	entries, err := os.ReadDir(filepath.Join(root, "lib"))
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		name := entry.Name()
		switch v.profile.Kind {
		case KindDarwin:
			if strings.Contains(name, "QtCore") &&
				(strings.HasSuffix(name, ".framework") ||
					strings.HasSuffix(name, ".dylib") ||
					strings.HasSuffix(name, ".a")) {
				found = append(found, filepath.Join("lib", name))
			}
		default:
			if strings.Contains(name, "Qt6Core") &&
				(strings.Contains(name, ".so") ||
					strings.HasSuffix(name, ".a") ||
					strings.HasSuffix(name, ".dll") ||
					strings.HasSuffix(name, ".lib")) {
				found = append(found, filepath.Join("lib", name))
			}
		}
	}
	return found
}

func (v *Validator) findHeaders(root string) []string {
	var found []string
	for _, rel := range v.profile.HeaderPaths {
		if exists(filepath.Join(root, rel)) {
			found = append(found, rel)
		}
	}
	if len(found) > 0 || v.profile.Kind != KindDarwin {
		return found
	}

	// macOS last resort: any entry under include/ carrying the Qt module
	// prefix. Deliberately permissive; a coincidentally named directory
	// would pass, matching the behavior users already rely on.
	entries, err := os.ReadDir(filepath.Join(root, "include"))
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "Qt") {
			found = append(found, filepath.Join("include", entry.Name()))
		}
	}
	return found
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
