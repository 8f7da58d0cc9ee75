package qt

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Resolver validates a user-supplied installation path, trying the known
// installer subdirectory layouts when the path itself is not a root.
type Resolver struct {
	profile   Profile
	validator *Validator
	log       *zap.Logger
}

// NewResolver creates a resolver sharing the engine's profile and
// validator conventions.
func NewResolver(profile Profile, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		profile:   profile,
		validator: NewValidator(profile, logger),
		log:       logger,
	}
}

// Resolve returns the validated root under a user-supplied path, or ""
// when neither the path nor any known installer subdirectory beneath it
// validates. A blank input means the user declined to provide a path and
// resolves to "" without touching the filesystem.
func (r *Resolver) Resolve(userPath string) string {
	userPath = strings.TrimSpace(userPath)
	if userPath == "" {
		return ""
	}

	userPath = filepath.Clean(userPath)
	if r.validator.Validate(userPath).Valid {
		return userPath
	}

	// Users often point at ~/Qt/6.8.0 when the root is one level down at
	// ~/Qt/6.8.0/gcc_64.
	for _, subdir := range r.profile.InstallSubdirs {
		candidate := filepath.Join(userPath, subdir)
		if r.validator.Validate(candidate).Valid {
			r.log.Debug("resolved user path via install subdirectory",
				zap.String("input", userPath),
				zap.String("root", candidate))
			return candidate
		}
	}

	r.log.Debug("user path did not validate", zap.String("input", userPath))
	return ""
}
