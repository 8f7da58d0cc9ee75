package qt

import (
	"fmt"
	"path/filepath"
)

// Kind identifies the host platform family. The set is closed: every
// supported layout convention belongs to exactly one of these three.
type Kind string

const (
	KindWindows Kind = "windows"
	KindDarwin  Kind = "darwin"
	KindLinux   Kind = "linux"
)

// KnownVersions lists Qt releases used to expand well-known install
// locations, newest first.
var KnownVersions = []string{
	"6.8.1",
	"6.8.0",
	"6.7.3",
	"6.7.2",
	"6.7.1",
	"6.7.0",
	"6.6.3",
	"6.6.2",
	"6.6.1",
	"6.6.0",
	"6.5.3",
	"6.5.2",
	"6.5.1",
	"6.5.0",
	"6.4.3",
	"6.4.2",
	"6.3.2",
	"6.2.4",
}

// Profile holds the platform-specific conventions used by validation and
// discovery. It is constructed once per run and threaded through as
// configuration.
type Profile struct {
	Kind Kind

	// LibraryPaths are candidate compiled-library artifacts, relative to an
	// installation root, checked in order.
	LibraryPaths []string

	// HeaderPaths are candidate header-tree entries, relative to an
	// installation root, checked in order.
	HeaderPaths []string

	// RootTemplates are well-known install locations containing a %s for
	// the release version. Entries starting with "~" are expanded against
	// the user's home directory.
	RootTemplates []string

	// ExtraRoots are version-independent well-known install locations.
	ExtraRoots []string

	// InstallSubdirs are the per-toolchain subdirectory names the official
	// installer places under a versioned directory, tried in order when a
	// user-supplied path points at the directory above the actual root.
	InstallSubdirs []string

	// CoreLibPattern is the filename pattern for the core compiled library,
	// used by the last-resort filesystem search.
	CoreLibPattern string

	// SearchRoots are the broad locations the last-resort search walks.
	SearchRoots []string
}

// DetectProfile builds the Profile for the given GOOS value. Unknown
// platforms get the Linux conventions; discovery degrades to a best-effort
// search rather than refusing to run.
func DetectProfile(goos string) Profile {
	switch goos {
	case "windows":
		return Profile{
			Kind: KindWindows,
			LibraryPaths: []string{
				filepath.Join("bin", "Qt6Core.dll"),
				filepath.Join("lib", "Qt6Core.lib"),
			},
			HeaderPaths: []string{
				filepath.Join("include", "QtCore"),
			},
			RootTemplates: []string{
				`C:\Qt\%s\msvc2022_64`,
				`C:\Qt\%s\msvc2019_64`,
				`C:\Qt\%s\mingw_64`,
			},
			ExtraRoots: []string{
				`C:\Qt\6`,
			},
			InstallSubdirs: []string{
				"msvc2022_64", "msvc2019_64", "mingw_64", "msvc2017_64",
			},
			CoreLibPattern: "Qt6Core.dll",
			SearchRoots: []string{
				`C:\Qt`,
				`C:\`,
			},
		}
	case "darwin":
		return Profile{
			Kind: KindDarwin,
			LibraryPaths: []string{
				filepath.Join("lib", "QtCore.framework"),
				filepath.Join("lib", "libQt6Core.dylib"),
				filepath.Join("lib", "libQt6Core.a"),
			},
			HeaderPaths: []string{
				filepath.Join("include", "QtCore"),
				filepath.Join("lib", "QtCore.framework", "Headers"),
			},
			RootTemplates: []string{
				"~/Qt/%s/macos",
				"~/Qt/%s/clang_64",
				"/opt/Qt/%s/macos",
			},
			ExtraRoots: []string{
				"/opt/homebrew/opt/qt",
				"/opt/homebrew/opt/qt6",
				"/usr/local/opt/qt",
				"/usr/local/opt/qt6",
			},
			InstallSubdirs: []string{
				"macos", "clang_64",
			},
			CoreLibPattern: "QtCore.framework",
			SearchRoots: []string{
				"~", "/usr/local", "/opt",
			},
		}
	default:
		return Profile{
			Kind: KindLinux,
			LibraryPaths: []string{
				filepath.Join("lib", "libQt6Core.so"),
				filepath.Join("lib", "libQt6Core.so.6"),
				filepath.Join("lib", "libQt6Core.a"),
				filepath.Join("lib", "x86_64-linux-gnu", "libQt6Core.so"),
			},
			HeaderPaths: []string{
				filepath.Join("include", "QtCore"),
				filepath.Join("include", "qt6", "QtCore"),
				filepath.Join("include", "x86_64-linux-gnu", "qt6", "QtCore"),
			},
			RootTemplates: []string{
				"~/Qt/%s/gcc_64",
				"/opt/Qt/%s/gcc_64",
				"/usr/local/Qt-%s",
			},
			ExtraRoots: []string{
				"/usr/lib/qt6",
				"/usr/lib64/qt6",
				"/usr/lib/x86_64-linux-gnu/qt6",
				"/usr",
			},
			InstallSubdirs: []string{
				"gcc_64", "gcc_arm64",
			},
			CoreLibPattern: "libQt6Core.so*",
			SearchRoots: []string{
				"~", "/usr", "/usr/local", "/opt",
			},
		}
	}
}

// WellKnownRoots expands the profile's root templates against the known
// version list (newest first) followed by the version-independent
// locations. home replaces a leading "~" in templates.
func (p Profile) WellKnownRoots(home string) []string {
	roots := make([]string, 0, len(p.RootTemplates)*len(KnownVersions)+len(p.ExtraRoots))
	for _, tmpl := range p.RootTemplates {
		for _, version := range KnownVersions {
			roots = append(roots, expandHome(fmt.Sprintf(tmpl, version), home))
		}
	}
	for _, root := range p.ExtraRoots {
		roots = append(roots, expandHome(root, home))
	}
	return roots
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		return filepath.Join(home, path[2:])
	}
	return path
}
