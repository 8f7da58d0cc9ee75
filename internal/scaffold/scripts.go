package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// buildScriptUnix returns the shell build helper. When the Qt root is
// known the cmake invocation is fully parameterized; otherwise the script
// prompts its own user at build time and feeds the answer into the same
// invocation.
func buildScriptUnix(qtPath string) string {
	if qtPath != "" {
		return fmt.Sprintf(`#!/bin/sh
# Build the native shell. Generated by qtweb.
set -e

QT_PATH="${QT_PATH:-%s}"

cmake -S src -B build/native -DCMAKE_PREFIX_PATH="$QT_PATH"
cmake --build build/native --parallel
`, qtPath)
	}
	return `#!/bin/sh
# Build the native shell. Generated by qtweb.
# No Qt installation was found when this project was scaffolded, so the
# path is asked for here. Set QT_PATH or edit qtweb.json to skip the prompt.
set -e

if [ -z "$QT_PATH" ]; then
    printf 'Path to your Qt 6 installation (e.g. ~/Qt/6.8.0/gcc_64): '
    read -r QT_PATH
fi

cmake -S src -B build/native -DCMAKE_PREFIX_PATH="$QT_PATH"
cmake --build build/native --parallel
`
}

func buildScriptWindows(qtPath string) string {
	if qtPath != "" {
		return fmt.Sprintf(`@echo off
rem Build the native shell. Generated by qtweb.

if "%%QT_PATH%%"=="" set "QT_PATH=%s"

cmake -S src -B build\native -DCMAKE_PREFIX_PATH="%%QT_PATH%%"
if errorlevel 1 exit /b 1
cmake --build build\native --parallel
`, qtPath)
	}
	return `@echo off
rem Build the native shell. Generated by qtweb.
rem No Qt installation was found when this project was scaffolded.

if "%QT_PATH%"=="" set /p QT_PATH="Path to your Qt 6 installation (e.g. C:\Qt\6.8.0\msvc2022_64): "

cmake -S src -B build\native -DCMAKE_PREFIX_PATH="%QT_PATH%"
if errorlevel 1 exit /b 1
cmake --build build\native --parallel
`
}

// WriteBuildScripts writes the build helpers into dir. Both forms are
// written so a project scaffolded on one OS still builds on another; the
// manifest's qt:build script picks the one matching the host.
func WriteBuildScripts(dir, qtPath string) error {
	if err := os.WriteFile(filepath.Join(dir, "build.sh"), []byte(buildScriptUnix(qtPath)), 0o755); err != nil {
		return fmt.Errorf("failed to write build.sh: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "build.bat"), []byte(buildScriptWindows(qtPath)), 0o644); err != nil {
		return fmt.Errorf("failed to write build.bat: %w", err)
	}
	return nil
}
