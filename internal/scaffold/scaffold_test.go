package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qtweb-tools/qtweb/internal/qt"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		Name:      "demo",
		Dir:       filepath.Join(t.TempDir(), "demo"),
		Frontend:  true,
		Framework: FrameworkReact,
		Language:  LanguageTypeScript,
		Backend:   true,
		QtPath:    "/opt/Qt/6.8.0/gcc_64",
		Profile:   qt.DetectProfile("linux"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRunCreatesProject(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, Run(opts))

	for _, rel := range []string{
		"src/CMakeLists.txt",
		"src/app/main.cpp",
		"src/app/mainwindow.cpp",
		"src/backend/backendobject.cpp",
		"index.html",
		"web/src/main.tsx",
		"web/src/App.tsx",
		"web/src/bridge.ts",
		"vite.config.ts",
		"tsconfig.json",
		"package.json",
		"build.sh",
		"build.bat",
		"README.md",
		".gitignore",
		RecordFileName,
	} {
		_, err := os.Stat(filepath.Join(opts.Dir, rel))
		assert.NoError(t, err, "missing %s", rel)
	}
}

func TestRunRefusesExistingDirectory(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(opts.Dir, 0o755))

	err := Run(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunSubstitutesPlaceholders(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, Run(opts))

	cmake := readFile(t, filepath.Join(opts.Dir, "src", "CMakeLists.txt"))
	assert.Contains(t, cmake, "project(demo LANGUAGES CXX)")
	assert.Contains(t, cmake, "backend/backendobject.cpp")
	assert.NotContains(t, cmake, "{{projectName}}")

	mainCpp := readFile(t, filepath.Join(opts.Dir, "src", "app", "main.cpp"))
	assert.Contains(t, mainCpp, `backendobject.h`)
	assert.Contains(t, mainCpp, "registerObject")
	// C++ brace initialization is not placeholder syntax and survives.
	assert.Contains(t, mainCpp, `{{"d", "dev-server"}`)
}

func TestRunWithoutBackendOmitsBridge(t *testing.T) {
	opts := testOptions(t)
	opts.Backend = false
	require.NoError(t, Run(opts))

	_, err := os.Stat(filepath.Join(opts.Dir, "src", "backend"))
	assert.True(t, os.IsNotExist(err))

	mainCpp := readFile(t, filepath.Join(opts.Dir, "src", "app", "main.cpp"))
	assert.NotContains(t, mainCpp, "backendobject.h")
	assert.NotContains(t, mainCpp, "QWebChannel")
}

func TestRunWithoutFrontendOmitsWeb(t *testing.T) {
	opts := testOptions(t)
	opts.Frontend = false
	require.NoError(t, Run(opts))

	_, err := os.Stat(filepath.Join(opts.Dir, "web"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(opts.Dir, "package.json"))
	assert.NoError(t, err)
}

func TestRunJavaScriptNaming(t *testing.T) {
	opts := testOptions(t)
	opts.Language = LanguageJavaScript
	require.NoError(t, Run(opts))

	_, err := os.Stat(filepath.Join(opts.Dir, "web", "src", "main.jsx"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(opts.Dir, "tsconfig.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunBackendFeatures(t *testing.T) {
	opts := testOptions(t)
	opts.Features = Features{Filesystem: true, Dialogs: true}
	require.NoError(t, Run(opts))

	header := readFile(t, filepath.Join(opts.Dir, "src", "backend", "backendobject.h"))
	assert.Contains(t, header, "readTextFile")
	assert.Contains(t, header, "openFileDialog")

	impl := readFile(t, filepath.Join(opts.Dir, "src", "backend", "backendobject.cpp"))
	assert.Contains(t, impl, "QFileDialog::getOpenFileName")
}

func TestRecordExplicitNull(t *testing.T) {
	opts := testOptions(t)
	opts.QtPath = ""
	require.NoError(t, Run(opts))

	raw := readFile(t, filepath.Join(opts.Dir, RecordFileName))
	assert.Contains(t, raw, `"qtPath": null`)

	rec, err := LoadRecord(opts.Dir)
	require.NoError(t, err)
	assert.Nil(t, rec.QtPath)
	assert.NotEmpty(t, rec.RunID)
}

func TestRecordRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteRecord(dir, NewRecord("/opt/qt")))

	rec, err := LoadRecord(dir)
	require.NoError(t, err)
	require.NotNil(t, rec.QtPath)
	assert.Equal(t, "/opt/qt", *rec.QtPath)
}

func TestBuildScriptsReflectDiscovery(t *testing.T) {
	withQt := buildScriptUnix("/opt/Qt/6.8.0/gcc_64")
	assert.Contains(t, withQt, `QT_PATH="${QT_PATH:-/opt/Qt/6.8.0/gcc_64}"`)
	assert.NotContains(t, withQt, "read -r")

	withoutQt := buildScriptUnix("")
	assert.Contains(t, withoutQt, "read -r QT_PATH")

	batWithout := buildScriptWindows("")
	assert.Contains(t, batWithout, "set /p QT_PATH")
}

func TestManifestScripts(t *testing.T) {
	opts := testOptions(t)
	m := BuildManifest(opts)

	assert.Equal(t, "./build.sh", m.Scripts["qt:build"])
	assert.Equal(t, "vite", m.Scripts["dev"])
	assert.Contains(t, m.Dependencies, "react")
	assert.Contains(t, m.DevDependencies, "typescript")

	opts.Profile = qt.DetectProfile("windows")
	assert.Equal(t, "build.bat", BuildManifest(opts).Scripts["qt:build"])

	opts.Frontend = false
	m = BuildManifest(opts)
	assert.NotContains(t, m.Scripts, "dev")
}

func TestManifestIsValidJSON(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, Run(opts))

	var decoded map[string]any
	raw := readFile(t, filepath.Join(opts.Dir, "package.json"))
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "demo", decoded["name"])
}

func TestReadmeReflectsOutcome(t *testing.T) {
	opts := testOptions(t)

	found := BuildReadme(opts)
	assert.Contains(t, found, opts.QtPath)
	assert.NotContains(t, found, "No Qt 6 installation was detected")

	opts.QtPath = ""
	missing := BuildReadme(opts)
	assert.Contains(t, missing, "No Qt 6 installation was detected")
	assert.Contains(t, missing, RecordFileName)
}

func TestCopyTreeBinaryPassThrough(t *testing.T) {
	// Placeholder-looking bytes inside a non-text file are untouched.
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tpl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tpl", "logo.png"),
		[]byte("{{projectName}}"), 0o644))

	dst := filepath.Join(dir, "out")
	require.NoError(t, CopyTree(os.DirFS(dir), "tpl", dst, map[string]string{"projectName": "x"}))

	out := readFile(t, filepath.Join(dst, "logo.png"))
	assert.True(t, strings.Contains(out, "{{projectName}}"))
}
