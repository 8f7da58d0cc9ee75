package qt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBlankInput(t *testing.T) {
	r := NewResolver(DetectProfile("linux"), nil)

	assert.Equal(t, "", r.Resolve(""))
	assert.Equal(t, "", r.Resolve("   "))
}

func TestResolveDirectRoot(t *testing.T) {
	r := NewResolver(DetectProfile("linux"), nil)
	root := makeQtRoot(t, t.TempDir())

	assert.Equal(t, root, r.Resolve(root))
}

func TestResolveInstallSubdirFallback(t *testing.T) {
	r := NewResolver(DetectProfile("linux"), nil)

	// The user points at the versioned directory; the actual root is the
	// toolchain subdirectory beneath it.
	parent := t.TempDir()
	root := makeQtRoot(t, filepath.Join(parent, "gcc_64"))

	assert.Equal(t, root, r.Resolve(parent))
}

func TestResolveInvalidPath(t *testing.T) {
	r := NewResolver(DetectProfile("linux"), nil)

	assert.Equal(t, "", r.Resolve(filepath.Join(t.TempDir(), "nope")))
}

func TestResolveWindowsSubdirs(t *testing.T) {
	r := NewResolver(DetectProfile("windows"), nil)

	parent := t.TempDir()
	root := filepath.Join(parent, "msvc2022_64")
	makeTree(t, root, []string{"bin", "lib", "include/QtCore"}, nil)

	assert.Equal(t, root, r.Resolve(parent))
}
