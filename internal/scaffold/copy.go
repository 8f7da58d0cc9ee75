package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions lists the file types placeholder substitution applies to.
// Anything else is copied byte-for-byte.
var textExtensions = map[string]bool{
	".cpp": true, ".h": true, ".hpp": true, ".cc": true,
	".html": true, ".css": true, ".js": true, ".jsx": true,
	".ts": true, ".tsx": true, ".vue": true, ".svelte": true,
	".json": true, ".md": true, ".txt": true, ".yaml": true, ".yml": true,
	".cmake": true, ".qrc": true, ".ui": true, ".sh": true, ".bat": true,
	".gitignore": true, ".env": true,
}

func isTextFile(name string) bool {
	if name == "CMakeLists.txt" {
		return true
	}
	return textExtensions[strings.ToLower(filepath.Ext(name))]
}

// CopyTree copies the template tree rooted at srcRoot inside fsys into
// dst, applying placeholder substitution to both file contents (for text
// files) and path segments, so a template path like src/main.{{scriptExt}}
// lands under its final name.
func CopyTree(fsys fs.FS, srcRoot, dst string, subs map[string]string) error {
	return fs.WalkDir(fsys, srcRoot, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(entry, srcRoot)
		rel = strings.TrimPrefix(rel, "/")
		target := filepath.Join(dst, filepath.FromSlash(Substitute(rel, subs)))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", entry, err)
		}
		if isTextFile(filepath.Base(target)) {
			data = []byte(Substitute(string(data), subs))
		}

		mode := os.FileMode(0o644)
		if strings.HasSuffix(target, ".sh") {
			mode = 0o755
		}
		if err := os.WriteFile(target, data, mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	})
}
