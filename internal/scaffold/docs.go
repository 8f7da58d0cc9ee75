package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildReadme renders the project README. The Qt section changes with the
// discovery outcome: a found root is documented as-is, an absent one gets
// remediation steps instead of a silent gap.
func BuildReadme(opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opts.Name)
	b.WriteString("A hybrid desktop application: a Qt 6 native shell hosting a web frontend.\nGenerated by qtweb.\n\n")

	if opts.Frontend {
		b.WriteString("## Frontend\n\n")
		fmt.Fprintf(&b, "Framework: %s (%s)\n\n", opts.Framework, opts.Language)
		b.WriteString("```sh\nnpm install\nnpm run dev      # hot-reloading dev server\nnpm run build    # production bundle into dist/\n```\n\n")
	}

	b.WriteString("## Native shell\n\n")
	if opts.QtPath != "" {
		fmt.Fprintf(&b, "Qt 6 was detected at `%s` and is baked into the build helper.\n\n", opts.QtPath)
		b.WriteString("```sh\nnpm run qt:build\n```\n\n")
	} else {
		b.WriteString("**No Qt 6 installation was detected on this machine.** The project\nstill builds once Qt is available. Any of these works:\n\n")
		b.WriteString("- Install Qt 6 (https://www.qt.io/download-qt-installer) and re-run\n  `qtweb doctor` to confirm it is found.\n")
		fmt.Fprintf(&b, "- Put the installation root into `%s` (the `qtPath` key).\n", RecordFileName)
		b.WriteString("- Run the build helper and enter the path when asked, or set `QT_PATH`.\n\n")
	}

	if opts.Backend {
		b.WriteString("## Backend bridge\n\n")
		b.WriteString("`src/backend/backendobject.*` is exposed to the page through\nQWebChannel as `backend`. Extend it with your own slots and signals.\n\n")
	}

	return b.String()
}

func writeReadme(dir string, opts Options) error {
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(BuildReadme(opts)), 0o644); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}
	return nil
}
