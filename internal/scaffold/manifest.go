package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qtweb-tools/qtweb/internal/qt"
)

// Manifest is the generated package.json for the project's web side.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// BuildManifest assembles the manifest for the chosen framework and
// language. The qt:build script reflects the discovery outcome only
// through the generated helper it invokes; the helper itself prompts when
// no root was found.
func BuildManifest(opts Options) Manifest {
	m := Manifest{
		Name:    opts.Name,
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{},
	}

	if opts.Profile.Kind == qt.KindWindows {
		m.Scripts["qt:build"] = "build.bat"
		m.Scripts["qt:clean"] = "rmdir /s /q build\\native"
	} else {
		m.Scripts["qt:build"] = "./build.sh"
		m.Scripts["qt:clean"] = "rm -rf build/native"
	}

	if !opts.Frontend {
		return m
	}

	m.Type = "module"
	m.Scripts["dev"] = "vite"
	m.Scripts["build"] = "vite build"
	m.Scripts["preview"] = "vite preview"

	m.DevDependencies = map[string]string{"vite": "^5.4.0"}
	if opts.Language == LanguageTypeScript {
		m.DevDependencies["typescript"] = "^5.5.0"
	}

	switch opts.Framework {
	case FrameworkReact:
		m.Dependencies = map[string]string{
			"react":     "^18.3.0",
			"react-dom": "^18.3.0",
		}
		m.DevDependencies["@vitejs/plugin-react"] = "^4.3.0"
		if opts.Language == LanguageTypeScript {
			m.DevDependencies["@types/react"] = "^18.3.0"
			m.DevDependencies["@types/react-dom"] = "^18.3.0"
		}
	case FrameworkVue:
		m.Dependencies = map[string]string{"vue": "^3.4.0"}
		m.DevDependencies["@vitejs/plugin-vue"] = "^5.1.0"
	case FrameworkSvelte:
		m.DevDependencies["svelte"] = "^4.2.0"
		m.DevDependencies["@sveltejs/vite-plugin-svelte"] = "^3.1.0"
	case FrameworkVanilla:
		// vite alone is enough
	}

	return m
}

// WriteManifest renders the manifest into dir as package.json.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode package.json: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, "package.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write package.json: %w", err)
	}
	return nil
}
