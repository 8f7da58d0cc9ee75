// Package scaffold materializes a new project directory from the embedded
// templates, substituting {{key}} placeholders and writing the generated
// manifest, build helpers, discovery record, and docs.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/qtweb-tools/qtweb/internal/qt"
)

//go:embed templates
var templatesFS embed.FS

// Frontend framework and language choices. Closed sets; the prompt layer
// and the --framework/--language flags only ever produce these values.
const (
	FrameworkReact   = "react"
	FrameworkVue     = "vue"
	FrameworkSvelte  = "svelte"
	FrameworkVanilla = "vanilla"

	LanguageTypeScript = "typescript"
	LanguageJavaScript = "javascript"
)

// Frameworks lists the supported frontend frameworks in prompt order.
var Frameworks = []string{FrameworkReact, FrameworkVue, FrameworkSvelte, FrameworkVanilla}

// Languages lists the supported frontend languages in prompt order.
var Languages = []string{LanguageTypeScript, LanguageJavaScript}

// Features are the optional backend capabilities exposed to the web side.
type Features struct {
	Filesystem bool
	Dialogs    bool
}

// Options carries everything a scaffold run needs. QtPath is the
// discovered-or-resolved installation root, empty when discovery failed;
// scaffolding proceeds either way.
type Options struct {
	Name      string
	Dir       string
	Frontend  bool
	Framework string
	Language  string
	Backend   bool
	Features  Features
	QtPath    string
	Profile   qt.Profile
	Log       *zap.Logger
}

func (o *Options) defaults() {
	if o.Dir == "" {
		o.Dir = filepath.Join(".", o.Name)
	}
	if o.Framework == "" {
		o.Framework = FrameworkVanilla
	}
	if o.Language == "" {
		o.Language = LanguageTypeScript
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
}

func (o *Options) scriptExt() string {
	if o.Language == LanguageTypeScript {
		return "ts"
	}
	return "js"
}

// Run creates the project directory tree. The destination must not exist
// yet; everything past that point is written from the embedded templates
// and the generated artifacts.
func Run(opts Options) error {
	opts.defaults()

	if _, err := os.Stat(opts.Dir); err == nil {
		return fmt.Errorf("directory %s already exists", opts.Dir)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	subs := substitutions(opts)

	if err := CopyTree(templatesFS, "templates/app", opts.Dir, subs); err != nil {
		return fmt.Errorf("failed to copy application templates: %w", err)
	}
	if opts.Backend {
		if err := CopyTree(templatesFS, "templates/backend", opts.Dir, subs); err != nil {
			return fmt.Errorf("failed to copy backend templates: %w", err)
		}
	}
	if opts.Frontend {
		src := "templates/frontend/" + opts.Framework
		if err := CopyTree(templatesFS, src, opts.Dir, subs); err != nil {
			return fmt.Errorf("failed to copy %s frontend templates: %w", opts.Framework, err)
		}
		if opts.Language == LanguageTypeScript {
			if err := writeTSConfig(opts.Dir); err != nil {
				return err
			}
		}
	}

	if err := WriteManifest(opts.Dir, BuildManifest(opts)); err != nil {
		return err
	}
	if err := WriteBuildScripts(opts.Dir, opts.QtPath); err != nil {
		return err
	}
	if err := WriteRecord(opts.Dir, NewRecord(opts.QtPath)); err != nil {
		return err
	}
	if err := writeReadme(opts.Dir, opts); err != nil {
		return err
	}
	if err := writeGitignore(opts.Dir); err != nil {
		return err
	}

	opts.Log.Debug("scaffold complete",
		zap.String("dir", opts.Dir),
		zap.String("qtPath", opts.QtPath))
	return nil
}

// substitutions builds the placeholder map shared by every copied file.
func substitutions(opts Options) map[string]string {
	backendSources := ""
	backendInclude := ""
	if opts.Backend {
		backendSources = "\n    backend/backendobject.cpp"
		backendInclude = "#include \"../backend/backendobject.h\"\n#include <QWebChannel>\n"
	}
	return map[string]string{
		"projectName":    opts.Name,
		"scriptExt":      opts.scriptExt(),
		"qtPath":         opts.QtPath,
		"backendSources": backendSources,
		"backendInclude": backendInclude,
		"backendSetup":   backendSetupSnippet(opts),
		"featureSlots":   featureSlotsSnippet(opts.Features),
		"featureImpl":    featureImplSnippet(opts.Features),
	}
}

// backendSetupSnippet is spliced into main.cpp when the backend bridge is
// enabled.
func backendSetupSnippet(opts Options) string {
	if !opts.Backend {
		return ""
	}
	return `
    auto *channel = new QWebChannel(&window);
    auto *backend = new BackendObject(&window);
    channel->registerObject(QStringLiteral("backend"), backend);
    window.page()->setWebChannel(channel);`
}

func featureSlotsSnippet(f Features) string {
	s := ""
	if f.Filesystem {
		s += "\n    QString readTextFile(const QString &path);\n    bool writeTextFile(const QString &path, const QString &contents);"
	}
	if f.Dialogs {
		s += "\n    QString openFileDialog(const QString &caption);\n    void showMessage(const QString &title, const QString &text);"
	}
	return s
}

func featureImplSnippet(f Features) string {
	s := ""
	if f.Filesystem {
		s += `
QString BackendObject::readTextFile(const QString &path) {
    QFile file(path);
    if (!file.open(QIODevice::ReadOnly | QIODevice::Text))
        return QString();
    return QString::fromUtf8(file.readAll());
}

bool BackendObject::writeTextFile(const QString &path, const QString &contents) {
    QFile file(path);
    if (!file.open(QIODevice::WriteOnly | QIODevice::Text))
        return false;
    file.write(contents.toUtf8());
    return true;
}
`
	}
	if f.Dialogs {
		s += `
QString BackendObject::openFileDialog(const QString &caption) {
    return QFileDialog::getOpenFileName(nullptr, caption);
}

void BackendObject::showMessage(const QString &title, const QString &text) {
    QMessageBox::information(nullptr, title, text);
}
`
	}
	return s
}

func writeTSConfig(dir string) error {
	const tsconfig = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "strict": true,
    "jsx": "preserve",
    "skipLibCheck": true
  },
  "include": ["web/src"]
}
`
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(tsconfig), 0o644); err != nil {
		return fmt.Errorf("failed to write tsconfig.json: %w", err)
	}
	return nil
}

func writeGitignore(dir string) error {
	const ignore = `node_modules/
dist/
build/
*.user
.DS_Store
`
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(ignore), 0o644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}
