// Package ui formats user-facing messages for the qtweb CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a formatted message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Options configures a formatted message.
type Options struct {
	Level       Level
	Context     string
	Problem     string
	Suggestions []string
	NoColor     bool
}

// Format renders a message with an upper-cased context header and arrowed
// suggestion lines.
//
// Example output:
//
//	⚠️ QT NOT FOUND: no Qt 6 installation was detected
//
//	   → Install Qt 6: https://www.qt.io/download-qt-installer
//	   → Set the path in qtweb.json after scaffolding
func Format(opts Options) string {
	var b strings.Builder

	var headerColor, bodyColor *color.Color
	var symbol string
	switch opts.Level {
	case LevelError:
		headerColor = color.New(color.FgRed, color.Bold)
		bodyColor = color.New(color.FgRed)
		symbol = "❌"
	case LevelWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		bodyColor = color.New(color.FgYellow)
		symbol = "⚠️"
	case LevelInfo:
		headerColor = color.New(color.FgCyan, color.Bold)
		bodyColor = color.New(color.FgCyan)
		symbol = "ℹ️"
	}

	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		for _, s := range opts.Suggestions {
			bodyColor.Fprintf(&b, "   → %s\n", s)
		}
	}

	return b.String()
}

// QtNotFound is the standard remediation message emitted when discovery
// and the manual fallback both came up empty.
func QtNotFound(recordFile string) string {
	return Format(Options{
		Level:   LevelWarning,
		Context: "qt not found",
		Problem: "no Qt 6 installation was detected on this machine",
		Suggestions: []string{
			"Install Qt 6: https://www.qt.io/download-qt-installer",
			fmt.Sprintf("Set the installation path in %s inside your project", recordFile),
			"Or enter the path when the generated build script asks for it",
		},
	})
}
