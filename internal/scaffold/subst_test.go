package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	subs := map[string]string{"projectName": "demo", "scriptExt": "ts"}

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "hello {{projectName}}", "hello demo"},
		{"multiple", "{{projectName}}-{{projectName}}", "demo-demo"},
		{"in path", "src/main.{{scriptExt}}x", "src/main.tsx"},
		{"unknown key left verbatim", "{{nope}} {{projectName}}", "{{nope}} demo"},
		{"spaced braces untouched", "<p>{{ status }}</p>", "<p>{{ status }}</p>"},
		{"cpp brace init untouched", `parser.addOption({{"d", "dev"}, "x"});`, `parser.addOption({{"d", "dev"}, "x"});`},
		{"no placeholders", "plain text", "plain text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Substitute(tc.in, subs))
		})
	}
}
