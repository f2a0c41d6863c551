package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/wordcast/pkg/cloud"
)

func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			if out := runRoot(t, "completion", shell); !strings.Contains(out, appName) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}
}

func TestFlagCompletions(t *testing.T) {
	tests := []struct {
		flag string
		want []string
	}{
		{"--format", []string{"svg", "png", "pdf", "json"}},
		{"--measurer", []string{"font", "estimate"}},
		{"--color-mode", []string{"round-robin", "random"}},
		{"--font", []string{cloud.DefaultFontFamily}},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			out := runRoot(t, "__complete", "render", tt.flag, "")
			for _, w := range tt.want {
				if !strings.Contains(out, w+"\n") {
					t.Errorf("completions for %s = %q, missing %q", tt.flag, out, w)
				}
			}
		})
	}
}
