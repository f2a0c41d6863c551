package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("computed layout") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("placed words") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("placed words") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("evaluation budget exhausted") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Laid out 12 words")

	out := buf.String()
	if !strings.Contains(out, "Laid out 12 words (") || !strings.Contains(out, "s)") {
		t.Errorf("progress output %q lacks message and elapsed time", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield the default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("attached logger not returned")
	}
}

func TestRootCommandAttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "whoami",
		Run: func(cmd *cobra.Command, _ []string) { got = loggerFromContext(cmd.Context()) },
	})

	root.SetArgs([]string{"whoami"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != c.Logger {
		t.Error("subcommand did not receive the CLI logger")
	}
}
