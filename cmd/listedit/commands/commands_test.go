package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/listedit"
	"github.com/iw2rmb/listedit/internal/config"
	"github.com/iw2rmb/listedit/widget"
)

func TestInitLoggingLevelFromEnv(t *testing.T) {
	cases := []struct {
		name    string
		env     string
		debugOn bool
		infoOn  bool
		warnOn  bool
		errorOn bool
	}{
		{name: "debug", env: "debug", debugOn: true, infoOn: true, warnOn: true, errorOn: true},
		{name: "warn", env: "warn", debugOn: false, infoOn: false, warnOn: true, errorOn: true},
		{name: "error", env: "ERROR", debugOn: false, infoOn: false, warnOn: false, errorOn: true},
		{name: "default", env: "", debugOn: false, infoOn: true, warnOn: true, errorOn: true},
	}

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(logLevelEnv, tc.env)
			initLogging(io.Discard)
			h := slog.Default().Handler()
			ctx := context.Background()
			if got := h.Enabled(ctx, slog.LevelDebug); got != tc.debugOn {
				t.Fatalf("debug enabled=%v want %v", got, tc.debugOn)
			}
			if got := h.Enabled(ctx, slog.LevelInfo); got != tc.infoOn {
				t.Fatalf("info enabled=%v want %v", got, tc.infoOn)
			}
			if got := h.Enabled(ctx, slog.LevelWarn); got != tc.warnOn {
				t.Fatalf("warn enabled=%v want %v", got, tc.warnOn)
			}
			if got := h.Enabled(ctx, slog.LevelError); got != tc.errorOn {
				t.Fatalf("error enabled=%v want %v", got, tc.errorOn)
			}
		})
	}
}

func TestMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := missingFiles(dir, []string{"a.png", "gone.gif"})
	if want := []string{"gone.gif"}; !slices.Equal(got, want) {
		t.Fatalf("missing: got %v, want %v", got, want)
	}
}

func TestRotationLogger_WarnsAboutMissing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rotationLogger(logger, t.TempDir())(widget.ChangeEvent{Version: 3, Values: []string{"gone.gif"}})

	out := buf.String()
	if !strings.Contains(out, "rotation updated") || !strings.Contains(out, "missing uploads") {
		t.Fatalf("log output:\n%s", out)
	}
}

func TestApplyKeys_OverridesBindings(t *testing.T) {
	km := widget.DefaultKeyMap()
	applyKeys(&km, map[string][]string{
		"add":     {"ctrl+n", "f2"},
		"unknown": {"x"},
		"undo":    nil,
	})
	if got, want := km.Add.Keys(), []string{"ctrl+n", "f2"}; !slices.Equal(got, want) {
		t.Fatalf("add keys: got %v, want %v", got, want)
	}
	if got := km.Add.Help(); got.Key != "ctrl+n" || got.Desc != "add" {
		t.Fatalf("add help: got %+v", got)
	}
	if got, want := km.Undo.Keys(), []string{"ctrl+z"}; !slices.Equal(got, want) {
		t.Fatalf("undo keys: got %v, want %v", got, want)
	}
}

func TestNewList_UsesInitialOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Initial = []string{"a.png", "b.gif"}
	l := newList(cfg)
	if got, want := l.Values(), []string{"a.png", "b.gif"}; !slices.Equal(got, want) {
		t.Fatalf("values: got %v, want %v", got, want)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), listedit.VersionTag(); got != want {
		t.Fatalf("version: got %q, want %q", got, want)
	}
}

func TestApp_QuitAndHelp(t *testing.T) {
	keys := widget.DefaultKeyMap()
	a := newApp(widget.New(widget.Config{KeyMap: keys}), keys)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 200, Height: 12})
	if !strings.Contains(m.View(), "quit") {
		t.Fatalf("help line missing quit binding:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c must return tea.Quit")
	}
}
