package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/listedit/internal/config"
	"github.com/iw2rmb/listedit/listbox"
	"github.com/iw2rmb/listedit/uploads"
	"github.com/iw2rmb/listedit/widget"
)

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dir") {
		cfg.Uploads.Dir = uploadDir
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = watch
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid options: %v", errs)
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "listedit")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := initLogging(logOut)

	keys := widget.DefaultKeyMap()
	applyKeys(&keys, cfg.Keys)

	src := uploads.Dir{Path: cfg.Uploads.Dir, Patterns: cfg.Uploads.Patterns}
	editor := widget.New(widget.Config{
		Source:      src,
		List:        newList(cfg),
		Placeholder: "upload name",
		Suggest:     cfg.Suggest,
		KeyMap:      keys,
		Style:       widget.DefaultStyle(),
		OnChange:    rotationLogger(logger, cfg.Uploads.Dir),
		OnAlert: func(text string) {
			logger.Info("alert", "text", text)
		},
		Logger: logger,
	})

	p := tea.NewProgram(newApp(editor, keys), tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if cfg.Watch {
		go func() {
			err := uploads.Watch(ctx, cfg.Uploads.Dir, 0, func() {
				p.Send(widget.UploadsChangedMsg{})
			})
			if err != nil {
				logger.Warn("watch uploads", "dir", cfg.Uploads.Dir, "error", err)
			}
		}()
	}

	logger.Info("starting", "dir", cfg.Uploads.Dir, "options", len(cfg.Initial), "watch", cfg.Watch)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func newList(cfg config.File) *listbox.List {
	opts := make([]listbox.Option, 0, len(cfg.Initial))
	for _, v := range cfg.Initial {
		opts = append(opts, listbox.NewOption(v))
	}
	return listbox.New(listbox.Options{HistoryLimit: cfg.HistoryLimit}, opts...)
}

// rotationLogger logs every list change and warns about values that no
// longer exist in dir.
func rotationLogger(logger *slog.Logger, dir string) func(widget.ChangeEvent) {
	return func(ev widget.ChangeEvent) {
		logger.Info("rotation updated", "kind", ev.Change.Kind.String(), "version", ev.Version, "values", ev.Values)
		if missing := missingFiles(dir, ev.Values); len(missing) > 0 {
			logger.Warn("rotation references missing uploads", "missing", missing)
		}
	}
}

// missingFiles returns the values that do not name a file in dir.
func missingFiles(dir string, values []string) []string {
	var out []string
	for _, v := range values {
		if _, err := os.Stat(filepath.Join(dir, v)); err != nil {
			out = append(out, v)
		}
	}
	return out
}

func applyKeys(km *widget.KeyMap, keys map[string][]string) {
	for action, ks := range keys {
		if len(ks) == 0 {
			continue
		}
		b := bindingFor(km, action)
		if b == nil {
			continue
		}
		b.SetKeys(ks...)
		b.SetHelp(ks[0], b.Help().Desc)
	}
}

func bindingFor(km *widget.KeyMap, action string) *key.Binding {
	switch action {
	case "add":
		return &km.Add
	case "remove":
		return &km.Remove
	case "undo":
		return &km.Undo
	case "redo":
		return &km.Redo
	case "toggle":
		return &km.Toggle
	case "select_all":
		return &km.SelectAll
	case "delete":
		return &km.Delete
	case "dismiss":
		return &km.Dismiss
	default:
		return nil
	}
}
