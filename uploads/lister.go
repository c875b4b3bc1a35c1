package uploads

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultDir is the upload directory, relative to the working directory.
const DefaultDir = "static/uploads"

// DefaultPatterns are the file types accepted for display.
var DefaultPatterns = []string{"*.{png,jpg,jpeg,gif,mp4}"}

// Lister enumerates the entry names of an upload directory.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Dir lists regular files in Path whose names match one of Patterns.
//
// Matching is case-insensitive. An empty Patterns accepts every file.
type Dir struct {
	Path     string
	Patterns []string
}

// NewDir returns a Dir over p with DefaultPatterns. An empty p means
// DefaultDir.
func NewDir(p string) Dir {
	if strings.TrimSpace(p) == "" {
		p = DefaultDir
	}
	return Dir{Path: p, Patterns: slices.Clone(DefaultPatterns)}
}

func (d Dir) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(d.Patterns); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("read upload dir %q: %w", d.Path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !d.accepts(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

func (d Dir) accepts(name string) bool {
	if len(d.Patterns) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, p := range d.Patterns {
		if ok, _ := doublestar.Match(strings.ToLower(p), lower); ok {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return errors.New("empty upload pattern")
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid upload pattern %q", p)
		}
	}
	return nil
}

// Static is an in-memory Lister.
type Static struct {
	Names []string
	Err   error
}

func (s Static) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Names), nil
}

// stem returns name without its final extension.
func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
