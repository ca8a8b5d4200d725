// Package orderfile loads picking orders from YAML or JSON files selected by a
// doublestar glob pattern.
package orderfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/picklist/internal/core/picking"
)

// ErrNoMatches is returned when the pattern selects no order files.
var ErrNoMatches = errors.New("no order files matched")

var extensions = []string{".yaml", ".yml", ".json"}

// Source reads orders from every supported file matching a pattern.
type Source struct {
	fsys    fs.FS
	pattern string
	display string
	log     zerolog.Logger
}

var _ picking.Source = (*Source)(nil)

// New creates a Source for an OS path pattern such as "~/orders/**/*.yaml".
// The static prefix of the pattern becomes the root of the search.
func New(pattern string, log zerolog.Logger) (*Source, error) {
	expanded, err := expandHome(pattern)
	if err != nil {
		return nil, err
	}

	base, rel := doublestar.SplitPattern(filepath.ToSlash(expanded))
	return newFS(os.DirFS(filepath.FromSlash(base)), rel, pattern, log)
}

// newFS creates a Source matching pattern inside fsys. display is the
// pattern as the user wrote it, used in errors.
func newFS(fsys fs.FS, pattern, display string, log zerolog.Logger) (*Source, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("orders pattern %q: %w", display, doublestar.ErrBadPattern)
	}
	return &Source{fsys: fsys, pattern: pattern, display: display, log: log}, nil
}

// Orders reads all matched files in lexical path order and concatenates their
// orders. File order is preserved within each file.
func (s *Source) Orders(ctx context.Context) ([]picking.Order, error) {
	matches, err := doublestar.Glob(s.fsys, s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", s.display, err)
	}

	files := matches[:0]
	for _, m := range matches {
		if slices.Contains(extensions, strings.ToLower(path.Ext(m))) {
			files = append(files, m)
		} else {
			s.log.Debug().Str("file", m).Msg("skipping unsupported order file")
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%q: %w", s.display, ErrNoMatches)
	}
	slices.Sort(files)

	var orders []picking.Order
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(s.fsys, f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}

		got, err := picking.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}

		s.log.Debug().Str("file", f).Int("orders", len(got)).Msg("loaded order file")
		orders = append(orders, got...)
	}

	if len(orders) == 0 {
		return nil, picking.ErrNoOrders
	}
	return orders, nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
