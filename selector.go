package formatkit

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Match is one detected file from a tree walk.
type Match struct {
	Path   string
	Format Format
}

// Selector filters files during tree detection.
type Selector interface {
	// Select reports whether the file at path should be detected.
	Select(path string) bool
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(path string) bool

func (f SelectorFunc) Select(path string) bool { return f(path) }

// All returns a selector that accepts every file.
func All() Selector {
	return SelectorFunc(func(string) bool { return true })
}

// Glob returns a selector matching file names against a glob pattern.
// Supports *, ?, [abc], {alt1,alt2} and ** for path segments.
func Glob(pattern string) (Selector, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, err
	}
	return SelectorFunc(func(path string) bool {
		return g.Match(filepath.ToSlash(path)) || g.Match(filepath.Base(path))
	}), nil
}

// And returns a selector that accepts a file only when all selectors do.
func And(selectors ...Selector) Selector {
	return SelectorFunc(func(path string) bool {
		for _, s := range selectors {
			if !s.Select(path) {
				return false
			}
		}
		return true
	})
}

// Not inverts a selector.
func Not(s Selector) Selector {
	return SelectorFunc(func(path string) bool { return !s.Select(path) })
}

// DetectTree walks the file tree rooted at root and detects every regular
// file accepted by the selector. A nil selector accepts everything.
// Detection of an individual file never stops the walk; unreadable files
// are reported as Unknown.
func DetectTree(ctx context.Context, root string, selector Selector) ([]Match, error) {
	return defaultDetector.DetectTree(ctx, root, selector)
}

// DetectTree walks the file tree rooted at root with this detector's
// limits.
func (d *Detector) DetectTree(ctx context.Context, root string, selector Selector) ([]Match, error) {
	if selector == nil {
		selector = All()
	}
	var matches []Match
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}
		if !selector.Select(path) {
			return nil
		}
		format, err := d.FromFile(path)
		if err != nil {
			format = Unknown
		}
		matches = append(matches, Match{Path: path, Format: format})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
