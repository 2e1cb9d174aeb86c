// Package roots produces the directory lists that the file finder walks.
package roots

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
)

// ErrNegativeDepth is returned by Layout when Depth is below zero.
var ErrNegativeDepth = errors.New("negative depth")

// Supplier returns the root directories to search, in search order.
type Supplier interface {
	Roots() ([]string, error)
}

// Func adapts a plain function to a Supplier.
type Func func() ([]string, error)

func (f Func) Roots() ([]string, error) {
	return f()
}

// Static is a fixed list of roots.
type Static []string

func (s Static) Roots() ([]string, error) {
	return slices.Clone(s), nil
}

// Layout locates fixture directories relative to a test package: it climbs
// Depth parents from Base, enters TestDataDir, then each of Dirs.
// With no Dirs the test-data directory itself is the only root.
type Layout struct {
	Base        string
	Depth       int
	TestDataDir string
	Dirs        []string
}

func (l Layout) Roots() ([]string, error) {
	if l.Depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, l.Depth)
	}

	parts := []string{l.Base}
	for i := 0; i < l.Depth; i++ {
		parts = append(parts, "..")
	}
	dataDir := filepath.Join(append(parts, l.TestDataDir)...)

	if len(l.Dirs) == 0 {
		return []string{dataDir}, nil
	}
	roots := make([]string, 0, len(l.Dirs))
	for _, dir := range l.Dirs {
		roots = append(roots, filepath.Join(dataDir, dir))
	}
	return roots, nil
}
