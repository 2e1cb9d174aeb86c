package roots

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutRoots(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		expected []string
	}{
		{
			name:     "depth zero no dirs",
			layout:   Layout{Base: "repo", TestDataDir: "testdata"},
			expected: []string{filepath.Join("repo", "testdata")},
		},
		{
			name:     "climbs depth parents",
			layout:   Layout{Base: filepath.Join("repo", "internal", "core"), Depth: 2, TestDataDir: "testdata"},
			expected: []string{filepath.Join("repo", "testdata")},
		},
		{
			name:   "relative base climbs above it",
			layout: Layout{Base: ".", Depth: 2, TestDataDir: "testdata", Dirs: []string{"valid", "invalid"}},
			expected: []string{
				filepath.Join("..", "..", "testdata", "valid"),
				filepath.Join("..", "..", "testdata", "invalid"),
			},
		},
		{
			name:     "absolute base",
			layout:   Layout{Base: "/srv/suite/cases", Depth: 1, TestDataDir: "fixtures", Dirs: []string{"json"}},
			expected: []string{filepath.Join("/srv/suite", "fixtures", "json")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Roots()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLayoutNegativeDepth(t *testing.T) {
	_, err := Layout{Base: ".", Depth: -1, TestDataDir: "testdata"}.Roots()
	assert.ErrorIs(t, err, ErrNegativeDepth)
}

func TestStaticRootsAreCopied(t *testing.T) {
	s := Static{"a", "b"}
	got, err := s.Roots()
	require.NoError(t, err)
	got[0] = "changed"
	assert.Equal(t, Static{"a", "b"}, s)
}

func TestFunc(t *testing.T) {
	want := errors.New("no roots today")
	var supplier Supplier = Func(func() ([]string, error) { return nil, want })
	_, err := supplier.Roots()
	assert.ErrorIs(t, err, want)
}
