package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakebark/jsonfind/internal/config"
	"github.com/spf13/afero"
)

// FindJSONFilesInDirectory returns every .json file below dir on the OS filesystem.
func FindJSONFilesInDirectory(dir string) ([]string, error) {
	return FindJSONFiles([]string{dir})
}

// FindJSONFiles returns every .json file below each root on the OS filesystem.
func FindJSONFiles(roots []string) ([]string, error) {
	return FindMatchingFiles(afero.NewOsFs(), roots, config.JSONPattern)
}

// FindMatchingFiles walks each root recursively and collects the files whose
// base name matches pattern. Results keep root order, then walk order.
// Overlapping roots produce duplicates. Any failure aborts the whole call.
func FindMatchingFiles(fsys afero.Fs, roots []string, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}

	var files []string
	for _, root := range roots {
		found, err := findInRoot(fsys, root, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func findInRoot(fsys afero.Fs, root, pattern string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s: %w", root, ErrNotADirectory)
	}

	// a trailing separator makes Lstat resolve a symlinked root
	walkRoot := root
	if !strings.HasSuffix(walkRoot, string(filepath.Separator)) {
		walkRoot += string(filepath.Separator)
	}

	var matches []string
	err = afero.Walk(fsys, walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if info.IsDir() {
			return nil
		}
		// links to directories are neither followed nor listed
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := fsys.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}
		// pattern was validated above
		if ok, _ := filepath.Match(pattern, info.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
