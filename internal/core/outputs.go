package core

import (
	"fmt"
	"io"
)

// WriteFileList prints one path per line, or NUL-terminated when null is set.
func WriteFileList(w io.Writer, files []string, null bool) error {
	sep := "\n"
	if null {
		sep = "\x00"
	}
	for _, file := range files {
		if _, err := io.WriteString(w, file+sep); err != nil {
			return fmt.Errorf("write %s: %w", file, err)
		}
	}
	return nil
}

// WriteCount prints the number of matches.
func WriteCount(w io.Writer, files []string) error {
	_, err := fmt.Fprintf(w, "%d\n", len(files))
	return err
}
