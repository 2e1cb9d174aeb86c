package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/jakebark/jsonfind/internal/core"
	"github.com/jakebark/jsonfind/internal/inputs"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0) // remove timestamp from prints

	userInput, err := inputs.ParseFlags()
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := run(userInput, afero.NewOsFs(), os.Stdout); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(userInput inputs.UserInput, fsys afero.Fs, out io.Writer) error {
	roots, err := userInput.Supplier().Roots()
	if err != nil {
		return err
	}
	if userInput.Verbose {
		for _, root := range roots {
			log.Printf("root: %s", root)
		}
	}

	files, err := core.FindMatchingFiles(fsys, roots, userInput.Pattern)
	if err != nil {
		return err
	}

	if userInput.Count {
		return core.WriteCount(out, files)
	}
	return core.WriteFileList(out, files, userInput.Null)
}
