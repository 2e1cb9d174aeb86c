package inputs

import (
	"io"
	"os"

	"github.com/jakebark/jsonfind/internal/config"
	"github.com/jakebark/jsonfind/internal/roots"
	"github.com/spf13/pflag"
)

type UserInput struct {
	Roots       []string
	Pattern     string
	Base        string
	Depth       int
	TestDataDir string
	Dirs        []string
	Count       bool
	Null        bool
	Verbose     bool
}

// ParseFlags returns parsed CLI flags and arguments
func ParseFlags() (UserInput, error) {
	return ParseArgs(os.Args[0], os.Args[1:])
}

// ParseArgs parses args; --help yields pflag.ErrHelp after printing usage.
func ParseArgs(name string, args []string) (UserInput, error) {
	return parseArgs(name, args, os.Stderr)
}

func parseArgs(name string, args []string, usage io.Writer) (UserInput, error) {
	var userInput UserInput

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(usage)
	flags.StringVarP(&userInput.Pattern, "pattern", "p", config.JSONPattern, "glob matched against file names")
	flags.StringVar(&userInput.Base, "base", config.DefaultBase, "directory the test-data layout is resolved from")
	flags.IntVar(&userInput.Depth, "depth", config.TestDataDepth, "parent directories to climb from --base")
	flags.StringVar(&userInput.TestDataDir, "testdata", config.TestDataDir, "test-data directory name")
	flags.StringSliceVar(&userInput.Dirs, "dir", nil, "directories inside the test-data directory (repeatable)")
	flags.BoolVarP(&userInput.Count, "count", "c", false, "print the number of matches only")
	flags.BoolVarP(&userInput.Null, "null", "0", false, "separate paths with NUL")
	flags.BoolVarP(&userInput.Verbose, "verbose", "v", false, "log resolved roots")

	if err := flags.Parse(args); err != nil {
		return UserInput{}, err
	}
	if flags.NArg() > 0 {
		userInput.Roots = flags.Args()
	}
	return userInput, nil
}

// Supplier returns explicit roots when given, the test-data layout otherwise.
func (u UserInput) Supplier() roots.Supplier {
	if len(u.Roots) > 0 {
		return roots.Static(u.Roots)
	}
	return roots.Layout{
		Base:        u.Base,
		Depth:       u.Depth,
		TestDataDir: u.TestDataDir,
		Dirs:        u.Dirs,
	}
}
