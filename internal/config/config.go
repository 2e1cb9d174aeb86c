package config

const (
	// JSONPattern is the default glob applied to file base names
	JSONPattern = "*.json"

	// TestDataDir is the conventional fixture directory name
	TestDataDir = "testdata"

	// TestDataDepth is how many directories a test package sits below the repo root
	TestDataDepth = 2

	// DefaultBase is the directory the test-data layout is resolved from
	DefaultBase = "."
)
