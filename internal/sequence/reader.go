package sequence

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PathEnv names the environment variable that overrides sequence file discovery.
const PathEnv = "STEPPER_SEQUENCE_PATH"

// DefaultPaths lists the file names tried (in priority order) when
// auto-discovering a sequence file in the base directory.
var DefaultPaths = []string{
	"steps.yaml",
	"steps.yml",
	"steps.csv",
}

// ResolvePath discovers the sequence file location.
//
// Resolution order:
//  1. STEPPER_SEQUENCE_PATH environment variable (used as-is if set)
//  2. Explicit path parameter (if non-empty)
//  3. Auto-discovery of [DefaultPaths] under basePath
//
// It returns an empty string when nothing is configured and nothing is found.
// Pass an empty basePath for the current working directory.
func ResolvePath(basePath, path string) string {
	if envPath := os.Getenv(PathEnv); envPath != "" {
		return envPath
	}

	if path != "" {
		return path
	}

	for _, p := range DefaultPaths {
		fullPath := filepath.Join(basePath, p)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}

	return ""
}

// Reader reads a sequence definition from a file.
//
// Use [NewReader] with an already resolved path; see [ResolvePath].
type Reader struct {
	path string
}

// NewReader creates a [Reader] for the sequence file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the file the reader reads from.
func (r *Reader) Path() string {
	return r.path
}

// Read reads and parses the sequence file.
//
// The format is chosen by extension: .yaml and .yml parse as YAML, .csv as
// CSV. Any other extension returns [ErrUnsupportedFormat].
func (r *Reader) Read() (*Definition, error) {
	parse, err := parserFor(r.path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}
	defer f.Close()

	def, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return def, nil
}

type parser func(r io.Reader) (*Definition, error)

func parserFor(path string) (parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return func(r io.Reader) (*Definition, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("failed to read sequence: %w", err)
			}
			return ParseYAML(data)
		}, nil
	case ".csv":
		return ParseCSV, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
