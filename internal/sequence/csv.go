package sequence

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"stepper/internal/steps"
)

// nameColumn is the only required column of a CSV sequence.
const nameColumn = "name"

// ParseCSV parses a CSV sequence from r.
//
// The first row is the header and must contain a name column. Every other
// non-empty column becomes a string attribute on the step, so a CSV file
// always produces record steps. Blank names fail with [ErrMissingName].
func ParseCSV(r io.Reader) (*Definition, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Definition{}, nil
		}
		return nil, fmt.Errorf("failed to read sequence header: %w", err)
	}

	columns := make([]string, len(header))
	nameIdx := -1
	for i, col := range header {
		columns[i] = strings.TrimSpace(strings.ToLower(col))
		if columns[i] == nameColumn && nameIdx < 0 {
			nameIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("sequence missing required column: %s", nameColumn)
	}

	var list []steps.Step
	lineNum := 1 // header was line 1
	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read sequence line %d: %w", lineNum, err)
		}

		name := ""
		if nameIdx < len(record) {
			name = strings.TrimSpace(record[nameIdx])
		}
		if name == "" {
			return nil, fmt.Errorf("sequence line %d: %w", lineNum, ErrMissingName)
		}

		attrs := make(map[string]any, len(columns)-1)
		for i, col := range columns {
			if i == nameIdx || col == "" || i >= len(record) {
				continue
			}
			attrs[col] = strings.TrimSpace(record[i])
		}

		list = append(list, steps.Record(name, attrs))
	}

	return &Definition{Steps: list}, nil
}
