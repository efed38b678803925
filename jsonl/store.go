// Package jsonl persists report history as JSONL files.
package jsonl

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.ReportStore = (*Store)(nil)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxLineSize is the maximum size for a single JSONL line (4MB).
// This accommodates reports carrying large diffs while preventing memory issues.
const maxLineSize = 4 * 1024 * 1024

// Store persists and retrieves Report records as JSONL.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads reports from a JSONL file. Returns nil if the file doesn't exist.
func (s *Store) Load(path string) ([]wikilens.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var reports []wikilens.Report
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r wikilens.Report
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		reports = append(reports, r)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Save writes reports to a JSONL file, creating parent directories if needed.
func (s *Store) Save(path string, reports []wikilens.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range reports {
		if err := writeLine(f, r); err != nil {
			return err
		}
	}

	return nil
}

// Append adds a single report to the end of the file at path, creating
// parent directories if needed.
func (s *Store) Append(path string, report wikilens.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeLine(f, report)
}

func writeLine(f *os.File, r wikilens.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}
