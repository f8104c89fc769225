// Package jsonl reads and appends review reports stored as JSON or JSONL.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/codereview"
)

// Compile-time interface verification.
var _ codereview.ReportLoader = (*Loader)(nil)

// Loader loads Report records from .json or .jsonl files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (4MB).
// Reports embed the reviewed source, so lines can be large.
const maxLineSize = 4 * 1024 * 1024

// Load reads reports from path. Files ending in .json hold one report or an
// array of reports; anything else is read as one report per line.
// A file without reports returns ErrNoReports.
func (l *Loader) Load(path string) ([]codereview.Report, error) {
	var (
		reports []codereview.Report
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		reports, err = loadJSON(path)
	} else {
		reports, err = loadLines(path)
	}
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("%s: %w", path, codereview.ErrNoReports)
	}
	return reports, nil
}

func loadJSON(path string) ([]codereview.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var reports []codereview.Report
		if err := json.Unmarshal(data, &reports); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return reports, nil
	}

	var r codereview.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []codereview.Report{r}, nil
}

func loadLines(path string) ([]codereview.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reports []codereview.Report
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r codereview.Report
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
