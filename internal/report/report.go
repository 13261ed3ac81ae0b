// internal/report/report.go
// Package report parses circuit benchmark report dumps into metric records.
//
// A report is a plain-text file in which a backtick-quoted line declares the
// current circuit and every following "Key: value," line is a metric reading
// for that circuit, until the next declaration.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single metric reading attributed to a circuit.
type Record struct {
	Circuit string
	Metric  string
	Value   string
}

// Options controls which lines the parser ignores.
type Options struct {
	// ExcludeMarkers drops any line containing one of these substrings
	// before classification.
	ExcludeMarkers []string
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineSectionHeader
	lineMetric
	lineHeaderMetric
)

// classifyLine tags a stripped line as a section header, a metric line, both,
// or noise. Reports usually prefix each metric line with the backtick-wrapped
// circuit name, so one line can declare the circuit and carry a reading at
// the same time. An unterminated backtick is not a header.
func classifyLine(line string) (lineKind, string) {
	header := ""
	hasHeader := false
	if strings.HasPrefix(line, "`") {
		if end := strings.Index(line[1:], "`"); end >= 0 {
			header = line[1 : 1+end]
			hasHeader = true
		}
	}
	hasMetric := strings.Contains(line, ": ")

	switch {
	case hasHeader && hasMetric:
		return lineHeaderMetric, header
	case hasHeader:
		return lineSectionHeader, header
	case hasMetric:
		return lineMetric, ""
	}
	return lineSkip, ""
}

func excluded(line string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// metricKey strips the circuit attribution from the key side of a metric
// line. Reports prefix most keys with the circuit name, sometimes wrapped in
// backticks, sometimes bare.
func metricKey(key, circuit string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, "`"+circuit+"`")
	key = strings.TrimPrefix(strings.TrimSpace(key), circuit)
	return strings.TrimSpace(key)
}

// Parse reads a report line by line and returns the metric records in file
// order. Metric lines seen before the first section header are dropped, as is
// anything that matches an exclusion marker.
func Parse(r io.Reader, opts Options) ([]Record, error) {
	var records []Record
	circuit := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if excluded(line, opts.ExcludeMarkers) {
			continue
		}
		kind, header := classifyLine(line)
		if kind == lineSectionHeader || kind == lineHeaderMetric {
			circuit = header
		}
		if kind == lineMetric || kind == lineHeaderMetric {
			if circuit == "" {
				continue
			}
			key, value, _ := strings.Cut(line, ": ")
			value = strings.TrimSuffix(strings.TrimSpace(value), ",")
			records = append(records, Record{
				Circuit: circuit,
				Metric:  metricKey(key, circuit),
				Value:   value,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseFile parses the report at path. A missing or unreadable file surfaces
// the file-access error to the caller.
func ParseFile(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	return records, nil
}
