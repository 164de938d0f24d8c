// Package audit keeps a local JSONL history of API calls made by the CLI.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record is one API call made through the CLI.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Target    string    `json:"target,omitempty"`
	Status    int       `json:"status,omitempty"`
	Success   bool      `json:"success"`
}

// Log appends records to a JSONL file.
type Log struct {
	logPath string
}

// NewLog returns a Log in dir, or in the XDG config location when dir is
// empty.
func NewLog(dir string) *Log {
	if dir == "" {
		if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
			dir = filepath.Join(base, "socket")
		} else if home, _ := os.UserHomeDir(); home != "" {
			dir = filepath.Join(home, ".config", "socket")
		}
	}
	return &Log{logPath: filepath.Join(dir, "history.jsonl")}
}

// Append writes one record. Best-effort callers may ignore the error.
func (a *Log) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(a.logPath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open call history: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(rec)
}

// LoadHistory returns all recorded calls, oldest first. Corrupt lines are
// skipped.
func (a *Log) LoadHistory() ([]Record, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open call history: %w", err)
	}
	defer f.Close()

	// One record per line, so corrupt lines can be skipped without
	// derailing the rest of the file.
	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read call history: %w", err)
	}
	return records, nil
}
