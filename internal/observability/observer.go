// Package observability emits structured operation records for classifier
// initialization and scanning. Off by default; debug level writes JSON records
// to the configured writer.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

type Level int

const (
	Off     Level = 0
	Metrics Level = 1
	Debug   Level = 2
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level  Level
	writer io.Writer
}

// NewStandardObserver creates observability component
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := OperationData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level == Off || o.writer == nil {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == Debug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData for all components
type OperationData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	Language   string                 `json:"language,omitempty"`
	Resource   string                 `json:"resource,omitempty"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	LineCount  int                    `json:"line_count,omitempty"`
	MatchCount int                    `json:"match_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
