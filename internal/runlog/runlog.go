package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one transcript line. Every line repeats the run metadata so a
// single line is self-describing when grepped out of a directory of runs.
type Record struct {
	Role           string `json:"role"`
	Content        string `json:"content"`
	TurnIndex      int    `json:"turn_index"`
	Scenario       string `json:"scenario"`
	Model          string `json:"model"`
	Policy         string `json:"policy"`
	KnowledgeLevel string `json:"knowledge_level"`
	Timestamp      string `json:"timestamp"`
}

// Meta is the fixed per-run metadata stamped onto every record.
type Meta struct {
	Scenario       string
	Model          string
	Policy         string
	KnowledgeLevel string
}

// Writer streams a run's transcript to <prefix>.jsonl and its final
// summary to <prefix>_summary.json, where prefix is a UTC timestamp, the
// scenario name, and a short random suffix.
type Writer struct {
	meta        Meta
	transcript  *os.File
	enc         *json.Encoder
	summaryPath string
	now         func() time.Time
}

// New creates the log directory if needed and opens the transcript file.
func New(dir string, meta Meta) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	prefix := runPrefix(meta.Scenario, time.Now().UTC())
	f, err := os.Create(filepath.Join(dir, prefix+".jsonl"))
	if err != nil {
		return nil, fmt.Errorf("create transcript: %w", err)
	}

	return &Writer{
		meta:        meta,
		transcript:  f,
		enc:         json.NewEncoder(f),
		summaryPath: filepath.Join(dir, prefix+"_summary.json"),
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func runPrefix(scenario string, t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return t.Format("20060102T150405Z") + "_" + scenario + "_" + suffix
}

// TranscriptPath returns the path of the JSONL transcript.
func (w *Writer) TranscriptPath() string {
	return w.transcript.Name()
}

// SummaryPath returns the path the summary will be written to.
func (w *Writer) SummaryPath() string {
	return w.summaryPath
}

// Log appends one transcript record.
func (w *Writer) Log(role, content string, turnIndex int) error {
	rec := Record{
		Role:           role,
		Content:        content,
		TurnIndex:      turnIndex,
		Scenario:       w.meta.Scenario,
		Model:          w.meta.Model,
		Policy:         w.meta.Policy,
		KnowledgeLevel: w.meta.KnowledgeLevel,
		Timestamp:      w.now().Format(time.RFC3339Nano),
	}
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("append transcript record: %w", err)
	}
	return nil
}

// WriteSummary writes the run summary JSON, indented for human reading.
func (w *Writer) WriteSummary(summary any) error {
	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run summary: %w", err)
	}
	if err := os.WriteFile(w.summaryPath, raw, 0o644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}

// Close flushes and closes the transcript file.
func (w *Writer) Close() error {
	if err := w.transcript.Sync(); err != nil {
		w.transcript.Close()
		return fmt.Errorf("flush transcript: %w", err)
	}
	return w.transcript.Close()
}
