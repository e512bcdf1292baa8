package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Message is one transcript entry from a teaching session.
type Message struct {
	ID             int
	RunID          string
	Role           string // "human-teacher" or "student"
	Content        string
	TurnIndex      int
	QuestionNumber int // 0 when the message isn't tied to a question
	Timestamp      time.Time
}

// MessageRepo persists session transcript messages.
type MessageRepo interface {
	// Append records a transcript message.
	Append(ctx context.Context, msg Message) error

	// ByRun returns all messages for a run in turn order.
	ByRun(ctx context.Context, runID string) ([]Message, error)
}

// RunRecord is the persisted summary of one full session.
type RunRecord struct {
	ID              string
	Scenario        string
	Level           string
	Model           string
	PreScore        float64
	PostScore       float64
	Improvement     float64
	Learned         bool
	QuestionsTotal  int
	QuestionsTaught int
	SummariesJSON   string
	StartedAt       time.Time
	FinishedAt      time.Time
}

// RunRepo persists session run records.
type RunRepo interface {
	// Create inserts a new run at session start.
	Create(ctx context.Context, run RunRecord) error

	// Finish updates a run with final scores at session end.
	Finish(ctx context.Context, run RunRecord) error

	// Get returns a run by ID, or nil if not found.
	Get(ctx context.Context, id string) (*RunRecord, error)

	// List returns recent runs, newest first.
	List(ctx context.Context, limit int) ([]RunRecord, error)
}
