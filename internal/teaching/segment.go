package teaching

import (
	"fmt"
	"strings"
)

// Role identifies the speaker of a turn within a teaching segment.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Turn is one message in a teaching segment.
type Turn struct {
	Role    Role
	Content string
}

// Segment is the slice of conversation devoted to one question, from the
// moment teaching on it starts until it is marked done. Owned exclusively
// by its question; once summarized the segment is discarded and only the
// derived summary survives.
type Segment struct {
	QuestionNumber int
	Turns          []Turn
}

// Add appends a turn to the segment.
func (s *Segment) Add(role Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// Empty reports whether the segment holds no messages.
func (s *Segment) Empty() bool {
	return len(s.Turns) == 0
}

// Transcript renders the segment as labeled lines for the summarizer
// prompt.
func (s *Segment) Transcript() string {
	var b strings.Builder
	for _, turn := range s.Turns {
		fmt.Fprintf(&b, "%s: %s\n", titleRole(turn.Role), turn.Content)
	}
	return b.String()
}

func titleRole(r Role) string {
	switch r {
	case RoleTeacher:
		return "Teacher"
	case RoleStudent:
		return "Student"
	default:
		return string(r)
	}
}
