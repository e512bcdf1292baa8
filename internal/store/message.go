package store

import (
	"context"
	"database/sql"
	"fmt"
)

// messageRepo implements MessageRepo with raw SQL.
type messageRepo struct {
	db *sql.DB
}

func (r *messageRepo) Append(ctx context.Context, msg Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (run_id, role, content, turn_index, question_number)
		VALUES (?, ?, ?, ?, ?)`,
		msg.RunID, msg.Role, msg.Content, msg.TurnIndex, msg.QuestionNumber,
	)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

func (r *messageRepo) ByRun(ctx context.Context, runID string) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, run_id, role, content, turn_index, question_number, timestamp
		FROM messages
		WHERE run_id = ?
		ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.RunID, &m.Role, &m.Content,
			&m.TurnIndex, &m.QuestionNumber, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
