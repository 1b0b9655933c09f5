package storage

import "fmt"

// LoadRecall returns the newest limit console lines, oldest first.
func (s *Store) LoadRecall(limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT line FROM (
			SELECT id, line FROM console_history ORDER BY id DESC LIMIT ?
		 ) ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query console history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return lines, nil
}

// AppendRecall stores one submitted console line.
func (s *Store) AppendRecall(line string) error {
	if _, err := s.db.Exec("INSERT INTO console_history (line) VALUES (?)", line); err != nil {
		return fmt.Errorf("storage: cannot save console line: %w", err)
	}
	return nil
}

// ClearRecall deletes the stored console history.
func (s *Store) ClearRecall() error {
	if _, err := s.db.Exec("DELETE FROM console_history"); err != nil {
		return fmt.Errorf("storage: cannot clear console history: %w", err)
	}
	return nil
}
