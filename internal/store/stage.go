package store

import (
	"context"
	"fmt"
)

// MarkStageDone records a completed stage for a media item. Marking the same
// stage twice is a no-op.
func (s *Store) MarkStageDone(ctx context.Context, mediaID, stage string) error {
	err := s.execWithRetry(ctx,
		`INSERT INTO pipeline_stages (media_id, stage) VALUES (?, ?)
		 ON CONFLICT(media_id, stage) DO NOTHING`,
		mediaID, stage)
	if err != nil {
		return fmt.Errorf("mark stage %q done: %w", stage, err)
	}
	return nil
}

// StageDone reports whether a stage has completed for a media item.
func (s *Store) StageDone(ctx context.Context, mediaID, stage string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM pipeline_stages WHERE media_id = ? AND stage = ?`,
		mediaID, stage).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check stage %q: %w", stage, err)
	}
	return n > 0, nil
}

// Stages returns the completed stage keys for a media item.
func (s *Store) Stages(ctx context.Context, mediaID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT stage FROM pipeline_stages WHERE media_id = ? ORDER BY completed_at, stage`,
		mediaID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	var stages []string
	for rows.Next() {
		var stage string
		if err := rows.Scan(&stage); err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		stages = append(stages, stage)
	}
	return stages, rows.Err()
}
