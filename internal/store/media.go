package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Media is a registered input video or audio file.
type Media struct {
	ID             string
	FilePath       string
	SourceLanguage string
}

// RegisterMedia records an input file and returns its media record. Calling
// it again with the same path returns the existing record.
func (s *Store) RegisterMedia(ctx context.Context, filePath, sourceLanguage string) (Media, error) {
	existing, err := s.mediaByPath(ctx, filePath)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Media{}, err
	}

	m := Media{
		ID:             uuid.NewString(),
		FilePath:       filePath,
		SourceLanguage: sourceLanguage,
	}
	err = s.execWithRetry(ctx,
		`INSERT INTO media (id, file_path, source_language) VALUES (?, ?, ?)`,
		m.ID, m.FilePath, m.SourceLanguage)
	if err != nil {
		return Media{}, fmt.Errorf("register media: %w", err)
	}
	return m, nil
}

// GetMedia looks up a media record by id.
func (s *Store) GetMedia(ctx context.Context, id string) (Media, error) {
	var m Media
	err := s.db.QueryRowContext(ctx,
		`SELECT id, file_path, source_language FROM media WHERE id = ?`, id).
		Scan(&m.ID, &m.FilePath, &m.SourceLanguage)
	if errors.Is(err, sql.ErrNoRows) {
		return Media{}, ErrNotFound
	}
	if err != nil {
		return Media{}, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

func (s *Store) mediaByPath(ctx context.Context, filePath string) (Media, error) {
	var m Media
	err := s.db.QueryRowContext(ctx,
		`SELECT id, file_path, source_language FROM media WHERE file_path = ?`, filePath).
		Scan(&m.ID, &m.FilePath, &m.SourceLanguage)
	if errors.Is(err, sql.ErrNoRows) {
		return Media{}, ErrNotFound
	}
	if err != nil {
		return Media{}, fmt.Errorf("get media by path: %w", err)
	}
	return m, nil
}
