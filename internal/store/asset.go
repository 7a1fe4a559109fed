package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lingua-pipeline/internal/subtitle"
)

// SaveAsset persists an asset and its full segment list in one transaction.
// A second save for the same (media, language, kind) replaces the segments
// and keeps the original asset id, which it writes back into a.ID.
func (s *Store) SaveAsset(ctx context.Context, a *subtitle.Asset) error {
	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()

		var existingID string
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM subtitle_assets WHERE media_id = ? AND language = ? AND kind = ?`,
			a.MediaID, a.Language, string(a.Kind)).Scan(&existingID)
		switch {
		case err == nil:
			a.ID = existingID
			_, err = tx.ExecContext(ctx,
				`UPDATE subtitle_assets SET source_asset_id = ?, source_language = ? WHERE id = ?`,
				nullable(a.SourceAssetID), nullable(a.SourceLanguage), a.ID)
			if err != nil {
				return fmt.Errorf("update asset: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM subtitle_segments WHERE asset_id = ?`, a.ID); err != nil {
				return fmt.Errorf("clear segments: %w", err)
			}
		case errors.Is(err, sql.ErrNoRows):
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO subtitle_assets (id, media_id, language, kind, source_asset_id, source_language)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				a.ID, a.MediaID, a.Language, string(a.Kind),
				nullable(a.SourceAssetID), nullable(a.SourceLanguage))
			if err != nil {
				return fmt.Errorf("insert asset: %w", err)
			}
		default:
			return fmt.Errorf("lookup asset: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO subtitle_segments (asset_id, sequence_number, start_ms, end_ms, text, confidence)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare segment insert: %w", err)
		}
		defer stmt.Close()

		for _, seg := range a.Segments {
			_, err := stmt.ExecContext(ctx,
				a.ID, seg.SequenceNumber, seg.StartMS, seg.EndMS, seg.Text, seg.Confidence)
			if err != nil {
				return fmt.Errorf("insert segment %d: %w", seg.SequenceNumber, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit asset: %w", err)
		}
		return nil
	})
}

// GetAsset loads an asset and its segments ordered by sequence number.
func (s *Store) GetAsset(ctx context.Context, mediaID, language string, kind subtitle.Kind) (*subtitle.Asset, error) {
	a := &subtitle.Asset{
		MediaID:  mediaID,
		Language: language,
		Kind:     kind,
	}
	var sourceAssetID, sourceLanguage, filePath sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source_asset_id, source_language, file_path
		 FROM subtitle_assets WHERE media_id = ? AND language = ? AND kind = ?`,
		mediaID, language, string(kind)).
		Scan(&a.ID, &sourceAssetID, &sourceLanguage, &filePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get asset: %w", err)
	}
	a.SourceAssetID = sourceAssetID.String
	a.SourceLanguage = sourceLanguage.String
	a.FilePath = filePath.String

	rows, err := s.db.QueryContext(ctx,
		`SELECT sequence_number, start_ms, end_ms, text, confidence
		 FROM subtitle_segments WHERE asset_id = ? ORDER BY sequence_number`, a.ID)
	if err != nil {
		return nil, fmt.Errorf("load segments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seg subtitle.Segment
		if err := rows.Scan(&seg.SequenceNumber, &seg.StartMS, &seg.EndMS, &seg.Text, &seg.Confidence); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		a.Segments = append(a.Segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate segments: %w", err)
	}
	return a, nil
}

// SetAssetFilePath records where an asset was serialized on disk.
func (s *Store) SetAssetFilePath(ctx context.Context, assetID, filePath string) error {
	err := s.execWithRetry(ctx,
		`UPDATE subtitle_assets SET file_path = ? WHERE id = ?`, filePath, assetID)
	if err != nil {
		return fmt.Errorf("set asset file path: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
