package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lingua-pipeline/internal/subtitle"
)

func (c *implCoordinator) Serialize(ctx context.Context, mediaID, language string, kind subtitle.Kind) (string, error) {
	asset, err := c.store.GetAsset(ctx, mediaID, language, kind)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}

	lock := c.stageLock(mediaID, "serialize:"+asset.ID)
	lock.Lock()
	defer lock.Unlock()

	if len(asset.Segments) == 0 {
		return "", fmt.Errorf("serialize asset %s: no segments", asset.ID)
	}

	content, err := subtitle.Render(asset.Segments)
	if err != nil {
		return "", fmt.Errorf("serialize asset %s: %w", asset.ID, err)
	}

	dir := filepath.Join(c.cfg.Paths.Storage, "subtitles")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create subtitle directory: %w", err)
	}

	outPath := filepath.Join(dir, fmt.Sprintf("%s_%s.srt", asset.ID, asset.Kind))
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write subtitle file: %w", err)
	}

	if err := c.store.SetAssetFilePath(ctx, asset.ID, outPath); err != nil {
		return "", err
	}
	if err := c.store.MarkStageDone(ctx, mediaID, "serialize:"+asset.ID); err != nil {
		return "", err
	}

	c.logger.Info(ctx, "Serialized asset %s to %s (%d segments)", asset.ID, outPath, len(asset.Segments))
	return outPath, nil
}
