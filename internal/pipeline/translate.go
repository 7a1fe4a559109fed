package pipeline

import (
	"context"
	"fmt"

	"lingua-pipeline/internal/inference"
	"lingua-pipeline/internal/subtitle"
)

const translationSystemPrompt = `You are a professional subtitle translator.
Translate the subtitle line from %s to %s.

Rules:
- Return ONLY the translated line, with no quotes, labels or explanations.
- Keep the translation concise enough to read as a subtitle.
- Preserve names, numbers and technical terms.
- Do not merge or split lines.`

func (c *implCoordinator) Translate(ctx context.Context, mediaID, targetLanguage string) error {
	stage := "translate:" + targetLanguage
	lock := c.stageLock(mediaID, stage)
	lock.Lock()
	defer lock.Unlock()

	done, err := c.store.StageDone(ctx, mediaID, stageSTT)
	if err != nil {
		return err
	}
	if !done {
		return fmt.Errorf("translate media %s to %s: %w", mediaID, targetLanguage, ErrSourceNotReady)
	}

	media, err := c.store.GetMedia(ctx, mediaID)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	source, err := c.store.GetAsset(ctx, mediaID, media.SourceLanguage, subtitle.KindOriginal)
	if err != nil {
		return fmt.Errorf("load transcript for media %s: %w", mediaID, err)
	}

	c.logger.Info(ctx, "Translating media %s: %d segments %s -> %s",
		mediaID, len(source.Segments), media.SourceLanguage, targetLanguage)

	system := fmt.Sprintf(translationSystemPrompt, media.SourceLanguage, targetLanguage)

	translated := make([]subtitle.Segment, 0, len(source.Segments))
	failed := 0
	for _, seg := range source.Segments {
		res := inference.InvokeText(ctx, c.client, c.logger, system, seg.Text, seg.SequenceNumber)

		text := res.Text
		if res.Status != inference.StatusOK {
			// Keep the original line so the track stays contiguous; a gap
			// would be worse for the viewer than an untranslated line.
			text = seg.Text
			failed++
		}

		translated = append(translated, subtitle.Segment{
			SequenceNumber: seg.SequenceNumber,
			StartMS:        seg.StartMS,
			EndMS:          seg.EndMS,
			Text:           text,
			Confidence:     seg.Confidence,
		})
	}

	if failed > 0 {
		c.logger.Warn(ctx, "Translation of media %s to %s: %d/%d segments kept original text",
			mediaID, targetLanguage, failed, len(source.Segments))
	}

	asset := &subtitle.Asset{
		MediaID:        mediaID,
		Language:       targetLanguage,
		Kind:           subtitle.KindTranslated,
		SourceAssetID:  source.ID,
		SourceLanguage: media.SourceLanguage,
		Segments:       translated,
	}
	if err := c.store.SaveAsset(ctx, asset); err != nil {
		return fmt.Errorf("save translation for media %s: %w", mediaID, err)
	}
	if err := c.store.MarkStageDone(ctx, mediaID, stage); err != nil {
		return err
	}

	c.logger.Info(ctx, "Translation stored: media %s, asset %s, language %s",
		mediaID, asset.ID, targetLanguage)
	return nil
}
