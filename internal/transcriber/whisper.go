package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lingua-pipeline/internal/subtitle"
)

func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath, language string) ([]subtitle.Segment, error) {
	if _, err := os.Stat(mediaPath); err != nil {
		return nil, fmt.Errorf("media file not accessible: %w", err)
	}

	audioPath, err := t.extractAudio(ctx, mediaPath)
	if err != nil {
		return nil, err
	}
	defer t.cleanup(ctx, audioPath)

	srtPath, err := t.runWhisper(ctx, audioPath, language)
	if err != nil {
		return nil, err
	}
	defer t.cleanup(ctx, srtPath)

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("read transcription output: %w", err)
	}

	segments, err := subtitle.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse transcription output: %w", err)
	}

	t.logger.Info(ctx, "Transcription produced %d segments: %s", len(segments), mediaPath)
	return segments, nil
}

// extractAudio converts the media file to 16kHz mono WAV, the input format
// whisper.cpp expects.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	audioPath := filepath.Join(t.cfg.Paths.Temp, base+"_audio.wav")

	if err := os.MkdirAll(t.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return audioPath, nil
}

// runWhisper transcribes the WAV file and returns the path of the SRT
// whisper.cpp wrote next to the audio file.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath, language string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads, language %q: %s",
		t.cfg.Whisper.Threads, language, audioPath)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}
	return outputPrefix + ".srt", nil
}

func (t *implTranscriber) cleanup(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}
