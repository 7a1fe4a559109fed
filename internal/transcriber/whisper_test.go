package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/logger"
)

const fakeSRT = `1
00:00:00,000 --> 00:00:02,500
안녕하세요

2
00:00:02,500 --> 00:00:05,000
오늘 강의를 시작하겠습니다
`

// fakeExecutor simulates ffmpeg and whisper.cpp by creating the files each
// tool would produce.
type fakeExecutor struct {
	calls [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	switch name {
	case "ffmpeg":
		// Last argument is the output WAV path.
		return "", os.WriteFile(args[len(args)-1], []byte("wav"), 0644)
	default:
		for i, a := range args {
			if a == "--output-file" && i+1 < len(args) {
				return "", os.WriteFile(args[i+1]+".srt", []byte(fakeSRT), 0644)
			}
		}
		return "", nil
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Whisper.ModelPath = "model.bin"
	cfg.Whisper.BinaryPath = "whisper-cli"
	cfg.Whisper.Threads = 4
	cfg.Paths.Temp = t.TempDir()
	return cfg
}

func TestTranscribe(t *testing.T) {
	mediaPath := filepath.Join(t.TempDir(), "lecture.mp4")
	if err := os.WriteFile(mediaPath, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{}
	tr := New(testConfig(t), exec, logger.New("error"))

	segments, err := tr.Transcribe(context.Background(), mediaPath, "ko")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("Transcribe() segments = %d, want 2", len(segments))
	}
	if segments[0].Text != "안녕하세요" {
		t.Errorf("segment 1 text = %q", segments[0].Text)
	}
	if segments[1].StartMS != 2500 || segments[1].EndMS != 5000 {
		t.Errorf("segment 2 timing = %d..%d", segments[1].StartMS, segments[1].EndMS)
	}

	if len(exec.calls) != 2 {
		t.Fatalf("executor calls = %d, want 2", len(exec.calls))
	}
	if exec.calls[0][0] != "ffmpeg" {
		t.Errorf("first call = %q, want ffmpeg", exec.calls[0][0])
	}
	if exec.calls[1][0] != "whisper-cli" {
		t.Errorf("second call = %q, want whisper-cli", exec.calls[1][0])
	}

	// Language must be forwarded to whisper.
	foundLang := false
	for i, a := range exec.calls[1] {
		if a == "-l" && i+1 < len(exec.calls[1]) && exec.calls[1][i+1] == "ko" {
			foundLang = true
		}
	}
	if !foundLang {
		t.Errorf("whisper call missing -l ko: %v", exec.calls[1])
	}
}

func TestTranscribeMissingMedia(t *testing.T) {
	tr := New(testConfig(t), &fakeExecutor{}, logger.New("error"))
	if _, err := tr.Transcribe(context.Background(), "/no/such/file.mp4", "ko"); err == nil {
		t.Fatal("Transcribe() on missing file: expected error")
	}
}

func TestTranscribeCleansTempFiles(t *testing.T) {
	mediaPath := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(mediaPath, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	tr := New(cfg, &fakeExecutor{}, logger.New("error"))
	if _, err := tr.Transcribe(context.Background(), mediaPath, "ko"); err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Paths.Temp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temp directory not empty after transcription: %v", entries)
	}
}
