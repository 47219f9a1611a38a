package voice

import (
	"context"
	"testing"
)

func TestFromEnvDisabled(t *testing.T) {
	t.Setenv("KOKORO_VOICE_CMD", "")
	if rec := FromEnv(); rec != nil {
		t.Error("expected nil recognizer when no voice command configured")
	}
}

func TestExecRecognizer(t *testing.T) {
	t.Setenv("KOKORO_VOICE_CMD", "echo '  remind me sarah likes tea  '")

	rec := FromEnv()
	if rec == nil {
		t.Fatal("expected recognizer")
	}

	transcript, err := rec.Listen(context.Background())
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	if transcript != "remind me sarah likes tea" {
		t.Errorf("unexpected transcript %q", transcript)
	}
}

func TestExecRecognizerEmptyTranscript(t *testing.T) {
	t.Setenv("KOKORO_VOICE_CMD", "true")

	rec := FromEnv()
	if _, err := rec.Listen(context.Background()); err == nil {
		t.Error("expected error for empty transcript")
	}
}

func TestExecRecognizerCommandFailure(t *testing.T) {
	t.Setenv("KOKORO_VOICE_CMD", "exit 3")

	rec := FromEnv()
	if _, err := rec.Listen(context.Background()); err == nil {
		t.Error("expected error for failing command")
	}
}
