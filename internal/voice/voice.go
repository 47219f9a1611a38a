// Package voice is the optional speech-to-text boundary. Transcription
// itself is delegated to a platform tool; when none is configured the
// feature reports unavailable.
package voice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Recognizer produces a single final transcript per listening session.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// FromEnv returns a recognizer built from KOKORO_VOICE_CMD, or nil when
// no transcription command is configured.
func FromEnv() Recognizer {
	cmdline := os.Getenv("KOKORO_VOICE_CMD")
	if cmdline == "" {
		return nil
	}
	return &execRecognizer{cmdline: cmdline}
}

// execRecognizer shells out to a user-configured command whose stdout
// is the transcript.
type execRecognizer struct {
	cmdline string
}

func (r *execRecognizer) Listen(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", r.cmdline)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("voice command failed: %w", err)
	}

	transcript := strings.TrimSpace(string(out))
	if transcript == "" {
		return "", fmt.Errorf("voice command produced no transcript")
	}
	return transcript, nil
}
