package port

import "context"

// SpeechSynthesizer converts a text message to raw audio bytes using
// the given voice. Transport encoding of the audio is the caller's
// responsibility.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, voiceID string) ([]byte, error)
}
