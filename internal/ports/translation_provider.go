package ports

import "context"

// TranslationQuery represents a text translation request
type TranslationQuery struct {
	Text       string
	SourceLang string
	TargetLang string
}

// SpeechQuery represents a text-to-speech request
type SpeechQuery struct {
	Text     string
	Language string
	Voice    string
}

// SpeechAudio is synthesized audio, base64 encoded
type SpeechAudio struct {
	AudioContent string
	Format       string
	SampleRate   int
}

// TranslationProvider defines the contract for remote translation
type TranslationProvider interface {
	Translate(ctx context.Context, query TranslationQuery) (string, error)
}

// SpeechProvider defines the contract for remote text-to-speech
type SpeechProvider interface {
	Synthesize(ctx context.Context, query SpeechQuery) (*SpeechAudio, error)
}
