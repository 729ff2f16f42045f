package translation

import (
	"regexp"
	"strings"

	"farmerassist.app/pkg/errors"
)

var languageCodePattern = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2,4})?$`)

// IsLanguageCode reports whether code looks like a lowercase ISO 639 code,
// optionally followed by a region or script subtag ("hi", "pa-guru")
func IsLanguageCode(code string) bool {
	return languageCodePattern.MatchString(code)
}

// Defaults holds the language and voice used when a request omits them
type Defaults struct {
	SourceLang string
	TargetLang string
	Voice      string
}

// Request is a text translation request
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Result is a translated text along with the languages it was translated between
type Result struct {
	Text           string `json:"text"`
	TranslatedText string `json:"translatedText"`
	SourceLang     string `json:"sourceLang"`
	TargetLang     string `json:"targetLang"`
}

// SpeechRequest is a text-to-speech request
type SpeechRequest struct {
	Text     string
	Language string
	Voice    string
}

// Speech is synthesized audio for a text
type Speech struct {
	Text         string `json:"text"`
	Language     string `json:"language"`
	Voice        string `json:"voice"`
	AudioContent string `json:"audioContent"`
	Format       string `json:"format"`
	SampleRate   int    `json:"sampleRate,omitempty"`
}

// WithDefaults fills in missing language codes
func (r Request) WithDefaults(d Defaults) Request {
	r.SourceLang = languageOr(r.SourceLang, d.SourceLang)
	r.TargetLang = languageOr(r.TargetLang, d.TargetLang)
	return r
}

// Validate requires text and well-formed language codes
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.NewMissingParameterError("text")
	}
	if !IsLanguageCode(r.SourceLang) {
		return errors.NewValidationError("sourceLang must be a language code")
	}
	if !IsLanguageCode(r.TargetLang) {
		return errors.NewValidationError("targetLang must be a language code")
	}
	return nil
}

// Key lists the parameters that identify a cached translation
func (r Request) Key() []string {
	return []string{r.Text, r.SourceLang, r.TargetLang}
}

// WithDefaults fills in a missing language and voice
func (r SpeechRequest) WithDefaults(d Defaults) SpeechRequest {
	r.Language = languageOr(r.Language, d.TargetLang)
	if strings.TrimSpace(r.Voice) == "" {
		r.Voice = d.Voice
	}
	return r
}

// Validate requires text and a well-formed language code
func (r SpeechRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.NewMissingParameterError("text")
	}
	if !IsLanguageCode(r.Language) {
		return errors.NewValidationError("language must be a language code")
	}
	return nil
}

func languageOr(code, fallback string) string {
	if c := strings.ToLower(strings.TrimSpace(code)); c != "" {
		return c
	}
	return fallback
}
