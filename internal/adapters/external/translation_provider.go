package external

import (
	"context"
	"net/http"
	"strings"

	"farmerassist.app/internal/ports"
)

const (
	translationService = "translation service"
	speechService      = "text-to-speech service"
)

// TranslationProviderAdapter implements TranslationProvider over a JSON POST API
type TranslationProviderAdapter struct {
	apiKey  string
	baseURL string
	call    remoteCall
}

// SpeechProviderAdapter implements SpeechProvider over a JSON POST API
type SpeechProviderAdapter struct {
	apiKey  string
	baseURL string
	call    remoteCall
}

// LanguageServiceParams holds parameters shared by the translation and speech adapters
type LanguageServiceParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type translationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResponse represents the translation API response
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

type speechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// SpeechResponse represents the text-to-speech API response
type SpeechResponse struct {
	AudioContent string `json:"audio_content"`
	Format       string `json:"format"`
	SampleRate   int    `json:"sample_rate"`
}

func newLanguageCall(service string, params LanguageServiceParams) remoteCall {
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}
	return remoteCall{service: service, client: client, logger: params.Logger}
}

// NewTranslationProviderAdapter creates a new translation adapter
func NewTranslationProviderAdapter(params LanguageServiceParams) *TranslationProviderAdapter {
	return &TranslationProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		call:    newLanguageCall(translationService, params),
	}
}

// Translate returns the translated text
func (p *TranslationProviderAdapter) Translate(ctx context.Context, query ports.TranslationQuery) (string, error) {
	var resp TranslationResponse
	err := p.call.postJSON(ctx, p.baseURL+"/translate", p.apiKey, translationRequest{
		Text:           query.Text,
		SourceLanguage: query.SourceLang,
		TargetLanguage: query.TargetLang,
	}, &resp)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(resp.TranslatedText) == "" {
		return "", malformed(translationService, "is missing translated_text")
	}

	return resp.TranslatedText, nil
}

// NewSpeechProviderAdapter creates a new text-to-speech adapter
func NewSpeechProviderAdapter(params LanguageServiceParams) *SpeechProviderAdapter {
	return &SpeechProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		call:    newLanguageCall(speechService, params),
	}
}

// Synthesize returns base64 encoded audio for the text
func (p *SpeechProviderAdapter) Synthesize(ctx context.Context, query ports.SpeechQuery) (*ports.SpeechAudio, error) {
	var resp SpeechResponse
	err := p.call.postJSON(ctx, p.baseURL+"/synthesize", p.apiKey, speechRequest{
		Text:     query.Text,
		Language: query.Language,
		Voice:    query.Voice,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AudioContent == "" {
		return nil, malformed(speechService, "is missing audio_content")
	}

	format := resp.Format
	if format == "" {
		format = "mp3"
	}

	return &ports.SpeechAudio{
		AudioContent: resp.AudioContent,
		Format:       format,
		SampleRate:   resp.SampleRate,
	}, nil
}
