package translation

import (
	"context"
	"time"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
)

const (
	integrationName = "translation"
	speechName      = "tts"
)

type UseCase struct {
	orchestrator *cache.Orchestrator[Request, Result]
	speech       ports.SpeechProvider
	speechTime   time.Duration
	defaults     Defaults
	logger       ports.Logger
	metrics      ports.CacheMetrics
}

type UseCaseDependencies struct {
	Translator    ports.TranslationProvider
	Speech        ports.SpeechProvider
	Cache         cache.Dependencies
	Timeout       time.Duration
	SpeechTimeout time.Duration
	Defaults      Defaults
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Translator == nil {
		return nil, errors.NewValidationError("translation provider is required")
	}
	if deps.Speech == nil {
		return nil, errors.NewValidationError("speech provider is required")
	}
	if !IsLanguageCode(deps.Defaults.SourceLang) || !IsLanguageCode(deps.Defaults.TargetLang) {
		return nil, errors.NewValidationError("default languages must be language codes")
	}

	orchestrator, err := cache.NewOrchestrator(cache.Integration[Request, Result]{
		Name:      integrationName,
		Namespace: ports.NamespaceTranslation,
		Timeout:   deps.Timeout,
		Validate:  Request.Validate,
		Key: func(r Request) string {
			return cache.Key(r.Key()...)
		},
		Fetch: func(ctx context.Context, r Request) (Result, error) {
			translated, err := deps.Translator.Translate(ctx, ports.TranslationQuery{
				Text:       r.Text,
				SourceLang: r.SourceLang,
				TargetLang: r.TargetLang,
			})
			if err != nil {
				return Result{}, err
			}
			return Result{
				Text:           r.Text,
				TranslatedText: translated,
				SourceLang:     r.SourceLang,
				TargetLang:     r.TargetLang,
			}, nil
		},
	}, deps.Cache)
	if err != nil {
		return nil, err
	}

	metrics := deps.Cache.Metrics
	if metrics == nil {
		metrics = noopFetchMetrics{}
	}

	return &UseCase{
		orchestrator: orchestrator,
		speech:       deps.Speech,
		speechTime:   deps.SpeechTimeout,
		defaults:     deps.Defaults,
		logger:       deps.Cache.Logger,
		metrics:      metrics,
	}, nil
}

// Translate serves a translation, from cache when fresh.
// There is no synthetic translation: remote failures are returned.
func (uc *UseCase) Translate(ctx context.Context, request Request) (*cache.Result[Result], error) {
	return uc.orchestrator.Serve(ctx, request.WithDefaults(uc.defaults))
}

// Synthesize converts text to speech. Audio is never cached.
func (uc *UseCase) Synthesize(ctx context.Context, request SpeechRequest) (*Speech, error) {
	request = request.WithDefaults(uc.defaults)
	if err := request.Validate(); err != nil {
		return nil, err
	}

	callCtx := ctx
	if uc.speechTime > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.speechTime)
		defer cancel()
	}

	start := time.Now()
	audio, err := uc.speech.Synthesize(callCtx, ports.SpeechQuery{
		Text:     request.Text,
		Language: request.Language,
		Voice:    request.Voice,
	})
	if err == nil && (audio == nil || audio.AudioContent == "") {
		err = errors.NewMalformedRemoteResponseError("speech provider returned no audio", nil)
	}
	uc.metrics.RecordFetch(speechName, err == nil, time.Since(start))

	if err != nil {
		err = cache.ClassifyRemoteError(callCtx, speechName, err)
		uc.logger.Error("Speech synthesis failed",
			ports.F("integration", speechName),
			ports.F("language", request.Language),
			ports.F("error", err.Error()))
		return nil, err
	}

	return &Speech{
		Text:         request.Text,
		Language:     request.Language,
		Voice:        request.Voice,
		AudioContent: audio.AudioContent,
		Format:       audio.Format,
		SampleRate:   audio.SampleRate,
	}, nil
}

type noopFetchMetrics struct{}

func (noopFetchMetrics) RecordOutcome(string, string) {}
func (noopFetchMetrics) RecordFetch(string, bool, time.Duration) {}
func (noopFetchMetrics) RecordSweep(int) {}
func (noopFetchMetrics) SetEntries(ports.CacheNamespace, int) {}
