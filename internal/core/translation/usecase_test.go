package translation

import (
	"context"
	"testing"
	"time"

	cachestore "farmerassist.app/internal/adapters/cache"
	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/mocks"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	translator *mocks.TranslationProvider
	speech     *mocks.SpeechProvider
	metrics    *mocks.CacheMetrics
}

func newTestUseCase(t *testing.T, store ports.CacheStore) (*UseCase, testDeps) {
	t.Helper()
	deps := testDeps{
		translator: mocks.NewTranslationProvider(t),
		speech:     mocks.NewSpeechProvider(t),
		metrics:    mocks.NewCacheMetrics(t),
	}
	deps.metrics.EXPECT().RecordOutcome(mock.Anything, mock.Anything).Maybe()
	deps.metrics.EXPECT().RecordFetch(mock.Anything, mock.Anything, mock.Anything).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Translator: deps.translator,
		Speech:     deps.speech,
		Cache: cache.Dependencies{
			Store:   store,
			Logger:  mocks.AllowAnyLogs(mocks.NewLogger(t)),
			Metrics: deps.metrics,
		},
		Timeout:       time.Second,
		SpeechTimeout: time.Second,
		Defaults:      testDefaults,
	})
	require.NoError(t, err)
	return uc, deps
}

func newTranslationStore() *cachestore.MemoryStore {
	return cachestore.NewMemoryStore(cachestore.NamespaceTTLs{ports.NamespaceTranslation: 24 * time.Hour})
}

func TestUseCase_Translate_AppliesDefaultsAndCaches(t *testing.T) {
	uc, deps := newTestUseCase(t, newTranslationStore())
	deps.translator.EXPECT().Translate(mock.Anything, ports.TranslationQuery{
		Text: "hello", SourceLang: "en", TargetLang: "hi",
	}).Return("नमस्ते", nil).Once()

	first, err := uc.Translate(context.Background(), Request{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, cache.SourceRemote, first.Source)
	assert.Equal(t, Result{Text: "hello", TranslatedText: "नमस्ते", SourceLang: "en", TargetLang: "hi"}, first.Value)

	second, err := uc.Translate(context.Background(), Request{Text: "hello", SourceLang: "en", TargetLang: "hi"})
	require.NoError(t, err)
	assert.Equal(t, cache.SourceCache, second.Source)
	assert.Equal(t, first.Value, second.Value)
}

func TestUseCase_Translate_TargetsDoNotCollide(t *testing.T) {
	uc, deps := newTestUseCase(t, newTranslationStore())
	deps.translator.EXPECT().Translate(mock.Anything, ports.TranslationQuery{Text: "hello", SourceLang: "en", TargetLang: "hi"}).Return("नमस्ते", nil).Once()
	deps.translator.EXPECT().Translate(mock.Anything, ports.TranslationQuery{Text: "hello", SourceLang: "en", TargetLang: "ta"}).Return("வணக்கம்", nil).Once()

	hindi, err := uc.Translate(context.Background(), Request{Text: "hello", TargetLang: "hi"})
	require.NoError(t, err)
	tamil, err := uc.Translate(context.Background(), Request{Text: "hello", TargetLang: "ta"})
	require.NoError(t, err)

	assert.Equal(t, "नमस्ते", hindi.Value.TranslatedText)
	assert.Equal(t, "வணக்கம்", tamil.Value.TranslatedText)
	assert.Equal(t, cache.SourceRemote, tamil.Source)
}

func TestUseCase_Translate_FailureSurfacesWithoutPut(t *testing.T) {
	store := mocks.NewCacheStore(t)
	store.EXPECT().Get(mock.Anything, ports.NamespaceTranslation, "hello|en|hi").Return(nil, false).Once()

	uc, deps := newTestUseCase(t, store)
	deps.translator.EXPECT().Translate(mock.Anything, mock.Anything).Return("", errors.NewRemoteUnavailableError("translation returned status 503", nil)).Once()

	result, err := uc.Translate(context.Background(), Request{Text: "hello"})

	assert.Nil(t, result)
	assert.True(t, errors.IsRemoteError(err))
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Translate_MissingTextNeverFetches(t *testing.T) {
	uc, deps := newTestUseCase(t, mocks.NewCacheStore(t))

	_, err := uc.Translate(context.Background(), Request{TargetLang: "ta"})

	assert.True(t, errors.IsMissingParameterError(err))
	deps.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything)
}

func TestUseCase_Synthesize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc, deps := newTestUseCase(t, mocks.NewCacheStore(t))
		deps.speech.EXPECT().Synthesize(mock.Anything, ports.SpeechQuery{Text: "namaste", Language: "hi", Voice: "female"}).
			Return(&ports.SpeechAudio{AudioContent: "UklGRg==", Format: "wav", SampleRate: 22050}, nil).Once()

		speech, err := uc.Synthesize(context.Background(), SpeechRequest{Text: "namaste"})

		require.NoError(t, err)
		assert.Equal(t, &Speech{Text: "namaste", Language: "hi", Voice: "female", AudioContent: "UklGRg==", Format: "wav", SampleRate: 22050}, speech)
	})

	t.Run("EmptyAudioIsMalformed", func(t *testing.T) {
		uc, deps := newTestUseCase(t, mocks.NewCacheStore(t))
		deps.speech.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(&ports.SpeechAudio{}, nil).Once()

		_, err := uc.Synthesize(context.Background(), SpeechRequest{Text: "namaste"})

		assert.Equal(t, errors.ErrorTypeMalformedRemoteResponse, errors.TypeOf(err))
	})

	t.Run("TransportFailureIsRemoteUnavailable", func(t *testing.T) {
		uc, deps := newTestUseCase(t, mocks.NewCacheStore(t))
		deps.speech.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := uc.Synthesize(context.Background(), SpeechRequest{Text: "namaste", Language: "ta"})

		assert.Equal(t, errors.ErrorTypeRemoteUnavailable, errors.TypeOf(err))
	})

	t.Run("MissingText", func(t *testing.T) {
		uc, _ := newTestUseCase(t, mocks.NewCacheStore(t))

		_, err := uc.Synthesize(context.Background(), SpeechRequest{})

		assert.True(t, errors.IsMissingParameterError(err))
	})
}

func TestNewUseCase_Validation(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Speech: mocks.NewSpeechProvider(t), Defaults: testDefaults})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{
		Translator: mocks.NewTranslationProvider(t),
		Speech:     mocks.NewSpeechProvider(t),
		Defaults:   Defaults{SourceLang: "English", TargetLang: "hi"},
	})
	assert.True(t, errors.IsValidationError(err))
}
