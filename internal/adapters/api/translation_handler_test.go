package api

import (
	"net/http"
	"testing"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/translation"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTranslationHandler_Translate(t *testing.T) {
	h := newTestHarness(t)
	h.translator.EXPECT().Translate(mock.Anything, ports.TranslationQuery{Text: "hello", SourceLang: "en", TargetLang: "ta"}).Return("வணக்கம்", nil).Once()

	w := h.postJSON(t, "/api/v1/translate", map[string]string{"text": "hello", "targetLang": "ta"})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[TranslateResponse](t, w)
	assert.Equal(t, cache.SourceRemote, response.Source)
	assert.Equal(t, translation.Result{Text: "hello", TranslatedText: "வணக்கம்", SourceLang: "en", TargetLang: "ta"}, response.Result)

	again := decode[TranslateResponse](t, h.postJSON(t, "/api/v1/translate", map[string]string{"text": "hello", "sourceLang": "en", "targetLang": "ta"}))
	assert.Equal(t, cache.SourceCache, again.Source)
}

func TestTranslationHandler_Translate_RemoteFailureCarriesFallback(t *testing.T) {
	h := newTestHarness(t)
	h.translator.EXPECT().Translate(mock.Anything, mock.Anything).Return("", errors.NewRemoteUnavailableError("translation returned status 500", nil)).Once()

	w := h.postJSON(t, "/api/v1/translate", map[string]string{"text": "Irrigate tomorrow"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	response := decode[TranslationErrorResponse](t, w)
	assert.Equal(t, "Irrigate tomorrow", response.Fallback)
	assert.Equal(t, "REMOTE_UNAVAILABLE", response.Code)
	assert.Equal(t, 0, decode[HealthResponse](t, h.get("/health")).Cache["translation"])
}

func TestTranslationHandler_Translate_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		body      interface{}
		wantError string
	}{
		{"EmptyBody", nil, "text parameter is required"},
		{"MissingText", map[string]string{"targetLang": "hi"}, "text parameter is required"},
		{"BadLanguageCode", map[string]string{"text": "hello", "sourceLang": "english"}, "sourceLang is invalid"},
		{"NotJSON", "just text", "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)

			w := h.postJSON(t, "/api/v1/translate", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestTranslationHandler_Synthesize(t *testing.T) {
	h := newTestHarness(t)
	h.speech.EXPECT().Synthesize(mock.Anything, ports.SpeechQuery{Text: "namaste", Language: "hi", Voice: "female"}).
		Return(&ports.SpeechAudio{AudioContent: "SUQzBA==", Format: "mp3"}, nil).Once()

	w := h.postJSON(t, "/api/v1/tts", map[string]string{"text": "namaste"})

	assert.Equal(t, http.StatusOK, w.Code)
	speech := decode[translation.Speech](t, w)
	assert.Equal(t, "SUQzBA==", speech.AudioContent)
	assert.Equal(t, "mp3", speech.Format)
}

func TestTranslationHandler_Synthesize_Failure(t *testing.T) {
	h := newTestHarness(t)
	h.speech.EXPECT().Synthesize(mock.Anything, mock.Anything).Return(nil, errors.NewRemoteUnavailableError("tts returned status 502", nil)).Once()

	w := h.postJSON(t, "/api/v1/tts", map[string]string{"text": "namaste", "language": "pa"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "REMOTE_UNAVAILABLE", decode[ErrorResponse](t, w).Code)
}
