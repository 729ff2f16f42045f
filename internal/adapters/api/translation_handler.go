package api

import (
	"net/http"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/translation"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// TranslateRequest represents the HTTP request for translating text
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang" binding:"omitempty,langcode"`
	TargetLang string `json:"targetLang" binding:"omitempty,langcode"`
}

// SpeechRequest represents the HTTP request for text-to-speech
type SpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language" binding:"omitempty,langcode"`
	Voice    string `json:"voice" binding:"omitempty,max=32"`
}

type TranslateResponse struct {
	translation.Result
	Source cache.Source `json:"source"`
}

// TranslationErrorResponse carries the untranslated text so clients can still show something
type TranslationErrorResponse struct {
	ErrorResponse
	Fallback string `json:"fallback"`
}

// translate handles POST /api/v1/translate requests
func (s *HTTPServerAdapter) translate(c *gin.Context) {
	var httpReq TranslateRequest
	if err := bindJSON(c, &httpReq); err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.translationUseCase.Translate(c.Request.Context(), translation.Request{
		Text:       httpReq.Text,
		SourceLang: httpReq.SourceLang,
		TargetLang: httpReq.TargetLang,
	})
	if err != nil {
		if errors.IsRemoteError(err) {
			statusCode, response := statusFor(err)
			c.JSON(statusCode, TranslationErrorResponse{ErrorResponse: response, Fallback: httpReq.Text})
			return
		}
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{Result: result.Value, Source: result.Source})
}

// synthesize handles POST /api/v1/tts requests
func (s *HTTPServerAdapter) synthesize(c *gin.Context) {
	var httpReq SpeechRequest
	if err := bindJSON(c, &httpReq); err != nil {
		s.handleError(c, err)
		return
	}

	speech, err := s.translationUseCase.Synthesize(c.Request.Context(), translation.SpeechRequest{
		Text:     httpReq.Text,
		Language: httpReq.Language,
		Voice:    httpReq.Voice,
	})
	if err != nil {
		s.logger.Debug("Speech request failed", ports.F("language", httpReq.Language), ports.F("error", err.Error()))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, speech)
}
