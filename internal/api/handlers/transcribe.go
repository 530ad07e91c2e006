package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "groq-scribe/internal/api/errors"
	"groq-scribe/internal/api/middleware"
	"groq-scribe/internal/config"
	"groq-scribe/internal/metrics"
	"groq-scribe/internal/transcriber"
)

// TranscribeResponse is the success body of POST /api/transcribe. An empty
// transcript is still a success: {"text": ""}.
type TranscribeResponse struct {
	Text string `json:"text"`
}

// TranscribeHandler relays uploaded audio to the transcription service.
// Each request is fully independent; the handler holds only immutable
// collaborators.
type TranscribeHandler struct {
	transcriber transcriber.Transcriber
	language    string
	recorder    *metrics.Recorder
	logger      *slog.Logger
}

// NewTranscribeHandler creates a new transcribe handler. language is the
// default source language, overridable per request via the "language" form
// field.
func NewTranscribeHandler(t transcriber.Transcriber, language string, recorder *metrics.Recorder, logger *slog.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		transcriber: t,
		language:    language,
		recorder:    recorder,
		logger:      logger,
	}
}

// Transcribe handles POST /api/transcribe.
//
// Request: multipart/form-data with a required "audio" file field and an
// optional "language" field. Responses are always JSON: {"text": ...} on
// success, {"error": ...} on any failure. A downstream failure is terminal
// for the request; the client resubmits if it wants a retry.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		h.recorder.RecordOutcome(metrics.OutcomeRejected)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			middleware.HandleError(c, apierrors.NewPayloadTooLargeError("File too large"))
			return
		}
		middleware.HandleError(c, apierrors.NewBadRequestError("No file uploaded"))
		return
	}
	defer file.Close()

	language := h.language
	if override := c.PostForm("language"); override != "" {
		if err := config.ValidateLanguage(override); err != nil {
			h.recorder.RecordOutcome(metrics.OutcomeRejected)
			middleware.HandleError(c, apierrors.NewBadRequestError("Invalid language tag"))
			return
		}
		language = override
	}

	h.recorder.ObserveUploadSize(header.Size)

	start := time.Now()
	text, err := h.transcriber.Transcribe(c.Request.Context(), transcriber.Request{
		Reader:   file,
		Filename: header.Filename,
		Language: language,
	})
	h.recorder.ObserveDuration(time.Since(start))

	if err != nil {
		h.recorder.RecordOutcome(metrics.OutcomeFailed)
		h.logger.Error("transcription failed",
			"request_id", middleware.GetRequestID(c),
			"filename", header.Filename,
			"size", header.Size,
			"error", err.Error(),
		)
		middleware.HandleError(c, apierrors.NewUpstreamError(err))
		return
	}

	h.recorder.RecordOutcome(metrics.OutcomeSuccess)
	h.logger.Info("transcription completed",
		"request_id", middleware.GetRequestID(c),
		"filename", header.Filename,
		"size", header.Size,
		"chars", len(text),
	)

	c.JSON(http.StatusOK, TranscribeResponse{Text: text})
}
