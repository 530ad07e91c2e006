package groq

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"groq-scribe/internal/transcriber"
)

func TestTranscribe_Success(t *testing.T) {
	var gotModel, gotLanguage, gotFormat, gotFilename, gotContent string

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer gsk_test_key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		gotFormat = r.FormValue("response_format")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(content)

		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "hello from the fake whisper")
	}))
	defer fake.Close()

	client := NewClient("gsk_test_key", WithBaseURL(fake.URL))

	text, err := client.Transcribe(context.Background(), transcriber.Request{
		Reader:   strings.NewReader("RIFF-fake-wav-bytes"),
		Filename: "clip.wav",
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello from the fake whisper", text)
	assert.Equal(t, "whisper-large-v3", gotModel)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, "text", gotFormat)
	assert.Equal(t, "clip.wav", gotFilename)
	assert.Equal(t, "RIFF-fake-wav-bytes", gotContent)
}

func TestTranscribe_ModelOverride(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "whisper-large-v3-turbo", r.FormValue("model"))
		io.WriteString(w, "ok")
	}))
	defer fake.Close()

	client := NewClient("gsk_test_key", WithBaseURL(fake.URL), WithModel("whisper-large-v3-turbo"))

	_, err := client.Transcribe(context.Background(), transcriber.Request{
		Reader:   strings.NewReader("bytes"),
		Filename: "clip.mp3",
	})
	require.NoError(t, err)
}

func TestTranscribe_AuthFailure(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`)
	}))
	defer fake.Close()

	client := NewClient("gsk_bad_key", WithBaseURL(fake.URL))

	_, err := client.Transcribe(context.Background(), transcriber.Request{
		Reader:   strings.NewReader("bytes"),
		Filename: "clip.wav",
	})
	require.Error(t, err)
	// The upstream message survives the error envelope.
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestTranscribe_ServerUnreachable(t *testing.T) {
	client := NewClient("gsk_test_key", WithBaseURL("http://127.0.0.1:1"))

	_, err := client.Transcribe(context.Background(), transcriber.Request{
		Reader:   strings.NewReader("bytes"),
		Filename: "clip.wav",
	})
	assert.Error(t, err)
}
