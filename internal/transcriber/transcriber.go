package transcriber

import (
	"context"
	"io"
)

// Request carries one audio payload to a transcription backend. The reader
// streams the uploaded bytes; Filename keeps the client's declared name so
// the backend can infer the container format.
type Request struct {
	Reader   io.Reader
	Filename string
	Language string
}

// Transcriber converts an audio payload to text.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}
