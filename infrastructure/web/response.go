// Package web formats API responses and writes them to HTTP clients.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Encoder defines behavior that can encode a data model and provide
// the content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

type httpStatus interface {
	HTTPStatus() int
}

// Respond encodes resp and writes it with the status it reports. A nil
// resp answers 204 with no body.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	// If the context has been canceled, it means the client is no longer
	// waiting for a response.
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return errors.New("client disconnected, do not send response")
	}

	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	statusCode := http.StatusOK
	if v, ok := resp.(httpStatus); ok {
		statusCode = v.HTTPStatus()
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("respond: encode: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("respond: write: %w", err)
	}

	return nil
}
