package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxPeekBytes bounds how much of a body the rate limiter will buffer.
const maxPeekBytes = 1 << 16

// peekJSONBody decodes the request body as a JSON object and restores it so
// downstream handlers can still read it.
func peekJSONBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, io.EOF
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}
