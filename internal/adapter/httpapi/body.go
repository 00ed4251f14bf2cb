package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ReadBody returns the request payload. Chunked bodies arrive already
// de-framed by net/http and are read to the end; otherwise exactly
// Content-Length bytes are read. limit caps the payload size when positive.
func ReadBody(r *http.Request, limit int64) ([]byte, error) {
	var (
		body []byte
		err  error
	)

	switch {
	case transferChunked(r.TransferEncoding):
		body, err = readAllLimited(r.Body, limit)
	default:
		body, err = readContentLength(r.Body, r.ContentLength, limit)
	}
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(body) {
		return nil, errors.New("body is not valid UTF-8")
	}
	return body, nil
}

func readContentLength(r io.Reader, length, limit int64) ([]byte, error) {
	if length <= 0 || r == nil {
		return []byte{}, nil
	}
	if limit > 0 && length > limit {
		return nil, errors.Errorf("content length %d exceeds limit of %d bytes", length, limit)
	}

	body := make([]byte, length)
	n, err := io.ReadFull(r, body)
	if err != nil {
		return nil, errors.Wrapf(err, "body shorter than declared content length: read %d of %d bytes", n, length)
	}
	return body, nil
}

func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	if r == nil {
		return []byte{}, nil
	}
	if limit <= 0 {
		body, err := io.ReadAll(r)
		return body, errors.Wrap(err, "read body")
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if n > limit {
		return nil, errors.Errorf("body exceeds limit of %d bytes", limit)
	}
	return buf.Bytes(), nil
}

func transferChunked(encodings []string) bool {
	for _, te := range encodings {
		if strings.EqualFold(strings.TrimSpace(te), "chunked") {
			return true
		}
	}
	return false
}
