package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBody_ChunkedReadsToEnd(t *testing.T) {
	// net/http hands the handler a de-framed body with ContentLength -1.
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	r.TransferEncoding = []string{"chunked"}
	r.ContentLength = -1
	body, err := ReadBody(r, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestReadBody_ChunkedOverLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	r.TransferEncoding = []string{"chunked"}
	r.ContentLength = -1
	_, err := ReadBody(r, 4)
	assert.Error(t, err)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	r.TransferEncoding = []string{"Chunked"}
	r.ContentLength = -1
	body, err := ReadBody(r, 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestReadBody_ContentLength(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	body, err := ReadBody(r, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, string(body))
}

func TestReadBody_ReadsOnlyDeclaredLength(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello world"))
	r.ContentLength = 5
	body, err := ReadBody(r, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

func TestReadBody_MissingContentLengthIsEmpty(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ignored"))
	r.ContentLength = -1
	body, err := ReadBody(r, 0)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestReadBody_ShortBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short"))
	r.ContentLength = 50
	_, err := ReadBody(r, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadBody_OverLimit(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 100)))
	_, err := ReadBody(r, 10)
	assert.Error(t, err)
}

func TestReadBody_InvalidUTF8(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"title\":\"\xff\xfe\"}"))
	_, err := ReadBody(r, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}
