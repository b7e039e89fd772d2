package resume

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractText_PlainText tests the plain-text passthrough path
func TestExtractText_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer storage-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("John Doe\nSoftware Engineer"))
	}))
	defer srv.Close()

	e := NewExtractor("storage-token", nil)
	text, err := e.ExtractText(context.Background(), srv.URL+"/resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer", text)
}

// TestExtractText_EmptyDocument tests that an empty document is empty text, not an error
func TestExtractText_EmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
	}))
	defer srv.Close()

	e := NewExtractor("", nil)
	text, err := e.ExtractText(context.Background(), srv.URL+"/empty.pdf")
	require.NoError(t, err)
	assert.Empty(t, text)
}

// TestExtractText_DownloadError tests that a non-success status carries the provider status line
func TestExtractText_DownloadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such object", http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewExtractor("tok", nil)
	_, err := e.ExtractText(context.Background(), srv.URL+"/missing.pdf")
	require.Error(t, err)

	var dlErr *DownloadError
	require.True(t, errors.As(err, &dlErr))
	assert.Contains(t, dlErr.Status, "403")
	assert.Contains(t, dlErr.Error(), "403 Forbidden")
}

// TestExtractText_GarbageBytes tests that unparsable bytes yield an ExtractionError
func TestExtractText_GarbageBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("this is not a pdf"))
	}))
	defer srv.Close()

	e := NewExtractor("", nil)
	_, err := e.ExtractText(context.Background(), srv.URL+"/broken.pdf")
	require.Error(t, err)

	var exErr *ExtractionError
	require.True(t, errors.As(err, &exErr))
}

// TestExtractText_Truncation tests the character budget
func TestExtractText_Truncation(t *testing.T) {
	long := strings.Repeat("resume ", 5000) // well over MaxTextChars
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(long))
	}))
	defer srv.Close()

	e := NewExtractor("", nil)
	text, err := e.ExtractText(context.Background(), srv.URL+"/long.txt")
	require.NoError(t, err)
	assert.Len(t, text, MaxTextChars)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "", truncate("", 5))
}

// TestTruncate_RuneBoundary tests that the cap never splits a multi-byte rune
func TestTruncate_RuneBoundary(t *testing.T) {
	// "é" is 2 bytes; a cap landing on its continuation byte must back up.
	got := truncate("abé", 3)
	assert.Equal(t, "ab", got)
	assert.True(t, utf8.ValidString(got))

	// A cap landing on a rune start keeps the full prefix.
	assert.Equal(t, "abé", truncate("abéc", 4))
}

// TestExtractFromBytes_RuneBoundary tests the budget against multi-byte text
func TestExtractFromBytes_RuneBoundary(t *testing.T) {
	text := strings.Repeat("a", MaxTextChars-1) + "é"
	got, err := ExtractFromBytes("text/plain", []byte(text))
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, MaxTextChars-1)
}
