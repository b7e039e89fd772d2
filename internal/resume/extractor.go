// Package resume downloads a candidate's resume from object storage and
// converts it to bounded plain text for prompt construction.
package resume

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/career-compass/internal/fetch"
)

// MaxTextChars caps extracted resume text. Anything beyond this adds prompt
// cost without adding signal.
const MaxTextChars = 15000

// Extractor fetches resume documents and extracts their text.
type Extractor struct {
	storageToken string
	httpClient   *http.Client
}

// NewExtractor creates an Extractor. storageToken is sent as a bearer
// credential to the storage backend when non-empty. client may be nil.
func NewExtractor(storageToken string, client *http.Client) *Extractor {
	return &Extractor{
		storageToken: storageToken,
		httpClient:   client,
	}
}

// ExtractText downloads the document at resumeURL and returns its plain
// text, truncated to MaxTextChars. An empty document yields empty text,
// not an error; downstream stages must tolerate empty resume text.
func (e *Extractor) ExtractText(ctx context.Context, resumeURL string) (string, error) {
	opts := fetch.DefaultOptions()
	opts.Client = e.httpClient
	if e.storageToken != "" {
		opts.Headers = map[string]string{"Authorization": "Bearer " + e.storageToken}
	}

	result, err := fetch.URL(ctx, resumeURL, opts)
	if err != nil {
		status := ""
		if result != nil {
			status = result.Status
		}
		return "", &DownloadError{URL: resumeURL, Status: status, Cause: err}
	}

	text, err := extractText(result.ContentType, result.Body)
	if err != nil {
		return "", err
	}

	log.Printf("[resume] extracted %d chars from %s", len(text), resumeURL)
	return truncate(text, MaxTextChars), nil
}

// ExtractFromBytes converts an already-uploaded document to plain text,
// truncated to MaxTextChars. Used by the direct-upload route where no
// storage fetch is involved.
func ExtractFromBytes(contentType string, data []byte) (string, error) {
	text, err := extractText(contentType, data)
	if err != nil {
		return "", err
	}
	return truncate(text, MaxTextChars), nil
}

// extractText converts document bytes to plain text based on content type.
// PDF is the storage default when the backend reports a generic type.
func extractText(contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	if strings.HasPrefix(contentType, "text/plain") {
		return string(data), nil
	}

	return extractPDFText(data)
}

// extractPDFText extracts text from in-memory PDF bytes.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with unusual encodings are skipped rather than
			// failing the whole document.
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
