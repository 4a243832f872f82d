package resume

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

const (
	// MaxFileSize bounds uploaded PDFs to 5 MiB.
	MaxFileSize = 5 << 20
	maxPages    = 10
	minTextLen  = 50
)

var (
	ErrEmptyFile    = errors.New("uploaded file is empty")
	ErrFileTooLarge = errors.New("file exceeds the 5MB size limit")
	ErrNoText       = errors.New("no readable text found in PDF, it may be a scanned image")
	ErrTextTooShort = errors.New("extracted text is too short to be a valid resume")
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	invisibleRunes = regexp.MustCompile("[\u200B-\u200D\uFEFF]")
)

// ExtractText pulls plain text out of a PDF buffer. Only the first ten
// pages are read. The buffer never touches disk.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > MaxFileSize {
		return "", ErrFileTooLarge
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}
	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			// a broken page should not sink the whole document
			continue
		}
		b.WriteString(txt)
		b.WriteByte(' ')
	}
	text := normalizeText(b.String())
	if text == "" {
		return "", ErrNoText
	}
	if len(text) < minTextLen {
		return "", ErrTextTooShort
	}
	return text, nil
}

func normalizeText(s string) string {
	s = invisibleRunes.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
