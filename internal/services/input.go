package services

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// ResumeInput is the canonical form a resume takes before prompt
// assembly: exactly one of inline text or a (media type, base64 payload)
// pair is set.
type ResumeInput struct {
	text     string
	mimeType string
	data     string
}

func (r ResumeInput) IsFile() bool {
	return r.mimeType != ""
}

func (r ResumeInput) Text() string {
	return r.text
}

func (r ResumeInput) MimeType() string {
	return r.mimeType
}

// Data returns the base64-encoded file payload for file inputs.
func (r ResumeInput) Data() string {
	return r.data
}

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
)

// NormalizeResumeText builds a text-mode ResumeInput from pasted resume
// text. Whitespace-only input fails with ErrMissingInput.
func NormalizeResumeText(text string) (ResumeInput, error) {
	if strings.TrimSpace(text) == "" {
		return ResumeInput{}, fmt.Errorf("resume text: %w", ErrMissingInput)
	}
	return ResumeInput{text: text}, nil
}

// NormalizeResumeFile builds a file-mode ResumeInput from an uploaded
// file. PDFs stay binary (the model reads them as an inline attachment);
// plain text files are decoded into text mode. Any other media type is
// rejected before a model call can happen.
func NormalizeResumeFile(filename, mimeType, base64Data string) (ResumeInput, error) {
	if strings.TrimSpace(base64Data) == "" {
		return ResumeInput{}, fmt.Errorf("resume file: %w", ErrMissingInput)
	}

	switch classifyResumeFile(filename, mimeType) {
	case mimePDF:
		// Validate the payload up front so a bad upload fails here,
		// not inside the generation client.
		if _, err := base64.StdEncoding.DecodeString(base64Data); err != nil {
			return ResumeInput{}, fmt.Errorf("%w: %v", ErrFileRead, err)
		}
		return ResumeInput{mimeType: mimePDF, data: base64Data}, nil
	case mimeText:
		decoded, err := base64.StdEncoding.DecodeString(base64Data)
		if err != nil {
			return ResumeInput{}, fmt.Errorf("%w: %v", ErrFileRead, err)
		}
		return NormalizeResumeText(string(decoded))
	default:
		return ResumeInput{}, fmt.Errorf("%w (got %q)", ErrUnsupportedFormat, mimeType)
	}
}

func classifyResumeFile(filename, mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		if parsed, _, err := mime.ParseMediaType(mt); err == nil {
			mt = parsed
		} else {
			mt = strings.TrimSpace(mt[:i])
		}
	}

	switch mt {
	case mimePDF:
		return mimePDF
	case mimeText:
		return mimeText
	}

	// Fall back to the extension when the declared type is absent or
	// generic (browsers sometimes send application/octet-stream).
	if mt == "" || mt == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".pdf":
			return mimePDF
		case ".txt":
			return mimeText
		}
	}

	return ""
}
