package services

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResumeText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "plain text accepted", text: "Jane Doe, 5 years React experience"},
		{name: "empty rejected", text: "", wantErr: ErrMissingInput},
		{name: "whitespace only rejected", text: "   \n\t  ", wantErr: ErrMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := NormalizeResumeText(tt.text)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, input.IsFile())
			assert.Equal(t, tt.text, input.Text())
		})
	}
}

func TestNormalizeResumeFile_PDF(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))

	input, err := NormalizeResumeFile("resume.pdf", "application/pdf", payload)
	require.NoError(t, err)

	assert.True(t, input.IsFile())
	assert.Equal(t, "application/pdf", input.MimeType())
	assert.Equal(t, payload, input.Data())
	assert.Empty(t, input.Text())
}

func TestNormalizeResumeFile_PlainTextDecodesToText(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("Jane Doe\nReact developer"))

	input, err := NormalizeResumeFile("resume.txt", "text/plain", payload)
	require.NoError(t, err)

	assert.False(t, input.IsFile())
	assert.Equal(t, "Jane Doe\nReact developer", input.Text())
}

func TestNormalizeResumeFile_UnsupportedFormat(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("not a resume"))

	tests := []struct {
		name     string
		filename string
		mimeType string
	}{
		{name: "png", filename: "photo.png", mimeType: "image/png"},
		{name: "docx extension without known type", filename: "resume.docx", mimeType: "application/octet-stream"},
		{name: "html", filename: "resume.html", mimeType: "text/html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeResumeFile(tt.filename, tt.mimeType, payload)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestNormalizeResumeFile_ExtensionFallback(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))

	input, err := NormalizeResumeFile("resume.pdf", "application/octet-stream", payload)
	require.NoError(t, err)
	assert.True(t, input.IsFile())
	assert.Equal(t, "application/pdf", input.MimeType())
}

func TestNormalizeResumeFile_BadBase64(t *testing.T) {
	_, err := NormalizeResumeFile("resume.pdf", "application/pdf", "!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrFileRead)
}

func TestNormalizeResumeFile_EmptyPayload(t *testing.T) {
	_, err := NormalizeResumeFile("resume.pdf", "application/pdf", "")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestNormalizeResumeFile_MimeTypeWithParameters(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("Jane Doe"))

	input, err := NormalizeResumeFile("resume.txt", "text/plain; charset=utf-8", payload)
	require.NoError(t, err)
	assert.False(t, input.IsFile())
	assert.Equal(t, "Jane Doe", input.Text())
}
