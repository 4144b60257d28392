package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/career-assistant/internal/models"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string untouched", in: "hello", max: 10, want: "hello"},
		{name: "exact length untouched", in: "hello", max: 5, want: "hello"},
		{name: "ascii truncated", in: "hello world", max: 5, want: "hello"},
		{name: "zero max", in: "hello", max: 0, want: ""},
		{name: "multibyte not split", in: "héllo", max: 2, want: "hé"},
		{name: "cjk counted as runes", in: "日本語テスト", max: 3, want: "日本語"},
		{name: "empty", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.max))
		})
	}
}

func TestBuildResumePrompt(t *testing.T) {
	pb := NewPromptBuilder()

	profile := models.UserProfile{
		Name:       "Jane Doe",
		TargetRole: "Frontend Developer",
		Skills:     []string{"React", "TypeScript"},
	}

	prompt, err := pb.BuildResumePrompt(profile, "English")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Language: English")
	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "React")
	assert.Contains(t, prompt, "ATS-friendly")
}

func TestBuildATSContents_TruncatesJobDescription(t *testing.T) {
	pb := NewPromptBuilder()

	input, err := NormalizeResumeText("some resume text")
	require.NoError(t, err)

	longJD := strings.Repeat("x", MaxJobDescriptionChars+500)
	contents, err := pb.BuildATSContents(input, longJD)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	prompt := contents[0].Parts[0].Text
	assert.Contains(t, prompt, strings.Repeat("x", MaxJobDescriptionChars))
	assert.NotContains(t, prompt, strings.Repeat("x", MaxJobDescriptionChars+1))
}

func TestBuildATSContents_TruncatesResumeText(t *testing.T) {
	pb := NewPromptBuilder()

	longResume := strings.Repeat("r", MaxResumeTextChars+1)
	input, err := NormalizeResumeText(longResume)
	require.NoError(t, err)

	contents, err := pb.BuildATSContents(input, "Need a Go developer")
	require.NoError(t, err)

	require.Len(t, contents[0].Parts, 2)
	resumePart := contents[0].Parts[1].Text
	assert.Equal(t, "Resume Content: "+strings.Repeat("r", MaxResumeTextChars), resumePart)
}

func TestBuildATSContents_FilePlacesBlobFirst(t *testing.T) {
	pb := NewPromptBuilder()

	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
	input, err := NormalizeResumeFile("resume.pdf", "application/pdf", payload)
	require.NoError(t, err)

	contents, err := pb.BuildATSContents(input, "Need a Go developer")
	require.NoError(t, err)
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)

	blob := contents[0].Parts[0].InlineData
	require.NotNil(t, blob, "first part should be the file attachment")
	assert.Equal(t, "application/pdf", blob.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), blob.Data)

	assert.Contains(t, contents[0].Parts[1].Text, "Job Description: Need a Go developer")
}

func TestBuildParseContents_TextLeadsWithInstruction(t *testing.T) {
	pb := NewPromptBuilder()

	input, err := NormalizeResumeText("Jane Doe, React developer")
	require.NoError(t, err)

	contents, err := pb.BuildParseContents(input)
	require.NoError(t, err)
	require.Len(t, contents[0].Parts, 2)

	assert.Contains(t, contents[0].Parts[0].Text, "extract the following information")
	assert.Equal(t, "Resume Text: Jane Doe, React developer", contents[0].Parts[1].Text)
}

func TestBuildParseContents_FilePlacesBlobFirst(t *testing.T) {
	pb := NewPromptBuilder()

	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fake"))
	input, err := NormalizeResumeFile("resume.pdf", "application/pdf", payload)
	require.NoError(t, err)

	contents, err := pb.BuildParseContents(input)
	require.NoError(t, err)
	require.Len(t, contents[0].Parts, 2)

	require.NotNil(t, contents[0].Parts[0].InlineData)
	assert.Contains(t, contents[0].Parts[1].Text, "extract the following information")
}

func TestBuildSkillGapPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildSkillGapPrompt([]string{"HTML", "CSS"}, "Backend Engineer")

	assert.Contains(t, prompt, `"Backend Engineer"`)
	assert.Contains(t, prompt, "HTML, CSS")
	assert.Contains(t, prompt, "4-week learning path")
}

func TestBuildInterviewContents_FlattensHistoryInOrder(t *testing.T) {
	pb := NewPromptBuilder()

	history := []models.ChatTurn{
		{Role: models.ChatRoleModel, Text: "Tell me about yourself."},
		{Role: models.ChatRoleUser, Text: "I build backend services in Go."},
	}

	contents := pb.BuildInterviewContents("Backend Engineer", history, "What about databases?")
	require.Len(t, contents, 1)

	parts := contents[0].Parts
	require.Len(t, parts, 4)

	assert.Contains(t, parts[0].Text, "role of Backend Engineer")
	assert.Equal(t, "model: Tell me about yourself.", parts[1].Text)
	assert.Equal(t, "user: I build backend services in Go.", parts[2].Text)
	assert.Equal(t, "user: What about databases?", parts[3].Text)
}
