package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParsedProfile_FullPayload(t *testing.T) {
	raw := `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "+1 555 0100",
		"targetRole": "Frontend Developer",
		"skills": ["React", "TypeScript"],
		"education": [{"degree": "B.Tech", "institution": "IIT", "year": "2019", "score": "8.5"}],
		"experience": [{"role": "Engineer", "company": "Acme", "duration": "3 years", "description": "Built UIs"}],
		"projects": [{"title": "Dashboard", "description": "Analytics UI", "techStack": "React, D3"}]
	}`

	profile := DecodeParsedProfile(raw)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Frontend Developer", profile.TargetRole)
	assert.Equal(t, []string{"React", "TypeScript"}, profile.Skills)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "B.Tech", profile.Education[0].Degree)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Acme", profile.Experience[0].Company)
	require.Len(t, profile.Projects, 1)
	assert.Equal(t, "React, D3", profile.Projects[0].TechStack)
}

func TestDecodeParsedProfile_MissingFieldsDefault(t *testing.T) {
	profile := DecodeParsedProfile(`{"name": "Jane Doe"}`)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "", profile.Email)
	assert.Equal(t, "", profile.TargetRole)
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Projects)
}

func TestDecodeParsedProfile_UnparseableBecomesEmpty(t *testing.T) {
	profile := DecodeParsedProfile("the model rambled instead of returning JSON")

	assert.Equal(t, "", profile.Name)
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
}

func TestDecodeParsedProfile_WrongTypesDefault(t *testing.T) {
	profile := DecodeParsedProfile(`{"name": 42, "skills": "React", "education": "none"}`)

	assert.Equal(t, "", profile.Name)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Education)
}

func TestDecodeATSAnalysis_FullPayload(t *testing.T) {
	raw := `{
		"score": 82,
		"missingKeywords": ["Kubernetes"],
		"formattingIssues": [],
		"contentSuggestions": ["Quantify achievements"],
		"summary": "Strong match overall."
	}`

	analysis := DecodeATSAnalysis(raw)

	assert.Equal(t, float64(82), analysis.Score)
	assert.Equal(t, []string{"Kubernetes"}, analysis.MissingKeywords)
	assert.NotNil(t, analysis.FormattingIssues)
	assert.Equal(t, "Strong match overall.", analysis.Summary)
}

func TestDecodeATSAnalysis_EmptySummaryGetsFallback(t *testing.T) {
	analysis := DecodeATSAnalysis(`{"score": 50}`)

	assert.Equal(t, float64(50), analysis.Score)
	assert.Equal(t, fallbackATSSummary, analysis.Summary)
	assert.NotNil(t, analysis.MissingKeywords)
	assert.NotNil(t, analysis.FormattingIssues)
	assert.NotNil(t, analysis.ContentSuggestions)
}

func TestDecodeATSAnalysis_ScorePassedThroughUnclamped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "above range", raw: `{"score": 130, "summary": "ok"}`, want: 130},
		{name: "negative", raw: `{"score": -5, "summary": "ok"}`, want: -5},
		{name: "fractional", raw: `{"score": 82.5, "summary": "ok"}`, want: 82.5},
		{name: "absent", raw: `{"summary": "ok"}`, want: 0},
		{name: "wrong type", raw: `{"score": "high", "summary": "ok"}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeATSAnalysis(tt.raw).Score)
		})
	}
}

func TestDecodeATSAnalysis_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"score\": 70, \"summary\": \"fenced\"}\n```"

	analysis := DecodeATSAnalysis(raw)

	assert.Equal(t, float64(70), analysis.Score)
	assert.Equal(t, "fenced", analysis.Summary)
}

func TestDecodeSkillGapAnalysis_FullPayload(t *testing.T) {
	raw := `{
		"matchScore": 65,
		"missingSkills": ["Docker", "Kubernetes"],
		"strongSkills": ["Go"],
		"learningPath": [
			{"week": 1, "topic": "Docker basics", "resources": ["docs"], "actionItem": "Containerize a service"}
		]
	}`

	analysis := DecodeSkillGapAnalysis(raw)

	assert.Equal(t, float64(65), analysis.MatchScore)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, analysis.MissingSkills)
	require.Len(t, analysis.LearningPath, 1)
	assert.Equal(t, float64(1), analysis.LearningPath[0].Week)
	assert.Equal(t, "Docker basics", analysis.LearningPath[0].Topic)
	assert.Equal(t, []string{"docs"}, analysis.LearningPath[0].Resources)
}

func TestDecodeSkillGapAnalysis_MissingFieldsDefault(t *testing.T) {
	analysis := DecodeSkillGapAnalysis(`{}`)

	assert.Equal(t, float64(0), analysis.MatchScore)
	assert.NotNil(t, analysis.MissingSkills)
	assert.Empty(t, analysis.MissingSkills)
	assert.NotNil(t, analysis.StrongSkills)
	assert.NotNil(t, analysis.LearningPath)
	assert.Empty(t, analysis.LearningPath)
}

func TestDecodeSkillGapAnalysis_LearningWeekDefaults(t *testing.T) {
	analysis := DecodeSkillGapAnalysis(`{"learningPath": [{"topic": "SQL"}]}`)

	require.Len(t, analysis.LearningPath, 1)
	week := analysis.LearningPath[0]
	assert.Equal(t, float64(0), week.Week)
	assert.Equal(t, "SQL", week.Topic)
	assert.NotNil(t, week.Resources)
	assert.Empty(t, week.Resources)
	assert.Equal(t, "", week.ActionItem)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare object", in: `{"a": 1}`, want: `{"a": 1}`},
		{name: "fenced object", in: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "prose around object", in: `Here you go: {"a": 1} hope it helps`, want: `{"a": 1}`},
		{name: "array", in: `[1, 2, 3]`, want: `[1, 2, 3]`},
		{name: "no json", in: "nothing here", want: "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
