package services

import (
	"encoding/json"
	"strings"

	"careerpilot/career-assistant/internal/models"
)

// Response normalization. Schema-bound calls are expected to return
// JSON, but the payload is still untrusted: fields can be absent, null,
// or the wrong kind. Every decoder here returns a fully populated value
// with per-field defaults (empty string, zero, empty slice) so callers
// never see a partial structure. Unparseable text degrades to an empty
// object rather than an error.
//
// Defaulting is applied uniformly to all three structured shapes,
// scalars included. Numeric scores are passed through unmodified; no
// range clamping happens at this boundary.

const fallbackATSSummary = "Could not analyze the resume content. Please try converting to text."

func DecodeParsedProfile(raw string) models.UserProfile {
	obj := asObject(raw)

	profile := models.UserProfile{
		Name:       strField(obj, "name"),
		Email:      strField(obj, "email"),
		Phone:      strField(obj, "phone"),
		TargetRole: strField(obj, "targetRole"),
		Skills:     strSlice(obj, "skills"),
		Education:  []models.Education{},
		Experience: []models.Experience{},
		Projects:   []models.Project{},
	}

	for _, entry := range objSlice(obj, "education") {
		profile.Education = append(profile.Education, models.Education{
			Degree:      strField(entry, "degree"),
			Institution: strField(entry, "institution"),
			Year:        strField(entry, "year"),
			Score:       strField(entry, "score"),
		})
	}
	for _, entry := range objSlice(obj, "experience") {
		profile.Experience = append(profile.Experience, models.Experience{
			Role:        strField(entry, "role"),
			Company:     strField(entry, "company"),
			Duration:    strField(entry, "duration"),
			Description: strField(entry, "description"),
		})
	}
	for _, entry := range objSlice(obj, "projects") {
		profile.Projects = append(profile.Projects, models.Project{
			Title:       strField(entry, "title"),
			Description: strField(entry, "description"),
			TechStack:   strField(entry, "techStack"),
		})
	}

	return profile
}

func DecodeATSAnalysis(raw string) models.ATSAnalysis {
	obj := asObject(raw)

	analysis := models.ATSAnalysis{
		Score:              numField(obj, "score"),
		MissingKeywords:    strSlice(obj, "missingKeywords"),
		FormattingIssues:   strSlice(obj, "formattingIssues"),
		ContentSuggestions: strSlice(obj, "contentSuggestions"),
		Summary:            strField(obj, "summary"),
	}
	if analysis.Summary == "" {
		analysis.Summary = fallbackATSSummary
	}

	return analysis
}

func DecodeSkillGapAnalysis(raw string) models.SkillGapAnalysis {
	obj := asObject(raw)

	analysis := models.SkillGapAnalysis{
		MatchScore:    numField(obj, "matchScore"),
		MissingSkills: strSlice(obj, "missingSkills"),
		StrongSkills:  strSlice(obj, "strongSkills"),
		LearningPath:  []models.LearningWeek{},
	}

	for _, entry := range objSlice(obj, "learningPath") {
		analysis.LearningPath = append(analysis.LearningPath, models.LearningWeek{
			Week:       numField(entry, "week"),
			Topic:      strField(entry, "topic"),
			Resources:  strSlice(entry, "resources"),
			ActionItem: strField(entry, "actionItem"),
		})
	}

	return analysis
}

// asObject parses raw as a JSON object, stripping markdown fences the
// model occasionally adds. Anything unparseable becomes an empty object
// so field defaulting always has a base to work from.
func asObject(raw string) map[string]any {
	cleaned := extractJSON(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

// extractJSON strips markdown code fences and isolates the outermost
// JSON object or array from surrounding prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

func strField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

func numField(obj map[string]any, key string) float64 {
	if v, ok := obj[key].(float64); ok {
		return v
	}
	return 0
}

func strSlice(obj map[string]any, key string) []string {
	out := []string{}
	items, ok := obj[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objSlice(obj map[string]any, key string) []map[string]any {
	var out []map[string]any
	items, ok := obj[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
