package services

import "google.golang.org/genai"

// Declared output shapes for schema-bound generation. The upstream
// model is constrained to emit JSON matching these; the response
// normalizer still re-validates field by field.

func ParsedProfileSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":       {Type: genai.TypeString},
			"email":      {Type: genai.TypeString},
			"phone":      {Type: genai.TypeString},
			"targetRole": {Type: genai.TypeString},
			"skills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"degree":      {Type: genai.TypeString},
						"institution": {Type: genai.TypeString},
						"year":        {Type: genai.TypeString},
						"score":       {Type: genai.TypeString},
					},
				},
			},
			"experience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":        {Type: genai.TypeString},
						"company":     {Type: genai.TypeString},
						"duration":    {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
					},
				},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":       {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"techStack":   {Type: genai.TypeString},
					},
				},
			},
		},
	}
}

func ATSAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeNumber,
				Description: "Match score from 0 to 100",
			},
			"missingKeywords": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"formattingIssues": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"contentSuggestions": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "Brief overall feedback",
			},
		},
		Required: []string{"score", "missingKeywords", "formattingIssues", "contentSuggestions", "summary"},
	}
}

func SkillGapSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore": {Type: genai.TypeNumber},
			"missingSkills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"strongSkills": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"learningPath": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"week":  {Type: genai.TypeNumber},
						"topic": {Type: genai.TypeString},
						"resources": {
							Type:  genai.TypeArray,
							Items: &genai.Schema{Type: genai.TypeString},
						},
						"actionItem": {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
