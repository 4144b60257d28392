package models

// ATSAnalysis is the structured result of scoring a resume against a
// job description. Score is whatever the model reported (0-100 by
// instruction, deliberately not clamped here).
type ATSAnalysis struct {
	Score              float64  `json:"score"`
	MissingKeywords    []string `json:"missingKeywords"`
	FormattingIssues   []string `json:"formattingIssues"`
	ContentSuggestions []string `json:"contentSuggestions"`
	Summary            string   `json:"summary"`
}

type SkillGapAnalysis struct {
	MatchScore    float64        `json:"matchScore"`
	MissingSkills []string       `json:"missingSkills"`
	StrongSkills  []string       `json:"strongSkills"`
	LearningPath  []LearningWeek `json:"learningPath"`
}

type LearningWeek struct {
	Week       float64  `json:"week"`
	Topic      string   `json:"topic"`
	Resources  []string `json:"resources"`
	ActionItem string   `json:"actionItem"`
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatTurn is one message in an interview session.
type ChatTurn struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
