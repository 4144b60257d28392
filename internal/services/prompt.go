package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"careerpilot/career-assistant/internal/models"
)

// Request size bounds. Oversized inputs are truncated silently before
// prompt assembly; truncation never splits a multi-byte rune.
const (
	MaxJobDescriptionChars = 3000
	MaxResumeTextChars     = 5000
)

// Determinism levels per operation. Structured extraction and scoring
// must be repeatable; writing tasks get a little stylistic freedom.
const (
	TemperatureDeterministic float32 = 0
	TemperatureCreative      float32 = 0.3
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumePrompt creates the free-text prompt for resume generation.
func (pb *PromptBuilder) BuildResumePrompt(profile models.UserProfile, language string) (string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	return fmt.Sprintf(`Create a professional, ATS-friendly resume in Markdown format for the following profile.
Language: %s.
Profile Data: %s

Structure it with clear headers: # Name, ## Summary, ## Skills, ## Experience, ## Projects, ## Education.
Use strong action verbs. Highlight achievements.`, language, profileJSON), nil
}

// BuildParseContents assembles the multi-part request for resume
// extraction. File inputs place the binary attachment before the
// instruction text; text inputs lead with the instruction.
func (pb *PromptBuilder) BuildParseContents(input ResumeInput) ([]*genai.Content, error) {
	prompt := `Analyze the provided resume and extract the following information into a structured JSON object:
- Name
- Email
- Phone
- Education (Array of { degree, institution, year, score })
- Experience (Array of { role, company, duration, description })
- Skills (Array of strings)
- Projects (Array of { title, description, techStack })
- Target Role (Infer this from the experience or summary if not explicit)

If a field is not found, leave it as an empty string or empty array.`

	if input.IsFile() {
		blob, err := pb.blobPart(input)
		if err != nil {
			return nil, err
		}
		return []*genai.Content{genai.NewContentFromParts([]*genai.Part{
			blob,
			genai.NewPartFromText(prompt),
		}, genai.RoleUser)}, nil
	}

	return []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText("Resume Text: " + input.Text()),
	}, genai.RoleUser)}, nil
}

// BuildATSContents assembles the multi-part request for ATS scoring.
func (pb *PromptBuilder) BuildATSContents(input ResumeInput, jobDescription string) ([]*genai.Content, error) {
	systemPrompt := fmt.Sprintf(`Act as an algorithmic ATS (Applicant Tracking System) scanner.
Compare the Resume provided (in the preceding attachment or text) against the Job Description below.

SCORING RUBRIC (Strictly follow this to ensure consistency):
1. Keyword Matching (40%%): Extract key technical skills/nouns from JD and check for presence in Resume.
2. Experience Relevance (30%%): Match job titles, seniority, and industry experience.
3. Formatting & Structure (15%%): Check for clear sections, standard headers, and readability.
4. Education & Soft Skills (15%%): Check for required degrees and soft skills.

Be objective. If the input is the same, the score MUST be the same.

Job Description: %s

Return a JSON object strictly following the declared schema.`, TruncateRunes(jobDescription, MaxJobDescriptionChars))

	if input.IsFile() {
		blob, err := pb.blobPart(input)
		if err != nil {
			return nil, err
		}
		return []*genai.Content{genai.NewContentFromParts([]*genai.Part{
			blob,
			genai.NewPartFromText(systemPrompt),
		}, genai.RoleUser)}, nil
	}

	return []*genai.Content{genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(systemPrompt),
		genai.NewPartFromText("Resume Content: " + TruncateRunes(input.Text(), MaxResumeTextChars)),
	}, genai.RoleUser)}, nil
}

// BuildSkillGapPrompt creates the prompt for skill-gap analysis.
func (pb *PromptBuilder) BuildSkillGapPrompt(currentSkills []string, targetRole string) string {
	return fmt.Sprintf(`Analyze the skill gap for a user wanting to be a %q.
Current Skills: %s.

Identify missing critical skills, assign a match score, and create a 4-week learning path.`,
		targetRole, strings.Join(currentSkills, ", "))
}

// BuildInterviewContents flattens the session into ordered text parts:
// interviewer instruction first, then prior turns, then the latest user
// message. Each prior turn is tagged with its speaker.
func (pb *PromptBuilder) BuildInterviewContents(role string, history []models.ChatTurn, message string) []*genai.Content {
	parts := make([]*genai.Part, 0, len(history)+2)
	parts = append(parts, genai.NewPartFromText(fmt.Sprintf(`You are a professional Interviewer conducting an interview for the role of %s.
Ask one relevant question at a time.
Evaluate the user's previous answer briefly before moving to the next question.
Keep the tone professional but encouraging.
If the user asks for feedback, give it.`, role)))

	for _, turn := range history {
		parts = append(parts, genai.NewPartFromText(fmt.Sprintf("%s: %s", turn.Role, turn.Text)))
	}
	parts = append(parts, genai.NewPartFromText("user: "+message))

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func (pb *PromptBuilder) blobPart(input ResumeInput) (*genai.Part, error) {
	raw, err := base64.StdEncoding.DecodeString(input.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return genai.NewPartFromBytes(raw, input.MimeType()), nil
}

// TruncateRunes bounds s to at most max runes, never cutting inside a
// multi-byte character.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
