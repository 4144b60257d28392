package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"careerpilot/career-assistant/internal/models"
)

// AssistantService orchestrates the generation contract for every
// career-assistant operation: normalize input, build the prompt (and
// schema when the output is structured), call the model once, and
// normalize the response. No operation retries; these are interactive
// user actions and a failure surfaces immediately.
type AssistantService interface {
	GenerateResume(ctx context.Context, profile models.UserProfile, language string) (string, error)
	ParseResume(ctx context.Context, input ResumeInput) (models.UserProfile, error)
	AnalyzeATS(ctx context.Context, input ResumeInput, jobDescription string) (models.ATSAnalysis, error)
	AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetRole string) (models.SkillGapAnalysis, error)
	InterviewReply(ctx context.Context, role string, history []models.ChatTurn, message string) (string, error)
}

type assistantService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewAssistantService(geminiService GeminiService) AssistantService {
	return &assistantService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateResume implements AssistantService. Output is free-form
// Markdown; an empty model reply passes through as "".
func (a *assistantService) GenerateResume(ctx context.Context, profile models.UserProfile, language string) (string, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return "", fmt.Errorf("profile name: %w", ErrMissingInput)
	}
	if language == "" {
		language = "English"
	}

	prompt, err := a.promptBuilder.BuildResumePrompt(profile, language)
	if err != nil {
		return "", err
	}

	text, err := a.geminiService.GenerateText(ctx, genai.Text(prompt), TemperatureCreative)
	if err != nil {
		log.Printf("❌ Resume generation failed: %v", err)
		return "", err
	}

	return text, nil
}

// ParseResume implements AssistantService. The result always has every
// field populated, arrays included, even when the model omits them.
func (a *assistantService) ParseResume(ctx context.Context, input ResumeInput) (models.UserProfile, error) {
	contents, err := a.promptBuilder.BuildParseContents(input)
	if err != nil {
		return models.UserProfile{}, err
	}

	raw, err := a.geminiService.GenerateJSON(ctx, contents, ParsedProfileSchema())
	if err != nil {
		log.Printf("❌ Resume parsing failed: %v", err)
		return models.UserProfile{}, err
	}

	return DecodeParsedProfile(raw), nil
}

// AnalyzeATS implements AssistantService. Upstream failures are
// absorbed into a fixed fallback result so the caller always gets a
// structurally valid analysis and the UI never crashes on it.
func (a *assistantService) AnalyzeATS(ctx context.Context, input ResumeInput, jobDescription string) (models.ATSAnalysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return models.ATSAnalysis{}, fmt.Errorf("job description: %w", ErrMissingInput)
	}

	contents, err := a.promptBuilder.BuildATSContents(input, jobDescription)
	if err != nil {
		return models.ATSAnalysis{}, err
	}

	raw, err := a.geminiService.GenerateJSON(ctx, contents, ATSAnalysisSchema())
	if err != nil {
		log.Printf("❌ ATS analysis failed: %v", err)
		return models.ATSAnalysis{
			Score:              0,
			MissingKeywords:    []string{},
			FormattingIssues:   []string{},
			ContentSuggestions: []string{"System Error: Could not process file."},
			Summary:            "Analysis failed. Please ensure the resume is a readable PDF or Text file.",
		}, nil
	}

	return DecodeATSAnalysis(raw), nil
}

// AnalyzeSkillGap implements AssistantService.
func (a *assistantService) AnalyzeSkillGap(ctx context.Context, currentSkills []string, targetRole string) (models.SkillGapAnalysis, error) {
	if strings.TrimSpace(targetRole) == "" {
		return models.SkillGapAnalysis{}, fmt.Errorf("target role: %w", ErrMissingInput)
	}

	prompt := a.promptBuilder.BuildSkillGapPrompt(currentSkills, targetRole)

	raw, err := a.geminiService.GenerateJSON(ctx, genai.Text(prompt), SkillGapSchema())
	if err != nil {
		log.Printf("❌ Skill gap analysis failed: %v", err)
		return models.SkillGapAnalysis{}, err
	}

	return DecodeSkillGapAnalysis(raw), nil
}

// InterviewReply implements AssistantService. History is the ordered
// sequence of turns before the latest user message.
func (a *assistantService) InterviewReply(ctx context.Context, role string, history []models.ChatTurn, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("interview message: %w", ErrMissingInput)
	}
	if role == "" {
		role = "Software Engineer"
	}

	contents := a.promptBuilder.BuildInterviewContents(role, history, message)

	text, err := a.geminiService.GenerateText(ctx, contents, TemperatureCreative)
	if err != nil {
		log.Printf("❌ Interview reply failed: %v", err)
		return "", err
	}
	if text == "" {
		text = "I couldn't generate a response."
	}

	return text, nil
}
