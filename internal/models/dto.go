package models

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ResumeFilePayload carries an uploaded resume as base64 data plus its
// declared media type, matching the wire shape the web client sends.
type ResumeFilePayload struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type GenerateResumeRequest struct {
	Profile  *UserProfile `json:"profile"`
	Language string       `json:"language"`
}

type GenerateResumeResponse struct {
	Text string `json:"text"`
}

// ParseResumeRequest accepts exactly one of Text or File.
type ParseResumeRequest struct {
	Text string             `json:"text"`
	File *ResumeFilePayload `json:"file"`
}

type ATSRequest struct {
	Text           string             `json:"text"`
	File           *ResumeFilePayload `json:"file"`
	JobDescription string             `json:"jobDescription"`
}

type SkillGapRequest struct {
	CurrentSkills []string `json:"currentSkills"`
	TargetRole    string   `json:"targetRole"`
}

type ExtractTextResponse struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
}

type InterviewStartRequest struct {
	Name       string `json:"name"`
	TargetRole string `json:"targetRole"`
}

type InterviewStartResponse struct {
	SessionID string   `json:"session_id"`
	Opening   ChatTurn `json:"opening"`
}

type InterviewMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type InterviewMessageResponse struct {
	Reply ChatTurn `json:"reply"`
}

type JobMatchRequest struct {
	Skills     []string `json:"skills"`
	TargetRole string   `json:"targetRole"`
	Limit      int      `json:"limit"`
}
