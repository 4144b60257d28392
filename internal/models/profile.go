package models

// UserProfile is the canonical profile shape shared by the resume
// generator and the resume parser. The parser always returns every
// field populated: scalars default to "" and slices are never nil.
type UserProfile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	TargetRole string       `json:"targetRole"`
	Skills     []string     `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Score       string `json:"score"`
}

type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
}
