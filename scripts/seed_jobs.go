package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"careerpilot/career-assistant/internal/config"
	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/repositories"
	"careerpilot/career-assistant/internal/services"
)

// Seeds the jobs table with a starter set of listings and indexes them
// in Qdrant for recommendations. Safe to re-run: seeding is skipped
// when listings already exist.
func main() {
	log.Println("🚀 Starting job seeding...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	jobRepo := repositories.NewJobRepository(db)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	jobIndex, err := services.NewJobIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := jobIndex.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	count, err := jobRepo.Count()
	if err != nil {
		log.Fatalf("❌ Failed to count jobs: %v", err)
	}
	if count > 0 {
		log.Printf("✅ Jobs table already has %d listings, nothing to do", count)
		return
	}

	jobMatch := services.NewJobMatchService(geminiService, jobIndex, jobRepo)
	ctx := context.Background()

	jobs := []models.Job{
		{
			Title:          "Frontend Engineer",
			Company:        "TechFlow Solutions",
			Location:       "Bangalore (Remote)",
			Type:           "Full-time",
			Salary:         "₹8L - ₹12L",
			SkillsRequired: []string{"React", "TypeScript", "Tailwind", "Redux"},
			Description:    "We are looking for a passionate Frontend Engineer to build modern web applications using React and TypeScript.",
		},
		{
			Title:          "Junior Data Analyst",
			Company:        "DataWiz Corp",
			Location:       "Mumbai",
			Type:           "Hybrid",
			Salary:         "₹5L - ₹8L",
			SkillsRequired: []string{"Python", "SQL", "Excel", "Tableau"},
			Description:    "Analyze large datasets to extract meaningful insights. Proficiency in Python and SQL is mandatory.",
		},
		{
			Title:          "Backend Developer",
			Company:        "CloudNine Systems",
			Location:       "Hyderabad",
			Type:           "On-site",
			Salary:         "₹10L - ₹15L",
			SkillsRequired: []string{"Node.js", "MongoDB", "AWS", "Express"},
			Description:    "Build scalable APIs and microservices. Experience with AWS and NoSQL databases is a plus.",
		},
		{
			Title:          "Product Design Intern",
			Company:        "Creative Hub",
			Location:       "Delhi",
			Type:           "Internship",
			Salary:         "₹15k/month",
			SkillsRequired: []string{"Figma", "UI/UX", "Prototyping"},
			Description:    "Assist in designing user interfaces for mobile and web apps. Must have a strong portfolio.",
		},
	}

	successCount := 0
	failCount := 0

	for i := range jobs {
		job := &jobs[i]
		job.ID = uuid.New()
		job.PostedAt = time.Now()

		log.Printf("📄 Seeding: %s at %s", job.Title, job.Company)

		if err := jobRepo.Create(job); err != nil {
			log.Printf("❌ Failed to store job: %v", err)
			failCount++
			continue
		}

		if err := jobMatch.IndexJob(ctx, job); err != nil {
			log.Printf("⚠️  Stored but failed to index job %s: %v", job.ID, err)
			failCount++
			continue
		}

		successCount++
	}

	log.Printf("✅ Seeding finished: %d succeeded, %d failed", successCount, failCount)
}
