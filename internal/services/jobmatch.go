package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"careerpilot/career-assistant/internal/models"
	"careerpilot/career-assistant/internal/repositories"
)

const (
	jobChunkSize    = 1000
	jobChunkOverlap = 100
)

// JobMatchService recommends stored job listings for a candidate by
// embedding the target role plus skills and querying the vector index.
type JobMatchService interface {
	IndexJob(ctx context.Context, job *models.Job) error
	Recommend(ctx context.Context, skills []string, targetRole string, limit int) ([]models.JobMatch, error)
}

type jobMatchService struct {
	geminiService GeminiService
	jobIndex      JobIndexService
	jobRepo       repositories.JobRepository
	chunker       TextChunker
}

func NewJobMatchService(
	geminiService GeminiService,
	jobIndex JobIndexService,
	jobRepo repositories.JobRepository,
) JobMatchService {
	return &jobMatchService{
		geminiService: geminiService,
		jobIndex:      jobIndex,
		jobRepo:       jobRepo,
		chunker:       NewTextChunker(),
	}
}

// IndexJob implements JobMatchService. Embeds the listing (chunked when
// the description is long) and upserts every chunk under the job id.
func (s *jobMatchService) IndexJob(ctx context.Context, job *models.Job) error {
	text := fmt.Sprintf("%s at %s\nSkills: %s\n\n%s",
		job.Title, job.Company, strings.Join(job.SkillsRequired, ", "), job.Description)

	chunks := s.chunker.ChunkText(text, jobChunkSize, jobChunkOverlap)
	if len(chunks) == 0 {
		chunks = []string{text}
	}

	for i, chunk := range chunks {
		embedding, err := s.geminiService.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed job %s: %w", job.ID, err)
		}
		if err := s.jobIndex.UpsertJobChunk(ctx, job.ID.String(), i, chunk, embedding); err != nil {
			return fmt.Errorf("failed to index job %s: %w", job.ID, err)
		}
	}

	return nil
}

// Recommend implements JobMatchService. Returns up to limit jobs,
// best match first, with similarity mapped to a 0-100 score.
func (s *jobMatchService) Recommend(ctx context.Context, skills []string, targetRole string, limit int) ([]models.JobMatch, error) {
	if strings.TrimSpace(targetRole) == "" && len(skills) == 0 {
		return nil, fmt.Errorf("candidate profile: %w", ErrMissingInput)
	}
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf("Target role: %s\nSkills: %s", targetRole, strings.Join(skills, ", "))
	embedding, err := s.geminiService.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate profile: %w", err)
	}

	// Over-fetch: several chunks can point at the same job.
	results, err := s.jobIndex.SearchSimilar(ctx, embedding, limit*3)
	if err != nil {
		return nil, err
	}

	best := make(map[uuid.UUID]float32)
	for _, result := range results {
		id, err := uuid.Parse(result.JobID)
		if err != nil {
			continue
		}
		if score, ok := best[id]; !ok || result.Score > score {
			best[id] = result.Score
		}
	}

	if len(best) == 0 {
		return []models.JobMatch{}, nil
	}

	ids := make([]uuid.UUID, 0, len(best))
	for id := range best {
		ids = append(ids, id)
	}

	jobs, err := s.jobRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	matches := make([]models.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, models.JobMatch{
			Job:        job,
			MatchScore: float64(best[job.ID]) * 100,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}
