package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	pgrepo "github.com/artem13815/resume-analyzer/pkg/repository/postgres"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/storage/postgres"
)

// Loads sample analyses for local development. The table is wiped and
// repopulated in one transaction, so a half-finished seed leaves nothing.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	repo := pgrepo.NewResumeRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema init")
	}

	records := sampleRecords()
	if err := repo.Seed(ctx, records); err != nil {
		log.Fatal().Err(err).Msg("seed failed, rolled back")
	}
	log.Info().Int("records", len(records)).Msg("seed complete")
}

func sampleRecords() []resume.Record {
	now := time.Now().UTC()
	first := resume.Analysis{
		PersonalInfo: resume.PersonalInfo{
			Name:      "John Doe",
			Email:     "john.doe@email.com",
			Phone:     "+1-555-0123",
			Linkedin:  "https://linkedin.com/in/johndoe",
			Portfolio: "https://johndoe.dev",
		},
		Summary: "Experienced software engineer with 5+ years in full-stack development.",
		WorkExperience: []resume.WorkExperience{
			{
				JobTitle:  "Senior Software Engineer",
				Company:   "Tech Corp",
				StartDate: "2021-03",
				EndDate:   "Present",
				Responsibilities: []string{
					"Led development of customer-facing web applications",
					"Mentored a team of four junior engineers",
				},
			},
		},
		Education: []resume.Education{
			{
				Degree:         "B.S. Computer Science",
				Institution:    "State University",
				GraduationYear: "2018",
				Achievements:   []string{"Magna cum laude"},
			},
		},
		Skills: resume.Skills{
			Technical: []string{"Go", "PostgreSQL", "React", "Docker"},
			Soft:      []string{"Leadership", "Communication"},
		},
		Projects: []resume.Project{
			{
				Name:         "Inventory Platform",
				Description:  "Internal stock tracking system",
				Technologies: []string{"Go", "PostgreSQL"},
				Role:         "Lead developer",
			},
		},
		Certifications: []resume.Certification{
			{Name: "AWS Certified Developer", Issuer: "Amazon", DateObtained: "2022-06"},
		},
		Review: resume.Review{
			Rating:           8,
			Strengths:        []string{"Strong technical depth", "Clear progression"},
			ImprovementAreas: []string{"Add quantified achievements"},
			SkillGaps:        []string{"Kubernetes"},
			Recommendations:  []string{"Obtain a cloud architecture certification"},
		},
	}
	second := resume.Analysis{
		PersonalInfo: resume.PersonalInfo{
			Name:      "Jane Smith",
			Email:     "jane.smith@email.com",
			Phone:     "Not provided",
			Linkedin:  "https://linkedin.com/in/janesmith",
			Portfolio: "Not provided",
		},
		Summary: "Junior data analyst transitioning into data engineering.",
		WorkExperience: []resume.WorkExperience{
			{
				JobTitle:         "Data Analyst",
				Company:          "Retail Insights",
				StartDate:        "2023-01",
				EndDate:          "Present",
				Responsibilities: []string{"Built weekly sales dashboards"},
			},
		},
		Education: []resume.Education{
			{
				Degree:         "B.A. Statistics",
				Institution:    "City College",
				GraduationYear: "2022",
				Achievements:   []string{},
			},
		},
		Skills: resume.Skills{
			Technical: []string{"SQL", "Python", "Tableau"},
			Soft:      []string{"Attention to detail"},
		},
		Projects:       []resume.Project{},
		Certifications: []resume.Certification{},
		Review: resume.Review{
			Rating:           6,
			Strengths:        []string{"Solid analytical foundation"},
			ImprovementAreas: []string{"Expand the projects section"},
			SkillGaps:        []string{"Spark", "Airflow"},
			Recommendations:  []string{"Build an end-to-end data pipeline project"},
		},
	}

	recA := resume.NewRecord("john_doe_resume.pdf", 245760, "application/pdf", first)
	recA.ID = uuid.New()
	recA.UploadedAt = now.Add(-48 * time.Hour)
	recA.UpdatedAt = recA.UploadedAt

	recB := resume.NewRecord("jane_smith_resume.pdf", 198432, "application/pdf", second)
	recB.ID = uuid.New()
	recB.UploadedAt = now.Add(-2 * time.Hour)
	recB.UpdatedAt = recB.UploadedAt

	return []resume.Record{recA, recB}
}
