package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// ResumeRepository persists analysis records in a single resumes table.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

// EnsureSchema creates the resumes table and its indexes if they are absent.
func (r *ResumeRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	file_name VARCHAR(255) NOT NULL,
	file_size BIGINT NOT NULL DEFAULT 0,
	file_type VARCHAR(100) NOT NULL DEFAULT 'application/pdf',
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	name VARCHAR(255),
	email VARCHAR(255),
	phone VARCHAR(50),
	linkedin_url VARCHAR(255),
	portfolio_url VARCHAR(255),
	summary TEXT,
	work_experience JSONB,
	education JSONB,
	technical_skills JSONB,
	soft_skills JSONB,
	projects JSONB,
	certifications JSONB,
	resume_rating INTEGER,
	improvement_areas JSONB,
	upskill_suggestions JSONB,
	analysis_result JSONB,
	status VARCHAR(50) NOT NULL DEFAULT 'completed',
	updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_resumes_email ON resumes(email);
CREATE INDEX IF NOT EXISTS idx_resumes_uploaded_at ON resumes(uploaded_at);
CREATE INDEX IF NOT EXISTS idx_resumes_rating ON resumes(resume_rating);
`)
	return err
}

const recordColumns = `id, file_name, file_size, file_type, uploaded_at,
name, email, phone, linkedin_url, portfolio_url, summary,
work_experience, education, technical_skills, soft_skills,
projects, certifications, resume_rating, improvement_areas,
upskill_suggestions, analysis_result, status, updated_at`

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *ResumeRepository) Create(ctx context.Context, rec resume.Record) (resume.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}
	if rec.Status == "" {
		rec.Status = resume.StatusCompleted
	}
	if err := r.insert(ctx, r.pool, rec); err != nil {
		return resume.Record{}, err
	}
	return rec, nil
}

func (r *ResumeRepository) insert(ctx context.Context, db execer, rec resume.Record) error {
	work, err := json.Marshal(rec.WorkExperience)
	if err != nil {
		return fmt.Errorf("marshal work experience: %w", err)
	}
	edu, err := json.Marshal(rec.Education)
	if err != nil {
		return fmt.Errorf("marshal education: %w", err)
	}
	tech, err := json.Marshal(rec.TechnicalSkills)
	if err != nil {
		return fmt.Errorf("marshal technical skills: %w", err)
	}
	soft, err := json.Marshal(rec.SoftSkills)
	if err != nil {
		return fmt.Errorf("marshal soft skills: %w", err)
	}
	projects, err := json.Marshal(rec.Projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	certs, err := json.Marshal(rec.Certifications)
	if err != nil {
		return fmt.Errorf("marshal certifications: %w", err)
	}
	areas, err := json.Marshal(rec.ImprovementAreas)
	if err != nil {
		return fmt.Errorf("marshal improvement areas: %w", err)
	}
	upskill, err := json.Marshal(rec.UpskillSuggestions)
	if err != nil {
		return fmt.Errorf("marshal upskill suggestions: %w", err)
	}
	result, err := json.Marshal(rec.AnalysisResult)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}
	_, err = db.Exec(ctx, `
INSERT INTO resumes (`+recordColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
`, rec.ID, rec.FileName, rec.FileSize, rec.FileType, rec.UploadedAt,
		rec.Name, rec.Email, rec.Phone, rec.LinkedinURL, rec.PortfolioURL, rec.Summary,
		work, edu, tech, soft,
		projects, certs, rec.ResumeRating, areas,
		upskill, result, rec.Status, rec.UpdatedAt)
	return err
}

func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+recordColumns+` FROM resumes WHERE id = $1
`, id)
	return scanRecord(row)
}

func (r *ResumeRepository) List(ctx context.Context, p resume.ListParams) ([]resume.Summary, resume.PageInfo, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	where := ""
	args := []any{}
	if s := strings.TrimSpace(p.Search); s != "" {
		where = " WHERE file_name ILIKE $1 OR name ILIKE $1"
		args = append(args, "%"+s+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM resumes"+where, args...).Scan(&total); err != nil {
		return nil, resume.PageInfo{}, err
	}

	query := fmt.Sprintf(`
SELECT id, file_name, file_size, uploaded_at, name, email, resume_rating, status
FROM resumes%s
ORDER BY uploaded_at DESC
LIMIT $%d OFFSET $%d
`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, resume.PageInfo{}, err
	}
	defer rows.Close()

	items := make([]resume.Summary, 0, limit)
	for rows.Next() {
		var s resume.Summary
		var uploaded time.Time
		if err := rows.Scan(&s.ID, &s.FileName, &s.FileSize, &uploaded, &s.Name, &s.Email, &s.ResumeRating, &s.Status); err != nil {
			return nil, resume.PageInfo{}, err
		}
		s.UploadedAt = uploaded.UTC()
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, resume.PageInfo{}, err
	}
	return items, resume.NewPageInfo(total, page, limit), nil
}

// updatableColumns is the fixed whitelist of fields a partial update may
// touch. Order is significant only for deterministic SQL.
var updatableColumns = []string{
	"name", "email", "phone", "linkedin_url", "portfolio_url",
	"summary", "resume_rating", "status", "analysis_result",
}

func (r *ResumeRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (resume.Record, error) {
	set, args, err := buildUpdateSet(fields)
	if err != nil {
		// an unknown id outranks a bad body
		if errors.Is(err, resume.ErrNoFields) {
			var exists bool
			if qerr := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM resumes WHERE id = $1)`, id).Scan(&exists); qerr != nil {
				return resume.Record{}, qerr
			}
			if !exists {
				return resume.Record{}, resume.ErrNotFound
			}
		}
		return resume.Record{}, err
	}
	args = append(args, id)
	query := fmt.Sprintf(`
UPDATE resumes SET %s, updated_at = CURRENT_TIMESTAMP
WHERE id = $%d
RETURNING `+recordColumns, set, len(args))
	return scanRecord(r.pool.QueryRow(ctx, query, args...))
}

// buildUpdateSet turns a request body into a SET clause over whitelisted
// columns only; everything else in the map is ignored. Explicit nulls are
// ignored too: the read path scans these columns into non-nullable types,
// so a NULL written here would poison every later read of the row.
func buildUpdateSet(fields map[string]any) (string, []any, error) {
	clauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, col := range updatableColumns {
		v, ok := fields[col]
		if !ok || v == nil {
			continue
		}
		switch col {
		case "resume_rating":
			// JSON numbers decode as float64
			if f, isFloat := v.(float64); isFloat {
				v = int(f)
			}
		case "analysis_result":
			b, err := json.Marshal(v)
			if err != nil {
				return "", nil, fmt.Errorf("marshal analysis result: %w", err)
			}
			v = b
		}
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(clauses) == 0 {
		return "", nil, resume.ErrNoFields
	}
	return strings.Join(clauses, ", "), args, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// Seed replaces the table contents with the given records inside one
// transaction; any failure rolls the whole load back.
func (r *ResumeRepository) Seed(ctx context.Context, recs []resume.Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, `DELETE FROM resumes`); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := r.insert(ctx, tx, rec); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanRecord(row pgx.Row) (resume.Record, error) {
	var rec resume.Record
	var uploaded, updated time.Time
	var work, edu, tech, soft, projects, certs, areas, upskill, result []byte
	err := row.Scan(
		&rec.ID, &rec.FileName, &rec.FileSize, &rec.FileType, &uploaded,
		&rec.Name, &rec.Email, &rec.Phone, &rec.LinkedinURL, &rec.PortfolioURL, &rec.Summary,
		&work, &edu, &tech, &soft,
		&projects, &certs, &rec.ResumeRating, &areas,
		&upskill, &result, &rec.Status, &updated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, resume.ErrNotFound
		}
		return resume.Record{}, err
	}
	rec.UploadedAt = uploaded.UTC()
	rec.UpdatedAt = updated.UTC()
	for _, col := range []struct {
		data []byte
		dst  any
	}{
		{work, &rec.WorkExperience},
		{edu, &rec.Education},
		{tech, &rec.TechnicalSkills},
		{soft, &rec.SoftSkills},
		{projects, &rec.Projects},
		{certs, &rec.Certifications},
		{areas, &rec.ImprovementAreas},
		{upskill, &rec.UpskillSuggestions},
		{result, &rec.AnalysisResult},
	} {
		if err := decodeColumn(col.data, col.dst); err != nil {
			return resume.Record{}, err
		}
	}
	return rec, nil
}

func decodeColumn(data []byte, dst any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
