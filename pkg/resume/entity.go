package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("resume not found")
	// ErrNoFields is returned when an update carries no whitelisted field.
	ErrNoFields = errors.New("no valid fields provided for update")
)

const StatusCompleted = "completed"

// PersonalInfo holds contact details extracted from a resume.
type PersonalInfo struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type WorkExperience struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	GraduationYear string   `json:"graduationYear"`
	Achievements   []string `json:"achievements"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Role         string   `json:"role"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	DateObtained string `json:"dateObtained"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Review is the qualitative part of the model's output: rating and advice.
type Review struct {
	Rating           int      `json:"rating"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvementAreas"`
	SkillGaps        []string `json:"skillGaps"`
	Recommendations  []string `json:"recommendations"`
}

// Analysis is the fully normalized result of one resume analysis. Every
// slice is non-nil and the rating is within [1,10] once normalization ran.
type Analysis struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Review         Review           `json:"analysis"`
}

// Record is one persisted resume analysis.
type Record struct {
	ID                 uuid.UUID        `json:"id"`
	FileName           string           `json:"file_name"`
	FileSize           int64            `json:"file_size"`
	FileType           string           `json:"file_type"`
	UploadedAt         time.Time        `json:"uploaded_at"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	LinkedinURL        string           `json:"linkedin_url"`
	PortfolioURL       string           `json:"portfolio_url"`
	Summary            string           `json:"summary"`
	WorkExperience     []WorkExperience `json:"work_experience"`
	Education          []Education      `json:"education"`
	TechnicalSkills    []string         `json:"technical_skills"`
	SoftSkills         []string         `json:"soft_skills"`
	Projects           []Project        `json:"projects"`
	Certifications     []Certification  `json:"certifications"`
	ResumeRating       int              `json:"resume_rating"`
	ImprovementAreas   []string         `json:"improvement_areas"`
	UpskillSuggestions []string         `json:"upskill_suggestions"`
	AnalysisResult     Analysis         `json:"analysis_result"`
	Status             string           `json:"status"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// NewRecord flattens a normalized analysis into a persistable record.
func NewRecord(fileName string, fileSize int64, fileType string, a Analysis) Record {
	return Record{
		FileName:           fileName,
		FileSize:           fileSize,
		FileType:           fileType,
		Name:               a.PersonalInfo.Name,
		Email:              a.PersonalInfo.Email,
		Phone:              a.PersonalInfo.Phone,
		LinkedinURL:        a.PersonalInfo.Linkedin,
		PortfolioURL:       a.PersonalInfo.Portfolio,
		Summary:            a.Summary,
		WorkExperience:     a.WorkExperience,
		Education:          a.Education,
		TechnicalSkills:    a.Skills.Technical,
		SoftSkills:         a.Skills.Soft,
		Projects:           a.Projects,
		Certifications:     a.Certifications,
		ResumeRating:       a.Review.Rating,
		ImprovementAreas:   a.Review.ImprovementAreas,
		UpskillSuggestions: a.Review.Recommendations,
		AnalysisResult:     a,
		Status:             StatusCompleted,
	}
}

// Summary is the condensed row shape returned by history listings.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ResumeRating int       `json:"resume_rating"`
	Status       string    `json:"status"`
}

// ListParams select a page of the analysis history.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// PageInfo is the pagination metadata attached to list responses.
type PageInfo struct {
	Total        int  `json:"total"`
	Page         int  `json:"page"`
	Limit        int  `json:"limit"`
	TotalPages   int  `json:"totalPages"`
	HasNext      bool `json:"hasNext"`
	HasPrevious  bool `json:"hasPrevious"`
	NextPage     *int `json:"nextPage"`
	PreviousPage *int `json:"previousPage"`
}

// NewPageInfo computes pagination metadata for a 1-based page.
func NewPageInfo(total, page, limit int) PageInfo {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	info := PageInfo{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && total > 0,
	}
	if info.HasNext {
		n := page + 1
		info.NextPage = &n
	}
	if info.HasPrevious {
		p := page - 1
		info.PreviousPage = &p
	}
	return info
}

// Repository is the persistence port for analysis records.
type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, p ListParams) ([]Summary, PageInfo, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
