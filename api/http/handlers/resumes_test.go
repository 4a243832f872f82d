package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

type fakeAnalyzer struct {
	analysis resume.Analysis
	err      error
	calls    int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ []byte) (resume.Analysis, error) {
	f.calls++
	return f.analysis, f.err
}

type fakeRepo struct {
	created   []resume.Record
	record    resume.Record
	summaries []resume.Summary
	pageInfo  resume.PageInfo
	lastList  resume.ListParams
	err       error
}

func (f *fakeRepo) Create(_ context.Context, rec resume.Record) (resume.Record, error) {
	if f.err != nil {
		return resume.Record{}, f.err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.created = append(f.created, rec)
	return rec, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (resume.Record, error) {
	return f.record, f.err
}

func (f *fakeRepo) List(_ context.Context, p resume.ListParams) ([]resume.Summary, resume.PageInfo, error) {
	f.lastList = p
	return f.summaries, f.pageInfo, f.err
}

func (f *fakeRepo) Update(_ context.Context, _ uuid.UUID, fields map[string]any) (resume.Record, error) {
	if f.err != nil {
		return resume.Record{}, f.err
	}
	return f.record, nil
}

func (f *fakeRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.err
}

func newTestApp(svc Analyzer, repo resume.Repository) *fiber.App {
	app := fiber.New()
	h := NewResumesHandler(svc, repo, zerolog.Nop())
	api := app.Group("/api")
	rg := api.Group("/resumes")
	rg.Post("/upload", h.Upload)
	rg.Get("/", h.List)
	rg.Get("/:id", h.Get)
	rg.Put("/:id", h.Update)
	rg.Delete("/:id", h.Delete)
	return app
}

func multipartPDF(t *testing.T, field, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadValidation(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		svc := &fakeAnalyzer{}
		repo := &fakeRepo{}
		app := newTestApp(svc, repo)

		req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, svc.calls)
		assert.Empty(t, repo.created)
	})

	t.Run("non pdf file", func(t *testing.T) {
		svc := &fakeAnalyzer{}
		repo := &fakeRepo{}
		app := newTestApp(svc, repo)

		body, contentType := multipartPDF(t, "resume", "resume.docx", []byte("word doc"))
		req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Zero(t, svc.calls)
		assert.Empty(t, repo.created)
	})

	t.Run("analysis failure is 500 and nothing is stored", func(t *testing.T) {
		svc := &fakeAnalyzer{err: resume.ErrNoText}
		repo := &fakeRepo{}
		app := newTestApp(svc, repo)

		body, contentType := multipartPDF(t, "resume", "resume.pdf", []byte("%PDF-1.4 fake"))
		req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Empty(t, repo.created)
	})
}

func TestUploadSuccess(t *testing.T) {
	analysis := resume.Analysis{
		PersonalInfo:   resume.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
		Summary:        "Engineer.",
		WorkExperience: []resume.WorkExperience{{JobTitle: "Engineer", Responsibilities: []string{}}},
		Education:      []resume.Education{},
		Skills:         resume.Skills{Technical: []string{"Go"}, Soft: []string{}},
		Projects:       []resume.Project{},
		Certifications: []resume.Certification{},
		Review:         resume.Review{Rating: 8, Strengths: []string{}, ImprovementAreas: []string{}, SkillGaps: []string{}, Recommendations: []string{}},
	}
	svc := &fakeAnalyzer{analysis: analysis}
	repo := &fakeRepo{}
	app := newTestApp(svc, repo)

	body, contentType := multipartPDF(t, "resume", "ada.pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "ada.pdf", repo.created[0].FileName)
	assert.Equal(t, "Ada Lovelace", repo.created[0].Name)
	assert.Equal(t, 8, repo.created[0].ResumeRating)

	var got struct {
		Success bool `json:"success"`
		Data    struct {
			ID           uuid.UUID           `json:"id"`
			PersonalInfo resume.PersonalInfo `json:"personalInfo"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.Success)
	assert.NotEqual(t, uuid.Nil, got.Data.ID)
	assert.Equal(t, "Ada Lovelace", got.Data.PersonalInfo.Name)
}

func TestListPassesQueryParams(t *testing.T) {
	repo := &fakeRepo{
		summaries: []resume.Summary{},
		pageInfo:  resume.NewPageInfo(0, 2, 5),
	}
	app := newTestApp(&fakeAnalyzer{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/?page=2&limit=5&search=ada", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, resume.ListParams{Page: 2, Limit: 5, Search: "ada"}, repo.lastList)
}

func TestListDefaults(t *testing.T) {
	repo := &fakeRepo{pageInfo: resume.NewPageInfo(0, 1, 10)}
	app := newTestApp(&fakeAnalyzer{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/?page=0&limit=9999", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// out-of-range values fall back to defaults
	assert.Equal(t, resume.ListParams{Page: 1, Limit: 10}, repo.lastList)
}

func TestGetResume(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{})
		req := httptest.NewRequest(http.MethodGet, "/api/resumes/not-a-uuid", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{err: resume.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/resumes/"+uuid.NewString(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateResume(t *testing.T) {
	t.Run("no whitelisted fields", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{err: resume.ErrNoFields})
		req := httptest.NewRequest(http.MethodPut, "/api/resumes/"+uuid.NewString(),
			strings.NewReader(`{"foo":"bar"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{err: resume.ErrNotFound})
		req := httptest.NewRequest(http.MethodPut, "/api/resumes/"+uuid.NewString(),
			strings.NewReader(`{"name":"Ada"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	// the repository reports an unknown id even when the body has no
	// whitelisted fields; the missing row must answer 404, not 400
	t.Run("unknown id outranks bad body", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{err: resume.ErrNotFound})
		req := httptest.NewRequest(http.MethodPut, "/api/resumes/"+uuid.NewString(),
			strings.NewReader(`{"foo":"bar"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteResume(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{err: resume.ErrNotFound})
		req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+uuid.NewString(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("deleted", func(t *testing.T) {
		app := newTestApp(&fakeAnalyzer{}, &fakeRepo{})
		req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+uuid.NewString(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
