package handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// Analyzer runs the full PDF-to-analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte) (resume.Analysis, error)
}

type ResumesHandler struct {
	svc  Analyzer
	repo resume.Repository
	log  zerolog.Logger
}

func NewResumesHandler(svc Analyzer, repo resume.Repository, log zerolog.Logger) *ResumesHandler {
	return &ResumesHandler{svc: svc, repo: repo, log: log}
}

type uploadResponse struct {
	ID uuid.UUID `json:"id"`
	resume.Analysis
}

// Upload accepts a PDF in the "resume" multipart field, analyzes it and
// stores the result. The record is written only after the full pipeline
// succeeded, so a failed request leaves no row behind.
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No file uploaded. Please upload a PDF file.")
	}
	if !isPDF(fh) {
		return presenter.Error(c, http.StatusBadRequest, "Only PDF files are allowed.")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Failed to read uploaded file.")
	}
	defer file.Close()
	data, err := readAtMost(file, resume.MaxFileSize)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, resume.ErrFileTooLarge.Error())
	}

	analysis, err := h.svc.Analyze(c.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrEmptyFile), errors.Is(err, resume.ErrFileTooLarge):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			h.log.Error().Err(err).Str("file", fh.Filename).Msg("resume analysis failed")
			return presenter.Error(c, http.StatusInternalServerError, "Failed to analyze resume: "+err.Error())
		}
	}

	rec := resume.NewRecord(fh.Filename, fh.Size, fh.Header.Get("Content-Type"), analysis)
	created, err := h.repo.Create(c.Context(), rec)
	if err != nil {
		h.log.Error().Err(err).Msg("save analysis failed")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to save analysis result.")
	}
	h.log.Info().Str("id", created.ID.String()).Str("file", created.FileName).Int("rating", created.ResumeRating).Msg("resume analyzed")
	return presenter.Message(c, http.StatusCreated, "Resume analyzed successfully", uploadResponse{
		ID:       created.ID,
		Analysis: analysis,
	})
}

// List returns a page of the analysis history, newest first.
func (h *ResumesHandler) List(c *fiber.Ctx) error {
	items, pageInfo, err := h.repo.List(c.Context(), parsePageQuery(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list resumes failed")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch resumes.")
	}
	return presenter.Page(c, items, pageInfo)
}

func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid resume id.")
	}
	rec, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Resume not found.")
		}
		h.log.Error().Err(err).Str("id", id.String()).Msg("get resume failed")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch resume.")
	}
	return presenter.Data(c, http.StatusOK, rec)
}

// Update applies a partial update restricted to the whitelisted columns.
func (h *ResumesHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid resume id.")
	}
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid request body.")
	}
	rec, err := h.repo.Update(c.Context(), id, fields)
	if err != nil {
		switch {
		case errors.Is(err, resume.ErrNoFields):
			return presenter.Error(c, http.StatusBadRequest, "No valid fields provided for update.")
		case errors.Is(err, resume.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Resume not found.")
		default:
			h.log.Error().Err(err).Str("id", id.String()).Msg("update resume failed")
			return presenter.Error(c, http.StatusInternalServerError, "Failed to update resume.")
		}
	}
	return presenter.Message(c, http.StatusOK, "Resume updated successfully", rec)
}

func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid resume id.")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "Resume not found.")
		}
		h.log.Error().Err(err).Str("id", id.String()).Msg("delete resume failed")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to delete resume.")
	}
	return presenter.Message(c, http.StatusOK, "Resume deleted successfully", nil)
}

func isPDF(fh *multipart.FileHeader) bool {
	if strings.EqualFold(fh.Header.Get("Content-Type"), "application/pdf") {
		return true
	}
	return strings.EqualFold(filepath.Ext(fh.Filename), ".pdf")
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, resume.ErrFileTooLarge
	}
	return data, nil
}
