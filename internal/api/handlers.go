package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitefactory/internal/store"
	"sitefactory/internal/types"
	"sitefactory/internal/wizard"
)

// ProjectRepository is the persistence surface the handlers need.
type ProjectRepository interface {
	Create(ctx context.Context, siteType types.SiteType, language types.Language) (*types.Project, error)
	Patch(ctx context.Context, id int64, patch store.Patch) (*types.Project, error)
	GetByID(ctx context.Context, id int64) (*types.Project, error)
	GetBySlug(ctx context.Context, slug string) (*types.Project, error)
}

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	wizard   *wizard.Service
	projects ProjectRepository
	cache    *store.SlugCache
}

func NewAPIHandler(wizardSvc *wizard.Service, projects ProjectRepository, cache *store.SlugCache) *APIHandler {
	return &APIHandler{
		wizard:   wizardSvc,
		projects: projects,
		cache:    cache,
	}
}

// --- Request DTOs ---

type createProjectRequest struct {
	SiteType types.SiteType `json:"siteType" binding:"required,oneof=personal business"`
	Language types.Language `json:"language" binding:"required,oneof=fr en"`
}

// updateProjectRequest mirrors the PATCH merge-by-presence contract: fields
// absent from the body stay nil and are left untouched.
type updateProjectRequest struct {
	DeepAnswers          *string                  `json:"deepAnswers"`
	StructuredProfile    *types.StructuredProfile `json:"structuredProfile"`
	SelectedInspirations *[]types.Inspiration     `json:"selectedInspirations"`
	GeneratedImages      *[]types.GeneratedImage  `json:"generatedImages"`
	Status               *types.ProjectStatus     `json:"status"`
}

type analyzeRequest struct {
	DeepAnswers string         `json:"deepAnswers" binding:"required"`
	SiteType    types.SiteType `json:"siteType" binding:"required,oneof=personal business"`
	Language    types.Language `json:"language" binding:"required,oneof=fr en"`
}

// An empty profile is acceptable: selection and gallery code substitute
// defaults for every missing field, so these two carry no required tags.
type inspirationsRequest struct {
	StructuredProfile types.StructuredProfile `json:"structuredProfile"`
}

type generateImagesRequest struct {
	StructuredProfile    types.StructuredProfile `json:"structuredProfile"`
	SelectedInspirations []types.Inspiration     `json:"selectedInspirations"`
}

// --- Handlers ---

// POST /api/projects
func (h *APIHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.SiteType, req.Language)
	if err != nil {
		slog.Error("failed to create project", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// PATCH /api/projects/:id
func (h *APIHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	project, err := h.projects.Patch(c.Request.Context(), id, store.Patch{
		DeepAnswers:          req.DeepAnswers,
		StructuredProfile:    req.StructuredProfile,
		SelectedInspirations: req.SelectedInspirations,
		GeneratedImages:      req.GeneratedImages,
		Status:               req.Status,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		slog.Error("failed to update project", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), project.Slug)
	c.JSON(http.StatusOK, project)
}

// GET /api/projects/:slug is the public, read-only preview entry point.
func (h *APIHandler) GetProjectBySlug(c *gin.Context) {
	slug := c.Param("slug")

	if project, ok := h.cache.Get(c.Request.Context(), slug); ok {
		c.JSON(http.StatusOK, project)
		return
	}

	project, err := h.projects.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		slog.Error("failed to fetch project", "slug", slug, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	h.cache.Set(c.Request.Context(), project)
	c.JSON(http.StatusOK, project)
}

// GET /api/projects/by-id/:id
func (h *APIHandler) GetProjectByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		slog.Error("failed to fetch project", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// POST /api/analyze always answers with a complete StructuredProfile; an
// unavailable model degrades to the deterministic fallback, never to an
// error status.
func (h *APIHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	profile := h.wizard.Analyze(c.Request.Context(), req.DeepAnswers, req.SiteType, req.Language)
	c.JSON(http.StatusOK, profile)
}

// POST /api/inspirations
func (h *APIHandler) Inspirations(c *gin.Context) {
	var req inspirationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.wizard.Inspirations(c.Request.Context(), req.StructuredProfile))
}

// POST /api/generate
func (h *APIHandler) GenerateImages(c *gin.Context) {
	var req generateImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.wizard.GenerateImages(req.StructuredProfile, req.SelectedInspirations))
}
