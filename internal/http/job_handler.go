package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobs-api/internal/domain"
	"jobs-api/internal/service"
)

// JobHandler mantiene dependencias para endpoints de ofertas.
type JobHandler struct {
	logger  *zap.Logger
	jobServ *service.JobService
}

func NewJobHandler(logger *zap.Logger, jobServ *service.JobService) *JobHandler {
	return &JobHandler{
		logger:  logger,
		jobServ: jobServ,
	}
}

// CreateJob maneja POST /v1/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req struct {
		Title          string `json:"title" binding:"required,min=3,max=40"`
		CompanyName    string `json:"company_name" binding:"required,min=2,max=40"`
		CompanyWebsite string `json:"company_website" binding:"required,url"`
		About          string `json:"about" binding:"required,min=10,max=1024"`
		Location       string `json:"location" binding:"required,min=3,max=40"`
		LocationType   string `json:"location_type" binding:"required,min=3,max=20"`
		Seniority      string `json:"seniority" binding:"required,min=3,max=20"`
		Type           string `json:"type" binding:"required,min=3,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create job request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobServ.Create(c.Request.Context(), service.CreateJobInput{
		Title:          req.Title,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		About:          req.About,
		Location:       req.Location,
		LocationType:   req.LocationType,
		Seniority:      req.Seniority,
		Type:           req.Type,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

// ListJobs maneja GET /v1/jobs con filtros opcionales por query param.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter := domain.JobFilter{
		Title:        c.Query("title"),
		CompanyName:  c.Query("company_name"),
		Location:     c.Query("location"),
		LocationType: c.Query("location_type"),
		Seniority:    c.Query("seniority"),
		Type:         c.Query("type"),
	}

	jobs, err := h.jobServ.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob maneja GET /v1/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// UpdateJob maneja PATCH /v1/jobs/:id.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req struct {
		Title          *string `json:"title" binding:"omitempty,min=3,max=40"`
		CompanyName    *string `json:"company_name" binding:"omitempty,min=2,max=40"`
		CompanyWebsite *string `json:"company_website" binding:"omitempty,url"`
		About          *string `json:"about" binding:"omitempty,min=10,max=1024"`
		Location       *string `json:"location" binding:"omitempty,min=3,max=40"`
		LocationType   *string `json:"location_type" binding:"omitempty,min=3,max=20"`
		Seniority      *string `json:"seniority" binding:"omitempty,min=3,max=20"`
		Type           *string `json:"type" binding:"omitempty,min=3,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update job request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	job, err := h.jobServ.Update(c.Request.Context(), c.Param("id"), service.UpdateJobInput{
		Title:          req.Title,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
		About:          req.About,
		Location:       req.Location,
		LocationType:   req.LocationType,
		Seniority:      req.Seniority,
		Type:           req.Type,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

// DeleteJob maneja DELETE /v1/jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	job, err := h.jobServ.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}
