package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
	"programhub/internal/ports/output"
)

type ProgramDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Instructor      string    `json:"instructor"`
	Duration        string    `json:"duration"`
	Location        string    `json:"location,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Participants    int       `json:"participants"`
	MaxParticipants int       `json:"max_participants,omitempty"`
	Status          string    `json:"status"`
	Featured        bool      `json:"featured"`
	Price           float64   `json:"price,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ProgramRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Instructor      string    `json:"instructor"`
	Duration        string    `json:"duration"`
	Location        string    `json:"location"`
	Skills          []string  `json:"skills"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MaxParticipants int       `json:"max_participants"`
	Featured        bool      `json:"featured"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"image_url"`
}

func programToDTO(p *entities.Program) ProgramDTO {
	return ProgramDTO{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Type:            string(p.Type),
		Instructor:      p.Instructor,
		Duration:        p.Duration,
		Location:        p.Location,
		Skills:          p.Skills,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Participants:    p.Participants,
		MaxParticipants: p.MaxParticipants,
		Status:          string(p.Status),
		Featured:        p.Featured,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		CreatedBy:       p.CreatedBy,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (req ProgramRequest) toInput() entities.ProgramInput {
	return entities.ProgramInput{
		Title:           req.Title,
		Description:     req.Description,
		Type:            domain.ProgramType(req.Type),
		Instructor:      req.Instructor,
		Duration:        req.Duration,
		Location:        req.Location,
		Skills:          req.Skills,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
		Featured:        req.Featured,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
	}
}

func (h *Handler) HandleCreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "bad_request", "message": err.Error()},
		})
		return
	}
	program, err := h.programs.CreateProgram(c.Request.Context(), userID(c), req.toInput())
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"program": programToDTO(program)})
}

func (h *Handler) HandleGetProgram(c *gin.Context) {
	detail, err := h.programs.GetProgramWithCreator(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"program": programToDTO(&detail.Program),
		"creator": gin.H{"id": detail.Creator.ID, "name": detail.Creator.Name},
	})
}

func (h *Handler) HandleListPrograms(c *gin.Context) {
	filters := output.ProgramFilters{
		Type:      domain.ProgramType(c.Query("type")),
		Status:    domain.ProgramStatus(c.Query("status")),
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
		Skills:    c.QueryArray("skill"),
	}
	if v, ok := c.GetQuery("featured"); ok {
		featured := v == "true"
		filters.Featured = &featured
	}
	programs, err := h.programs.ListPrograms(c.Request.Context(), filters)
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	total, err := h.programs.CountPrograms(c.Request.Context(), filters)
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	out := make([]ProgramDTO, len(programs))
	for i := range programs {
		out[i] = programToDTO(&programs[i])
	}
	c.JSON(http.StatusOK, gin.H{"programs": out, "total": total})
}

func (h *Handler) HandleUpdateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "bad_request", "message": err.Error()},
		})
		return
	}
	program, err := h.programs.UpdateProgram(c.Request.Context(), c.Param("id"), userID(c), req.toInput())
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": programToDTO(program)})
}

func (h *Handler) HandleDeleteProgram(c *gin.Context) {
	if err := h.programs.DeleteProgram(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleStartProgram(c *gin.Context) {
	h.handleTransition(c, h.programs.StartProgram)
}

func (h *Handler) HandleCompleteProgram(c *gin.Context) {
	h.handleTransition(c, h.programs.CompleteProgram)
}

func (h *Handler) HandleCancelProgram(c *gin.Context) {
	h.handleTransition(c, h.programs.CancelProgram)
}

func (h *Handler) HandleFeatureProgram(c *gin.Context) {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "bad_request", "message": err.Error()},
		})
		return
	}
	program, err := h.programs.FeatureProgram(c.Request.Context(), c.Param("id"), userID(c), req.Featured)
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": programToDTO(program)})
}

func (h *Handler) handleTransition(c *gin.Context, apply func(ctx context.Context, id, userID string) (*entities.Program, error)) {
	program, err := apply(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"program": programToDTO(program)})
}
