package rest

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"programhub/internal/domain/entities"
)

type EnrollmentDTO struct {
	ID          string     `json:"id"`
	ProgramID   string     `json:"program_id"`
	UserID      string     `json:"user_id"`
	Status      string     `json:"status"`
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Rating      int        `json:"rating,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func enrollmentToDTO(e *entities.Enrollment) EnrollmentDTO {
	dto := EnrollmentDTO{
		ID:         e.ID,
		ProgramID:  e.ProgramID,
		UserID:     e.UserID,
		Status:     string(e.Status),
		EnrolledAt: e.EnrolledAt,
		Rating:     e.Rating,
		Feedback:   e.Feedback,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if !e.CompletedAt.IsZero() {
		completedAt := e.CompletedAt
		dto.CompletedAt = &completedAt
	}
	return dto
}

// HandleEnroll admits the requesting user into the program. When the use
// case reports that a record was written, the participant counter is
// advanced through the admission-accounting collaborator; the idempotent
// path leaves the counter alone.
func (h *Handler) HandleEnroll(c *gin.Context) {
	programID := c.Param("id")
	enrollment, created, err := h.enrollments.EnrollInProgram(c.Request.Context(), programID, userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	if created {
		if err := h.accounting.RecordEnrollment(c.Request.Context(), programID); err != nil {
			// The enrollment itself stands; the counter will drift at
			// most by one until the next accounting pass.
			log.Printf("admission accounting: record enrollment for program %s: %v", programID, err)
		}
		c.JSON(http.StatusCreated, gin.H{"enrollment": enrollmentToDTO(enrollment)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollmentToDTO(enrollment)})
}

// HandleCancelEnrollment hard-deletes the requesting user's enrollment.
// The counter is released only if the deleted enrollment was still
// active.
func (h *Handler) HandleCancelEnrollment(c *gin.Context) {
	enrollment, err := h.enrollments.GetEnrollment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	wasActive, err := h.enrollments.CancelEnrollment(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	if wasActive {
		if err := h.accounting.ReleaseEnrollment(c.Request.Context(), enrollment.ProgramID); err != nil {
			log.Printf("admission accounting: release enrollment for program %s: %v", enrollment.ProgramID, err)
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleGetEnrollment(c *gin.Context) {
	detail, err := h.enrollments.GetEnrollmentWithDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enrollment": enrollmentToDTO(&detail.Enrollment),
		"program":    programToDTO(&detail.Program),
		"user":       gin.H{"id": detail.User.ID, "name": detail.User.Name},
	})
}

func (h *Handler) HandleListProgramEnrollments(c *gin.Context) {
	enrollments, err := h.enrollments.ListByProgram(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollmentsToDTO(enrollments)})
}

func (h *Handler) HandleListMyEnrollments(c *gin.Context) {
	enrollments, err := h.enrollments.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollmentsToDTO(enrollments)})
}

type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func (h *Handler) HandleCompleteEnrollment(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "bad_request", "message": err.Error()},
		})
		return
	}
	enrollment, err := h.enrollments.CompleteEnrollment(c.Request.Context(), c.Param("id"), userID(c), req.Rating, req.Feedback)
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollmentToDTO(enrollment)})
}

// HandleDropEnrollment deactivates the requesting user's enrollment.
// Dropping only succeeds from the active state, so the counter is
// released whenever the use case does.
func (h *Handler) HandleDropEnrollment(c *gin.Context) {
	enrollment, err := h.enrollments.DropEnrollment(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	if err := h.accounting.ReleaseEnrollment(c.Request.Context(), enrollment.ProgramID); err != nil {
		log.Printf("admission accounting: release enrollment for program %s: %v", enrollment.ProgramID, err)
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollmentToDTO(enrollment)})
}

// HandleRejectEnrollment removes the user from the program on the
// program owner's behalf. Counter handling mirrors HandleDropEnrollment.
func (h *Handler) HandleRejectEnrollment(c *gin.Context) {
	enrollment, err := h.enrollments.RejectEnrollment(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	if err := h.accounting.ReleaseEnrollment(c.Request.Context(), enrollment.ProgramID); err != nil {
		log.Printf("admission accounting: release enrollment for program %s: %v", enrollment.ProgramID, err)
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollmentToDTO(enrollment)})
}

func (h *Handler) HandleUpdateFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "bad_request", "message": err.Error()},
		})
		return
	}
	enrollment, err := h.enrollments.UpdateFeedback(c.Request.Context(), c.Param("id"), userID(c), req.Rating, req.Feedback)
	if err != nil {
		writeError(c, h.translator, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollmentToDTO(enrollment)})
}

func enrollmentsToDTO(enrollments []entities.Enrollment) []EnrollmentDTO {
	out := make([]EnrollmentDTO, len(enrollments))
	for i := range enrollments {
		out[i] = enrollmentToDTO(&enrollments[i])
	}
	return out
}
