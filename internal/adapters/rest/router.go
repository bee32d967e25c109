package rest

import (
	"github.com/gin-gonic/gin"

	"programhub/internal/ports/input"
	"programhub/internal/ports/output"
)

type Handler struct {
	programs    input.ProgramUseCase
	enrollments input.EnrollmentUseCase
	accounting  output.AdmissionAccounting
	translator  output.T
}

func NewRouter(
	programs input.ProgramUseCase,
	enrollments input.EnrollmentUseCase,
	accounting output.AdmissionAccounting,
	translator output.T,
) *gin.Engine {
	h := &Handler{
		programs:    programs,
		enrollments: enrollments,
		accounting:  accounting,
		translator:  translator,
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Programs
	r.POST("/programs", h.HandleCreateProgram)
	r.GET("/programs", h.HandleListPrograms)
	r.GET("/programs/:id", h.HandleGetProgram)
	r.PUT("/programs/:id", h.HandleUpdateProgram)
	r.DELETE("/programs/:id", h.HandleDeleteProgram)
	r.POST("/programs/:id/start", h.HandleStartProgram)
	r.POST("/programs/:id/complete", h.HandleCompleteProgram)
	r.POST("/programs/:id/cancel", h.HandleCancelProgram)
	r.POST("/programs/:id/feature", h.HandleFeatureProgram)
	r.GET("/programs/:id/enrollments", h.HandleListProgramEnrollments)

	// Enrollments
	r.POST("/programs/:id/enroll", h.HandleEnroll)
	r.GET("/enrollments", h.HandleListMyEnrollments)
	r.GET("/enrollments/:id", h.HandleGetEnrollment)
	r.DELETE("/enrollments/:id", h.HandleCancelEnrollment)
	r.POST("/enrollments/:id/complete", h.HandleCompleteEnrollment)
	r.POST("/enrollments/:id/drop", h.HandleDropEnrollment)
	r.POST("/enrollments/:id/reject", h.HandleRejectEnrollment)
	r.PUT("/enrollments/:id/feedback", h.HandleUpdateFeedback)

	return r
}

// userID extracts the acting user's id. Authentication lives at the edge
// (gateway/session layer); by the time requests reach this service the
// identity has been resolved into this header.
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}
