package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lg/wellness-go-api/nutrition"
)

// Handler holds shared dependencies (session store, auth config) for all
// route handlers.
type Handler struct {
	sessions      *sessionStore
	accessKeyHash []byte // bcrypt hash of the API access key; nil disables auth
}

func newHandler(cfg config) *Handler {
	h := &Handler{sessions: newSessionStore(cfg.SessionTTL)}
	if cfg.AccessKeyHash != "" {
		h.accessKeyHash = []byte(cfg.AccessKeyHash)
	}
	return h
}

/* ─── Response helpers ───────────────────────────────────────────────── */

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// inputErrors are the engine's caller-input failures; all map to 400.
var inputErrors = []error{
	nutrition.ErrUnknownFood,
	nutrition.ErrInvalidQuantity,
	nutrition.ErrUnknownGender,
	nutrition.ErrUnknownActivityLevel,
	nutrition.ErrUnknownGoal,
	nutrition.ErrUnknownExperienceLevel,
	nutrition.ErrUnknownWorkoutGoal,
	nutrition.ErrInvalidProfile,
}

// engineError writes the response for an error returned by the nutrition
// package. Anything outside the input taxonomy is a 500.
func engineError(c *gin.Context, tag string, err error) {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	log.Printf("[%s] unexpected error: %v", tag, err)
	apiError(c, http.StatusInternalServerError, "internal error")
}

// withSession resolves :id to a live session, locks it, and runs fn.
// Responds 404 for malformed, unknown or expired ids.
func (h *Handler) withSession(c *gin.Context, fn func(s *session)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apiError(c, http.StatusNotFound, "session not found")
		return
	}
	s, ok := h.sessions.get(id)
	if !ok {
		apiError(c, http.StatusNotFound, "session not found")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", h.authMiddleware())

	// Stateless lookups
	api.GET("/foods", h.listFoods)
	api.GET("/foods/:name", h.getFood)
	api.GET("/workout-plan", h.getWorkoutPlan)

	// Session lifecycle
	api.POST("/sessions", h.createSession)
	api.DELETE("/sessions/:id", h.endSession)

	// Session-scoped state
	api.POST("/sessions/:id/intake", h.addIntakeEntry)
	api.GET("/sessions/:id/intake", h.listIntakeEntries)
	api.GET("/sessions/:id/intake.csv", h.exportIntakeCSV)
	api.GET("/sessions/:id/summary", h.getDailySummary)
	api.GET("/sessions/:id/summary/chart", h.getSummaryChart)
	api.PUT("/sessions/:id/profile", h.saveProfile)
	api.GET("/sessions/:id/profile", h.getProfile)
	api.GET("/sessions/:id/diet-plan", h.getDietPlan)
	api.GET("/sessions/:id/plan.pdf", h.getPlanPDF)
}

// createSession starts a new empty session.
// POST /api/sessions.
func (h *Handler) createSession(c *gin.Context) {
	id := h.sessions.create()
	c.JSON(http.StatusCreated, gin.H{"session_id": id.String()})
}

// endSession discards the session's ledger and profile. Returns 204.
// DELETE /api/sessions/:id.
func (h *Handler) endSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || !h.sessions.end(id) {
		apiError(c, http.StatusNotFound, "session not found")
		return
	}
	c.Status(http.StatusNoContent)
}
