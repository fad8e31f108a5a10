package handlers

import (
	"net/http"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/labstack/echo/v4"
)

// PlanHandler handles learning plan CRUD
type PlanHandler struct {
	planRepository repositories.LearningPlanRepository
	now            func() time.Time
}

func NewPlanHandler(planRepo repositories.LearningPlanRepository) *PlanHandler {
	return &PlanHandler{
		planRepository: planRepo,
		now:            func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// RegisterPlanRoutes registers learning plan routes
func (h *PlanHandler) RegisterPlanRoutes(g *echo.Group) {
	g.GET("/plan", h.GetPlans)
	g.GET("/plan/user/:userId", h.GetPlansByUser)
	g.GET("/plan/:id", h.GetPlan)
	g.POST("/plan", h.CreatePlan)
	g.PUT("/plan/:id", h.UpdatePlan)
	g.DELETE("/plan/:id", h.DeletePlan)
}

func (h *PlanHandler) GetPlans(c echo.Context) error {
	plans, err := h.planRepository.GetPlans(c.Request().Context())
	if err != nil {
		return httpError(err, "Learning plan")
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetPlansByUser(c echo.Context) error {
	plans, err := h.planRepository.GetPlansByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return httpError(err, "Learning plan")
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "plan")
	if err != nil {
		return err
	}

	plan, err := h.planRepository.GetPlanByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err, "Learning plan")
	}
	return c.JSON(http.StatusOK, plan)
}

// CreatePlan stores a new plan. Course plans must name their course.
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req models.LearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	plan, err := req.NewLearningPlan(h.now())
	if err != nil {
		return httpError(err, "Learning plan")
	}
	if err := h.planRepository.CreatePlan(c.Request().Context(), plan); err != nil {
		return httpError(err, "Learning plan")
	}
	return c.JSON(http.StatusOK, plan)
}

// UpdatePlan overwrites the supplied fields and bumps lastModified
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "plan")
	if err != nil {
		return err
	}

	var req models.LearningPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	ctx := c.Request().Context()
	plan, err := h.planRepository.GetPlanByID(ctx, id)
	if err != nil {
		return httpError(err, "Learning plan")
	}
	req.Apply(plan, h.now())
	if err := h.planRepository.ReplacePlan(ctx, plan); err != nil {
		return httpError(err, "Learning plan")
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeletePlan(c echo.Context) error {
	id, err := parseObjectID(c.Param("id"), "plan")
	if err != nil {
		return err
	}

	if err := h.planRepository.DeletePlan(c.Request().Context(), id); err != nil {
		return httpError(err, "Learning plan")
	}
	return c.NoContent(http.StatusOK)
}
