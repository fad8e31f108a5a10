package handlers

import (
	"net/http"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatePlanValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    map[string]interface{}
		message string
	}{
		{"missing title", map[string]interface{}{"templateType": "custom"}, "Title is required"},
		{"course without name", map[string]interface{}{"title": "Knife skills", "templateType": "Course"}, "Course name is required for course plans"},
		{"missing template", map[string]interface{}{"title": "Knife skills"}, "Template type is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/plan", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestPlanLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/plan", map[string]interface{}{
		"title":        "  Knife skills ",
		"templateType": "COURSE",
		"courseName":   "Basics",
		"timeline":     []map[string]interface{}{{"step": "Dicing", "duration": "1 week"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	plan := decode[models.LearningPlan](t, rec)
	assert.Equal(t, "Knife skills", plan.Title)
	assert.Equal(t, "course", plan.TemplateType)
	assert.Equal(t, models.DefaultOwnerID, plan.UserID)
	assert.Len(t, plan.Timeline, 1)

	rec = s.do(t, http.MethodPut, "/api/plan/"+plan.ID.Hex(), map[string]interface{}{"details": "practice daily"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.LearningPlan](t, rec)
	assert.Equal(t, "practice daily", updated.Details)
	assert.Equal(t, "Knife skills", updated.Title)
	assert.False(t, updated.LastModified.Before(plan.LastModified))

	rec = s.do(t, http.MethodGet, "/api/plan/user/1", nil)
	assert.Len(t, decode[[]models.LearningPlan](t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/plan/"+plan.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/plan/"+plan.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/plan/"+plan.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodPut, "/api/plan/"+primitive.NewObjectID().Hex(), map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProgressLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/progress", map[string]interface{}{"title": "Week 1", "templateType": "custom"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Course name is required", errorMessage(t, rec))

	rec = s.do(t, http.MethodPost, "/api/progress", map[string]interface{}{
		"userId": "42", "title": "Week 1", "templateType": "custom", "courseName": "Baking",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	entry := decode[models.LearningProgress](t, rec)
	assert.Equal(t, "42", entry.UserID)

	rec = s.do(t, http.MethodPut, "/api/progress/"+entry.ID.Hex(), map[string]interface{}{"title": "Week 2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Week 2", decode[models.LearningProgress](t, rec).Title)

	rec = s.do(t, http.MethodGet, "/api/progress", nil)
	assert.Len(t, decode[[]models.LearningProgress](t, rec), 1)

	rec = s.do(t, http.MethodDelete, "/api/progress/"+entry.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/progress/"+entry.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
