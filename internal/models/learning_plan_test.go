package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLearningPlanRequest_NewLearningPlan(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         LearningPlanRequest
		expectError string
	}{
		{"Missing title", LearningPlanRequest{TemplateType: strPtr("skill")}, "Title is required"},
		{"Blank title", LearningPlanRequest{Title: strPtr("   "), TemplateType: strPtr("skill")}, "Title is required"},
		{"Course without course name", LearningPlanRequest{Title: strPtr("Knife work"), TemplateType: strPtr("Course")}, "Course name is required for course plans"},
		{"Missing template type", LearningPlanRequest{Title: strPtr("Knife work")}, "Template type is required"},
		{"Skill plan without course name", LearningPlanRequest{Title: strPtr("Knife work"), TemplateType: strPtr("skill")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := tt.req.NewLearningPlan(now)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				var ce *ClientError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.expectError, ce.Msg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, plan)
		})
	}
}

func TestLearningPlanRequest_Normalizes(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	req := LearningPlanRequest{
		Title:        strPtr("  Sourdough  "),
		TemplateType: strPtr(" COURSE "),
		CourseName:   strPtr(" Baking 101 "),
		Details:      strPtr(" weekly "),
	}

	plan, err := req.NewLearningPlan(now)
	require.NoError(t, err)

	assert.Equal(t, "Sourdough", plan.Title)
	assert.Equal(t, "course", plan.TemplateType)
	assert.Equal(t, "Baking 101", plan.CourseName)
	assert.Equal(t, "weekly", plan.Details)
	assert.Equal(t, DefaultOwnerID, plan.UserID)
	assert.Equal(t, now, plan.DateCreated)
	assert.Equal(t, now, plan.LastModified)
	assert.NotNil(t, plan.Timeline)
}

func TestLearningPlanRequest_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(48 * time.Hour)
	plan := &LearningPlan{Title: "Old", Details: "keep", TemplateType: "skill", DateCreated: created, LastModified: created}

	req := LearningPlanRequest{Title: strPtr(" New "), TemplateType: strPtr("COURSE")}
	req.Apply(plan, now)

	assert.Equal(t, "New", plan.Title)
	assert.Equal(t, "keep", plan.Details)
	assert.Equal(t, "course", plan.TemplateType)
	assert.Equal(t, created, plan.DateCreated)
	assert.Equal(t, now, plan.LastModified)
}

func TestLearningProgressRequest_RequiresCourseName(t *testing.T) {
	req := LearningProgressRequest{Title: strPtr("Week 1"), TemplateType: strPtr("skill")}
	_, err := req.NewLearningProgress(time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.CourseName = strPtr("Pastry")
	req.UserID = strPtr("abc")
	p, err := req.NewLearningProgress(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "abc", p.UserID)
	assert.Equal(t, "Pastry", p.CourseName)
}
