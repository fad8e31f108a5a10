package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateTypeCourse plans must name the course they follow
const TemplateTypeCourse = "course"

// DefaultOwnerID is assigned to plans and progress entries posted without a userId
const DefaultOwnerID = "1"

// TimelineStep is one entry of a learning plan timeline
type TimelineStep struct {
	Step      string `json:"step" bson:"step"`
	Duration  string `json:"duration" bson:"duration"`
	Completed bool   `json:"completed" bson:"completed"`
}

// LearningPlan is stored in the learning_plan collection
type LearningPlan struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"userId" bson:"userId"`
	TemplateType string             `json:"templateType" bson:"templateType"`
	CourseName   string             `json:"courseName" bson:"courseName"`
	Title        string             `json:"title" bson:"title"`
	Details      string             `json:"details" bson:"details"`
	DateCreated  time.Time          `json:"dateCreated" bson:"dateCreated"`
	LastModified time.Time          `json:"lastModified" bson:"lastModified"`
	Timeline     []TimelineStep     `json:"timeline" bson:"timeline"`
}

// LearningPlanRequest is the body of plan create and update calls.
// Nil fields are left untouched on update.
type LearningPlanRequest struct {
	UserID       *string        `json:"userId"`
	TemplateType *string        `json:"templateType"`
	CourseName   *string        `json:"courseName"`
	Title        *string        `json:"title"`
	Details      *string        `json:"details"`
	DateCreated  *time.Time     `json:"dateCreated"`
	LastModified *time.Time     `json:"lastModified"`
	Timeline     []TimelineStep `json:"timeline"`
}

// NewLearningPlan validates a create request and returns the normalized plan
func (r *LearningPlanRequest) NewLearningPlan(now time.Time) (*LearningPlan, error) {
	if blank(r.Title) {
		return nil, InvalidInput("Title is required")
	}
	if strings.EqualFold(trimmed(r.TemplateType), TemplateTypeCourse) && blank(r.CourseName) {
		return nil, InvalidInput("Course name is required for course plans")
	}
	if blank(r.TemplateType) {
		return nil, InvalidInput("Template type is required")
	}

	plan := &LearningPlan{
		UserID:       DefaultOwnerID,
		TemplateType: strings.ToLower(trimmed(r.TemplateType)),
		CourseName:   trimmed(r.CourseName),
		Title:        trimmed(r.Title),
		Details:      trimmed(r.Details),
		DateCreated:  now,
		LastModified: now,
		Timeline:     r.Timeline,
	}
	if r.UserID != nil && *r.UserID != "" {
		plan.UserID = *r.UserID
	}
	if r.DateCreated != nil {
		plan.DateCreated = *r.DateCreated
	}
	if r.LastModified != nil {
		plan.LastModified = *r.LastModified
	}
	if plan.Timeline == nil {
		plan.Timeline = []TimelineStep{}
	}
	return plan, nil
}

// Apply overwrites the plan with the non-nil fields of the request
func (r *LearningPlanRequest) Apply(plan *LearningPlan, now time.Time) {
	if r.CourseName != nil {
		plan.CourseName = strings.TrimSpace(*r.CourseName)
	}
	if r.Title != nil {
		plan.Title = strings.TrimSpace(*r.Title)
	}
	if r.Details != nil {
		plan.Details = strings.TrimSpace(*r.Details)
	}
	if r.TemplateType != nil {
		plan.TemplateType = strings.ToLower(strings.TrimSpace(*r.TemplateType))
	}
	if r.Timeline != nil {
		plan.Timeline = r.Timeline
	}
	plan.LastModified = now
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func blank(s *string) bool {
	return trimmed(s) == ""
}
