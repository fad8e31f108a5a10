package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LearningProgress is stored in the learning_progress collection
type LearningProgress struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"userId" bson:"userId"`
	TemplateType string             `json:"templateType" bson:"templateType"`
	CourseName   string             `json:"courseName" bson:"courseName"`
	Title        string             `json:"title" bson:"title"`
	Details      string             `json:"details" bson:"details"`
	DateCreated  time.Time          `json:"dateCreated" bson:"dateCreated"`
	LastModified time.Time          `json:"lastModified" bson:"lastModified"`
}

type LearningProgressRequest struct {
	UserID       *string    `json:"userId"`
	TemplateType *string    `json:"templateType"`
	CourseName   *string    `json:"courseName"`
	Title        *string    `json:"title"`
	Details      *string    `json:"details"`
	DateCreated  *time.Time `json:"dateCreated"`
	LastModified *time.Time `json:"lastModified"`
}

// NewLearningProgress validates a create request. Unlike plans, progress
// entries always need a course name.
func (r *LearningProgressRequest) NewLearningProgress(now time.Time) (*LearningProgress, error) {
	switch {
	case blank(r.Title):
		return nil, InvalidInput("Title is required")
	case blank(r.CourseName):
		return nil, InvalidInput("Course name is required")
	case blank(r.TemplateType):
		return nil, InvalidInput("Template type is required")
	}

	p := &LearningProgress{
		UserID:       DefaultOwnerID,
		TemplateType: strings.ToLower(trimmed(r.TemplateType)),
		CourseName:   trimmed(r.CourseName),
		Title:        trimmed(r.Title),
		Details:      trimmed(r.Details),
		DateCreated:  now,
		LastModified: now,
	}
	if r.UserID != nil && *r.UserID != "" {
		p.UserID = *r.UserID
	}
	if r.DateCreated != nil {
		p.DateCreated = *r.DateCreated
	}
	if r.LastModified != nil {
		p.LastModified = *r.LastModified
	}
	return p, nil
}

func (r *LearningProgressRequest) Apply(p *LearningProgress, now time.Time) {
	if r.CourseName != nil {
		p.CourseName = strings.TrimSpace(*r.CourseName)
	}
	if r.Title != nil {
		p.Title = strings.TrimSpace(*r.Title)
	}
	if r.Details != nil {
		p.Details = strings.TrimSpace(*r.Details)
	}
	if r.TemplateType != nil {
		p.TemplateType = strings.ToLower(strings.TrimSpace(*r.TemplateType))
	}
	p.LastModified = now
}
