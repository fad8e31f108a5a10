package models

import "time"

// SequenceCounter is the relational row backing a named sequence
type SequenceCounter struct {
	Name      string    `gorm:"primaryKey;size:100" json:"name"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
