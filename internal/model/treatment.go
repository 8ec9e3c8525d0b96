package model

import "time"

const DefaultTreatmentDuration = 30

type Treatment struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Price           float64   `db:"price" json:"price"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Description     string    `db:"description" json:"description,omitempty"`
	Version         int64     `db:"version" json:"version"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type TreatmentInput struct {
	ID              int64   `json:"id"`
	Version         int64   `json:"version"`
	Name            string  `json:"name" binding:"required,max=120"`
	Price           float64 `json:"price" binding:"min=0,max=100000"`
	DurationMinutes int     `json:"duration_minutes" binding:"omitempty,min=5,max=600"`
	Description     string  `json:"description" binding:"omitempty,max=400"`
}
