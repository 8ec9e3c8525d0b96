package model

import "time"

type Patient struct {
	ID        int64     `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	BirthDate time.Time `db:"birth_date" json:"birth_date"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Email     string    `db:"email" json:"email,omitempty"`
	Version   int64     `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type PatientInput struct {
	ID        int64  `json:"id"`
	Version   int64  `json:"version"`
	FullName  string `json:"full_name" binding:"required,max=100"`
	BirthDate string `json:"birth_date" binding:"required,datetime=2006-01-02"`
	Phone     string `json:"phone" binding:"omitempty,max=30,phone"`
	Email     string `json:"email" binding:"omitempty,max=120,email"`
}
