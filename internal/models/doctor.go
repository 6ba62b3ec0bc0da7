package models

import "time"

// Doctor represents an entry in the global doctor directory.
// Doctors are shared across all users; no ownership column.
type Doctor struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone             string    `gorm:"size:15;not null" json:"phone"`
	Specialization    string    `gorm:"size:100;not null" json:"specialization"`
	LicenseNumber     string    `gorm:"size:50;uniqueIndex;not null" json:"license_number"`
	YearsOfExperience int       `gorm:"not null" json:"years_of_experience"`
	ConsultationFee   float64   `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	AvailableFrom     string    `gorm:"type:time;not null" json:"available_from"`
	AvailableTo       string    `gorm:"type:time;not null" json:"available_to"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
