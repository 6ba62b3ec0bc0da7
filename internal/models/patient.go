package models

import "time"

// Patient represents a patient record owned by the staff user who created it
type Patient struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Phone          string    `gorm:"size:15;not null" json:"phone"`
	DateOfBirth    string    `gorm:"size:10;not null" json:"date_of_birth"`
	Gender         string    `gorm:"type:enum('M','F','O');not null" json:"gender"`
	Address        string    `gorm:"type:text;not null" json:"address"`
	MedicalHistory *string   `gorm:"type:text" json:"medical_history"`
	CreatedBy      uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Owner User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
