package models

import "time"

// PatientDoctorMapping represents an assignment of a doctor to a patient.
// Removal flips IsActive to false; rows are never hard-deleted by the API.
// The pair index is unconditional on (patient_id, doctor_id), so a
// soft-deleted mapping blocks re-creating the same pair at the store level.
type PatientDoctorMapping struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  uint      `gorm:"not null;uniqueIndex:idx_patient_doctor" json:"patient"`
	DoctorID   uint      `gorm:"not null;uniqueIndex:idx_patient_doctor" json:"doctor"`
	AssignedAt time.Time `gorm:"autoCreateTime" json:"assigned_at"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for PatientDoctorMapping model
func (PatientDoctorMapping) TableName() string {
	return "patient_doctor_mappings"
}
