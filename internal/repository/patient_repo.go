package repository

import (
	"errors"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// ListByOwner retrieves all patients created by the given user, newest first
func (r *PatientRepository) ListByOwner(ownerID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&patients).Error
	return patients, err
}

// FindByIDForOwner retrieves a patient by ID scoped to its owner.
// A patient owned by someone else is reported as not found, not forbidden.
func (r *PatientRepository) FindByIDForOwner(id, ownerID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ? AND created_by = ?", id, ownerID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// Exists reports whether a patient exists regardless of owner.
// Used only when wiring mappings; every other read is owner-scoped.
func (r *PatientRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new patient record
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// Update persists changes to an existing patient record
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete hard-deletes a patient; mappings cascade at the store level
func (r *PatientRepository) Delete(id uint) error {
	return r.db.Delete(&models.Patient{}, id).Error
}

// CountByOwner counts patients created by the given user
func (r *PatientRepository) CountByOwner(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).
		Where("created_by = ?", ownerID).
		Count(&count).Error
	return count, err
}
