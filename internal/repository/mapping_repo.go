package repository

import (
	"errors"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type MappingRepository struct {
	db *gorm.DB
}

func NewMappingRepo(db *gorm.DB) *MappingRepository {
	return &MappingRepository{db: db}
}

// ListActive retrieves all active mappings with patient and doctor preloaded,
// most recently assigned first
func (r *MappingRepository) ListActive() ([]models.PatientDoctorMapping, error) {
	var mappings []models.PatientDoctorMapping
	err := r.db.Where("is_active = ?", true).
		Preload("Patient").
		Preload("Doctor").
		Order("assigned_at DESC").
		Find(&mappings).Error
	return mappings, err
}

// ListActiveByPatient retrieves the active mappings of one patient with
// patient and doctor preloaded, most recently assigned first
func (r *MappingRepository) ListActiveByPatient(patientID uint) ([]models.PatientDoctorMapping, error) {
	var mappings []models.PatientDoctorMapping
	err := r.db.Where("patient_id = ? AND is_active = ?", patientID, true).
		Preload("Patient").
		Preload("Doctor").
		Order("assigned_at DESC").
		Find(&mappings).Error
	return mappings, err
}

// FindByID retrieves a mapping by ID with its patient preloaded, active or not
func (r *MappingRepository) FindByID(id uint) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping
	err := r.db.Preload("Patient").First(&mapping, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &mapping, nil
}

// ActiveExists reports whether an active mapping exists for the pair
func (r *MappingRepository) ActiveExists(patientID, doctorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PatientDoctorMapping{}).
		Where("patient_id = ? AND doctor_id = ? AND is_active = ?", patientID, doctorID, true).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new mapping row. The pair index is unconditional, so a
// previously soft-deleted pair collides here and is reported as validation.
func (r *MappingRepository) Create(mapping *models.PatientDoctorMapping) error {
	err := r.db.Create(mapping).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Validation("", "A mapping already exists for this patient and doctor")
	}
	return err
}

// Deactivate soft-deletes a mapping by setting is_active to false.
// The row is retained; repeating the flip is a no-op.
func (r *MappingRepository) Deactivate(id uint) error {
	return r.db.Model(&models.PatientDoctorMapping{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// CountActiveByOwner counts active mappings whose patient belongs to the user
func (r *MappingRepository) CountActiveByOwner(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PatientDoctorMapping{}).
		Joins("INNER JOIN patients ON patients.id = patient_doctor_mappings.patient_id").
		Where("patients.created_by = ? AND patient_doctor_mappings.is_active = ?", ownerID, true).
		Count(&count).Error
	return count, err
}
