package repository

import (
	"errors"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListAll retrieves the full doctor directory, newest first
func (r *DoctorRepository) ListAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("created_at DESC").Find(&doctors).Error
	return doctors, err
}

// FindByID retrieves a doctor by ID
func (r *DoctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// Create inserts a new doctor record.
// Duplicate email or license number surfaces as a validation error.
func (r *DoctorRepository) Create(doctor *models.Doctor) error {
	return translateDoctorErr(r.db.Create(doctor).Error)
}

// Update persists changes to an existing doctor record
func (r *DoctorRepository) Update(doctor *models.Doctor) error {
	return translateDoctorErr(r.db.Save(doctor).Error)
}

func translateDoctorErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Validation("", "A doctor with this email or license number already exists")
	}
	return err
}

// Delete hard-deletes a doctor; mappings cascade at the store level
func (r *DoctorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Doctor{}, id).Error
}

// CountAll counts every doctor in the directory
func (r *DoctorRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Count(&count).Error
	return count, err
}
