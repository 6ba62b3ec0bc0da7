package service

import (
	"fmt"

	"healthcare-backend/internal/models"
)

type DoctorService struct {
	doctorStore DoctorStore
	auditStore  AuditStore
}

func NewDoctorService(doctorStore DoctorStore, auditStore AuditStore) *DoctorService {
	return &DoctorService{
		doctorStore: doctorStore,
		auditStore:  auditStore,
	}
}

// DoctorUpdate carries the fields a PUT/PATCH may change.
// Nil fields are left untouched.
type DoctorUpdate struct {
	Name              *string
	Email             *string
	Phone             *string
	Specialization    *string
	LicenseNumber     *string
	YearsOfExperience *int
	ConsultationFee   *float64
	AvailableFrom     *string
	AvailableTo       *string
}

// List retrieves the full doctor directory, newest first
func (s *DoctorService) List() ([]models.Doctor, error) {
	return s.doctorStore.ListAll()
}

// Get retrieves one doctor by ID
func (s *DoctorService) Get(id uint) (*models.Doctor, error) {
	return s.doctorStore.FindByID(id)
}

// Create validates and stores a new doctor record
func (s *DoctorService) Create(doctor *models.Doctor, callerID uint) error {
	if err := validateDoctorFields(doctor); err != nil {
		return err
	}

	doctor.ID = 0
	if err := s.doctorStore.Create(doctor); err != nil {
		return err
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "doctor_create",
		fmt.Sprintf("Created doctor %s (license: %s)", doctor.Name, doctor.LicenseNumber))

	return nil
}

// Update applies a partial update to a doctor record
func (s *DoctorService) Update(id, callerID uint, update DoctorUpdate) (*models.Doctor, error) {
	doctor, err := s.doctorStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		doctor.Name = *update.Name
	}
	if update.Email != nil {
		doctor.Email = *update.Email
	}
	if update.Phone != nil {
		doctor.Phone = *update.Phone
	}
	if update.Specialization != nil {
		doctor.Specialization = *update.Specialization
	}
	if update.LicenseNumber != nil {
		doctor.LicenseNumber = *update.LicenseNumber
	}
	if update.YearsOfExperience != nil {
		doctor.YearsOfExperience = *update.YearsOfExperience
	}
	if update.ConsultationFee != nil {
		doctor.ConsultationFee = *update.ConsultationFee
	}
	if update.AvailableFrom != nil {
		doctor.AvailableFrom = *update.AvailableFrom
	}
	if update.AvailableTo != nil {
		doctor.AvailableTo = *update.AvailableTo
	}

	if err := validateDoctorFields(doctor); err != nil {
		return nil, err
	}

	if err := s.doctorStore.Update(doctor); err != nil {
		return nil, err
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "doctor_update",
		fmt.Sprintf("Updated doctor %s (ID: %d)", doctor.Name, doctor.ID))

	return doctor, nil
}

// Delete removes a doctor from the directory
func (s *DoctorService) Delete(id, callerID uint) error {
	doctor, err := s.doctorStore.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.doctorStore.Delete(id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "doctor_delete",
		fmt.Sprintf("Deleted doctor %s (ID: %d)", doctor.Name, id))

	return nil
}

func validateDoctorFields(doctor *models.Doctor) error {
	if err := validatePhone(doctor.Phone); err != nil {
		return err
	}
	if err := validateYearsOfExperience(doctor.YearsOfExperience); err != nil {
		return err
	}
	if err := validateConsultationFee(doctor.ConsultationFee); err != nil {
		return err
	}
	if err := validateTimeOfDay("available_from", doctor.AvailableFrom); err != nil {
		return err
	}
	return validateTimeOfDay("available_to", doctor.AvailableTo)
}
