package service

import (
	"fmt"

	"healthcare-backend/internal/models"
)

type PatientService struct {
	patientStore PatientStore
	auditStore   AuditStore
}

func NewPatientService(patientStore PatientStore, auditStore AuditStore) *PatientService {
	return &PatientService{
		patientStore: patientStore,
		auditStore:   auditStore,
	}
}

// PatientUpdate carries the fields a PUT/PATCH may change.
// Nil fields are left untouched.
type PatientUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	DateOfBirth    *string
	Gender         *string
	Address        *string
	MedicalHistory *string
}

// List retrieves the patients owned by the caller, newest first
func (s *PatientService) List(callerID uint) ([]models.Patient, error) {
	return s.patientStore.ListByOwner(callerID)
}

// Get retrieves one caller-owned patient
func (s *PatientService) Get(id, callerID uint) (*models.Patient, error) {
	return s.patientStore.FindByIDForOwner(id, callerID)
}

// Create validates and stores a new patient record.
// The owner is always the caller; any owner supplied by the request is ignored.
func (s *PatientService) Create(patient *models.Patient, callerID uint) error {
	if err := validatePhone(patient.Phone); err != nil {
		return err
	}
	if err := validateDateOfBirth(patient.DateOfBirth); err != nil {
		return err
	}

	patient.ID = 0
	patient.CreatedBy = callerID

	if err := s.patientStore.Create(patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "patient_create",
		fmt.Sprintf("Created patient %s (ID: %d)", patient.Name, patient.ID))

	return nil
}

// Update applies a partial update to a caller-owned patient
func (s *PatientService) Update(id, callerID uint, update PatientUpdate) (*models.Patient, error) {
	patient, err := s.patientStore.FindByIDForOwner(id, callerID)
	if err != nil {
		return nil, err
	}

	if update.Phone != nil {
		if err := validatePhone(*update.Phone); err != nil {
			return nil, err
		}
		patient.Phone = *update.Phone
	}
	if update.DateOfBirth != nil {
		if err := validateDateOfBirth(*update.DateOfBirth); err != nil {
			return nil, err
		}
		patient.DateOfBirth = *update.DateOfBirth
	}
	if update.Name != nil {
		patient.Name = *update.Name
	}
	if update.Email != nil {
		patient.Email = *update.Email
	}
	if update.Gender != nil {
		patient.Gender = *update.Gender
	}
	if update.Address != nil {
		patient.Address = *update.Address
	}
	if update.MedicalHistory != nil {
		patient.MedicalHistory = update.MedicalHistory
	}

	if err := s.patientStore.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "patient_update",
		fmt.Sprintf("Updated patient %s (ID: %d)", patient.Name, patient.ID))

	return patient, nil
}

// Delete removes a caller-owned patient record
func (s *PatientService) Delete(id, callerID uint) error {
	patient, err := s.patientStore.FindByIDForOwner(id, callerID)
	if err != nil {
		return err
	}

	if err := s.patientStore.Delete(id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "patient_delete",
		fmt.Sprintf("Deleted patient %s (ID: %d)", patient.Name, id))

	return nil
}
