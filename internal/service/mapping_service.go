package service

import (
	"errors"
	"fmt"
	"time"

	"healthcare-backend/internal/apperr"
	"healthcare-backend/internal/models"
)

type MappingService struct {
	mappingStore MappingStore
	patientStore PatientStore
	doctorStore  DoctorStore
	auditStore   AuditStore
}

func NewMappingService(
	mappingStore MappingStore,
	patientStore PatientStore,
	doctorStore DoctorStore,
	auditStore AuditStore,
) *MappingService {
	return &MappingService{
		mappingStore: mappingStore,
		patientStore: patientStore,
		doctorStore:  doctorStore,
		auditStore:   auditStore,
	}
}

// MappingResponse is the list projection of a mapping: identity fields of the
// patient and doctor are joined in for display, never stored separately.
type MappingResponse struct {
	ID                   uint      `json:"id"`
	Patient              uint      `json:"patient"`
	Doctor               uint      `json:"doctor"`
	PatientName          string    `json:"patient_name"`
	DoctorName           string    `json:"doctor_name"`
	DoctorSpecialization string    `json:"doctor_specialization"`
	AssignedAt           time.Time `json:"assigned_at"`
	Notes                *string   `json:"notes"`
	IsActive             bool      `json:"is_active"`
}

// MappingDetail nests the full patient and doctor records of a mapping
type MappingDetail struct {
	ID         uint           `json:"id"`
	Patient    models.Patient `json:"patient"`
	Doctor     models.Doctor  `json:"doctor"`
	AssignedAt time.Time      `json:"assigned_at"`
	Notes      *string        `json:"notes"`
	IsActive   bool           `json:"is_active"`
}

// PatientDoctors is the detail view of one patient and their assigned doctors
type PatientDoctors struct {
	Patient models.Patient  `json:"patient"`
	Doctors []MappingDetail `json:"doctors"`
}

// ListActive retrieves all active mappings with display projections
func (s *MappingService) ListActive() ([]MappingResponse, error) {
	mappings, err := s.mappingStore.ListActive()
	if err != nil {
		return nil, err
	}

	responses := make([]MappingResponse, 0, len(mappings))
	for _, m := range mappings {
		responses = append(responses, toMappingResponse(m))
	}
	return responses, nil
}

// Assign creates an active mapping between a patient and a doctor.
// At most one active mapping may exist per pair; a duplicate is rejected
// before anything is written.
func (s *MappingService) Assign(patientID, doctorID uint, notes *string, callerID uint) (*MappingResponse, error) {
	exists, err := s.patientStore.Exists(patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.Validation("patient", "Patient does not exist")
	}

	doctor, err := s.doctorStore.FindByID(doctorID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Validation("doctor", "Doctor does not exist")
		}
		return nil, err
	}

	active, err := s.mappingStore.ActiveExists(patientID, doctorID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperr.Validation("", "This patient is already assigned to this doctor")
	}

	mapping := &models.PatientDoctorMapping{
		PatientID: patientID,
		DoctorID:  doctorID,
		Notes:     notes,
		IsActive:  true,
	}
	if err := s.mappingStore.Create(mapping); err != nil {
		return nil, err
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "mapping_assign",
		fmt.Sprintf("Assigned doctor %d to patient %d (mapping ID: %d)", doctorID, patientID, mapping.ID))

	// Re-read with relations for the response projection
	created, err := s.mappingStore.FindByID(mapping.ID)
	if err != nil {
		return nil, err
	}
	created.Doctor = *doctor
	response := toMappingResponse(*created)
	return &response, nil
}

// DoctorsForPatient retrieves a caller-owned patient and the doctors assigned
// to them, most recently assigned first
func (s *MappingService) DoctorsForPatient(patientID, callerID uint) (*PatientDoctors, error) {
	patient, err := s.patientStore.FindByIDForOwner(patientID, callerID)
	if err != nil {
		return nil, err
	}

	mappings, err := s.mappingStore.ListActiveByPatient(patientID)
	if err != nil {
		return nil, err
	}

	details := make([]MappingDetail, 0, len(mappings))
	for _, m := range mappings {
		details = append(details, MappingDetail{
			ID:         m.ID,
			Patient:    m.Patient,
			Doctor:     m.Doctor,
			AssignedAt: m.AssignedAt,
			Notes:      m.Notes,
			IsActive:   m.IsActive,
		})
	}

	return &PatientDoctors{Patient: *patient, Doctors: details}, nil
}

// Remove soft-deletes a mapping. Only the owner of the mapping's patient may
// remove it; the row itself is retained with is_active false.
func (s *MappingService) Remove(mappingID, callerID uint) error {
	mapping, err := s.mappingStore.FindByID(mappingID)
	if err != nil {
		return err
	}

	if mapping.Patient.CreatedBy != callerID {
		return apperr.ErrForbidden
	}

	if err := s.mappingStore.Deactivate(mappingID); err != nil {
		return fmt.Errorf("failed to remove mapping: %w", err)
	}

	_ = s.auditStore.CreateAuditLog(&callerID, "mapping_remove",
		fmt.Sprintf("Removed doctor %d from patient %d (mapping ID: %d)", mapping.DoctorID, mapping.PatientID, mappingID))

	return nil
}

func toMappingResponse(m models.PatientDoctorMapping) MappingResponse {
	return MappingResponse{
		ID:                   m.ID,
		Patient:              m.PatientID,
		Doctor:               m.DoctorID,
		PatientName:          m.Patient.Name,
		DoctorName:           m.Doctor.Name,
		DoctorSpecialization: m.Doctor.Specialization,
		AssignedAt:           m.AssignedAt,
		Notes:                m.Notes,
		IsActive:             m.IsActive,
	}
}
