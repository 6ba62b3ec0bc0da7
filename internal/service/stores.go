package service

import "healthcare-backend/internal/models"

// Per-entity store interfaces. internal/repository provides the GORM-backed
// implementations; tests substitute in-memory fakes.

type PatientStore interface {
	ListByOwner(ownerID uint) ([]models.Patient, error)
	FindByIDForOwner(id, ownerID uint) (*models.Patient, error)
	Exists(id uint) (bool, error)
	Create(patient *models.Patient) error
	Update(patient *models.Patient) error
	Delete(id uint) error
	CountByOwner(ownerID uint) (int64, error)
}

type DoctorStore interface {
	ListAll() ([]models.Doctor, error)
	FindByID(id uint) (*models.Doctor, error)
	Create(doctor *models.Doctor) error
	Update(doctor *models.Doctor) error
	Delete(id uint) error
	CountAll() (int64, error)
}

type MappingStore interface {
	ListActive() ([]models.PatientDoctorMapping, error)
	ListActiveByPatient(patientID uint) ([]models.PatientDoctorMapping, error)
	FindByID(id uint) (*models.PatientDoctorMapping, error)
	ActiveExists(patientID, doctorID uint) (bool, error)
	Create(mapping *models.PatientDoctorMapping) error
	Deactivate(id uint) error
	CountActiveByOwner(ownerID uint) (int64, error)
}

type UserStore interface {
	FindUserByLogin(login string) (*models.User, error)
	CreateUser(user *models.User) error
	CreateRefreshToken(token *models.RefreshToken) error
	FindRefreshTokenByHash(hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(hash string) error
}

type AuditStore interface {
	CreateAuditLog(userID *uint, action string, details string) error
}
