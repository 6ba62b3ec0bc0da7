package handler

import (
	"net/http"
	"strconv"

	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/models"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type CreatePatientRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required,max=15"`
	DateOfBirth    string  `json:"date_of_birth" binding:"required"`
	Gender         string  `json:"gender" binding:"required,oneof=M F O"`
	Address        string  `json:"address" binding:"required"`
	MedicalHistory *string `json:"medical_history"`
}

type UpdatePatientRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=15"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=M F O"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

// ListPatients retrieves the patients owned by the caller
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.List(middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// CreatePatient creates a patient record owned by the caller
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient := models.Patient{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.patientService.Create(&patient, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, patient)
}

// GetPatient retrieves one caller-owned patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.Get(id, middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// UpdatePatient applies a partial update to a caller-owned patient
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := h.patientService.Update(id, middleware.CallerID(c), service.PatientUpdate{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// DeletePatient removes a caller-owned patient record
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.Delete(id, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
