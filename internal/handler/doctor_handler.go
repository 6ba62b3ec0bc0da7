package handler

import (
	"net/http"

	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/models"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type CreateDoctorRequest struct {
	Name              string  `json:"name" binding:"required,max=100"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             string  `json:"phone" binding:"required,max=15"`
	Specialization    string  `json:"specialization" binding:"required,max=100"`
	LicenseNumber     string  `json:"license_number" binding:"required,max=50"`
	YearsOfExperience int     `json:"years_of_experience"`
	ConsultationFee   float64 `json:"consultation_fee"`
	AvailableFrom     string  `json:"available_from" binding:"required"`
	AvailableTo       string  `json:"available_to" binding:"required"`
}

type UpdateDoctorRequest struct {
	Name              *string  `json:"name" binding:"omitempty,max=100"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	Phone             *string  `json:"phone" binding:"omitempty,max=15"`
	Specialization    *string  `json:"specialization" binding:"omitempty,max=100"`
	LicenseNumber     *string  `json:"license_number" binding:"omitempty,max=50"`
	YearsOfExperience *int     `json:"years_of_experience"`
	ConsultationFee   *float64 `json:"consultation_fee"`
	AvailableFrom     *string  `json:"available_from"`
	AvailableTo       *string  `json:"available_to"`
}

// ListDoctors retrieves the full doctor directory
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctorService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// CreateDoctor adds a doctor to the directory
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor := models.Doctor{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Specialization:    req.Specialization,
		LicenseNumber:     req.LicenseNumber,
		YearsOfExperience: req.YearsOfExperience,
		ConsultationFee:   req.ConsultationFee,
		AvailableFrom:     req.AvailableFrom,
		AvailableTo:       req.AvailableTo,
	}

	if err := h.doctorService.Create(&doctor, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, doctor)
}

// GetDoctor retrieves one doctor by ID
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// UpdateDoctor applies a partial update to a doctor record
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doctor, err := h.doctorService.Update(id, middleware.CallerID(c), service.DoctorUpdate{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Specialization:    req.Specialization,
		LicenseNumber:     req.LicenseNumber,
		YearsOfExperience: req.YearsOfExperience,
		ConsultationFee:   req.ConsultationFee,
		AvailableFrom:     req.AvailableFrom,
		AvailableTo:       req.AvailableTo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, doctor)
}

// DeleteDoctor removes a doctor from the directory
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.Delete(id, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
