package handler

import (
	"net/http"

	"healthcare-backend/internal/middleware"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MappingHandler struct {
	mappingService *service.MappingService
}

func NewMappingHandler(mappingService *service.MappingService) *MappingHandler {
	return &MappingHandler{
		mappingService: mappingService,
	}
}

type CreateMappingRequest struct {
	Patient uint    `json:"patient" binding:"required"`
	Doctor  uint    `json:"doctor" binding:"required"`
	Notes   *string `json:"notes"`
}

// ListMappings retrieves all active mappings with display projections
func (h *MappingHandler) ListMappings(c *gin.Context) {
	mappings, err := h.mappingService.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"mappings": mappings,
		"count":    len(mappings),
	})
}

// CreateMapping assigns a doctor to a patient
func (h *MappingHandler) CreateMapping(c *gin.Context) {
	var req CreateMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	mapping, err := h.mappingService.Assign(req.Patient, req.Doctor, req.Notes, middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, mapping)
}

// GetPatientDoctors retrieves a caller-owned patient and the doctors
// currently assigned to them
func (h *MappingHandler) GetPatientDoctors(c *gin.Context) {
	patientID, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	result, err := h.mappingService.DoctorsForPatient(patientID, middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// RemoveMapping soft-deletes a mapping owned through the caller's patient
func (h *MappingHandler) RemoveMapping(c *gin.Context) {
	mappingID, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid mapping ID")
		return
	}

	if err := h.mappingService.Remove(mappingID, middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.MessageResponse(c, "Doctor removed from patient successfully")
}
