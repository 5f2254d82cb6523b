package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

type processingOfficeHandler struct {
	officeService portssvc.ProcessingOfficeSvcFacade
}

// registerProcessingOfficeRoutes registers processing office routes under the super-admin namespace.
func registerProcessingOfficeRoutes(rg *gin.RouterGroup, officeService portssvc.ProcessingOfficeSvcFacade) {
	h := &processingOfficeHandler{officeService: officeService}

	offices := rg.Group("/processing-offices")
	{
		offices.POST("", h.createProcessingOffice)
		offices.GET("", h.listProcessingOffices)
		offices.GET("/:office_id", h.getProcessingOffice)
		offices.PUT("/:office_id", h.updateProcessingOffice)
		offices.GET("/:office_id/contract", h.getContract)
	}
}

// createProcessingOffice godoc
// @Summary Create a processing office
// @Description Creates a processing office with its login. Accepts JSON or multipart with an optional "contract" file.
// @Tags processing-offices
// @Accept json,mpfd
// @Produce json
// @Param office body dto.ProvisionRequest true "Office details"
// @Param contract formData file false "Signed contract"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/processing-offices [post]
func (h *processingOfficeHandler) createProcessingOffice(c *gin.Context) {
	var req dto.ProvisionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	contract, closeContract, err := contractFromForm(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	defer closeContract()

	office, err := h.officeService.CreateProcessingOffice(c.Request.Context(), tenantID, actorID, req, contract)
	if err != nil {
		respondWithError(c, err, "Failed to create processing office")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Processing office created",
		slog.String("processing_office_id", office.ProcessingOfficeID))
	c.JSON(http.StatusCreated, dto.ToProcessingOfficeResponse(office))
}

// updateProcessingOffice godoc
// @Summary Update a processing office
// @Description A new "contract" file replaces the current one; omitting it keeps it.
// @Tags processing-offices
// @Accept json,mpfd
// @Produce json
// @Param office_id path string true "Processing office ID"
// @Param office body dto.UpdateProvisionRequest true "Office details"
// @Param contract formData file false "Signed contract"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/processing-offices/{office_id} [put]
func (h *processingOfficeHandler) updateProcessingOffice(c *gin.Context) {
	var req dto.UpdateProvisionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	contract, closeContract, err := contractFromForm(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	defer closeContract()

	office, err := h.officeService.UpdateProcessingOffice(c.Request.Context(), tenantID, actorID, c.Param("office_id"), req, contract)
	if err != nil {
		respondWithError(c, err, "Failed to update processing office")
		return
	}
	c.JSON(http.StatusOK, dto.ToProcessingOfficeResponse(office))
}

// getProcessingOffice godoc
// @Summary Get a processing office
// @Tags processing-offices
// @Produce json
// @Param office_id path string true "Processing office ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/processing-offices/{office_id} [get]
func (h *processingOfficeHandler) getProcessingOffice(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	office, err := h.officeService.GetProcessingOffice(c.Request.Context(), tenantID, c.Param("office_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve processing office")
		return
	}
	c.JSON(http.StatusOK, dto.ToProcessingOfficeResponse(office))
}

// listProcessingOffices godoc
// @Summary List processing offices
// @Tags processing-offices
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListEntitiesResponse
// @Security BearerAuth
// @Router /super-admin/processing-offices [get]
func (h *processingOfficeHandler) listProcessingOffices(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	page, err := h.officeService.ListProcessingOffices(c.Request.Context(), tenantID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list processing offices")
		return
	}
	c.JSON(http.StatusOK, toListEntitiesResponse(page, dto.ToProcessingOfficeResponse))
}

// getContract godoc
// @Summary Contract download link
// @Tags processing-offices
// @Produce json
// @Param office_id path string true "Processing office ID"
// @Success 200 {object} dto.DownloadURLResponse
// @Failure 404 {object} ErrorResponse "Office or contract not found"
// @Security BearerAuth
// @Router /super-admin/processing-offices/{office_id}/contract [get]
func (h *processingOfficeHandler) getContract(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	url, expiresAt, err := h.officeService.GetProcessingOfficeContractURL(c.Request.Context(), tenantID, c.Param("office_id"))
	if err != nil {
		respondWithError(c, err, "Failed to create contract link")
		return
	}
	c.JSON(http.StatusOK, dto.DownloadURLResponse{URL: url, ExpiresAt: expiresAt})
}
