package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// repCountryHandler handles rep countries and their status pipelines.
type repCountryHandler struct {
	pipelineService portssvc.PipelineSvcFacade
}

// registerRepCountryRoutes registers the pipeline routes under the super-admin namespace.
func registerRepCountryRoutes(rg *gin.RouterGroup, pipelineService portssvc.PipelineSvcFacade) {
	h := &repCountryHandler{pipelineService: pipelineService}

	repCountries := rg.Group("/rep-countries")
	{
		repCountries.POST("", h.createRepCountry)
		repCountries.GET("", h.listRepCountries)
		repCountries.GET("/:rep_country_id", h.getRepCountry)

		statuses := repCountries.Group("/:rep_country_id/statuses")
		statuses.POST("", h.addStatus)
		statuses.PUT("/order", h.saveStatusOrder)
		statuses.PATCH("/:status_id/active", h.toggleStatus)
		statuses.PATCH("/:status_id/notes", h.updateStatusNotes)

		subStatuses := statuses.Group("/:status_id/sub-statuses")
		subStatuses.POST("", h.addSubStatus)
		subStatuses.PATCH("/:sub_status_id", h.editSubStatus)
		subStatuses.PATCH("/:sub_status_id/active", h.toggleSubStatus)
	}
}

// createRepCountry godoc
// @Summary Create a rep country
// @Description Creates a rep country and seeds its protected "New" status.
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param repCountry body dto.CreateRepCountryRequest true "Rep country"
// @Success 201 {object} dto.RepCountryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries [post]
func (h *repCountryHandler) createRepCountry(c *gin.Context) {
	var req dto.CreateRepCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}

	rc, err := h.pipelineService.CreateRepCountry(c.Request.Context(), tenantID, actorID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create rep country")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Rep country created", slog.String("rep_country_id", rc.RepCountryID))
	c.JSON(http.StatusCreated, dto.ToRepCountryResponse(rc))
}

// listRepCountries godoc
// @Summary List rep countries
// @Tags rep-countries
// @Produce json
// @Success 200 {object} dto.ListRepCountriesResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries [get]
func (h *repCountryHandler) listRepCountries(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	rcs, err := h.pipelineService.ListRepCountries(c.Request.Context(), tenantID)
	if err != nil {
		respondWithError(c, err, "Failed to list rep countries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRepCountriesResponse(rcs))
}

// getRepCountry godoc
// @Summary Get a rep country with its pipeline
// @Tags rep-countries
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Success 200 {object} dto.RepCountryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id} [get]
func (h *repCountryHandler) getRepCountry(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	rc, err := h.pipelineService.GetRepCountry(c.Request.Context(), tenantID, c.Param("rep_country_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve rep country")
		return
	}
	c.JSON(http.StatusOK, dto.ToRepCountryResponse(rc))
}

// addStatus godoc
// @Summary Append a status
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status body dto.AddStatusRequest true "Status"
// @Success 201 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses [post]
func (h *repCountryHandler) addStatus(c *gin.Context) {
	var req dto.AddStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	status, err := h.pipelineService.AddStatus(c.Request.Context(), tenantID, actorID, c.Param("rep_country_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add status")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStatusResponse(status))
}

// saveStatusOrder godoc
// @Summary Save status order
// @Description Applies each (statusName, order) pair; names matching no status are ignored. Returns the refreshed pipeline.
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param order body dto.SaveStatusOrderRequest true "Status order"
// @Success 200 {object} dto.RepCountryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/order [put]
func (h *repCountryHandler) saveStatusOrder(c *gin.Context) {
	var req dto.SaveStatusOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	repCountryID := c.Param("rep_country_id")

	if err := h.pipelineService.SaveStatusOrder(c.Request.Context(), tenantID, actorID, repCountryID, req); err != nil {
		respondWithError(c, err, "Failed to save status order")
		return
	}
	rc, err := h.pipelineService.GetRepCountry(c.Request.Context(), tenantID, repCountryID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve rep country")
		return
	}
	c.JSON(http.StatusOK, dto.ToRepCountryResponse(rc))
}

// toggleStatus godoc
// @Summary Activate or deactivate a status
// @Description The protected initial status cannot be toggled.
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status_id path string true "Status ID"
// @Param active body dto.ToggleActiveRequest true "Desired flag"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Protected status"
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/{status_id}/active [patch]
func (h *repCountryHandler) toggleStatus(c *gin.Context) {
	var req dto.ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	status, err := h.pipelineService.ToggleStatusActive(c.Request.Context(), tenantID, actorID, c.Param("rep_country_id"), c.Param("status_id"), *req.IsActive)
	if err != nil {
		respondWithError(c, err, "Failed to update status")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}

// updateStatusNotes godoc
// @Summary Update status notes
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status_id path string true "Status ID"
// @Param notes body dto.UpdateStatusNotesRequest true "Notes"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/{status_id}/notes [patch]
func (h *repCountryHandler) updateStatusNotes(c *gin.Context) {
	var req dto.UpdateStatusNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	status, err := h.pipelineService.UpdateStatusNotes(c.Request.Context(), tenantID, actorID, c.Param("rep_country_id"), c.Param("status_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update status notes")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatusResponse(status))
}

// addSubStatus godoc
// @Summary Add a sub-status
// @Description The sub-status is placed after the current last one.
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status_id path string true "Status ID"
// @Param subStatus body dto.AddSubStatusRequest true "Sub-status"
// @Success 201 {object} dto.SubStatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/{status_id}/sub-statuses [post]
func (h *repCountryHandler) addSubStatus(c *gin.Context) {
	var req dto.AddSubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	sub, err := h.pipelineService.AddSubStatus(c.Request.Context(), tenantID, actorID, c.Param("rep_country_id"), c.Param("status_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to add sub-status")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubStatusResponse(sub))
}

// editSubStatus godoc
// @Summary Rename a sub-status
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status_id path string true "Status ID"
// @Param sub_status_id path string true "Sub-status ID"
// @Param subStatus body dto.EditSubStatusRequest true "New name"
// @Success 200 {object} dto.SubStatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/{status_id}/sub-statuses/{sub_status_id} [patch]
func (h *repCountryHandler) editSubStatus(c *gin.Context) {
	var req dto.EditSubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	sub, err := h.pipelineService.EditSubStatus(c.Request.Context(), tenantID, actorID,
		c.Param("rep_country_id"), c.Param("status_id"), c.Param("sub_status_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update sub-status")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubStatusResponse(sub))
}

// toggleSubStatus godoc
// @Summary Activate or deactivate a sub-status
// @Tags rep-countries
// @Accept json
// @Produce json
// @Param rep_country_id path string true "Rep country ID"
// @Param status_id path string true "Status ID"
// @Param sub_status_id path string true "Sub-status ID"
// @Param active body dto.ToggleActiveRequest true "Desired flag"
// @Success 200 {object} dto.SubStatusResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/rep-countries/{rep_country_id}/statuses/{status_id}/sub-statuses/{sub_status_id}/active [patch]
func (h *repCountryHandler) toggleSubStatus(c *gin.Context) {
	var req dto.ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	sub, err := h.pipelineService.ToggleSubStatusActive(c.Request.Context(), tenantID, actorID,
		c.Param("rep_country_id"), c.Param("status_id"), c.Param("sub_status_id"), *req.IsActive)
	if err != nil {
		respondWithError(c, err, "Failed to update sub-status")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubStatusResponse(sub))
}
