package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// associateHandler serves the branch-office namespace. Every request is scoped
// to the branch owned by the calling principal.
type associateHandler struct {
	associateService portssvc.AssociateSvcFacade
	branchService    portssvc.BranchSvcFacade
}

// registerAssociateRoutes registers associate routes under the branch-office namespace.
func registerAssociateRoutes(rg *gin.RouterGroup, associateService portssvc.AssociateSvcFacade, branchService portssvc.BranchSvcFacade) {
	h := &associateHandler{associateService: associateService, branchService: branchService}

	associates := rg.Group("/associates")
	{
		associates.POST("", h.createAssociate)
		associates.GET("", h.listAssociates)
		associates.GET("/:associate_id", h.getAssociate)
		associates.PUT("/:associate_id", h.updateAssociate)
		associates.GET("/:associate_id/contract", h.getContract)
	}
}

type branchScope struct {
	tenantID string
	actorID  string
	branchID string
}

// scope resolves the caller's branch, answering the request itself on failure.
func (h *associateHandler) scope(c *gin.Context) (branchScope, bool) {
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return branchScope{}, false
	}
	branch, err := h.branchService.GetBranchForUser(c.Request.Context(), tenantID, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to resolve branch")
		return branchScope{}, false
	}
	return branchScope{tenantID: tenantID, actorID: actorID, branchID: branch.BranchID}, true
}

// createAssociate godoc
// @Summary Create an associate
// @Description Creates an associate of the caller's branch with its login. An optional "contract" file may be attached.
// @Tags associates
// @Accept json,mpfd
// @Produce json
// @Param associate body dto.ProvisionRequest true "Associate details"
// @Param contract formData file false "Signed contract"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /branch-office/associates [post]
func (h *associateHandler) createAssociate(c *gin.Context) {
	var req dto.ProvisionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	contract, closeContract, err := contractFromForm(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	defer closeContract()

	associate, err := h.associateService.CreateAssociate(c.Request.Context(), scope.tenantID, scope.actorID, scope.branchID, req, contract)
	if err != nil {
		respondWithError(c, err, "Failed to create associate")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Associate created",
		slog.String("associate_id", associate.AssociateID), slog.String("branch_id", scope.branchID))
	c.JSON(http.StatusCreated, dto.ToAssociateResponse(associate))
}

// updateAssociate godoc
// @Summary Update an associate
// @Tags associates
// @Accept json,mpfd
// @Produce json
// @Param associate_id path string true "Associate ID"
// @Param associate body dto.UpdateProvisionRequest true "Associate details"
// @Param contract formData file false "Signed contract"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /branch-office/associates/{associate_id} [put]
func (h *associateHandler) updateAssociate(c *gin.Context) {
	var req dto.UpdateProvisionRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	contract, closeContract, err := contractFromForm(c)
	if err != nil {
		respondBindError(c, err)
		return
	}
	defer closeContract()

	associate, err := h.associateService.UpdateAssociate(c.Request.Context(), scope.tenantID, scope.actorID, scope.branchID, c.Param("associate_id"), req, contract)
	if err != nil {
		respondWithError(c, err, "Failed to update associate")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssociateResponse(associate))
}

// getAssociate godoc
// @Summary Get an associate
// @Tags associates
// @Produce json
// @Param associate_id path string true "Associate ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branch-office/associates/{associate_id} [get]
func (h *associateHandler) getAssociate(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	associate, err := h.associateService.GetAssociate(c.Request.Context(), scope.tenantID, scope.branchID, c.Param("associate_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve associate")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssociateResponse(associate))
}

// listAssociates godoc
// @Summary List associates of the caller's branch
// @Tags associates
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListEntitiesResponse
// @Security BearerAuth
// @Router /branch-office/associates [get]
func (h *associateHandler) listAssociates(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	scope, ok := h.scope(c)
	if !ok {
		return
	}

	page, err := h.associateService.ListAssociates(c.Request.Context(), scope.tenantID, scope.branchID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list associates")
		return
	}
	c.JSON(http.StatusOK, toListEntitiesResponse(page, dto.ToAssociateResponse))
}

// getContract godoc
// @Summary Associate contract download link
// @Tags associates
// @Produce json
// @Param associate_id path string true "Associate ID"
// @Success 200 {object} dto.DownloadURLResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /branch-office/associates/{associate_id}/contract [get]
func (h *associateHandler) getContract(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	url, expiresAt, err := h.associateService.GetAssociateContractURL(c.Request.Context(), scope.tenantID, scope.branchID, c.Param("associate_id"))
	if err != nil {
		respondWithError(c, err, "Failed to create contract link")
		return
	}
	c.JSON(http.StatusOK, dto.DownloadURLResponse{URL: url, ExpiresAt: expiresAt})
}
