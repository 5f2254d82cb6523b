package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

// registerBranchRoutes registers branch routes under the super-admin namespace.
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := &branchHandler{branchService: branchService}

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:branch_id", h.getBranch)
		branches.PUT("/:branch_id", h.updateBranch)
	}
}

// createBranch godoc
// @Summary Create a branch
// @Description Creates a branch together with its branch-office login.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.ProvisionRequest true "Branch details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Email already taken"
// @Security BearerAuth
// @Router /super-admin/branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	var req dto.ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), tenantID, actorID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create branch")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Branch created", slog.String("branch_id", branch.BranchID))
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// updateBranch godoc
// @Summary Update a branch
// @Description Updates a branch and its login. Omitting password keeps the current one.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch_id path string true "Branch ID"
// @Param branch body dto.UpdateProvisionRequest true "Branch details"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/branches/{branch_id} [put]
func (h *branchHandler) updateBranch(c *gin.Context) {
	var req dto.UpdateProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), tenantID, actorID, c.Param("branch_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// getBranch godoc
// @Summary Get a branch
// @Tags branches
// @Produce json
// @Param branch_id path string true "Branch ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/branches/{branch_id} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	branch, err := h.branchService.GetBranch(c.Request.Context(), tenantID, c.Param("branch_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// listBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListEntitiesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	page, err := h.branchService.ListBranches(c.Request.Context(), tenantID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list branches")
		return
	}
	c.JSON(http.StatusOK, toListEntitiesResponse(page, dto.ToBranchResponse))
}

func toListEntitiesResponse[T any](page dto.Page[T], convert func(*T) dto.EntityResponse) dto.ListEntitiesResponse {
	items := make([]dto.EntityResponse, len(page.Items))
	for i := range page.Items {
		items[i] = convert(&page.Items[i])
	}
	return dto.ListEntitiesResponse{Items: items, NextToken: page.NextToken}
}

