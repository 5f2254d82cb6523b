package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/gin-gonic/gin"
)

type institutionHandler struct {
	institutionService portssvc.InstitutionSvcFacade
}

// registerInstitutionRoutes registers institution and course routes under the super-admin namespace.
func registerInstitutionRoutes(rg *gin.RouterGroup, institutionService portssvc.InstitutionSvcFacade) {
	h := &institutionHandler{institutionService: institutionService}

	institutions := rg.Group("/institutions")
	{
		institutions.POST("", h.createInstitution)
		institutions.GET("", h.listInstitutions)
		institutions.GET("/:institution_id", h.getInstitution)
		institutions.PUT("/:institution_id", h.updateInstitution)

		institutions.POST("/:institution_id/courses", h.createCourse)
		institutions.GET("/:institution_id/courses", h.listCourses)
		institutions.PUT("/:institution_id/courses/:course_id", h.updateCourse)
	}
}

// createInstitution godoc
// @Summary Create an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Param institution body dto.CreateInstitutionRequest true "Institution"
// @Success 201 {object} dto.InstitutionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions [post]
func (h *institutionHandler) createInstitution(c *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	inst, err := h.institutionService.CreateInstitution(c.Request.Context(), tenantID, actorID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create institution")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInstitutionResponse(inst))
}

// updateInstitution godoc
// @Summary Update an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Param institution body dto.UpdateInstitutionRequest true "Fields to change"
// @Success 200 {object} dto.InstitutionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions/{institution_id} [put]
func (h *institutionHandler) updateInstitution(c *gin.Context) {
	var req dto.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	inst, err := h.institutionService.UpdateInstitution(c.Request.Context(), tenantID, actorID, c.Param("institution_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update institution")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstitutionResponse(inst))
}

// getInstitution godoc
// @Summary Get an institution
// @Tags institutions
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Success 200 {object} dto.InstitutionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions/{institution_id} [get]
func (h *institutionHandler) getInstitution(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	inst, err := h.institutionService.GetInstitution(c.Request.Context(), tenantID, c.Param("institution_id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve institution")
		return
	}
	c.JSON(http.StatusOK, dto.ToInstitutionResponse(inst))
}

// listInstitutions godoc
// @Summary List institutions
// @Tags institutions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListInstitutionsResponse
// @Security BearerAuth
// @Router /super-admin/institutions [get]
func (h *institutionHandler) listInstitutions(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	page, err := h.institutionService.ListInstitutions(c.Request.Context(), tenantID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list institutions")
		return
	}
	list := make([]dto.InstitutionResponse, len(page.Items))
	for i := range page.Items {
		list[i] = dto.ToInstitutionResponse(&page.Items[i])
	}
	c.JSON(http.StatusOK, dto.ListInstitutionsResponse{Institutions: list, NextToken: page.NextToken})
}

// createCourse godoc
// @Summary Add a course
// @Tags institutions
// @Accept json
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Param course body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.CourseResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions/{institution_id}/courses [post]
func (h *institutionHandler) createCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	course, err := h.institutionService.CreateCourse(c.Request.Context(), tenantID, actorID, c.Param("institution_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to create course")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCourseResponse(course))
}

// updateCourse godoc
// @Summary Update a course
// @Tags institutions
// @Accept json
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Param course_id path string true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions/{institution_id}/courses/{course_id} [put]
func (h *institutionHandler) updateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenantID, actorID, ok := requestScope(c)
	if !ok {
		return
	}
	course, err := h.institutionService.UpdateCourse(c.Request.Context(), tenantID, actorID, c.Param("institution_id"), c.Param("course_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update course")
		return
	}
	c.JSON(http.StatusOK, dto.ToCourseResponse(course))
}

// listCourses godoc
// @Summary List courses of an institution
// @Tags institutions
// @Produce json
// @Param institution_id path string true "Institution ID"
// @Success 200 {object} dto.ListCoursesResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /super-admin/institutions/{institution_id}/courses [get]
func (h *institutionHandler) listCourses(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}
	courses, err := h.institutionService.ListCourses(c.Request.Context(), tenantID, c.Param("institution_id"))
	if err != nil {
		respondWithError(c, err, "Failed to list courses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCoursesResponse(courses))
}
