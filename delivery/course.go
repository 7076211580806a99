package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type CourseHandler struct {
	uc domain.CourseUseCase
}

func NewCourseHandler(api *gin.RouterGroup, uc domain.CourseUseCase) {
	h := &CourseHandler{uc: uc}

	route := api.Group("/course")
	{
		route.POST("", h.CreateCourse)
		route.GET("", h.GetAllCourses)
		route.GET("/popular", h.GetPopularCourses)
		route.GET("/:id", h.GetCourseByID)
		route.PUT("/:id", h.UpdateCourse)
		route.DELETE("/:id", h.DeleteCourse)
	}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "CreateCourse - BindJSON", err)
		return
	}

	created, err := h.uc.CreateCourse(c.Request.Context(), dto.MapCreateCourseRequestToCourse(&req))
	if err != nil {
		RespondError(c, "CreateCourse - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 201, "CreateCourse", nil)
	respondCreated(c, created)
}

func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	var query dto.CourseListQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetAllCourses - BindQuery", err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		RespondError(c, "GetAllCourses - Filter", err)
		return
	}

	result, err := h.uc.GetAllCourses(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, "GetAllCourses - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *CourseHandler) GetPopularCourses(c *gin.Context) {
	var query dto.PopularQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetPopularCourses - BindQuery", err)
		return
	}
	limit, err := query.ToLimit()
	if err != nil {
		RespondError(c, "GetPopularCourses - Limit", err)
		return
	}

	courses, err := h.uc.GetPopularCourses(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, "GetPopularCourses - UseCase", err)
		return
	}
	respondOK(c, courses)
}

func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetCourseByID - BindURI", err)
		return
	}

	course, err := h.uc.GetCourseByID(c.Request.Context(), param.ID)
	if err != nil {
		RespondError(c, "GetCourseByID - UseCase", err)
		return
	}
	respondOK(c, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "UpdateCourse - BindURI", err)
		return
	}
	var req dto.UpdateCourseRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "UpdateCourse - BindJSON", err)
		return
	}

	updated, err := h.uc.UpdateCourse(c.Request.Context(), param.ID, dto.MapUpdateCourseRequest(&req))
	if err != nil {
		RespondError(c, "UpdateCourse - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 200, "UpdateCourse", nil)
	respondOK(c, updated)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "DeleteCourse - BindURI", err)
		return
	}

	if err := h.uc.DeleteCourse(c.Request.Context(), param.ID); err != nil {
		RespondError(c, "DeleteCourse - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 204, "DeleteCourse", nil)
	respondNoContent(c)
}
