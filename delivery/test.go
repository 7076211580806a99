package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type TestHandler struct {
	uc domain.TestUseCase
}

func NewTestHandler(api *gin.RouterGroup, uc domain.TestUseCase) {
	h := &TestHandler{uc: uc}

	route := api.Group("/test")
	{
		route.POST("", h.CreateTest)
		route.GET("", h.GetAllTests)
		route.GET("/course/:courseId", h.GetTestsByCourse)
		route.GET("/:id", h.GetTestByID)
		route.PUT("/:id", h.UpdateTest)
		route.DELETE("/:id", h.DeleteTest)
	}
}

func (h *TestHandler) CreateTest(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "CreateTest - BindJSON", err)
		return
	}

	test, err := h.uc.CreateTest(c.Request.Context(), dto.MapCreateTestRequest(&req))
	if err != nil {
		RespondError(c, "CreateTest - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 201, "CreateTest", nil)
	respondCreated(c, test)
}

func (h *TestHandler) GetAllTests(c *gin.Context) {
	var query dto.TestListQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetAllTests - BindQuery", err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		RespondError(c, "GetAllTests - Filter", err)
		return
	}

	result, err := h.uc.GetAllTests(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, "GetAllTests - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *TestHandler) GetTestsByCourse(c *gin.Context) {
	var param dto.CourseIDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetTestsByCourse - BindURI", err)
		return
	}

	tests, err := h.uc.GetTestsByCourse(c.Request.Context(), param.CourseID)
	if err != nil {
		RespondError(c, "GetTestsByCourse - UseCase", err)
		return
	}
	respondOK(c, tests)
}

func (h *TestHandler) GetTestByID(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetTestByID - BindURI", err)
		return
	}

	test, err := h.uc.GetTestByID(c.Request.Context(), param.ID)
	if err != nil {
		RespondError(c, "GetTestByID - UseCase", err)
		return
	}
	respondOK(c, test)
}

func (h *TestHandler) UpdateTest(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "UpdateTest - BindURI", err)
		return
	}
	var req dto.UpdateTestRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "UpdateTest - BindJSON", err)
		return
	}

	test, err := h.uc.UpdateTest(c.Request.Context(), param.ID, dto.MapUpdateTestRequest(&req))
	if err != nil {
		RespondError(c, "UpdateTest - UseCase", err)
		return
	}
	respondOK(c, test)
}

func (h *TestHandler) DeleteTest(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "DeleteTest - BindURI", err)
		return
	}

	if err := h.uc.DeleteTest(c.Request.Context(), param.ID); err != nil {
		RespondError(c, "DeleteTest - UseCase", err)
		return
	}
	respondNoContent(c)
}
