package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type TestResultHandler struct {
	uc domain.TestResultUseCase
}

func NewTestResultHandler(api *gin.RouterGroup, uc domain.TestResultUseCase) {
	h := &TestResultHandler{uc: uc}

	route := api.Group("/test-result")
	{
		route.POST("", h.CreateTestResult)
		route.GET("", h.GetAllTestResults)
		route.GET("/:id", h.GetTestResultByID)
		route.PUT("/:id", h.UpdateTestResult)
		route.DELETE("/:id", h.DeleteTestResult)
	}
}

// CreateTestResult validates the body before any lookup so an out of range
// score is reported even when the user or test does not exist.
func (h *TestResultHandler) CreateTestResult(c *gin.Context) {
	var req dto.CreateTestResultRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "CreateTestResult - BindJSON", err)
		return
	}

	result, err := h.uc.CreateTestResult(c.Request.Context(), dto.MapCreateTestResultRequest(&req))
	if err != nil {
		RespondError(c, "CreateTestResult - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 201, "CreateTestResult", nil)
	respondCreated(c, result)
}

func (h *TestResultHandler) GetAllTestResults(c *gin.Context) {
	var query dto.TestResultListQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetAllTestResults - BindQuery", err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		RespondError(c, "GetAllTestResults - Filter", err)
		return
	}

	result, err := h.uc.GetAllTestResults(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, "GetAllTestResults - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *TestResultHandler) GetTestResultByID(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetTestResultByID - BindURI", err)
		return
	}

	result, err := h.uc.GetTestResultByID(c.Request.Context(), param.ID)
	if err != nil {
		RespondError(c, "GetTestResultByID - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *TestResultHandler) UpdateTestResult(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "UpdateTestResult - BindURI", err)
		return
	}
	var req dto.UpdateTestResultRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "UpdateTestResult - BindJSON", err)
		return
	}

	result, err := h.uc.UpdateTestResult(c.Request.Context(), param.ID, dto.MapUpdateTestResultRequest(&req))
	if err != nil {
		RespondError(c, "UpdateTestResult - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *TestResultHandler) DeleteTestResult(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "DeleteTestResult - BindURI", err)
		return
	}

	if err := h.uc.DeleteTestResult(c.Request.Context(), param.ID); err != nil {
		RespondError(c, "DeleteTestResult - UseCase", err)
		return
	}
	respondNoContent(c)
}
