package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type EnrollmentHandler struct {
	uc domain.EnrollmentUseCase
}

func NewEnrollmentHandler(api *gin.RouterGroup, uc domain.EnrollmentUseCase) {
	h := &EnrollmentHandler{uc: uc}

	route := api.Group("/enrollment")
	{
		route.POST("", h.CreateEnrollment)
		route.GET("", h.GetAllEnrollments)
		route.GET("/:id", h.GetEnrollmentByID)
		route.PUT("/:id", h.UpdateEnrollment)
		route.DELETE("/:id", h.DeleteEnrollment)
	}
}

func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "CreateEnrollment - BindJSON", err)
		return
	}

	enrollment, err := h.uc.CreateEnrollment(c.Request.Context(), dto.MapCreateEnrollmentRequest(&req))
	if err != nil {
		RespondError(c, "CreateEnrollment - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 201, "CreateEnrollment", nil)
	respondCreated(c, enrollment)
}

func (h *EnrollmentHandler) GetAllEnrollments(c *gin.Context) {
	var query dto.EnrollmentListQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetAllEnrollments - BindQuery", err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		RespondError(c, "GetAllEnrollments - Filter", err)
		return
	}

	result, err := h.uc.GetAllEnrollments(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, "GetAllEnrollments - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *EnrollmentHandler) GetEnrollmentByID(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetEnrollmentByID - BindURI", err)
		return
	}

	enrollment, err := h.uc.GetEnrollmentByID(c.Request.Context(), param.ID)
	if err != nil {
		RespondError(c, "GetEnrollmentByID - UseCase", err)
		return
	}
	respondOK(c, enrollment)
}

func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "UpdateEnrollment - BindURI", err)
		return
	}
	var req dto.UpdateEnrollmentRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "UpdateEnrollment - BindJSON", err)
		return
	}

	enrollment, err := h.uc.UpdateEnrollment(c.Request.Context(), param.ID, dto.MapUpdateEnrollmentRequest(&req))
	if err != nil {
		RespondError(c, "UpdateEnrollment - UseCase", err)
		return
	}
	respondOK(c, enrollment)
}

func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "DeleteEnrollment - BindURI", err)
		return
	}

	if err := h.uc.DeleteEnrollment(c.Request.Context(), param.ID); err != nil {
		RespondError(c, "DeleteEnrollment - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 204, "DeleteEnrollment", nil)
	respondNoContent(c)
}
