package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/middleware"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type UserHandler struct {
	uc domain.UserUseCase
}

// NewUserHandler mounts the user routes. Only admins may manage accounts.
func NewUserHandler(api *gin.RouterGroup, uc domain.UserUseCase) {
	h := &UserHandler{uc: uc}

	route := api.Group("/user", middleware.RoleAllowed(domain.RoleAdmin))
	{
		route.POST("", h.CreateUser)
		route.GET("", h.GetAllUsers)
		route.GET("/:id", h.GetUserByID)
		route.PUT("/:id", h.UpdateUser)
		route.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "CreateUser - BindJSON", err)
		return
	}

	user, err := h.uc.CreateUser(c.Request.Context(), dto.MapCreateUserRequestToUser(&req))
	if err != nil {
		RespondError(c, "CreateUser - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 201, "CreateUser", nil)
	respondCreated(c, user)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	var query dto.UserListQuery
	if err := bindQuery(c, &query); err != nil {
		RespondError(c, "GetAllUsers - BindQuery", err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		RespondError(c, "GetAllUsers - Filter", err)
		return
	}

	result, err := h.uc.GetAllUsers(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, "GetAllUsers - UseCase", err)
		return
	}
	respondOK(c, result)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "GetUserByID - BindURI", err)
		return
	}

	user, err := h.uc.GetUserByID(c.Request.Context(), param.ID)
	if err != nil {
		RespondError(c, "GetUserByID - UseCase", err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "UpdateUser - BindURI", err)
		return
	}
	var req dto.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "UpdateUser - BindJSON", err)
		return
	}

	user, err := h.uc.UpdateUser(c.Request.Context(), param.ID, dto.MapUpdateUserRequest(&req))
	if err != nil {
		RespondError(c, "UpdateUser - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 200, "UpdateUser", nil)
	respondOK(c, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	var param dto.IDParam
	if err := bindURI(c, &param); err != nil {
		RespondError(c, "DeleteUser - BindURI", err)
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), param.ID); err != nil {
		RespondError(c, "DeleteUser - UseCase", err)
		return
	}

	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, 204, "DeleteUser", nil)
	respondNoContent(c)
}
