package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/dto"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

type AuthHandler struct {
	uc domain.AuthUseCase
}

// NewAuthHandler mounts POST /auth/login. Extra handlers run before the
// login handler, typically a rate limiter.
func NewAuthHandler(app gin.IRouter, uc domain.AuthUseCase, limiters ...gin.HandlerFunc) {
	h := &AuthHandler{uc: uc}

	auth := app.Group("/auth")
	{
		auth.POST("/login", append(limiters, h.Login)...)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, "Login - BindJSON", err)
		return
	}

	tokens, err := h.uc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, "Login - UseCase", err)
		return
	}

	actor := tokens.User.Email
	utils.PrintLogInfo(&actor, 200, "Login", nil)
	respondOK(c, tokens)
}
