package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/uchkunrakhimow/edtech-platform/domain"
	"github.com/uchkunrakhimow/edtech-platform/utils"
)

// StatusFor maps the error taxonomy to an HTTP status.
func StatusFor(err error) int {
	var (
		ve  *domain.ValidationError
		mr  *domain.MalformedRequestError
		nf  *domain.NotFoundError
		cf  *domain.ConflictError
		una *domain.UnauthorizedError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case errors.As(err, &mr):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &cf):
		return http.StatusConflict
	case errors.As(err, &una):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondError is the single place outcomes are turned into error responses.
func RespondError(c *gin.Context, functionName string, err error) {
	status := StatusFor(err)
	actor := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&actor, status, functionName, &err)

	body := gin.H{"success": false, "message": err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body["message"] = "Validation failed"
		body["errors"] = ve.Fields
	}
	if status == http.StatusInternalServerError {
		// store internals stay in the log
		body["message"] = "Internal server error"
	}

	c.AbortWithStatusJSON(status, body)
}

func bindJSON(c *gin.Context, req interface{}) error {
	return utils.TranslateJSONBindError(c.ShouldBindJSON(req), req, binding.Validator)
}

func bindQuery(c *gin.Context, req interface{}) error {
	return utils.TranslateValidationError(c.ShouldBindQuery(req))
}

func bindURI(c *gin.Context, req interface{}) error {
	return utils.TranslateValidationError(c.ShouldBindUri(req))
}
