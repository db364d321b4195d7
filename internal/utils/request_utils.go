package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardlet-server/internal/schemas"
)

// WriteAndLogResponse encodes the response object to JSON and writes it to the HTTP response.
// It also sets the provided status code.
func WriteAndLogResponse(ctx *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(ctx, "info", "Returning response")
	ctx.JSON(statusCode, response)
}

// WriteAndLogError logs the provided error and sends an error response with the specified status code and error details.
func WriteAndLogError(c *gin.Context, customErr *schemas.CustomError, statusCode int, err error) {
	LogMessageWithFields(c, "error", "Error occurred: "+err.Error())
	LogMessageWithFields(c, "error", "Returning "+customErr.Code+" / "+customErr.Message)
	errorDto := &schemas.ErrorDTO{
		Error: *customErr,
	}
	c.JSON(statusCode, errorDto)
}

// BindAndValidate decodes the request body into the given struct, sanitizes
// its string fields and validates it. On failure it writes a 400 with the
// BadRequest error and returns the error, so callers can simply return.
func BindAndValidate(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		WriteAndLogError(ctx, schemas.BadRequest, http.StatusBadRequest, err)
		return err
	}

	v := GetValidator()
	v.SanitizeData(obj)

	if err := v.Validate.Struct(obj); err != nil {
		WriteAndLogError(ctx, schemas.BadRequest, http.StatusBadRequest, err)
		return err
	}

	return nil
}
