package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "hucha/internal/errors"
	"hucha/internal/logger"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// bindJSON binds the request body into obj. Binding failures come back as a
// validation AppError carrying a field-keyed map of Spanish messages, in the
// same shape the rest of the API uses.
func bindJSON(c *gin.Context, obj interface{}) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}
		return apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	// Malformed JSON or a type mismatch; there is no field to pin it on.
	return apperrors.Wrap(apperrors.ErrValidation, err)
}

// fieldMessage translates a single validation failure into Spanish.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", field)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un correo electrónico válido", field)
	case "max":
		return fmt.Sprintf("El campo %s no debe ser mayor que %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", field, fe.Param())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s", field, fe.Param())
	case "hex_color":
		return fmt.Sprintf("El campo %s debe ser un color hexadecimal de 6 dígitos (#RRGGBB)", field)
	case "transaction_type":
		return fmt.Sprintf("El campo %s debe ser expense o income", field)
	case "savings_transaction_type":
		return fmt.Sprintf("El campo %s debe ser deposit o withdrawal", field)
	default:
		return fmt.Sprintf("El campo %s no es válido", field)
	}
}

// dateLayouts are the accepted request formats for calendar dates.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a request date string. Failure is reported as a
// validation error on the date field.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithFields(apperrors.ErrValidation, map[string][]string{
		"date": {"El campo date debe ser una fecha válida"},
	})
}

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondWithError writes the error envelope. AppErrors keep their status,
// Spanish message, and any field map. Anything else is logged and collapsed
// into a generic internal error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		body := gin.H{
			"status":  "error",
			"message": appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		c.JSON(appErr.StatusCode, body)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"status":  "error",
		"message": apperrors.ErrInternalServer.Message,
	})
}
