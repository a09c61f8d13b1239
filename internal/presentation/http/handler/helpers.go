package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sangkips/investify-receipts/internal/presentation/http/dto/response"
	"github.com/sangkips/investify-receipts/pkg/apperror"
)

// bindJSON binds the request body and writes the error response on failure.
// Validation failures are reported per field as a 422.
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: "failed on the '" + fe.Tag() + "' rule",
			})
		}
		response.Error(c, apperror.NewValidationError(fieldErrors))
		return false
	}

	response.Error(c, apperror.NewBadRequestError("Invalid request: "+err.Error()))
	return false
}

// fieldPath drops the struct name from a validator namespace:
// "SaleReceiptRequest.Items[0].Name" => "Items[0].Name".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
