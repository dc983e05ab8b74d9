package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindingErrors converte um erro de binding do Gin em erros de validação
// campo a campo com mensagens traduzidas
func BindingErrors(c *gin.Context, err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ValidationError{{
			Field:   "body",
			Message: T(c, "error.validation.detail"),
		}}
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := jsonFieldName(fieldError.Field())
		result = append(result, ValidationError{
			Field:   field,
			Tag:     fieldError.Tag(),
			Value:   fmt.Sprintf("%v", fieldError.Value()),
			Message: fieldMessage(c, field, fieldError),
		})
	}
	return result
}

func fieldMessage(c *gin.Context, field string, fieldError validator.FieldError) string {
	params := map[string]interface{}{
		"Field": field,
		"Param": fieldError.Param(),
	}

	switch fieldError.Tag() {
	case "required":
		return T(c, "validation.required", params)
	case "email":
		return T(c, "validation.email", params)
	case "datetime":
		return T(c, "validation.datetime", params)
	case "min", "gt":
		return T(c, "validation.min", params)
	case "max", "lt":
		return T(c, "validation.max", params)
	default:
		return T(c, "validation.invalid", params)
	}
}

// jsonFieldName aproxima o nome do campo JSON a partir do nome Go exportado
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
