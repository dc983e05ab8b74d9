package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	apperrors "github.com/fitcore/users-service/internal/domain/errors"
)

// Problem segue RFC 7807 (Problem Details for HTTP APIs).
// Errors carrega falhas de validação campo a campo; Debug só é preenchido
// quando o modo de depuração está habilitado na configuração.
type Problem struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
	Debug  []string          `json:"debug,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Value   string `json:"value,omitempty"`
}

// NewProblem cria uma resposta RFC 7807 com título e detalhe traduzidos
func NewProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) Problem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return Problem{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RespondProblem escreve a resposta com o media type de problem details e
// aborta a cadeia de handlers
func RespondProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(p.Status, p)
}

// ValidationProblem cria uma resposta 422 para falhas de binding/validação
func ValidationProblem(c *gin.Context, validationErrors []ValidationError) Problem {
	p := NewProblem(
		c,
		apperrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusUnprocessableEntity,
	)
	p.Errors = validationErrors
	return p
}

// BadRequestProblem cria uma resposta 400 com o detalhe informado
func BadRequestProblem(c *gin.Context, detail string) Problem {
	p := NewProblem(
		c,
		apperrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		"error.bad_request.title",
		http.StatusBadRequest,
	)
	p.Detail = detail
	return p
}

// NotFoundProblem cria uma resposta 404 com detalhe traduzido a partir da chave
func NotFoundProblem(c *gin.Context, detailKey string, params ...map[string]interface{}) Problem {
	return NewProblem(
		c,
		apperrors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		http.StatusNotFound,
		params...,
	)
}

// ConflictProblem cria uma resposta 409 com detalhe traduzido a partir da chave
func ConflictProblem(c *gin.Context, detailKey string, params ...map[string]interface{}) Problem {
	return NewProblem(
		c,
		apperrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		http.StatusConflict,
		params...,
	)
}

// UnauthorizedProblem cria uma resposta 401
func UnauthorizedProblem(c *gin.Context) Problem {
	return NewProblem(
		c,
		apperrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
		http.StatusUnauthorized,
	)
}

// InternalProblem cria uma resposta 500. Com o modo de depuração habilitado,
// a cadeia de erros é exposta no campo debug.
func InternalProblem(c *gin.Context, err error) Problem {
	p := NewProblem(
		c,
		apperrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)

	if err != nil && c.GetBool("debug") {
		for e := err; e != nil; e = errors.Unwrap(e) {
			p.Debug = append(p.Debug, e.Error())
		}
	}
	return p
}
