package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
	"github.com/fitcore/users-service/internal/handlers/dto"
)

// respondDomainError mapeia a classificação do erro de domínio para o
// problem details correspondente: conflito 409, ausência 404, validação
// de domínio 400 e o restante 500.
func respondDomainError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	params := errors.ParamsOf(err)

	switch errors.KindOf(err) {
	case errors.KindConflict:
		dto.RespondProblem(c, dto.ConflictProblem(c, code, params))
	case errors.KindNotFound:
		dto.RespondProblem(c, dto.NotFoundProblem(c, code, params))
	case errors.KindInvalidArgument:
		dto.RespondProblem(c, dto.BadRequestProblem(c, err.Error()))
	default:
		dto.RespondProblem(c, dto.InternalProblem(c, err))
	}
}

// parseUserID converte o parâmetro de rota em UserID, respondendo 400
// quando o valor não é um UUID
func parseUserID(c *gin.Context) (valueobjects.UserID, bool) {
	id, err := valueobjects.ParseUserID(c.Param("id"))
	if err != nil {
		dto.RespondProblem(c, dto.BadRequestProblem(c, "invalid user ID: "+c.Param("id")))
		return valueobjects.UserID{}, false
	}
	return id, true
}
