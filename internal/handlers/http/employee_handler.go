package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/handlers/dto"
)

// EmployeeHandler lida com as requisições HTTP de funcionários
type EmployeeHandler struct {
	manage  ports.ManageEmployeeUseCase
	find    ports.FindEmployeeUseCase
	storage ports.ProfileStorage
	logger  ports.Logger
}

// NewEmployeeHandler cria um novo EmployeeHandler
func NewEmployeeHandler(
	manage ports.ManageEmployeeUseCase,
	find ports.FindEmployeeUseCase,
	storage ports.ProfileStorage,
	logger ports.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		manage:  manage,
		find:    find,
		storage: storage,
		logger:  logger,
	}
}

// Register contrata um novo funcionário
//
//	@Summary		Contrata um funcionário
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterEmployeeRequest	true	"Dados do funcionário"
//	@Success		201		{object}	dto.EmployeeResponse
//	@Failure		400		{object}	dto.Problem
//	@Failure		409		{object}	dto.Problem
//	@Failure		422		{object}	dto.Problem
//	@Router			/api/v1/employees [post]
func (h *EmployeeHandler) Register(c *gin.Context) {
	var req dto.RegisterEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	employee, err := h.manage.RegisterEmployee(c.Request.Context(), req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// List lista todos os funcionários
//
//	@Summary		Lista funcionários
//	@Tags			employees
//	@Produce		json
//	@Success		200	{array}	dto.EmployeeResponse
//	@Router			/api/v1/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.find.FindAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// ListActive lista apenas os funcionários ativos
//
//	@Summary		Lista funcionários ativos
//	@Tags			employees
//	@Produce		json
//	@Success		200	{array}	dto.EmployeeResponse
//	@Router			/api/v1/employees/active [get]
func (h *EmployeeHandler) ListActive(c *gin.Context) {
	employees, err := h.find.FindAllActive(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// ListByRole lista os funcionários de um cargo
//
//	@Summary		Lista funcionários por cargo
//	@Tags			employees
//	@Produce		json
//	@Param			role	path	string	true	"Cargo (ADMIN, MANAGER, INSTRUCTOR, RECEPTIONIST)"
//	@Success		200	{array}		dto.EmployeeResponse
//	@Failure		400	{object}	dto.Problem
//	@Router			/api/v1/employees/role/{role} [get]
func (h *EmployeeHandler) ListByRole(c *gin.Context) {
	employees, err := h.find.FindByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// Search busca um funcionário por e-mail ou CPF
//
//	@Summary		Busca funcionário por e-mail ou CPF
//	@Tags			employees
//	@Produce		json
//	@Param			email	query	string	false	"E-mail do funcionário"
//	@Param			cpf		query	string	false	"CPF do funcionário"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/search [get]
func (h *EmployeeHandler) Search(c *gin.Context) {
	email := c.Query("email")
	cpf := c.Query("cpf")

	var (
		employee *entities.Employee
		err      error
	)
	switch {
	case email != "":
		employee, err = h.find.FindByEmail(c.Request.Context(), email)
	case cpf != "":
		employee, err = h.find.FindByCpf(c.Request.Context(), cpf)
	default:
		dto.RespondProblem(c, dto.BadRequestProblem(c, "either email or cpf query parameter is required"))
		return
	}

	if err != nil {
		respondDomainError(c, err)
		return
	}
	if employee == nil {
		dto.RespondProblem(c, dto.NotFoundProblem(c, "error.not_found.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Get busca um funcionário por ID
//
//	@Summary		Busca funcionário por ID
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"ID do funcionário"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	employee, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Update atualiza os dados cadastrais de um funcionário
//
//	@Summary		Atualiza um funcionário
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"ID do funcionário"
//	@Param			request	body	dto.UpdateEmployeeRequest	true	"Dados do funcionário"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		404	{object}	dto.Problem
//	@Failure		409	{object}	dto.Problem
//	@Failure		422	{object}	dto.Problem
//	@Router			/api/v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	employee, err := h.manage.UpdateEmployee(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// ChangeRole muda o cargo de um funcionário
//
//	@Summary		Muda o cargo de um funcionário
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"ID do funcionário"
//	@Param			request	body	dto.ChangeRoleRequest	true	"Novo cargo"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/role [patch]
func (h *EmployeeHandler) ChangeRole(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	employee, err := h.manage.ChangeRole(c.Request.Context(), id, req.Role)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Terminate desliga um funcionário
//
//	@Summary		Desliga um funcionário
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"ID do funcionário"
//	@Param			request	body	dto.TerminateEmployeeRequest	false	"Data do desligamento"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/terminate [patch]
func (h *EmployeeHandler) Terminate(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.TerminateEmployeeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
			return
		}
	}

	var terminationDate time.Time
	if req.TerminationDate != "" {
		terminationDate, _ = time.Parse("2006-01-02", req.TerminationDate)
	}

	employee, err := h.manage.TerminateEmployee(c.Request.Context(), id, terminationDate)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Reactivate recontrata um funcionário desligado
//
//	@Summary		Reativa um funcionário
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"ID do funcionário"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/reactivate [patch]
func (h *EmployeeHandler) Reactivate(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	employee, err := h.manage.ReactivateEmployee(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// Delete remove um funcionário
//
//	@Summary		Remove um funcionário
//	@Tags			employees
//	@Param			id	path	string	true	"ID do funcionário"
//	@Success		204
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if _, err := h.manage.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadProfilePicture envia a foto de perfil de um funcionário
//
//	@Summary		Envia foto de perfil do funcionário
//	@Tags			employees
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"ID do funcionário"
//	@Param			file	formData	file	true	"Imagem de perfil"
//	@Success		200	{object}	dto.EmployeeResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/profile-picture [post]
func (h *EmployeeHandler) UploadProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	employee, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		dto.RespondProblem(c, dto.BadRequestProblem(c, "multipart field 'file' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		dto.RespondProblem(c, dto.InternalProblem(c, err))
		return
	}
	defer file.Close()

	key, err := h.storage.UploadProfile(
		c.Request.Context(),
		id.String(),
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Filename,
	)
	if err != nil {
		dto.RespondProblem(c, dto.InternalProblem(c, err))
		return
	}

	// remove a foto anterior, se houver
	if employee.ProfileURL != nil {
		if oldKey, found := h.storage.ObjectKey(*employee.ProfileURL); found {
			if err := h.storage.DeleteProfile(c.Request.Context(), oldKey); err != nil {
				h.logger.Warn("failed to delete previous profile picture", "employee_id", id.String(), "error", err)
			}
		}
	}

	profileURL := h.storage.ProfileURL(key)
	updated, err := h.manage.UpdateEmployee(c.Request.Context(), id, ports.UpdateEmployeeInput{
		Name:             employee.Name,
		Email:            employee.Email,
		Phone:            employee.Phone,
		RoleType:         string(employee.Role),
		ProfileURL:       &profileURL,
		UpdateProfileURL: true,
	})
	if err != nil {
		// a foto recém-enviada ficaria órfã no bucket
		if delErr := h.storage.DeleteProfile(c.Request.Context(), key); delErr != nil {
			h.logger.Warn("failed to delete unsaved profile picture", "employee_id", id.String(), "error", delErr)
		}
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// GetProfilePicture retorna a URL pública da foto de perfil
//
//	@Summary		Busca a URL da foto de perfil do funcionário
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"ID do funcionário"
//	@Success		200	{object}	dto.ProfilePictureResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/profile-picture [get]
func (h *EmployeeHandler) GetProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	employee, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if employee.ProfileURL == nil {
		respondDomainError(c, errors.NewProfilePictureNotFound(id.String()))
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfileURL: *employee.ProfileURL})
}

// DeleteProfilePicture remove a foto de perfil de um funcionário
//
//	@Summary		Remove a foto de perfil do funcionário
//	@Tags			employees
//	@Param			id	path	string	true	"ID do funcionário"
//	@Success		204
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/employees/{id}/profile-picture [delete]
func (h *EmployeeHandler) DeleteProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	employee, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if employee.ProfileURL == nil {
		respondDomainError(c, errors.NewProfilePictureNotFound(id.String()))
		return
	}

	if key, found := h.storage.ObjectKey(*employee.ProfileURL); found {
		if err := h.storage.DeleteProfile(c.Request.Context(), key); err != nil {
			h.logger.Warn("failed to delete profile picture object", "employee_id", id.String(), "error", err)
		}
	}

	if _, err := h.manage.UpdateEmployee(c.Request.Context(), id, ports.UpdateEmployeeInput{
		Name:             employee.Name,
		Email:            employee.Email,
		Phone:            employee.Phone,
		RoleType:         string(employee.Role),
		ProfileURL:       nil,
		UpdateProfileURL: true,
	}); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
