package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/ports"
	"github.com/fitcore/users-service/internal/handlers/dto"
)

// StudentHandler lida com as requisições HTTP de alunos
type StudentHandler struct {
	manage  ports.ManageStudentUseCase
	find    ports.FindStudentUseCase
	storage ports.ProfileStorage
	logger  ports.Logger
}

// NewStudentHandler cria um novo StudentHandler
func NewStudentHandler(
	manage ports.ManageStudentUseCase,
	find ports.FindStudentUseCase,
	storage ports.ProfileStorage,
	logger ports.Logger,
) *StudentHandler {
	return &StudentHandler{
		manage:  manage,
		find:    find,
		storage: storage,
		logger:  logger,
	}
}

// Register matricula um novo aluno
//
//	@Summary		Matricula um aluno
//	@Tags			students
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterStudentRequest	true	"Dados do aluno"
//	@Success		201		{object}	dto.StudentResponse
//	@Failure		400		{object}	dto.Problem
//	@Failure		409		{object}	dto.Problem
//	@Failure		422		{object}	dto.Problem
//	@Router			/api/v1/students [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	student, err := h.manage.RegisterStudent(c.Request.Context(), req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// List lista todos os alunos
//
//	@Summary		Lista alunos
//	@Tags			students
//	@Produce		json
//	@Success		200	{array}	dto.StudentResponse
//	@Router			/api/v1/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.find.FindAll(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// ListActive lista apenas os alunos ativos
//
//	@Summary		Lista alunos ativos
//	@Tags			students
//	@Produce		json
//	@Success		200	{array}	dto.StudentResponse
//	@Router			/api/v1/students/active [get]
func (h *StudentHandler) ListActive(c *gin.Context) {
	students, err := h.find.FindAllActive(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// ListByPlan lista os alunos de um plano
//
//	@Summary		Lista alunos por plano
//	@Tags			students
//	@Produce		json
//	@Param			plan	path	string	true	"Tipo do plano (BASIC, INTERMEDIATE, PREMIUM)"
//	@Success		200	{array}		dto.StudentResponse
//	@Failure		400	{object}	dto.Problem
//	@Router			/api/v1/students/plan/{plan} [get]
func (h *StudentHandler) ListByPlan(c *gin.Context) {
	students, err := h.find.FindByPlan(c.Request.Context(), c.Param("plan"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// Search busca um aluno por e-mail ou CPF
//
//	@Summary		Busca aluno por e-mail ou CPF
//	@Tags			students
//	@Produce		json
//	@Param			email	query	string	false	"E-mail do aluno"
//	@Param			cpf		query	string	false	"CPF do aluno"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/search [get]
func (h *StudentHandler) Search(c *gin.Context) {
	email := c.Query("email")
	cpf := c.Query("cpf")

	var (
		student *entities.Student
		err     error
	)
	switch {
	case email != "":
		student, err = h.find.FindByEmail(c.Request.Context(), email)
	case cpf != "":
		student, err = h.find.FindByCpf(c.Request.Context(), cpf)
	default:
		dto.RespondProblem(c, dto.BadRequestProblem(c, "either email or cpf query parameter is required"))
		return
	}

	if err != nil {
		respondDomainError(c, err)
		return
	}
	if student == nil {
		dto.RespondProblem(c, dto.NotFoundProblem(c, "error.not_found.detail"))
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Get busca um aluno por ID
//
//	@Summary		Busca aluno por ID
//	@Tags			students
//	@Produce		json
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Update atualiza os dados cadastrais de um aluno
//
//	@Summary		Atualiza um aluno
//	@Tags			students
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"ID do aluno"
//	@Param			request	body	dto.UpdateStudentRequest	true	"Dados do aluno"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		404	{object}	dto.Problem
//	@Failure		409	{object}	dto.Problem
//	@Failure		422	{object}	dto.Problem
//	@Router			/api/v1/students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	student, err := h.manage.UpdateStudent(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// ChangePlan troca o plano de um aluno
//
//	@Summary		Troca o plano de um aluno
//	@Tags			students
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"ID do aluno"
//	@Param			request	body	dto.ChangePlanRequest	true	"Novo plano"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/plan [patch]
func (h *StudentHandler) ChangePlan(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	student, err := h.manage.ChangePlan(c.Request.Context(), id, req.Plan)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// UpdatePhysicalData atualiza peso e altura de um aluno
//
//	@Summary		Atualiza dados físicos
//	@Tags			students
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"ID do aluno"
//	@Param			request	body	dto.UpdatePhysicalDataRequest	true	"Peso e altura"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/physical-data [patch]
func (h *StudentHandler) UpdatePhysicalData(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePhysicalDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationProblem(c, dto.BindingErrors(c, err)))
		return
	}

	student, err := h.manage.UpdatePhysicalData(c.Request.Context(), id, req.Weight, req.Height)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Activate reativa a matrícula de um aluno
//
//	@Summary		Ativa um aluno
//	@Tags			students
//	@Produce		json
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/activate [patch]
func (h *StudentHandler) Activate(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.manage.ActivateStudent(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Deactivate suspende a matrícula de um aluno
//
//	@Summary		Desativa um aluno
//	@Tags			students
//	@Produce		json
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/deactivate [patch]
func (h *StudentHandler) Deactivate(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.manage.DeactivateStudent(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// Delete remove um aluno
//
//	@Summary		Remove um aluno
//	@Tags			students
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		204
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if _, err := h.manage.DeleteStudent(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadProfilePicture envia a foto de perfil de um aluno
//
//	@Summary		Envia foto de perfil do aluno
//	@Tags			students
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"ID do aluno"
//	@Param			file	formData	file	true	"Imagem de perfil"
//	@Success		200	{object}	dto.StudentResponse
//	@Failure		400	{object}	dto.Problem
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/profile-picture [post]
func (h *StudentHandler) UploadProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.find.FindByID(c.Request.Context(), id)
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
	if student.ProfileURL != nil {
		if oldKey, found := h.storage.ObjectKey(*student.ProfileURL); found {
			if err := h.storage.DeleteProfile(c.Request.Context(), oldKey); err != nil {
				h.logger.Warn("failed to delete previous profile picture", "student_id", id.String(), "error", err)
			}
		}
	}

	profileURL := h.storage.ProfileURL(key)
	updated, err := h.manage.UpdateStudent(c.Request.Context(), id, ports.UpdateStudentInput{
		Name:             student.Name,
		Email:            student.Email,
		Phone:            student.Phone,
		PlanType:         string(student.Plan),
		Weight:           student.Weight,
		Height:           student.Height,
		ProfileURL:       &profileURL,
		UpdateProfileURL: true,
	})
	if err != nil {
		// a foto recém-enviada ficaria órfã no bucket
		if delErr := h.storage.DeleteProfile(c.Request.Context(), key); delErr != nil {
			h.logger.Warn("failed to delete unsaved profile picture", "student_id", id.String(), "error", delErr)
		}
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(updated))
}

// GetProfilePicture retorna a URL pública da foto de perfil
//
//	@Summary		Busca a URL da foto de perfil do aluno
//	@Tags			students
//	@Produce		json
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		200	{object}	dto.ProfilePictureResponse
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/profile-picture [get]
func (h *StudentHandler) GetProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if student.ProfileURL == nil {
		respondDomainError(c, errors.NewProfilePictureNotFound(id.String()))
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfileURL: *student.ProfileURL})
}

// DeleteProfilePicture remove a foto de perfil de um aluno
//
//	@Summary		Remove a foto de perfil do aluno
//	@Tags			students
//	@Param			id	path	string	true	"ID do aluno"
//	@Success		204
//	@Failure		404	{object}	dto.Problem
//	@Router			/api/v1/students/{id}/profile-picture [delete]
func (h *StudentHandler) DeleteProfilePicture(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	student, err := h.find.FindByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if student.ProfileURL == nil {
		respondDomainError(c, errors.NewProfilePictureNotFound(id.String()))
		return
	}

	if key, found := h.storage.ObjectKey(*student.ProfileURL); found {
		if err := h.storage.DeleteProfile(c.Request.Context(), key); err != nil {
			h.logger.Warn("failed to delete profile picture object", "student_id", id.String(), "error", err)
		}
	}

	if _, err := h.manage.UpdateStudent(c.Request.Context(), id, ports.UpdateStudentInput{
		Name:             student.Name,
		Email:            student.Email,
		Phone:            student.Phone,
		PlanType:         string(student.Plan),
		Weight:           student.Weight,
		Height:           student.Height,
		ProfileURL:       nil,
		UpdateProfileURL: true,
	}); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
