package dto

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
)

// RegisterStudentRequest representa a requisição para matricular um aluno
type RegisterStudentRequest struct {
	Name      string   `json:"name" binding:"required,min=2,max=100"`
	Email     string   `json:"email" binding:"required,email"`
	Cpf       string   `json:"cpf" binding:"required"`
	BirthDate string   `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Phone     string   `json:"phone" binding:"required"`
	Plan      string   `json:"plan" binding:"required"`
	Weight    *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height    *int     `json:"height" binding:"omitempty,gt=0"`
}

// ToInput converte a requisição para o input do caso de uso
func (r RegisterStudentRequest) ToInput() ports.RegisterStudentInput {
	birthDate, _ := time.Parse("2006-01-02", r.BirthDate)
	return ports.RegisterStudentInput{
		Name:      r.Name,
		Email:     r.Email,
		Cpf:       r.Cpf,
		BirthDate: birthDate,
		Phone:     r.Phone,
		PlanType:  r.Plan,
		Weight:    r.Weight,
		Height:    r.Height,
	}
}

// UpdateStudentRequest representa a requisição para atualizar um aluno.
// Segue semântica de PUT: profileUrl ausente ou nulo limpa a foto de perfil.
type UpdateStudentRequest struct {
	Name       string   `json:"name" binding:"required,min=2,max=100"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone" binding:"required"`
	Plan       string   `json:"plan" binding:"required"`
	Weight     *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height     *int     `json:"height" binding:"omitempty,gt=0"`
	ProfileURL *string  `json:"profileUrl" binding:"omitempty,url"`
}

// ToInput converte a requisição para o input do caso de uso
func (r UpdateStudentRequest) ToInput() ports.UpdateStudentInput {
	return ports.UpdateStudentInput{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		PlanType:         r.Plan,
		Weight:           r.Weight,
		Height:           r.Height,
		ProfileURL:       r.ProfileURL,
		UpdateProfileURL: true,
	}
}

// UpdatePhysicalDataRequest representa a requisição de peso/altura
type UpdatePhysicalDataRequest struct {
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height *int     `json:"height" binding:"omitempty,gt=0"`
}

// ChangePlanRequest representa a requisição de troca de plano
type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// PlanResponse descreve o plano contratado
type PlanResponse struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	MonthlyFee  float64 `json:"monthlyFee"`
}

// StudentResponse representa a resposta de um aluno
type StudentResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Cpf              string       `json:"cpf"`
	BirthDate        string       `json:"birthDate"`
	Phone            string       `json:"phone"`
	Plan             PlanResponse `json:"plan"`
	Weight           *float64     `json:"weight,omitempty"`
	Height           *int         `json:"height,omitempty"`
	Bmi              *float64     `json:"bmi,omitempty"`
	Active           bool         `json:"active"`
	ProfileURL       *string      `json:"profileUrl,omitempty"`
	RegistrationDate time.Time    `json:"registrationDate"`
	LastUpdateDate   time.Time    `json:"lastUpdateDate"`
}

// ToStudentResponse converte uma entidade Student para StudentResponse
func ToStudentResponse(student *entities.Student) StudentResponse {
	return StudentResponse{
		ID:        student.ID.String(),
		Name:      student.Name,
		Email:     student.Email,
		Cpf:       student.Cpf,
		BirthDate: student.BirthDate.Format("2006-01-02"),
		Phone:     student.Phone,
		Plan: PlanResponse{
			Type:        string(student.Plan),
			Description: student.Plan.Description(),
			MonthlyFee:  student.Plan.MonthlyFee(),
		},
		Weight:           student.Weight,
		Height:           student.Height,
		Bmi:              student.BMI(),
		Active:           student.Active,
		ProfileURL:       student.ProfileURL,
		RegistrationDate: student.RegistrationDate,
		LastUpdateDate:   student.LastUpdateDate,
	}
}

// ToStudentResponses converte uma lista de entidades Student
func ToStudentResponses(students []*entities.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i, student := range students {
		responses[i] = ToStudentResponse(student)
	}
	return responses
}

// ProfilePictureResponse representa a URL pública da foto de perfil
type ProfilePictureResponse struct {
	ProfileURL string `json:"profileUrl"`
}
