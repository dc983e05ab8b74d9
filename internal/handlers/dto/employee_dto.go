package dto

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
	"github.com/fitcore/users-service/internal/domain/ports"
)

// RegisterEmployeeRequest representa a requisição para contratar um funcionário.
// hireDate omitida assume a data atual.
type RegisterEmployeeRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Cpf       string `json:"cpf" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Phone     string `json:"phone" binding:"required"`
	Role      string `json:"role" binding:"required"`
	HireDate  string `json:"hireDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToInput converte a requisição para o input do caso de uso
func (r RegisterEmployeeRequest) ToInput() ports.RegisterEmployeeInput {
	birthDate, _ := time.Parse("2006-01-02", r.BirthDate)
	var hireDate time.Time
	if r.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", r.HireDate)
	}
	return ports.RegisterEmployeeInput{
		Name:      r.Name,
		Email:     r.Email,
		Cpf:       r.Cpf,
		BirthDate: birthDate,
		Phone:     r.Phone,
		RoleType:  r.Role,
		HireDate:  hireDate,
	}
}

// UpdateEmployeeRequest representa a requisição para atualizar um funcionário.
// Segue semântica de PUT: profileUrl ausente ou nulo limpa a foto de perfil.
type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Role       string  `json:"role" binding:"required"`
	ProfileURL *string `json:"profileUrl" binding:"omitempty,url"`
}

// ToInput converte a requisição para o input do caso de uso
func (r UpdateEmployeeRequest) ToInput() ports.UpdateEmployeeInput {
	return ports.UpdateEmployeeInput{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		RoleType:         r.Role,
		ProfileURL:       r.ProfileURL,
		UpdateProfileURL: true,
	}
}

// ChangeRoleRequest representa a requisição de mudança de cargo
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// TerminateEmployeeRequest representa a requisição de desligamento.
// terminationDate omitida assume a data atual.
type TerminateEmployeeRequest struct {
	TerminationDate string `json:"terminationDate" binding:"omitempty,datetime=2006-01-02"`
}

// RoleResponse descreve o cargo do funcionário
type RoleResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// EmployeeResponse representa a resposta de um funcionário
type EmployeeResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Cpf              string       `json:"cpf"`
	BirthDate        string       `json:"birthDate"`
	Phone            string       `json:"phone"`
	Role             RoleResponse `json:"role"`
	HireDate         string       `json:"hireDate"`
	TerminationDate  *string      `json:"terminationDate,omitempty"`
	Active           bool         `json:"active"`
	ProfileURL       *string      `json:"profileUrl,omitempty"`
	RegistrationDate time.Time    `json:"registrationDate"`
	LastUpdateDate   time.Time    `json:"lastUpdateDate"`
}

// ToEmployeeResponse converte uma entidade Employee para EmployeeResponse
func ToEmployeeResponse(employee *entities.Employee) EmployeeResponse {
	var terminationDate *string
	if employee.TerminationDate != nil {
		formatted := employee.TerminationDate.Format("2006-01-02")
		terminationDate = &formatted
	}

	return EmployeeResponse{
		ID:        employee.ID.String(),
		Name:      employee.Name,
		Email:     employee.Email,
		Cpf:       employee.Cpf,
		BirthDate: employee.BirthDate.Format("2006-01-02"),
		Phone:     employee.Phone,
		Role: RoleResponse{
			Type:        string(employee.Role),
			Description: employee.Role.Description(),
		},
		HireDate:         employee.HireDate.Format("2006-01-02"),
		TerminationDate:  terminationDate,
		Active:           employee.Active,
		ProfileURL:       employee.ProfileURL,
		RegistrationDate: employee.RegistrationDate,
		LastUpdateDate:   employee.LastUpdateDate,
	}
}

// ToEmployeeResponses converte uma lista de entidades Employee
func ToEmployeeResponses(employees []*entities.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = ToEmployeeResponse(employee)
	}
	return responses
}
