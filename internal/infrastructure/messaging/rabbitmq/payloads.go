package rabbitmq

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// studentPayload é o corpo JSON dos eventos de aluno
type studentPayload struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Cpf              string    `json:"cpf"`
	BirthDate        string    `json:"birthDate"`
	Phone            string    `json:"phone"`
	Plan             string    `json:"plan"`
	Weight           *float64  `json:"weight,omitempty"`
	Height           *int      `json:"height,omitempty"`
	BMI              *float64  `json:"bmi,omitempty"`
	Active           bool      `json:"active"`
	RegistrationDate time.Time `json:"registrationDate"`
	LastUpdateDate   time.Time `json:"lastUpdateDate"`
}

func newStudentPayload(student *entities.Student) studentPayload {
	return studentPayload{
		ID:               student.ID.String(),
		Name:             student.Name,
		Email:            student.Email,
		Cpf:              student.Cpf,
		BirthDate:        student.BirthDate.Format(dateLayout),
		Phone:            student.Phone,
		Plan:             student.Plan.String(),
		Weight:           student.Weight,
		Height:           student.Height,
		BMI:              student.BMI(),
		Active:           student.Active,
		RegistrationDate: student.RegistrationDate,
		LastUpdateDate:   student.LastUpdateDate,
	}
}

// employeePayload é o corpo JSON dos eventos de funcionário
type employeePayload struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Cpf              string    `json:"cpf"`
	BirthDate        string    `json:"birthDate"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	Active           bool      `json:"active"`
	HireDate         string    `json:"hireDate"`
	TerminationDate  *string   `json:"terminationDate,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
	LastUpdateDate   time.Time `json:"lastUpdateDate"`
}

func newEmployeePayload(employee *entities.Employee) employeePayload {
	var termination *string
	if employee.TerminationDate != nil {
		formatted := employee.TerminationDate.Format(dateLayout)
		termination = &formatted
	}

	return employeePayload{
		ID:               employee.ID.String(),
		Name:             employee.Name,
		Email:            employee.Email,
		Cpf:              employee.Cpf,
		BirthDate:        employee.BirthDate.Format(dateLayout),
		Phone:            employee.Phone,
		Role:             employee.Role.String(),
		Active:           employee.Active,
		HireDate:         employee.HireDate.Format(dateLayout),
		TerminationDate:  termination,
		RegistrationDate: employee.RegistrationDate,
		LastUpdateDate:   employee.LastUpdateDate,
	}
}
