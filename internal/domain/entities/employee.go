package entities

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// Employee representa um funcionário da academia.
// Mesma disciplina de imutabilidade de Student: transições retornam
// novas instâncias; id, cpf e registrationDate nunca mudam.
type Employee struct {
	ID               valueobjects.UserID
	Name             string
	Email            string
	Cpf              string
	BirthDate        time.Time
	Phone            string
	Role             Role
	Active           bool
	HireDate         time.Time
	TerminationDate  *time.Time
	RegistrationDate time.Time
	LastUpdateDate   time.Time
	ProfileURL       *string
}

// NewEmployee cria um funcionário validado e ativo.
// hireDate zerada assume a data atual.
func NewEmployee(name, email, cpf string, birthDate time.Time, phone string, role Role, hireDate time.Time) (*Employee, error) {
	if hireDate.IsZero() {
		hireDate = time.Now()
	}

	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateCpf(cpf); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateMinimumAge(birthDate, 18, "employee must be at least 18 years old"); err != nil {
		return nil, err
	}
	if hireDate.After(time.Now()) {
		return nil, errors.NewInvalidArgument("hire date cannot be in the future")
	}

	now := time.Now()
	return &Employee{
		ID:               valueobjects.NewUserID(),
		Name:             name,
		Email:            email,
		Cpf:              cpf,
		BirthDate:        birthDate,
		Phone:            phone,
		Role:             role,
		Active:           true,
		HireDate:         hireDate,
		RegistrationDate: now,
		LastUpdateDate:   now,
	}, nil
}

// Update retorna uma cópia com dados cadastrais alterados,
// sem tocar nos campos de vínculo empregatício
func (e *Employee) Update(name, email, phone string, role Role) (*Employee, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	updated := *e
	updated.Name = name
	updated.Email = email
	updated.Phone = phone
	updated.Role = role
	updated.LastUpdateDate = time.Now()
	return &updated, nil
}

// ChangeRole retorna uma cópia com o cargo alterado
func (e *Employee) ChangeRole(role Role) *Employee {
	updated := *e
	updated.Role = role
	updated.LastUpdateDate = time.Now()
	return &updated
}

// WithProfileURL retorna uma cópia com a chave da foto de perfil alterada,
// sem tocar em lastUpdateDate
func (e *Employee) WithProfileURL(profileURL *string) *Employee {
	updated := *e
	updated.ProfileURL = profileURL
	return &updated
}

// Terminate desliga o funcionário na data informada (zerada assume hoje).
// A data não pode estar no futuro e deve ser posterior à contratação.
// Quando já inativo, retorna o próprio receptor sem alterações (no-op).
func (e *Employee) Terminate(terminationDate time.Time) (*Employee, error) {
	if terminationDate.IsZero() {
		terminationDate = time.Now()
	}
	if terminationDate.After(time.Now()) {
		return nil, errors.NewInvalidArgument("termination date cannot be in the future")
	}
	if !terminationDate.After(e.HireDate) {
		return nil, errors.NewInvalidArgument("termination date must be after hire date")
	}

	if !e.Active {
		return e, nil
	}

	updated := *e
	updated.Active = false
	updated.TerminationDate = &terminationDate
	updated.LastUpdateDate = time.Now()
	return &updated, nil
}

// Reactivate reativa o funcionário e limpa a data de desligamento.
// Quando já ativo, retorna o próprio receptor sem alterações (no-op).
func (e *Employee) Reactivate() *Employee {
	if e.Active {
		return e
	}

	updated := *e
	updated.Active = true
	updated.TerminationDate = nil
	updated.LastUpdateDate = time.Now()
	return &updated
}
