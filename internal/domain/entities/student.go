package entities

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/errors"
	"github.com/fitcore/users-service/internal/domain/valueobjects"
)

// Student representa um aluno da academia.
// A entidade é imutável: toda transição retorna uma nova instância e
// id, cpf e registrationDate nunca mudam após a criação.
type Student struct {
	ID               valueobjects.UserID
	Name             string
	Email            string
	Cpf              string
	BirthDate        time.Time
	Phone            string
	Plan             Plan
	Weight           *float64 // peso em kg (opcional)
	Height           *int     // altura em cm (opcional)
	Active           bool
	RegistrationDate time.Time
	LastUpdateDate   time.Time
	ProfileURL       *string
}

// NewStudent cria um aluno validado, ativo, com data de cadastro atual
func NewStudent(name, email, cpf string, birthDate time.Time, phone string, plan Plan, weight *float64, height *int) (*Student, error) {
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
	if err := validateMinimumAge(birthDate, 12, "student must be at least 12 years old"); err != nil {
		return nil, err
	}
	if err := validateMeasurements(weight, height); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Student{
		ID:               valueobjects.NewUserID(),
		Name:             name,
		Email:            email,
		Cpf:              cpf,
		BirthDate:        birthDate,
		Phone:            phone,
		Plan:             plan,
		Weight:           weight,
		Height:           height,
		Active:           true,
		RegistrationDate: now,
		LastUpdateDate:   now,
	}, nil
}

// Update retorna uma cópia com dados cadastrais alterados.
// cpf, birthDate e registrationDate são preservados.
func (s *Student) Update(name, email, phone string, plan Plan, weight *float64, height *int) (*Student, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}
	if err := validateMeasurements(weight, height); err != nil {
		return nil, err
	}

	updated := *s
	updated.Name = name
	updated.Email = email
	updated.Phone = phone
	updated.Plan = plan
	updated.Weight = weight
	updated.Height = height
	updated.LastUpdateDate = time.Now()
	return &updated, nil
}

// UpdatePhysicalData retorna uma cópia com peso/altura alterados,
// com limites próprios deste fluxo (peso < 300kg, altura 100–250cm)
func (s *Student) UpdatePhysicalData(weight *float64, height *int) (*Student, error) {
	if weight != nil {
		if *weight <= 0 {
			return nil, errors.NewInvalidArgument("weight must be positive")
		}
		if *weight >= 300 {
			return nil, errors.NewInvalidArgument("weight must be less than 300kg")
		}
	}
	if height != nil {
		if *height <= 0 {
			return nil, errors.NewInvalidArgument("height must be positive")
		}
		if *height < 100 || *height > 250 {
			return nil, errors.NewInvalidArgument("height must be between 100cm and 250cm")
		}
	}

	updated := *s
	updated.Weight = weight
	updated.Height = height
	updated.LastUpdateDate = time.Now()
	return &updated, nil
}

// ChangePlan retorna uma cópia com o plano alterado
func (s *Student) ChangePlan(plan Plan) *Student {
	updated := *s
	updated.Plan = plan
	updated.LastUpdateDate = time.Now()
	return &updated
}

// WithProfileURL retorna uma cópia com a chave da foto de perfil alterada,
// sem tocar em lastUpdateDate
func (s *Student) WithProfileURL(profileURL *string) *Student {
	updated := *s
	updated.ProfileURL = profileURL
	return &updated
}

// Activate retorna uma cópia ativa. Quando já ativo, retorna o próprio
// receptor sem alterar lastUpdateDate (no-op).
func (s *Student) Activate() *Student {
	if s.Active {
		return s
	}
	updated := *s
	updated.Active = true
	updated.LastUpdateDate = time.Now()
	return &updated
}

// Deactivate retorna uma cópia inativa. Quando já inativo, retorna o
// próprio receptor sem alterar lastUpdateDate (no-op).
func (s *Student) Deactivate() *Student {
	if !s.Active {
		return s
	}
	updated := *s
	updated.Active = false
	updated.LastUpdateDate = time.Now()
	return &updated
}

// BMI calcula o índice de massa corporal: peso (kg) / (altura (m))².
// Retorna nil quando peso ou altura estão ausentes, ou altura é zero.
func (s *Student) BMI() *float64 {
	if s.Weight == nil || s.Height == nil || *s.Height == 0 {
		return nil
	}
	heightInMeters := float64(*s.Height) / 100
	bmi := *s.Weight / (heightInMeters * heightInMeters)
	return &bmi
}

func validateMeasurements(weight *float64, height *int) error {
	if weight != nil && *weight <= 0 {
		return errors.NewInvalidArgument("weight must be positive")
	}
	if height != nil && *height <= 0 {
		return errors.NewInvalidArgument("height must be positive")
	}
	return nil
}
