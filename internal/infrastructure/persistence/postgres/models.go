package postgres

import "time"

// StudentModel é o model GORM para alunos
type StudentModel struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex:uni_students_email;not null"`
	Cpf              string    `gorm:"type:varchar(14);uniqueIndex:uni_students_cpf;not null"`
	BirthDate        time.Time `gorm:"type:date;not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	Plan             string    `gorm:"type:varchar(20);not null;index"`
	Weight           *float64  `gorm:"type:numeric(5,2)"`
	Height           *int
	Active           bool      `gorm:"not null;index"`
	RegistrationDate time.Time `gorm:"not null"`
	LastUpdateDate   time.Time `gorm:"not null"`
	ProfileURL       *string   `gorm:"type:varchar(500)"`
}

func (StudentModel) TableName() string {
	return "students"
}

// EmployeeModel é o model GORM para funcionários
type EmployeeModel struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex:uni_employees_email;not null"`
	Cpf              string    `gorm:"type:varchar(14);uniqueIndex:uni_employees_cpf;not null"`
	BirthDate        time.Time `gorm:"type:date;not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	Role             string    `gorm:"type:varchar(20);not null;index"`
	Active           bool      `gorm:"not null;index"`
	HireDate         time.Time `gorm:"type:date;not null"`
	TerminationDate  *time.Time `gorm:"type:date"`
	RegistrationDate time.Time `gorm:"not null"`
	LastUpdateDate   time.Time `gorm:"not null"`
	ProfileURL       *string   `gorm:"type:varchar(500)"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
