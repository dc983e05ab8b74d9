package seeding

import (
	"time"

	"github.com/fitcore/users-service/internal/domain/ports"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func birth(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// seedStudents devolve os alunos de demonstração, alternando entre os planos
func seedStudents() []ports.RegisterStudentInput {
	return []ports.RegisterStudentInput{
		{Name: "Maria Santos", Email: "maria.santos@fitcore.com", Cpf: "123.456.789-01", BirthDate: birth(1995, 3, 12), Phone: "(11) 98765-4321", PlanType: "PREMIUM", Weight: floatPtr(62.5), Height: intPtr(165)},
		{Name: "João Silva", Email: "joao.silva@fitcore.com", Cpf: "234.567.890-12", BirthDate: birth(1990, 7, 25), Phone: "(11) 97654-3210", PlanType: "BASIC", Weight: floatPtr(80.5), Height: intPtr(180)},
		{Name: "Ana Oliveira", Email: "ana.oliveira@fitcore.com", Cpf: "345.678.901-23", BirthDate: birth(1998, 1, 8), Phone: "(21) 96543-2109", PlanType: "INTERMEDIATE", Weight: floatPtr(55.0), Height: intPtr(160)},
		{Name: "Pedro Costa", Email: "pedro.costa@fitcore.com", Cpf: "456.789.012-34", BirthDate: birth(1987, 11, 30), Phone: "(21) 95432-1098", PlanType: "BASIC", Weight: floatPtr(92.0), Height: intPtr(185)},
		{Name: "Carla Ferreira", Email: "carla.ferreira@fitcore.com", Cpf: "567.890.123-45", BirthDate: birth(2001, 5, 17), Phone: "(31) 94321-0987", PlanType: "PREMIUM", Weight: floatPtr(58.3), Height: intPtr(168)},
		{Name: "Lucas Almeida", Email: "lucas.almeida@fitcore.com", Cpf: "678.901.234-56", BirthDate: birth(1993, 9, 4), Phone: "(31) 93210-9876", PlanType: "INTERMEDIATE", Weight: floatPtr(75.8), Height: intPtr(178)},
		{Name: "Juliana Rocha", Email: "juliana.rocha@fitcore.com", Cpf: "789.012.345-67", BirthDate: birth(1996, 12, 22), Phone: "(41) 92109-8765", PlanType: "BASIC", Weight: floatPtr(64.0), Height: intPtr(170)},
		{Name: "Rafael Martins", Email: "rafael.martins@fitcore.com", Cpf: "890.123.456-78", BirthDate: birth(1985, 4, 9), Phone: "(41) 91098-7654", PlanType: "PREMIUM", Weight: floatPtr(88.2), Height: intPtr(182)},
		{Name: "Beatriz Lima", Email: "beatriz.lima@fitcore.com", Cpf: "901.234.567-89", BirthDate: birth(2003, 8, 14), Phone: "(51) 90987-6543", PlanType: "BASIC", Weight: floatPtr(52.7), Height: intPtr(158)},
		{Name: "Gustavo Pereira", Email: "gustavo.pereira@fitcore.com", Cpf: "012.345.678-90", BirthDate: birth(1992, 2, 28), Phone: "(51) 98876-5432", PlanType: "INTERMEDIATE", Weight: floatPtr(70.4), Height: intPtr(175)},
	}
}

// seedEmployees devolve o quadro de demonstração cobrindo todos os papéis
func seedEmployees() []ports.RegisterEmployeeInput {
	return []ports.RegisterEmployeeInput{
		{Name: "Fernanda Souza", Email: "fernanda.souza@fitcore.com", Cpf: "111.222.333-44", BirthDate: birth(1982, 6, 3), Phone: "(11) 99111-2233", RoleType: "ADMIN", HireDate: birth(2020, 1, 15)},
		{Name: "Ricardo Gomes", Email: "ricardo.gomes@fitcore.com", Cpf: "222.333.444-55", BirthDate: birth(1988, 10, 19), Phone: "(11) 99222-3344", RoleType: "MANAGER", HireDate: birth(2021, 3, 1)},
		{Name: "Patrícia Ramos", Email: "patricia.ramos@fitcore.com", Cpf: "333.444.555-66", BirthDate: birth(1994, 2, 7), Phone: "(21) 99333-4455", RoleType: "INSTRUCTOR", HireDate: birth(2022, 7, 11)},
		{Name: "Diego Barbosa", Email: "diego.barbosa@fitcore.com", Cpf: "444.555.666-77", BirthDate: birth(1997, 12, 1), Phone: "(21) 99444-5566", RoleType: "INSTRUCTOR", HireDate: birth(2023, 2, 20)},
		{Name: "Camila Dias", Email: "camila.dias@fitcore.com", Cpf: "555.666.777-88", BirthDate: birth(1999, 4, 26), Phone: "(31) 99555-6677", RoleType: "RECEPTIONIST", HireDate: birth(2023, 9, 5)},
	}
}
