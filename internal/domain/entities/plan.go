package entities

import (
	"fmt"
	"strings"

	"github.com/fitcore/users-service/internal/domain/errors"
)

// Plan representa o plano de assinatura de um estudante
type Plan string

const (
	PlanBasic        Plan = "BASIC"
	PlanIntermediate Plan = "INTERMEDIATE"
	PlanPremium      Plan = "PREMIUM"
)

type planInfo struct {
	description string
	monthlyFee  float64
}

// planCatalog mapeia planos para descrição e mensalidade
var planCatalog = map[Plan]planInfo{
	PlanBasic:        {description: "Acesso básico à academia", monthlyFee: 89.90},
	PlanIntermediate: {description: "Acesso intermediário com algumas aulas", monthlyFee: 129.90},
	PlanPremium:      {description: "Acesso completo a todas as aulas e serviços", monthlyFee: 189.90},
}

// Plans retorna todos os planos válidos, em ordem estável
func Plans() []Plan {
	return []Plan{PlanBasic, PlanIntermediate, PlanPremium}
}

// Description retorna a descrição humana do plano
func (p Plan) Description() string {
	return planCatalog[p].description
}

// MonthlyFee retorna a mensalidade do plano
func (p Plan) MonthlyFee() float64 {
	return planCatalog[p].monthlyFee
}

func (p Plan) String() string {
	return string(p)
}

// PlanFromString converte um nome (case-insensitive) para Plan.
// Falha com InvalidArgument listando os valores válidos.
func PlanFromString(planName string) (Plan, error) {
	candidate := Plan(strings.ToUpper(strings.TrimSpace(planName)))
	if _, ok := planCatalog[candidate]; !ok {
		return "", errors.NewInvalidArgument(fmt.Sprintf(
			"invalid plan type: %s. Valid values are: %s", planName, joinPlans(),
		))
	}
	return candidate, nil
}

func joinPlans() string {
	names := make([]string, 0, len(planCatalog))
	for _, p := range Plans() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
