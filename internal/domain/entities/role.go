package entities

import (
	"fmt"
	"strings"

	"github.com/fitcore/users-service/internal/domain/errors"
)

// Role representa o cargo de um funcionário no sistema
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleManager      Role = "MANAGER"
	RoleInstructor   Role = "INSTRUCTOR"
	RoleReceptionist Role = "RECEPTIONIST"
)

// roleDescriptions mapeia cargos para suas descrições
var roleDescriptions = map[Role]string{
	RoleAdmin:        "Administrador com acesso total ao sistema",
	RoleManager:      "Gerente com acesso administrativo limitado",
	RoleInstructor:   "Instrutor com acesso apenas às suas turmas e alunos",
	RoleReceptionist: "Recepcionista com acesso limitado ao cadastro e atendimento",
}

// Roles retorna todos os cargos válidos, em ordem estável
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleInstructor, RoleReceptionist}
}

// Description retorna a descrição humana do cargo
func (r Role) Description() string {
	return roleDescriptions[r]
}

func (r Role) String() string {
	return string(r)
}

// RoleFromString converte um nome (case-insensitive) para Role.
// Falha com InvalidArgument listando os valores válidos.
func RoleFromString(roleName string) (Role, error) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(roleName)))
	if _, ok := roleDescriptions[candidate]; !ok {
		return "", errors.NewInvalidArgument(fmt.Sprintf(
			"invalid role: %s. Valid values are: %s", roleName, joinRoles(),
		))
	}
	return candidate, nil
}

func joinRoles() string {
	names := make([]string, 0, len(roleDescriptions))
	for _, r := range Roles() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
