package valueobjects

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID = errors.New("invalid user ID format")
)

// UserID é um value object que garante identificadores de usuário sempre válidos
type UserID struct {
	value uuid.UUID
}

// NewUserID cria um novo UserID aleatório
func NewUserID() UserID {
	return UserID{value: uuid.New()}
}

// ParseUserID cria um UserID a partir da forma canônica em string
func ParseUserID(id string) (UserID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return UserID{}, fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}
	return UserID{value: parsed}, nil
}

// UserIDFromUUID cria um UserID a partir de um UUID já validado
func UserIDFromUUID(id uuid.UUID) UserID {
	return UserID{value: id}
}

// String retorna a forma canônica do identificador
func (id UserID) String() string {
	return id.value.String()
}

// UUID retorna o valor bruto do identificador
func (id UserID) UUID() uuid.UUID {
	return id.value
}

// IsZero informa se o identificador ainda não foi atribuído
func (id UserID) IsZero() bool {
	return id.value == uuid.Nil
}

// MarshalText implementa encoding.TextMarshaler (JSON, cache, logs)
func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implementa encoding.TextUnmarshaler
func (id *UserID) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, string(text))
	}
	id.value = parsed
	return nil
}
