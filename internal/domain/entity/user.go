package entity

import "time"

// Roles de usuario.
const (
	RoleAdministrador = "Administrador"
	RoleVendedor      = "Vendedor"
)

// User representa un usuario del sistema. PasswordHash nunca se expone en
// respuestas HTTP.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         string
	Fullname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
