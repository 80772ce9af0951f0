package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token + datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Fullname string `json:"fullname,omitempty"`
}

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest body para PUT /api/users/:id. Password opcional: nil
// mantiene la contraseña actual.
type UpdateUserRequest struct {
	Username string  `json:"username"`
	Fullname string  `json:"fullname"`
	Role     string  `json:"role"`
	Password *string `json:"password,omitempty"`
}
