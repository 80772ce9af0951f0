package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
	"github.com/jhoicas/vitasport-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y siembra del admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt, genera JWT y
// retorna token + usuario (sin hash).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// EnsureDefaultAdmin crea el usuario admin por defecto cuando la tabla de
// usuarios está vacía (primer arranque). Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, password string) (bool, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	now := time.Now()
	_, err = uc.userRepo.Create(ctx, &entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdministrador,
		Fullname:     "Administrador del Sistema",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToUserResponse convierte la entidad a respuesta sin exponer el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Fullname: u.Fullname,
	}
}
