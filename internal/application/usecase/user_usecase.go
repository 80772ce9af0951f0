package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vitasport-api/internal/application/auth"
	"github.com/jhoicas/vitasport-api/internal/application/dto"
	"github.com/jhoicas/vitasport-api/internal/domain"
	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo Administrador).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin hashes.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Create registra un usuario nuevo con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Fullname:     in.Fullname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := uc.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	resp := auth.ToUserResponse(user)
	return &resp, nil
}

// Update actualiza username, fullname y role; si se envía contraseña, la
// rehashea. Nunca persiste una contraseña en claro.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	if in.Username == "" || in.Role == "" {
		return domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:        id,
		Username:  in.Username,
		Fullname:  in.Fullname,
		Role:      in.Role,
		UpdatedAt: time.Now(),
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	return uc.repo.Update(ctx, user)
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
