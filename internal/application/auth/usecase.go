package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// Principal identidad autenticada de una petición.
type Principal struct {
	ID       string
	Username string
	Role     entity.Role
}

// IsAdmin indica si el principal tiene rol admin. No hay jerarquía de roles:
// es igualdad de atributo, nada más.
func (p Principal) IsAdmin() bool {
	return p.Role == entity.RoleAdmin
}

// AuthUseCase autenticación por usuario/contraseña y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Authenticate busca el usuario y verifica la contraseña contra el hash bcrypt.
// Devuelve domain.ErrUnauthorized tanto para usuario inexistente como para
// contraseña incorrecta; la comparación la hace el primitivo de bcrypt.
func (uc *AuthUseCase) Authenticate(username, password string) (*Principal, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// CreateUser crea un usuario: valida el rol cerrado, hashea la contraseña con
// bcrypt y persiste. Devuelve domain.ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}, nil
}
