package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/performance-hub/internal/application/auth"
	"github.com/tu-usuario/performance-hub/internal/application/dto"
	"github.com/tu-usuario/performance-hub/internal/domain"
	"github.com/tu-usuario/performance-hub/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria para los tests de auth.
type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := r.users[user.Username]; ok {
		return domain.ErrDuplicate
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role entity.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "secreta123", entity.RoleManager)
	uc := auth.NewAuthUseCase(repo)

	p, err := uc.Authenticate("ana", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, "ana", p.Username)
	assert.Equal(t, entity.RoleManager, p.Role)
	assert.False(t, p.IsAdmin())
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.Authenticate("nadie", "loquesea")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "secreta123", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.Authenticate("ana", "otra-cosa")
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"password incorrecta debe devolver el mismo error que usuario inexistente")
}

func TestCreateUser_HasheaYPersiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	out, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "nuevo", Password: "clave-larga", Role: "manager",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "manager", out.Role)

	stored := repo.users["nuevo"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-larga", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-larga")))
}

func TestCreateUser_RolFueraDelCerrado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "x", Password: "y", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ana", "secreta123", entity.RoleManager)
	uc := auth.NewAuthUseCase(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Password: "z", Role: "manager"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
