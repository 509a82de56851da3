package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(*entity.User) error { return nil }
func (f *fakeUserRepo) SetPermissions(string, []string) error { return nil }
func (f *fakeUserRepo) SoftDelete(string) error { return nil }
func (f *fakeUserRepo) List(int, int) ([]*entity.User, error) { return nil, nil }

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"user-1": {
			ID:           "user-1",
			Username:     "jvaldivia",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CostCenter:   "CC-001",
			IsActive:     true,
		},
		"user-2": {
			ID:           "user-2",
			Username:     "baja",
			PasswordHash: string(hash),
			Role:         entity.RoleUser,
			IsActive:     false,
		},
	}}
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "almacen-api-test"}
	return auth.NewAuthUseCase(repo, cfg), repo
}

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "jvaldivia", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	// El token emitido trae los claims del usuario.
	userID, role, costCenter, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, "CC-001", costCenter)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "jvaldivia", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un usuario dado de baja no entra aunque la contraseña sea correcta. La
// verificación de hash corre primero para no filtrar qué cuentas existen.
func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "baja", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EntradaVacia(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "jvaldivia", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMe(t *testing.T) {
	uc, _ := newAuthUC(t)

	me, err := uc.Me("user-1")
	require.NoError(t, err)
	assert.Equal(t, "jvaldivia", me.Username)

	_, err = uc.Me("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
