package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-venta/internal/application/auth"
	"github.com/jhoicas/punto-venta/internal/domain"
	"github.com/jhoicas/punto-venta/internal/domain/entity"
	"github.com/jhoicas/punto-venta/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // por id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "punto-venta-test"}

func newUseCase() (*auth.UseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return auth.NewUseCase(repo, testJWT), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HasheaPassword(t *testing.T) {
	uc, _ := newUseCase()

	user, err := uc.Register(context.Background(), auth.RegisterInput{
		Name: "Ana", Email: "ana@test.com", Password: "clave-secreta",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ana", user.Name)
	// Nunca se guarda el password plano.
	assert.NotEqual(t, "clave-secreta", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clave-secreta")))
}

func TestRegister_NombreVacioUsaEmail(t *testing.T) {
	uc, _ := newUseCase()

	user, err := uc.Register(context.Background(), auth.RegisterInput{
		Email: "ana@test.com", Password: "clave-secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@test.com", user.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "otra-clave"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasDevuelveJWT(t *testing.T) {
	uc, _ := newUseCase()
	registered, err := uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	token, user, err := uc.Login(context.Background(), auth.LoginInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// El token lleva el id del usuario como subject.
	userID, err := jwt.Parse(testJWT.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), auth.LoginInput{Email: "ana@test.com", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _ := newUseCase()

	// Mismo error que password incorrecto: no se filtra si el email existe.
	_, _, err := uc.Login(context.Background(), auth.LoginInput{Email: "nadie@test.com", Password: "clave"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProfile_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetProfile(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_CambiaNombreYEmail(t *testing.T) {
	uc, repo := newUseCase()
	registered, err := uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), registered.ID, auth.UpdateProfileInput{
		Name: "Ana María", Email: "ana.maria@test.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, "ana.maria@test.com", updated.Email)

	stored, _ := repo.GetByID(context.Background(), registered.ID)
	assert.Equal(t, "ana.maria@test.com", stored.Email)
}

func TestUpdateProfile_EmailDeOtroUsuario(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Register(context.Background(), auth.RegisterInput{Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)
	otro, err := uc.Register(context.Background(), auth.RegisterInput{Email: "luis@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), otro.ID, auth.UpdateProfileInput{Email: "ana@test.com"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUpdateProfile_CamposVaciosNoTocanNada(t *testing.T) {
	uc, _ := newUseCase()
	registered, err := uc.Register(context.Background(), auth.RegisterInput{Name: "Ana", Email: "ana@test.com", Password: "clave-secreta"})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), registered.ID, auth.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "ana@test.com", updated.Email)
}
