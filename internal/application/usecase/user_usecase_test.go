package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/application/usecase"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/infrastructure/memory"
)

func newUserUC(t *testing.T) (*usecase.UserUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewUserUseCase(store.Users()), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

// La contraseña nunca se guarda en claro: el hash bcrypt debe verificar contra
// la original y la respuesta no expone el hash.
func TestUserCreate_HasheaLaContrasena(t *testing.T) {
	uc, store := newUserUC(t)

	created, err := uc.Create(dto.CreateUserRequest{
		Username: "maria",
		Password: "secreta123",
		FullName: "María Rodríguez",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.RoleUser, created.Role, "rol por defecto USER")

	stored, err := store.Users().GetByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc, _ := newUserUC(t)
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "x"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateUserRequest{Username: "maria", Password: "y"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc, _ := newUserUC(t)
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "x", Role: "SUPERUSER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos efectivos
// ──────────────────────────────────────────────────────────────────────────────

// ADMIN recibe todas las banderas sin importar lo almacenado; USER recibe
// exactamente lo que tiene guardado.
func TestEffectivePermissions_AdminImplicaTodo(t *testing.T) {
	uc, _ := newUserUC(t)

	admin, err := uc.Create(dto.CreateUserRequest{
		Username: "root",
		Password: "x",
		Role:     entity.RoleAdmin,
		// Sin banderas: el rol manda.
	})
	require.NoError(t, err)
	plain, err := uc.Create(dto.CreateUserRequest{
		Username:    "pepe",
		Password:    "x",
		Permissions: entity.Permissions{Sales: true},
	})
	require.NoError(t, err)

	perms, err := uc.EffectivePermissions(admin.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AllPermissions(), perms)

	perms, err = uc.EffectivePermissions(plain.ID)
	require.NoError(t, err)
	assert.True(t, perms.Sales)
	assert.False(t, perms.Financial)
	assert.False(t, perms.CanDeleteLedgers)
}

func TestEffectivePermissions_UsuarioInexistente(t *testing.T) {
	uc, _ := newUserUC(t)
	_, err := uc.EffectivePermissions("nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

// Password vacío en la edición conserva el hash actual.
func TestUserUpdate_PasswordVacioConservaHash(t *testing.T) {
	uc, store := newUserUC(t)
	created, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "original"})
	require.NoError(t, err)
	before, _ := store.Users().GetByID(created.ID)

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{FullName: "María R."})
	require.NoError(t, err)

	after, _ := store.Users().GetByID(created.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, "María R.", after.FullName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("original")))
}

func TestUserUpdate_CambioDeContrasena(t *testing.T) {
	uc, store := newUserUC(t)
	created, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "vieja"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Password: "nueva"})
	require.NoError(t, err)

	after, _ := store.Users().GetByID(created.ID)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("vieja")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("nueva")))
}

// La edición reemplaza el conjunto completo de banderas.
func TestUserUpdate_ReemplazaPermisos(t *testing.T) {
	uc, _ := newUserUC(t)
	created, err := uc.Create(dto.CreateUserRequest{
		Username:    "pepe",
		Password:    "x",
		Permissions: entity.Permissions{Sales: true, Warehouse: true},
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateUserRequest{
		Permissions: entity.Permissions{Financial: true},
	})
	require.NoError(t, err)
	assert.True(t, updated.Permissions.Financial)
	assert.False(t, updated.Permissions.Sales, "las banderas no declaradas se apagan")
}

func TestUserDelete_Inexistente(t *testing.T) {
	uc, _ := newUserUC(t)
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrUserNotFound)
}
