package usecase

import (
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// Claves conocidas del blob de configuración.
const (
	SettingsKeyBusiness = "settings"
	SettingsKeyLogo     = "logo"
)

// SettingsUseCase lectura/escritura del blob de configuración del negocio.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el blob de la clave.
func (uc *SettingsUseCase) Get(key string) ([]byte, error) {
	value, err := uc.repo.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, domain.ErrNotFound
	}
	return value, nil
}

// Put guarda el blob completo bajo la clave (sobreescritura total).
func (uc *SettingsUseCase) Put(key string, value []byte) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Put(key, value)
}
