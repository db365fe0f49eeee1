package usecase

import (
	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/codes"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/ledger"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
	"github.com/jhoicas/gestion-pyme/pkg/textutil"
)

// PartyUseCase reglas de negocio para las cuentas de terceros (clientes,
// proveedores, empleados).
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso con el puerto de persistencia.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// NextCode siguiente código de la colección del tipo (C###, S###, E###).
func (uc *PartyUseCase) NextCode(kind entity.PartyKind) (string, error) {
	list, err := uc.repo.ListByKind(kind)
	if err != nil {
		return "", err
	}
	existing := make([]string, 0, len(list))
	for _, p := range list {
		existing = append(existing, p.Code)
	}
	return codes.Next(kind.CodePrefix(), existing), nil
}

// Create alta de tercero. Código vacío recibe el siguiente de la colección; el
// saldo de apertura fija Balance sin generar línea de historial.
func (uc *PartyUseCase) Create(kind entity.PartyKind, in dto.CreatePartyRequest) (*entity.Party, error) {
	if !kind.Valid() || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		var err error
		if code, err = uc.NextCode(kind); err != nil {
			return nil, err
		}
	} else if existing, err := uc.repo.GetByCode(kind, code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	party := &entity.Party{
		Code:           code,
		Kind:           kind,
		Name:           in.Name,
		OpeningBalance: in.OpeningBalance,
		Balance:        in.OpeningBalance,
		Role:           in.Role,
		Salary:         in.Salary,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return party, nil
}

// Get obtiene un tercero por tipo y código.
func (uc *PartyUseCase) Get(kind entity.PartyKind, code string) (*entity.Party, error) {
	party, err := uc.repo.GetByCode(kind, code)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return party, nil
}

// List lista los terceros de un tipo. El filtro de nombre es insensible a
// mayúsculas y acentos; vacío lista todo.
func (uc *PartyUseCase) List(kind entity.PartyKind, nameFilter string) ([]*entity.Party, error) {
	list, err := uc.repo.ListByKind(kind)
	if err != nil {
		return nil, err
	}
	if nameFilter == "" {
		return list, nil
	}
	needle := textutil.Fold(nameFilter)
	filtered := make([]*entity.Party, 0, len(list))
	for _, p := range list {
		if textutil.Contains(p.Name, needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Update edita nombre y datos de empleado; NewCode distinto renombra la cuenta
// (re-clave: se escribe el código nuevo conservando saldo e historial y se borra
// el anterior).
func (uc *PartyUseCase) Update(kind entity.PartyKind, code string, in dto.UpdatePartyRequest) (*entity.Party, error) {
	party, err := uc.repo.GetByCode(kind, code)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		party.Name = in.Name
	}
	if kind == entity.KindEmployee {
		if in.Role != "" {
			party.Role = in.Role
		}
		if !in.Salary.IsZero() {
			party.Salary = in.Salary
		}
	}

	if in.NewCode != "" && in.NewCode != code {
		if existing, err := uc.repo.GetByCode(kind, in.NewCode); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
		party.Code = in.NewCode
		if err := uc.repo.Create(party); err != nil {
			return nil, err
		}
		if err := uc.repo.Delete(kind, code); err != nil {
			return nil, err
		}
		return party, nil
	}

	if err := uc.repo.Update(party); err != nil {
		return nil, err
	}
	return party, nil
}

// Delete elimina la cuenta. No hay integridad referencial: las facturas que
// referencian el código quedan intactas.
func (uc *PartyUseCase) Delete(kind entity.PartyKind, code string) error {
	party, err := uc.repo.GetByCode(kind, code)
	if err != nil {
		return err
	}
	if party == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(kind, code)
}

// ClearLedger deja la cuenta en cero: saldo, apertura e historial. Irreversible.
func (uc *PartyUseCase) ClearLedger(kind entity.PartyKind, code string) error {
	party, err := uc.repo.GetByCode(kind, code)
	if err != nil {
		return err
	}
	if party == nil {
		return domain.ErrNotFound
	}
	cleared := ledger.ClearLedger(*party)
	return uc.repo.Update(&cleared)
}
