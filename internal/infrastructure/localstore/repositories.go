package localstore

import (
	"sort"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var (
	_ repository.PartyRepository    = (*partyRepo)(nil)
	_ repository.ProductRepository  = (*productRepo)(nil)
	_ repository.InvoiceRepository  = (*invoiceRepo)(nil)
	_ repository.PurchaseRepository = (*purchaseRepo)(nil)
	_ repository.TreasuryRepository = (*treasuryRepo)(nil)
	_ repository.UserRepository     = (*userRepo)(nil)
	_ repository.SettingsRepository = (*settingsRepo)(nil)
)

// Parties devuelve el repositorio de terceros sobre este store.
func (s *Store) Parties() repository.PartyRepository { return &partyRepo{s: s} }

// Products devuelve el repositorio de productos sobre este store.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Invoices devuelve el repositorio de facturas de venta sobre este store.
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepo{s: s} }

// Purchases devuelve el repositorio de facturas de compra sobre este store.
func (s *Store) Purchases() repository.PurchaseRepository { return &purchaseRepo{s: s} }

// Treasury devuelve el repositorio de movimientos de tesorería sobre este store.
func (s *Store) Treasury() repository.TreasuryRepository { return &treasuryRepo{s: s} }

// Users devuelve el repositorio de usuarios sobre este store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Settings devuelve el repositorio de configuración sobre este store.
func (s *Store) Settings() repository.SettingsRepository { return &settingsRepo{s: s} }

// ─── Terceros ────────────────────────────────────────────────────────────────

type partyRepo struct{ s *Store }

func (r *partyRepo) Create(party *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byCode := r.s.parties[party.Kind]
	if byCode == nil {
		byCode = map[string]*entity.Party{}
		r.s.parties[party.Kind] = byCode
	}
	if _, ok := byCode[party.Code]; ok {
		return domain.ErrDuplicate
	}
	byCode[party.Code] = cloneParty(party)
	return r.s.persist(colParties)
}

func (r *partyRepo) GetByCode(kind entity.PartyKind, code string) (*entity.Party, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.parties[kind][code]
	if !ok {
		return nil, nil
	}
	return cloneParty(p), nil
}

func (r *partyRepo) Update(party *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parties[party.Kind][party.Code]; !ok {
		return domain.ErrNotFound
	}
	r.s.parties[party.Kind][party.Code] = cloneParty(party)
	return r.s.persist(colParties)
}

func (r *partyRepo) Delete(kind entity.PartyKind, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parties[kind][code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.parties[kind], code)
	return r.s.persist(colParties)
}

func (r *partyRepo) ListByKind(kind entity.PartyKind) ([]*entity.Party, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Party, 0, len(r.s.parties[kind]))
	for _, p := range r.s.parties[kind] {
		out = append(out, cloneParty(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ─── Productos ───────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.Code]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[product.Code] = cloneProduct(product)
	return r.s.persist(colProducts)
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.Code]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.Code] = cloneProduct(product)
	return r.s.persist(colProducts)
}

func (r *productRepo) Delete(code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, code)
	return r.s.persist(colProducts)
}

func (r *productRepo) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// ─── Facturas de venta ───────────────────────────────────────────────────────

type invoiceRepo struct{ s *Store }

func (r *invoiceRepo) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[invoice.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.invoices[invoice.ID] = cloneInvoice(invoice)
	return r.s.persist(colInvoices)
}

func (r *invoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *invoiceRepo) Update(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.invoices[invoice.ID] = cloneInvoice(invoice)
	return r.s.persist(colInvoices)
}

func (r *invoiceRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return r.s.persist(colInvoices)
}

func (r *invoiceRepo) List() ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *invoiceRepo) DeleteAll() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices = map[string]*entity.Invoice{}
	return r.s.persist(colInvoices)
}

// ─── Facturas de compra ──────────────────────────────────────────────────────

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[purchase.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.purchases[purchase.ID] = clonePurchase(purchase)
	return r.s.persist(colPurchase)
}

func (r *purchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	return clonePurchase(p), nil
}

func (r *purchaseRepo) Update(purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[purchase.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.purchases[purchase.ID] = clonePurchase(purchase)
	return r.s.persist(colPurchase)
}

func (r *purchaseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.purchases[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.purchases, id)
	return r.s.persist(colPurchase)
}

func (r *purchaseRepo) List() ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		out = append(out, clonePurchase(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// ─── Tesorería ───────────────────────────────────────────────────────────────

type treasuryRepo struct{ s *Store }

func (r *treasuryRepo) Create(tx *entity.TreasuryTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.treasury {
		if existing.ID == tx.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.treasury = append(r.s.treasury, cloneTreasuryTx(tx))
	return r.s.persist(colTreasury)
}

func (r *treasuryRepo) List() ([]*entity.TreasuryTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.TreasuryTransaction, 0, len(r.s.treasury))
	for _, tx := range r.s.treasury {
		out = append(out, cloneTreasuryTx(tx))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *treasuryRepo) DeleteAll() error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.treasury = nil
	return r.s.persist(colTreasury)
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.users[user.ID] = cloneUser(user)
	return r.s.persist(colUsers)
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[user.ID] = cloneUser(user)
	return r.s.persist(colUsers)
}

func (r *userRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	return r.s.persist(colUsers)
}

func (r *userRepo) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// ─── Configuración ───────────────────────────────────────────────────────────

type settingsRepo struct{ s *Store }

func (r *settingsRepo) Get(key string) ([]byte, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.settings[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r *settingsRepo) Put(key string, value []byte) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings[key] = append([]byte(nil), value...)
	return r.s.persist(colSettings)
}
