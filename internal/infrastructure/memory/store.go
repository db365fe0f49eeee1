// Package memory implementa todos los puertos de persistencia sobre mapas en
// memoria. Se usa como backend efímero (demo) y como doble de pruebas de los
// casos de uso.
package memory

import (
	"sync"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// Store contenedor único de colecciones en memoria. Todos los repositorios que
// expone comparten el mismo mutex, de modo que cada operación individual es
// segura frente a concurrencia. Las escrituras multi-colección se ejecutan en
// secuencia (sin rollback), que es el contrato base de los TxRunner.
type Store struct {
	mu sync.RWMutex

	parties   map[entity.PartyKind]map[string]*entity.Party
	products  map[string]*entity.Product
	invoices  map[string]*entity.Invoice
	purchases map[string]*entity.Purchase
	treasury  []*entity.TreasuryTransaction
	users     map[string]*entity.User
	settings  map[string][]byte
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		parties: map[entity.PartyKind]map[string]*entity.Party{
			entity.KindCustomer: {},
			entity.KindSupplier: {},
			entity.KindEmployee: {},
		},
		products:  map[string]*entity.Product{},
		invoices:  map[string]*entity.Invoice{},
		purchases: map[string]*entity.Purchase{},
		users:     map[string]*entity.User{},
		settings:  map[string][]byte{},
	}
}

// ─── Copias defensivas ───────────────────────────────────────────────────────
// El store guarda y devuelve copias para que las mutaciones del llamador no
// alcancen el estado interno (los slices de historial e ítems son los puntos
// de aliasing).

func cloneParty(p *entity.Party) *entity.Party {
	cp := *p
	cp.History = append([]entity.HistoryEntry(nil), p.History...)
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	cp.Items = append([]entity.LineItem(nil), inv.Items...)
	return &cp
}

func clonePurchase(p *entity.Purchase) *entity.Purchase {
	cp := *p
	cp.Items = append([]entity.LineItem(nil), p.Items...)
	return &cp
}

func cloneTreasuryTx(t *entity.TreasuryTransaction) *entity.TreasuryTransaction {
	cp := *t
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}
