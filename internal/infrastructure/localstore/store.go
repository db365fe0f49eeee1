// Package localstore implementa los puertos de persistencia sobre un archivo
// SQLite con una fila por colección: cada colección completa se serializa a
// JSON y se reescribe en su blob tras cada escritura. Es el backend local de
// instalación única (sin servidor de base de datos); el estado vivo se mantiene
// en memoria y SQLite actúa como archivo de respaldo durable.
package localstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// Nombres de colección dentro del archivo.
const (
	colParties  = "parties"
	colProducts = "products"
	colInvoices = "invoices"
	colPurchase = "purchases"
	colTreasury = "treasury"
	colUsers    = "users"
	colSettings = "settings"
)

// Store backend local: estado en memoria + persistencia blob-por-colección en
// SQLite. Las escrituras multi-colección son secuenciales (sin rollback), igual
// que el backend en memoria.
type Store struct {
	mu sync.Mutex
	db *sql.DB

	parties   map[entity.PartyKind]map[string]*entity.Party
	products  map[string]*entity.Product
	invoices  map[string]*entity.Invoice
	purchases map[string]*entity.Purchase
	treasury  []*entity.TreasuryTransaction
	users     map[string]*entity.User
	settings  map[string][]byte
}

// Open abre (o crea) el archivo SQLite y carga todas las colecciones en memoria.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tabla collections: %w", err)
	}

	s := &Store{
		db: db,
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
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close cierra el archivo.
func (s *Store) Close() error {
	return s.db.Close()
}

// storedUser incluye el hash de contraseña, que entity.User excluye del JSON de
// respuesta (json:"-").
type storedUser struct {
	entity.User
	PasswordHash string `json:"password_hash"`
}

func (s *Store) load() error {
	rows, err := s.db.Query(`SELECT name, data FROM collections`)
	if err != nil {
		return fmt.Errorf("leer colecciones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var data []byte
		if err := rows.Scan(&name, &data); err != nil {
			return fmt.Errorf("scan colección: %w", err)
		}
		if err := s.loadCollection(name, data); err != nil {
			return fmt.Errorf("colección %s: %w", name, err)
		}
	}
	return rows.Err()
}

func (s *Store) loadCollection(name string, data []byte) error {
	switch name {
	case colParties:
		var list []*entity.Party
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, p := range list {
			byCode := s.parties[p.Kind]
			if byCode == nil {
				byCode = map[string]*entity.Party{}
				s.parties[p.Kind] = byCode
			}
			byCode[p.Code] = p
		}
	case colProducts:
		var list []*entity.Product
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, p := range list {
			s.products[p.Code] = p
		}
	case colInvoices:
		var list []*entity.Invoice
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, inv := range list {
			s.invoices[inv.ID] = inv
		}
	case colPurchase:
		var list []*entity.Purchase
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, p := range list {
			s.purchases[p.ID] = p
		}
	case colTreasury:
		return json.Unmarshal(data, &s.treasury)
	case colUsers:
		var list []*storedUser
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		for _, su := range list {
			u := su.User
			u.PasswordHash = su.PasswordHash
			s.users[u.ID] = &u
		}
	case colSettings:
		return json.Unmarshal(data, &s.settings)
	}
	// Colecciones desconocidas se ignoran (compatibilidad hacia adelante).
	return nil
}

// persist serializa la colección indicada y reescribe su blob. Debe llamarse
// con el mutex tomado.
func (s *Store) persist(name string) error {
	var payload any
	switch name {
	case colParties:
		var list []*entity.Party
		for _, byCode := range s.parties {
			for _, p := range byCode {
				list = append(list, p)
			}
		}
		payload = list
	case colProducts:
		list := make([]*entity.Product, 0, len(s.products))
		for _, p := range s.products {
			list = append(list, p)
		}
		payload = list
	case colInvoices:
		list := make([]*entity.Invoice, 0, len(s.invoices))
		for _, inv := range s.invoices {
			list = append(list, inv)
		}
		payload = list
	case colPurchase:
		list := make([]*entity.Purchase, 0, len(s.purchases))
		for _, p := range s.purchases {
			list = append(list, p)
		}
		payload = list
	case colTreasury:
		payload = s.treasury
	case colUsers:
		list := make([]*storedUser, 0, len(s.users))
		for _, u := range s.users {
			list = append(list, &storedUser{User: *u, PasswordHash: u.PasswordHash})
		}
		payload = list
	case colSettings:
		payload = s.settings
	default:
		return fmt.Errorf("colección desconocida: %s", name)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal colección %s: %w", name, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO collections (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data`, name, data); err != nil {
		return fmt.Errorf("persistir colección %s: %w", name, err)
	}
	return nil
}

// ─── Copias defensivas (mismos puntos de aliasing que el backend en memoria) ─

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
