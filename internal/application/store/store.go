// Package store mantiene el último snapshot publicado por el ciclo de
// refresco y lo expone como observable: los lectores pueden consultar el
// estado actual o suscribirse a las publicaciones.
package store

import (
	"sync"
	"time"

	"github.com/tu-usuario/warehouse-analytics/internal/application/aggregate"
	"github.com/tu-usuario/warehouse-analytics/internal/domain/entity"
)

// Snapshot es la tupla completa que publica un ciclo de refresco. Ninguna de
// sus partes se muta tras la publicación; cada ciclo construye una nueva.
type Snapshot struct {
	Inventory aggregate.InventorySummary `json:"inventory"`
	Demand    aggregate.DemandSummary    `json:"demand"`
	RFID      aggregate.HeatmapSummary   `json:"rfid"`
	Trends    []entity.TrendPoint        `json:"trends"`
	// Products unión de product_id vistos en inventario y demanda,
	// preservando el orden de primera aparición.
	Products    []string               `json:"products"`
	Metrics     entity.DashboardMetrics `json:"metrics"`
	RefreshedAt time.Time              `json:"refreshed_at"`
}

// Store almacén observable del view-model. Seguro para uso concurrente.
type Store struct {
	mu      sync.RWMutex
	snap    *Snapshot
	loading bool
	lastErr string
	closed  bool
	subs    map[int]chan Snapshot
	nextSub int
}

// New crea un store vacío (sin snapshot, sin error, loading=false).
func New() *Store {
	return &Store{subs: make(map[int]chan Snapshot)}
}

// SetLoading marca el inicio/fin de un ciclo de fetch.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Publish reemplaza atómicamente el snapshot, limpia el error y apaga
// loading. Tras Close la publicación se suprime: el ciclo en vuelo termina
// pero el store desmontado no cambia.
func (s *Store) Publish(snap Snapshot) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.snap = &snap
	s.lastErr = ""
	s.loading = false
	subs := make([]chan Snapshot, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		// entrega del último valor sin bloquear: si el suscriptor va atrasado
		// se descarta el snapshot viejo del buffer
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// Fail registra el error del ciclo y apaga loading; el snapshot previo se
// conserva intacto.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.lastErr = err.Error()
	s.loading = false
}

// Snapshot devuelve el último snapshot publicado y si existe alguno.
func (s *Store) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return Snapshot{}, false
	}
	return *s.snap, true
}

// Loading indica si hay un ciclo de fetch en curso.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err devuelve el mensaje del último error de agregación, o "" si el último
// ciclo publicó con éxito.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Subscribe registra un observador. Devuelve el canal (buffer 1, siempre con
// el snapshot más reciente pendiente) y la función de baja.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Snapshot, 1)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close desmonta el store: publicaciones posteriores se suprimen y los
// suscriptores quedan dados de baja.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.subs = make(map[int]chan Snapshot)
}

// ProductUnion deriva la lista de productos del snapshot: unión de los
// product_id de inventario y demanda, en orden de primera aparición.
func ProductUnion(inventory []entity.InventoryRecord, demand []entity.DemandPrediction) []string {
	seen := make(map[string]bool)
	products := make([]string, 0)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			products = append(products, id)
		}
	}
	for _, r := range inventory {
		add(r.ProductID)
	}
	for _, p := range demand {
		add(p.ProductID)
	}
	return products
}
