package movement

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gategroup-ops/internal/domain"
)

type draft struct {
	ctrl     *Controller
	lastSeen time.Time
}

// DraftStore guarda un controlador por borrador abierto, con dueño y último acceso.
type DraftStore struct {
	mu     sync.Mutex
	deps   Deps
	drafts map[string]*draft
}

// NewDraftStore crea el almacén; deps se comparte con cada controlador creado.
func NewDraftStore(deps Deps) *DraftStore {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	return &DraftStore{deps: deps, drafts: make(map[string]*draft)}
}

// Open crea un borrador nuevo para userID y devuelve su ID.
func (s *DraftStore) Open(userID string) (string, *Controller) {
	id := uuid.New().String()
	ctrl := NewController(s.deps, userID)

	s.mu.Lock()
	s.drafts[id] = &draft{ctrl: ctrl, lastSeen: s.deps.Clock()}
	n := len(s.drafts)
	s.mu.Unlock()

	s.deps.Metrics.SetOpenDrafts(n)
	return id, ctrl
}

// Get devuelve el controlador del borrador si pertenece a userID.
func (s *DraftStore) Get(id, userID string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if d.ctrl.UserID() != userID {
		return nil, domain.ErrForbidden
	}
	d.lastSeen = s.deps.Clock()
	return d.ctrl, nil
}

// Delete descarta el borrador.
func (s *DraftStore) Delete(id, userID string) error {
	s.mu.Lock()
	d, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	if d.ctrl.UserID() != userID {
		s.mu.Unlock()
		return domain.ErrForbidden
	}
	delete(s.drafts, id)
	n := len(s.drafts)
	s.mu.Unlock()

	s.deps.Metrics.SetOpenDrafts(n)
	return nil
}

// PurgeIdle descarta los borradores sin acceso por más de maxIdle.
// Los que tienen un guardado en curso se conservan. Devuelve cuántos se eliminaron.
func (s *DraftStore) PurgeIdle(maxIdle time.Duration) int {
	now := s.deps.Clock()

	s.mu.Lock()
	purged := 0
	for id, d := range s.drafts {
		if now.Sub(d.lastSeen) <= maxIdle {
			continue
		}
		if d.ctrl.IsSubmitting() {
			continue
		}
		delete(s.drafts, id)
		purged++
	}
	n := len(s.drafts)
	s.mu.Unlock()

	s.deps.Metrics.SetOpenDrafts(n)
	return purged
}

// Len número de borradores abiertos.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
