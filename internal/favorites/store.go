package favorites

import (
	"time"

	"github.com/i474232898/weathernow/internal/weather"
)

// Store owns the current favorites list and writes it through to the
// repository after every change. It is a single-writer container; callers
// serialize access.
type Store struct {
	repo Repository
	list List
	ids  *idSource
}

// NewStore loads the persisted list once and returns a Store around it.
func NewStore(repo Repository) *Store {
	list := repo.Load()
	return &Store{
		repo: repo,
		list: list,
		ids:  newIDSource(time.Now, list.MaxID()),
	}
}

// List returns a copy of the current favorites.
func (s *Store) List() List {
	out := make(List, len(s.list))
	copy(out, s.list)
	return out
}

// Add saves rec as a new favorite unless rec is nil or its name is already saved.
func (s *Store) Add(rec *weather.Record) (List, error) {
	if rec == nil || s.list.Has(rec.Name) {
		return s.List(), nil
	}
	return s.apply(Add(s.list, rec, s.ids.next()))
}

// UpdateMemo replaces the memo of entry id. Unknown ids are a no-op.
func (s *Store) UpdateMemo(id int64, memo string) (List, error) {
	return s.apply(UpdateMemo(s.list, id, memo))
}

// Remove deletes entry id. Unknown ids are a no-op.
func (s *Store) Remove(id int64) (List, error) {
	return s.apply(Remove(s.list, id))
}

// Clear deletes every entry.
func (s *Store) Clear() (List, error) {
	return s.apply(Clear())
}

// apply persists next and only then makes it current. On a failed save the
// previous list stays in place.
func (s *Store) apply(next List) (List, error) {
	if err := s.repo.Save(next); err != nil {
		return s.List(), err
	}
	s.list = next
	return s.List(), nil
}

// idSource hands out millisecond-clock ids that never repeat within a store,
// even across removals or a clock that does not advance.
type idSource struct {
	now  func() time.Time
	last int64
}

func newIDSource(now func() time.Time, floor int64) *idSource {
	return &idSource{now: now, last: floor}
}

func (g *idSource) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
