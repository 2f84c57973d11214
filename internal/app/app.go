// Package app owns the web client's view state and the actions that change it.
package app

import (
	"context"
	"sync"

	"github.com/i474232898/weathernow/internal/common"
	"github.com/i474232898/weathernow/internal/favorites"
	"github.com/i474232898/weathernow/internal/i18n"
	"github.com/i474232898/weathernow/internal/weather"
)

// Fetcher looks up current weather; nil means nothing to show.
type Fetcher interface {
	Fetch(ctx context.Context, city string, lang i18n.Lang) *weather.Record
}

// FavoritesStore is the write-through favorites container.
type FavoritesStore interface {
	List() favorites.List
	Add(rec *weather.Record) (favorites.List, error)
	UpdateMemo(id int64, memo string) (favorites.List, error)
	Remove(id int64) (favorites.List, error)
	Clear() (favorites.List, error)
}

// State is everything the views render.
type State struct {
	Lang      i18n.Lang
	City      string
	Weather   *weather.Record
	Favorites favorites.List
}

// App holds the single State and applies actions to it one at a time.
type App struct {
	mu        sync.Mutex
	state     State
	fetcher   Fetcher
	favorites FavoritesStore
}

// New creates an App in the default language with the stored favorites.
func New(fetcher Fetcher, favs FavoritesStore) *App {
	return &App{
		state: State{
			Lang:      i18n.Default,
			Favorites: favs.List(),
		},
		fetcher:   fetcher,
		favorites: favs,
	}
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.state
	if s.Weather != nil {
		rec := *s.Weather
		s.Weather = &rec
	}
	s.Favorites = append(favorites.List(nil), s.Favorites...)
	return s
}

// ChangeLanguage switches the UI language; unknown codes select the default.
func (a *App) ChangeLanguage(code string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Lang = i18n.Parse(code)
}

// Search records city as the current input and looks it up. Blank input is
// ignored. The lock is released during the lookup, so when searches overlap
// the last response to arrive wins.
func (a *App) Search(ctx context.Context, city string) {
	a.mu.Lock()
	a.state.City = city
	lang := a.state.Lang
	a.mu.Unlock()

	if common.Blank(city) {
		return
	}

	rec := a.fetcher.Fetch(ctx, city, lang)

	a.mu.Lock()
	a.state.Weather = rec
	a.mu.Unlock()
}

// AddFavorite saves the displayed weather record. Without one it does nothing.
func (a *App) AddFavorite() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.Weather == nil {
		return nil
	}
	return a.commit(a.favorites.Add(a.state.Weather))
}

// UpdateMemo replaces the note of favorite id.
func (a *App) UpdateMemo(id int64, memo string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.commit(a.favorites.UpdateMemo(id, memo))
}

// RemoveFavorite deletes favorite id.
func (a *App) RemoveFavorite(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.commit(a.favorites.Remove(id))
}

// ClearFavorites deletes every favorite.
func (a *App) ClearFavorites() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.commit(a.favorites.Clear())
}

// commit must be called with mu held.
func (a *App) commit(list favorites.List, err error) error {
	a.state.Favorites = list
	return err
}
