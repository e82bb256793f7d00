// Package store implements the concurrent in-memory stores backing the gRPC
// services. Each store exclusively owns its maps; callers only ever receive
// copies of the stored values.
//
// CatalogStore holds the movie catalog and the per-movie rating ledger. The
// ledger keeps each user's latest submitted rating per movie, and a movie's
// visible rating is recomputed as the arithmetic mean of its ledger whenever
// an entry changes. The ledger itself is never exposed.
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
)

// recommendLimit caps the result size of RecommendForUser.
const recommendLimit = 5

// movieEntry bundles a movie with its rating ledger. entry.mu serializes the
// ledger upsert + mean recompute + rating store for one movie id, so updates
// to different movies never block each other.
type movieEntry struct {
	mu      sync.Mutex
	movie   domain.Movie
	ratings map[int64]float64 // user id -> latest submitted rating
}

// CatalogStore is a concurrent map of movie id -> movie plus rating ledger.
// The zero value is not usable; construct with NewCatalogStore.
type CatalogStore struct {
	mu     sync.RWMutex // guards the movies map, not the entries
	movies map[int64]*movieEntry
}

// NewCatalogStore returns an empty catalog.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{movies: make(map[int64]*movieEntry)}
}

// AddMovie inserts or replaces a catalog entry. Replacing a movie resets its
// rating ledger.
func (s *CatalogStore) AddMovie(m domain.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movies[m.ID] = &movieEntry{movie: m, ratings: make(map[int64]float64)}
}

// GetByID returns a copy of the movie with the given id.
func (s *CatalogStore) GetByID(id int64) (domain.Movie, bool) {
	s.mu.RLock()
	e, ok := s.movies[id]
	s.mu.RUnlock()
	if !ok {
		return domain.Movie{}, false
	}
	e.mu.Lock()
	m := e.movie
	e.mu.Unlock()
	return m, true
}

// UpdateRating records userID's rating for movieID and recomputes the movie's
// visible rating as the mean of all ledger entries. A later submission from
// the same user overwrites that user's previous one. Returns false when the
// movie id is unknown; that is a silent no-op for callers, not an error.
func (s *CatalogStore) UpdateRating(movieID, userID int64, rating float64) bool {
	s.mu.RLock()
	e, ok := s.movies[movieID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ratings[userID] = rating
	var sum float64
	for _, r := range e.ratings {
		sum += r
	}
	e.movie.Rating = sum / float64(len(e.ratings))
	return true
}

// Trending returns up to limit movies sorted by rating descending, optionally
// filtered by case-insensitive genre equality. Ties are broken by ascending
// movie id so repeated calls return the same order.
func (s *CatalogStore) Trending(limit int, genre string) []domain.Movie {
	if limit < 0 {
		limit = 0
	}
	out := s.snapshot(genre)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecommendForUser returns up to recommendLimit movies matching preferredGenre
// (all movies when empty), sorted by rating descending. There is no
// personalization beyond the genre filter.
func (s *CatalogStore) RecommendForUser(preferredGenre string) []domain.Movie {
	out := s.snapshot(preferredGenre)
	if len(out) > recommendLimit {
		out = out[:recommendLimit]
	}
	return out
}

// snapshot copies the matching movies and sorts them by rating descending,
// id ascending.
func (s *CatalogStore) snapshot(genre string) []domain.Movie {
	s.mu.RLock()
	entries := make([]*movieEntry, 0, len(s.movies))
	for _, e := range s.movies {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]domain.Movie, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		m := e.movie
		e.mu.Unlock()
		if genre == "" || strings.EqualFold(m.Genre, genre) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	return out
}
