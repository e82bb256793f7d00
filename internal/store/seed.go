package store

import (
	"time"

	"github.com/rajkundalia/movie-grpc-sample/internal/domain"
)

// SeedCatalog loads the sample movie fixtures used by the demo deployment.
func SeedCatalog(s *CatalogStore) {
	movies := []domain.Movie{
		{ID: 1, Title: "The Shawshank Redemption", Description: "Two imprisoned men bond over a number of years", Rating: 9.3, Genre: "Drama", Year: 1994, Director: "Frank Darabont"},
		{ID: 2, Title: "The Godfather", Description: "The aging patriarch of an organized crime dynasty transfers control", Rating: 9.2, Genre: "Crime", Year: 1972, Director: "Francis Ford Coppola"},
		{ID: 3, Title: "The Dark Knight", Description: "The menace known as the Joker wreaks havoc on Gotham City", Rating: 9.0, Genre: "Action", Year: 2008, Director: "Christopher Nolan"},
		{ID: 4, Title: "Inception", Description: "A thief who steals corporate secrets through dream-sharing technology", Rating: 8.8, Genre: "Sci-Fi", Year: 2010, Director: "Christopher Nolan"},
		{ID: 5, Title: "Pulp Fiction", Description: "The lives of two mob hitmen, a boxer, a gangster and his wife", Rating: 8.9, Genre: "Crime", Year: 1994, Director: "Quentin Tarantino"},
		{ID: 6, Title: "The Matrix", Description: "A computer hacker learns about the true nature of reality", Rating: 8.7, Genre: "Sci-Fi", Year: 1999, Director: "Lana Wachowski"},
		{ID: 7, Title: "Goodfellas", Description: "The story of Henry Hill and his life in the mob", Rating: 8.7, Genre: "Crime", Year: 1990, Director: "Martin Scorsese"},
		{ID: 8, Title: "Fight Club", Description: "An insomniac office worker and a devil-may-care soapmaker form an underground fight club", Rating: 8.8, Genre: "Drama", Year: 1999, Director: "David Fincher"},
		{ID: 9, Title: "Forrest Gump", Description: "The presidencies of Kennedy and Johnson, the Vietnam War, and Watergate through the eyes of Forrest Gump", Rating: 8.8, Genre: "Drama", Year: 1994, Director: "Robert Zemeckis"},
		{ID: 10, Title: "Interstellar", Description: "A team of explorers travel through a wormhole in space", Rating: 8.6, Genre: "Sci-Fi", Year: 2014, Director: "Christopher Nolan"},
	}
	for _, m := range movies {
		s.AddMovie(m)
	}
}

// SeedProfiles loads the sample users, activities, and preferences. Activities
// go through RecordActivity so the id counter advances exactly as it does in
// production traffic.
func SeedProfiles(s *ProfileStore) {
	users := []domain.UserProfile{
		{ID: 1, Username: "john_doe", Email: "john@example.com", FavoriteGenres: []string{"Action", "Sci-Fi"}, AccountAgeDays: 365, ActivityLevel: 8},
		{ID: 2, Username: "jane_smith", Email: "jane@example.com", FavoriteGenres: []string{"Drama", "Romance"}, AccountAgeDays: 180, ActivityLevel: 5},
		{ID: 3, Username: "bob_johnson", Email: "bob@example.com", FavoriteGenres: []string{"Comedy", "Action"}, AccountAgeDays: 90, ActivityLevel: 7},
	}
	for _, u := range users {
		s.AddUser(u)
	}

	now := time.Now().UnixMilli()
	s.RecordActivity(domain.UserActivity{UserID: 1, MovieID: 1, MovieTitle: "The Shawshank Redemption", Type: domain.ActivityWatch, Timestamp: now - 24*time.Hour.Milliseconds()})
	s.RecordActivity(domain.UserActivity{UserID: 1, MovieID: 3, MovieTitle: "The Dark Knight", Type: domain.ActivityRate, Timestamp: now - 12*time.Hour.Milliseconds()})
	s.RecordActivity(domain.UserActivity{UserID: 2, MovieID: 5, MovieTitle: "Pulp Fiction", Type: domain.ActivityBookmark, Timestamp: now - 48*time.Hour.Milliseconds()})

	s.UpsertPreference(1, domain.UserPreference{Key: "genre", Value: "Action", Weight: 0.8})
	s.UpsertPreference(1, domain.UserPreference{Key: "director", Value: "Christopher Nolan", Weight: 0.9})
	s.UpsertPreference(2, domain.UserPreference{Key: "genre", Value: "Drama", Weight: 0.7})
}
