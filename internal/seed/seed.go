// Package seed populates the in-memory store with the demo dataset loaded
// at every startup. The store is volatile, so the same records reappear on
// each restart.
package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinehive/cinehive/internal/app/models"
	"github.com/cinehive/cinehive/internal/app/repositories"
)

// Shared bcrypt hash of "password" for the demo accounts.
const demoPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// Load inserts the demo dataset into the given repositories. It is meant to
// run once against freshly created repositories.
func Load(repos *repositories.Repositories, logger zerolog.Logger) error {
	now := time.Now().UTC()

	for _, user := range seedUsers() {
		u := user
		if err := repos.UserRepository.Insert(&u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	for _, movie := range seedMovies() {
		m := movie
		if err := repos.MovieRepository.Insert(&m); err != nil {
			return fmt.Errorf("seed movie %s: %w", m.ID, err)
		}
	}

	for _, community := range seedCommunities() {
		c := community
		if err := repos.CommunityRepository.Insert(&c); err != nil {
			return fmt.Errorf("seed community %s: %w", c.ID, err)
		}
	}

	for _, post := range seedPosts(now) {
		p := post
		if err := repos.PostRepository.Insert(&p); err != nil {
			return fmt.Errorf("seed post %s: %w", p.ID, err)
		}
	}

	for _, comment := range seedComments(now) {
		c := comment
		if err := repos.CommentRepository.Insert(&c); err != nil {
			return fmt.Errorf("seed comment %s: %w", c.ID, err)
		}
	}

	for _, party := range seedWatchParties(now) {
		w := party
		if err := repos.WatchPartyRepository.Insert(&w); err != nil {
			return fmt.Errorf("seed watch party %s: %w", w.ID, err)
		}
	}

	repos.QuizRepository.SetQuestions(seedQuizQuestions())

	logger.Info().
		Int("users", repos.UserRepository.Count()).
		Int("movies", len(repos.MovieRepository.List())).
		Int("communities", len(repos.CommunityRepository.List())).
		Int("watchParties", len(repos.WatchPartyRepository.List())).
		Msg("Seed data loaded")

	return nil
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:                "1",
			Username:          "moviebuff123",
			Email:             "john@example.com",
			Password:          demoPasswordHash,
			Avatar:            "https://api.dicebear.com/7.x/avataaars/svg?seed=John",
			FavoriteGenres:    []string{"Action", "Sci-Fi"},
			JoinedCommunities: []string{"marvel-movies", "scifi-classics"},
		},
		{
			ID:                "2",
			Username:          "cinephile_sarah",
			Email:             "sarah@example.com",
			Password:          demoPasswordHash,
			Avatar:            "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			FavoriteGenres:    []string{"Drama", "Horror"},
			JoinedCommunities: []string{"horror-fans", "indie-films"},
		},
	}
}

func seedMovies() []models.Movie {
	return []models.Movie{
		{
			ID:                 "1",
			Title:              "The Avengers",
			Year:               2012,
			Genre:              []string{"Action", "Adventure", "Sci-Fi"},
			Director:           "Joss Whedon",
			Rating:             8.0,
			Poster:             "https://m.media-amazon.com/images/M/MV5BNDYxNjQyMjAtNTdiOS00NGYwLWFmNTAtNThmYjU5ZGI2YTI1XkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_SX300.jpg",
			Description:        "Earth's mightiest heroes must come together and learn to fight as a team.",
			StreamingPlatforms: []string{"Disney+", "Amazon Prime"},
		},
		{
			ID:                 "2",
			Title:              "Inception",
			Year:               2010,
			Genre:              []string{"Action", "Sci-Fi", "Thriller"},
			Director:           "Christopher Nolan",
			Rating:             8.8,
			Poster:             "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX300.jpg",
			Description:        "A thief who steals corporate secrets through dream-sharing technology.",
			StreamingPlatforms: []string{"Netflix", "HBO Max"},
		},
		{
			ID:                 "3",
			Title:              "The Shining",
			Year:               1980,
			Genre:              []string{"Horror", "Drama"},
			Director:           "Stanley Kubrick",
			Rating:             8.4,
			Poster:             "https://m.media-amazon.com/images/M/MV5BZWFlYmY2MGEtZjVkYS00YzU4LTg0YjQtYzY1ZGE3NTA5NGQxXkEyXkFqcGdeQXVyMTQxNzMzNDI@._V1_SX300.jpg",
			Description:        "A family heads to an isolated hotel for the winter where a sinister presence influences the father.",
			StreamingPlatforms: []string{"Amazon Prime", "Hulu"},
		},
		{
			ID:                 "4",
			Title:              "Blade Runner 2049",
			Year:               2017,
			Genre:              []string{"Sci-Fi", "Drama"},
			Director:           "Denis Villeneuve",
			Rating:             8.0,
			Poster:             "https://m.media-amazon.com/images/M/MV5BNzA1Njg4NzYxOV5BMl5BanBnXkFtZTgwODk5NjU3MzI@._V1_SX300.jpg",
			Description:        "A young blade runner discovers a secret that leads him to track down former blade runner Rick Deckard.",
			StreamingPlatforms: []string{"Netflix", "Amazon Prime"},
		},
	}
}

func seedCommunities() []models.Community {
	return []models.Community{
		{
			ID:            "marvel-movies",
			Name:          "Marvel Movies",
			Description:   "Discuss all things Marvel Cinematic Universe",
			MemberCount:   15420,
			CreatedBy:     "1",
			RelatedMovies: []string{"1"},
			Banner:        "https://images.unsplash.com/photo-1626814026160-2237a95fc5a0?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		},
		{
			ID:            "scifi-classics",
			Name:          "Sci-Fi Classics",
			Description:   "For lovers of classic and modern science fiction films",
			MemberCount:   8930,
			CreatedBy:     "2",
			RelatedMovies: []string{"2", "4"},
			Banner:        "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		},
		{
			ID:            "horror-fans",
			Name:          "Horror Fans",
			Description:   "Share your favorite scares and horror movie discussions",
			MemberCount:   12750,
			CreatedBy:     "2",
			RelatedMovies: []string{"3"},
			Banner:        "https://images.unsplash.com/photo-1520637836862-4d197d17c7a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		},
	}
}

func seedPosts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:             "1",
			Title:          "Just rewatched Avengers for the 10th time!",
			Content:        "Still gives me chills every time. The way they brought all the heroes together was masterful.",
			Author:         "1",
			AuthorUsername: "moviebuff123",
			CommunityID:    "marvel-movies",
			CreatedAt:      now.Add(-24 * time.Hour),
			Upvotes:        45,
			Downvotes:      2,
			CommentCount:   8,
		},
		{
			ID:             "2",
			Title:          "Inception vs Blade Runner 2049 - Which has better cinematography?",
			Content:        "Both films are visual masterpieces, but I lean towards Blade Runner 2049 for its stunning use of color and lighting.",
			Author:         "2",
			AuthorUsername: "cinephile_sarah",
			CommunityID:    "scifi-classics",
			CreatedAt:      now.Add(-48 * time.Hour),
			Upvotes:        23,
			Downvotes:      1,
			CommentCount:   12,
		},
		{
			ID:             "3",
			Title:          "The Shining: Kubrick's Hidden Details",
			Content:        "Found some amazing hidden details in my latest rewatch. The carpet patterns, the impossible window - everything has meaning!",
			Author:         "2",
			AuthorUsername: "cinephile_sarah",
			CommunityID:    "horror-fans",
			CreatedAt:      now.Add(-72 * time.Hour),
			Upvotes:        67,
			Downvotes:      3,
			CommentCount:   15,
		},
	}
}

func seedComments(now time.Time) []models.Comment {
	return []models.Comment{
		{
			ID:             "1",
			PostID:         "1",
			Content:        "Totally agree! The character development throughout the MCU leading up to this moment was perfect.",
			Author:         "2",
			AuthorUsername: "cinephile_sarah",
			CreatedAt:      now.Add(-23 * time.Hour),
			Upvotes:        12,
			Downvotes:      0,
		},
		{
			ID:             "2",
			PostID:         "2",
			Content:        "I have to go with Inception. The rotating hallway scene alone is cinematographic genius.",
			Author:         "1",
			AuthorUsername: "moviebuff123",
			CreatedAt:      now.Add(-46 * time.Hour),
			Upvotes:        8,
			Downvotes:      2,
		},
	}
}

func seedWatchParties(now time.Time) []models.WatchParty {
	return []models.WatchParty{
		{
			ID:              "1",
			Title:           "Marvel Movie Marathon",
			MovieID:         "1",
			HostID:          "1",
			HostUsername:    "moviebuff123",
			ScheduledFor:    now.Add(24 * time.Hour).Format(time.RFC3339),
			Platform:        "Disney+",
			Participants:    []string{"1", "2"},
			MaxParticipants: 10,
			Description:     "Let's watch the Avengers together and chat about our favorite moments!",
		},
		{
			ID:              "2",
			Title:           "Horror Night: The Shining",
			MovieID:         "3",
			HostID:          "2",
			HostUsername:    "cinephile_sarah",
			ScheduledFor:    now.Add(48 * time.Hour).Format(time.RFC3339),
			Platform:        "Amazon Prime",
			Participants:    []string{"2"},
			MaxParticipants: 6,
			Description:     "Scary movie night! Come prepared for some spine-chilling discussions.",
		},
	}
}

func seedQuizQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:       1,
			Question: "What's your preferred movie genre?",
			Options: []models.QuizOption{
				{Value: "action", Label: "Action"},
				{Value: "comedy", Label: "Comedy"},
				{Value: "drama", Label: "Drama"},
				{Value: "horror", Label: "Horror"},
				{Value: "scifi", Label: "Sci-Fi"},
				{Value: "romance", Label: "Romance"},
			},
		},
		{
			ID:       2,
			Question: "What mood are you in?",
			Options: []models.QuizOption{
				{Value: "adventurous", Label: "Adventurous"},
				{Value: "thoughtful", Label: "Thoughtful"},
				{Value: "scared", Label: "Want to be scared"},
				{Value: "laugh", Label: "Want to laugh"},
				{Value: "cry", Label: "Ready for emotions"},
			},
		},
		{
			ID:       3,
			Question: "How much time do you have?",
			Options: []models.QuizOption{
				{Value: "short", Label: "Less than 90 minutes"},
				{Value: "medium", Label: "90-120 minutes"},
				{Value: "long", Label: "Over 2 hours"},
				{Value: "any", Label: "No preference"},
			},
		},
	}
}
