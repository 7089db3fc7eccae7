// Package repositories implements the in-memory data store. Each entity type
// gets its own repository owning an append-only ordered collection plus an
// id index, guarded by a per-collection mutex so every read-modify-write
// sequence (member counts, comment counts, participant lists) stays atomic
// under concurrent requests. Nothing is persisted past process lifetime.
package repositories

// Repositories is a container for all entity repositories, constructed once
// at startup and injected into services. Repositories are never reached as
// ambient global state.
type Repositories struct {
	UserRepository       *UserRepository
	MovieRepository      *MovieRepository
	CommunityRepository  *CommunityRepository
	PostRepository       *PostRepository
	CommentRepository    *CommentRepository
	WatchPartyRepository *WatchPartyRepository
	QuizRepository       *QuizRepository
}

// NewRepositories creates empty repositories for every entity type
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(),
		MovieRepository:      NewMovieRepository(),
		CommunityRepository:  NewCommunityRepository(),
		PostRepository:       NewPostRepository(),
		CommentRepository:    NewCommentRepository(),
		WatchPartyRepository: NewWatchPartyRepository(),
		QuizRepository:       NewQuizRepository(),
	}
}
