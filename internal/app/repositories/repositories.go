package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User       *UserRepository
	Mentorship *MentorshipRepository
	History    *HistoryRepository
	Message    *MessageRepository
	Resource   *ResourceRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Mentorship: NewMentorshipRepository(db),
		History:    NewHistoryRepository(db),
		Message:    NewMessageRepository(db),
		Resource:   NewResourceRepository(db),
	}
}
