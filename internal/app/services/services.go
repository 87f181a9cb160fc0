package services

import (
	"github.com/rs/zerolog"

	"github.com/arjunrv/mentorhub/internal/app/repositories"
	"github.com/arjunrv/mentorhub/internal/pkg/auth"
	"github.com/arjunrv/mentorhub/internal/pkg/realtime"
)

// Services holds all service instances
type Services struct {
	Auth       AuthService
	Profile    ProfileService
	Mentorship MentorshipService
	History    HistoryService
	Message    MessageService
	Resource   ResourceService
}

// NewServices wires all services onto the repositories, the JWT service and
// the realtime notifier.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	notifier realtime.Notifier,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, jwtService, logger),
		Profile:    NewProfileService(repos.User, logger),
		Mentorship: NewMentorshipService(repos.Mentorship, repos.User, notifier, logger),
		History:    NewHistoryService(repos.History, repos.User, logger),
		Message:    NewMessageService(repos.Message, repos.User, notifier, logger),
		Resource:   NewResourceService(repos.Resource, logger),
	}
}
