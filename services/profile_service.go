package services

import (
	"chat-vault/repositories"
)

type IProfileService interface {
	SaveProfile(userID, displayName string) (repositories.User, error)
	GetProfile(userID string) (repositories.User, error)
}

// ProfileService maintains the display names typing signals are shown with.
// Identity itself is owned by the token issuer.
type ProfileService struct {
	userRepository repositories.IUserRepository
}

func NewProfileService(repo repositories.IUserRepository) IProfileService {
	return &ProfileService{userRepository: repo}
}

func (s *ProfileService) SaveProfile(userID, displayName string) (repositories.User, error) {
	return s.userRepository.SaveProfile(userID, displayName)
}

func (s *ProfileService) GetProfile(userID string) (repositories.User, error) {
	return s.userRepository.GetUser(userID)
}
