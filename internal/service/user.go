package service

import (
	"fmt"
	"log/slog"

	"github.com/skilltrackhq/skilltrack/internal/repository"
)

type UserService struct {
	userRepository repository.UserRepository
	fileService    *FileService
}

func NewUserService(userRepository repository.UserRepository, fileService *FileService) *UserService {
	return &UserService{
		userRepository: userRepository,
		fileService:    fileService,
	}
}

// DeleteAccount removes a user and everything they own. Blobs are
// purged from storage first; the DB cascade then removes profiles,
// skills, goals, progress entries, notes and file metadata.
func (s *UserService) DeleteAccount(userID string) error {
	_, err := s.userRepository.ByID(userID)
	if err != nil {
		return err
	}

	err = s.fileService.DeleteAllUserFilesFromStorage(userID)
	if err != nil {
		// Orphaned blobs are better than a failed deletion
		slog.Warn("failed to delete user files from storage", "user_id", userID, "error", err)
	}

	err = s.userRepository.Delete(userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
