package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/storage"
)

var ErrInvalidFile = errors.New("invalid file")

type FileService struct {
	fileRepo repository.FileRepository
	storage  storage.Storage
}

func NewFileService(fileRepo repository.FileRepository, storage storage.Storage) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		storage:  storage,
	}
}

// Upload stores the blob and creates its metadata row. Validation of
// type, size and content is the caller's job.
func (s *FileService) Upload(userID, ownerType, ownerID, fileType string, file multipart.File, header *multipart.FileHeader) (*model.File, error) {
	ext := filepath.Ext(header.Filename)
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	storagePath := filepath.Join("private", fileType+"s", filename)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	fileModel := &model.File{
		ID:           uuid.New().String(),
		UserID:       userID,
		OwnerType:    ownerType,
		OwnerID:      ownerID,
		Type:         fileType,
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		StoragePath:  storagePath,
		Public:       false,
		CreatedAt:    time.Now(),
	}

	err = s.fileRepo.Create(fileModel)
	if err != nil {
		// Orphaned blobs are worse than a failed upload
		delErr := s.storage.Delete(storagePath)
		if delErr != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", delErr, "path", storagePath)
		}
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	return fileModel, nil
}

// FileByType returns the newest file of the given type for an owner row.
func (s *FileService) FileByType(ownerType, ownerID, fileType string) (*model.File, error) {
	return s.fileRepo.FileByType(ownerType, ownerID, fileType)
}

func (s *FileService) Files(ownerType, ownerID string) ([]*model.File, error) {
	return s.fileRepo.Files(ownerType, ownerID)
}

// URL returns a presigned URL for the file when backed by S3, or the
// storage's plain URL otherwise.
func (s *FileService) URL(file *model.File) string {
	if file == nil {
		return ""
	}

	s3Storage, ok := s.storage.(*storage.S3Storage)
	if ok {
		url, err := s3Storage.PresignedURL(file.StoragePath, s3Storage.GetPresignExpiryPrivate())
		if err != nil {
			return s3Storage.PublicURL(file.StoragePath)
		}
		return url
	}

	return s.storage.URL(file.StoragePath)
}

// Delete removes a file from storage and database.
func (s *FileService) Delete(fileID string) error {
	file, err := s.fileRepo.ByID(fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	// Best effort, the physical object may already be gone
	delErr := s.storage.Delete(file.StoragePath)
	if delErr != nil {
		slog.Error("failed to delete file from storage", "error", delErr, "path", file.StoragePath)
	}

	err = s.fileRepo.Delete(fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

// DeleteOwnerFiles removes every file attached to an owner row. Called
// before deleting the owner so the DB cascade never strands blobs.
func (s *FileService) DeleteOwnerFiles(ownerType, ownerID string) error {
	files, err := s.fileRepo.Files(ownerType, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get owner files: %w", err)
	}

	for _, file := range files {
		err = s.Delete(file.ID)
		if err != nil && !errors.Is(err, repository.ErrFileNotFound) {
			return err
		}
	}

	return nil
}

func (s *FileService) AllUserFiles(userID string) ([]*model.File, error) {
	return s.fileRepo.AllUserFiles(userID)
}

// DeleteAllUserFilesFromStorage purges a user's blobs ahead of account
// deletion; the metadata rows go with the DB cascade.
func (s *FileService) DeleteAllUserFilesFromStorage(userID string) error {
	files, err := s.fileRepo.AllUserFiles(userID)
	if err != nil {
		return fmt.Errorf("failed to get user files: %w", err)
	}

	for _, file := range files {
		err = s.storage.Delete(file.StoragePath)
		if err != nil {
			slog.Warn("failed to delete file from storage", "storage_path", file.StoragePath, "error", err)
		}
	}

	return nil
}
