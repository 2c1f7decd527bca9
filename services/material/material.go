package material

import (
	"errors"

	materialRepo "studyhub/database/repository/material"
	"studyhub/models"

	"github.com/google/uuid"
)

var (
	// ErrMaterialNotFound signals that no material exists for the given ID.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrNotUploader signals a delete by someone other than the uploader.
	ErrNotUploader = errors.New("only the uploader may remove this material")
)

type MaterialService interface {
	AddMaterial(uploaderID string, req models.CreateMaterialRequest) (*models.Material, error)
	GetMaterial(id string) (*models.Material, error)
	ListBySubject(subject string) ([]models.Material, error)
	ListByRoom(roomID string) ([]models.Material, error)
	RemoveMaterial(id, requesterID string) error
}

// DefaultMaterialService is the production implementation.
type DefaultMaterialService struct {
	Repo materialRepo.MaterialRepository
}

func (s *DefaultMaterialService) AddMaterial(uploaderID string, req models.CreateMaterialRequest) (*models.Material, error) {
	mat := &models.Material{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Subject:    req.Subject,
		Kind:       req.Kind,
		URL:        req.URL,
		UploaderID: uploaderID,
		RoomID:     req.RoomID,
	}
	if err := s.Repo.Create(mat); err != nil {
		return nil, err
	}
	return mat, nil
}

func (s *DefaultMaterialService) GetMaterial(id string) (*models.Material, error) {
	mat, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mat == nil {
		return nil, ErrMaterialNotFound
	}
	return mat, nil
}

func (s *DefaultMaterialService) ListBySubject(subject string) ([]models.Material, error) {
	return s.Repo.GetBySubject(subject)
}

func (s *DefaultMaterialService) ListByRoom(roomID string) ([]models.Material, error) {
	return s.Repo.GetByRoom(roomID)
}

func (s *DefaultMaterialService) RemoveMaterial(id, requesterID string) error {
	mat, err := s.GetMaterial(id)
	if err != nil {
		return err
	}
	if mat.UploaderID != requesterID {
		return ErrNotUploader
	}
	return s.Repo.Delete(id)
}
