package room

import (
	"context"
	"errors"
	"fmt"

	roomRepo "studyhub/database/repository/room"
	"studyhub/models"
	"studyhub/services/notification"
	"studyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrRoomNotFound signals that no room exists for the given ID.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomFull signals that the room is at capacity.
	ErrRoomFull = errors.New("room is full")
	// ErrAlreadyMember signals a duplicate join.
	ErrAlreadyMember = errors.New("already a member of this room")
	// ErrNotOwner signals an operation reserved for the room owner.
	ErrNotOwner = errors.New("only the room owner may do this")
)

// DefaultCapacity applies when the creator does not choose one.
const DefaultCapacity = 20

type RoomService interface {
	CreateRoom(ownerID string, req models.CreateRoomRequest) (*models.StudyRoom, error)
	GetRoom(id string) (*models.StudyRoom, error)
	ListRooms() ([]models.StudyRoom, error)
	JoinRoom(roomID, userID string) (*models.StudyRoom, error)
	LeaveRoom(roomID, userID string) error
	DeleteRoom(roomID, requesterID string) error
}

// DefaultRoomService is the production implementation.
type DefaultRoomService struct {
	Repo     roomRepo.RoomRepository
	Notifier notification.NotificationService
}

func (s *DefaultRoomService) CreateRoom(ownerID string, req models.CreateRoomRequest) (*models.StudyRoom, error) {
	capacity := req.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	room := &models.StudyRoom{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Subject:     req.Subject,
		Description: req.Description,
		OwnerID:     ownerID,
		Capacity:    capacity,
		Members:     []string{ownerID},
	}
	if err := s.Repo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultRoomService) GetRoom(id string) (*models.StudyRoom, error) {
	room, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *DefaultRoomService) ListRooms() ([]models.StudyRoom, error) {
	return s.Repo.GetAll()
}

func (s *DefaultRoomService) JoinRoom(roomID, userID string) (*models.StudyRoom, error) {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	for _, m := range room.Members {
		if m == userID {
			return nil, ErrAlreadyMember
		}
	}
	if len(room.Members) >= room.Capacity {
		return nil, ErrRoomFull
	}

	if err := s.Repo.AddMember(roomID, userID); err != nil {
		return nil, err
	}
	room.Members = append(room.Members, userID)

	if s.Notifier != nil && room.OwnerID != userID {
		err := s.Notifier.Notify(context.Background(), room.OwnerID, "room_join",
			"New member in "+room.Name,
			fmt.Sprintf("Someone joined your study room %q.", room.Name),
			map[string]string{"roomId": room.ID})
		if err != nil {
			utils.GetLogger().Warn("JoinRoom: failed to notify owner", zap.Error(err))
		}
	}
	return room, nil
}

func (s *DefaultRoomService) LeaveRoom(roomID, userID string) error {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return err
	}
	return s.Repo.RemoveMember(room.ID, userID)
}

func (s *DefaultRoomService) DeleteRoom(roomID, requesterID string) error {
	room, err := s.GetRoom(roomID)
	if err != nil {
		return err
	}
	if room.OwnerID != requesterID {
		return ErrNotOwner
	}
	return s.Repo.Delete(roomID)
}
