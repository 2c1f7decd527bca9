package room

import (
	"fmt"
	"testing"

	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoomRepo is an in-memory RoomRepository.
type fakeRoomRepo struct {
	rooms map[string]*models.StudyRoom
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*models.StudyRoom)}
}

func (r *fakeRoomRepo) GetByID(id string) (*models.StudyRoom, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *room
	cp.Members = append([]string(nil), room.Members...)
	return &cp, nil
}

func (r *fakeRoomRepo) GetAll() ([]models.StudyRoom, error) {
	out := make([]models.StudyRoom, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out, nil
}

func (r *fakeRoomRepo) Create(room *models.StudyRoom) error {
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) Update(room *models.StudyRoom) error {
	if _, ok := r.rooms[room.ID]; !ok {
		return fmt.Errorf("room %s not found", room.ID)
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) Delete(id string) error {
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) AddMember(roomID, userID string) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return fmt.Errorf("room %s not found", roomID)
	}
	for _, m := range room.Members {
		if m == userID {
			return nil
		}
	}
	room.Members = append(room.Members, userID)
	return nil
}

func (r *fakeRoomRepo) RemoveMember(roomID, userID string) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return fmt.Errorf("room %s not found", roomID)
	}
	for i, m := range room.Members {
		if m == userID {
			room.Members = append(room.Members[:i], room.Members[i+1:]...)
			return nil
		}
	}
	return nil
}

func newRoomService() (*DefaultRoomService, *fakeRoomRepo) {
	repo := newFakeRoomRepo()
	return &DefaultRoomService{Repo: repo}, repo
}

func TestCreateRoom_DefaultsCapacityAndOwnerMembership(t *testing.T) {
	svc, _ := newRoomService()

	created, err := svc.CreateRoom("owner-1", models.CreateRoomRequest{
		Name:    "Calculus crew",
		Subject: "math",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, created.Capacity)
	assert.Equal(t, []string{"owner-1"}, created.Members)
	assert.Equal(t, "owner-1", created.OwnerID)
}

func TestJoinRoom(t *testing.T) {
	svc, _ := newRoomService()
	created, err := svc.CreateRoom("owner-1", models.CreateRoomRequest{
		Name: "Calculus crew", Subject: "math", Capacity: 2,
	})
	require.NoError(t, err)

	joined, err := svc.JoinRoom(created.ID, "user-2")
	require.NoError(t, err)
	assert.Contains(t, joined.Members, "user-2")

	// Duplicate joins are rejected.
	_, err = svc.JoinRoom(created.ID, "user-2")
	assert.ErrorIs(t, err, ErrAlreadyMember)

	// Room is now at capacity.
	_, err = svc.JoinRoom(created.ID, "user-3")
	assert.ErrorIs(t, err, ErrRoomFull)

	_, err = svc.JoinRoom("missing-room", "user-4")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestLeaveRoom(t *testing.T) {
	svc, repo := newRoomService()
	created, err := svc.CreateRoom("owner-1", models.CreateRoomRequest{
		Name: "Calculus crew", Subject: "math",
	})
	require.NoError(t, err)

	_, err = svc.JoinRoom(created.ID, "user-2")
	require.NoError(t, err)

	require.NoError(t, svc.LeaveRoom(created.ID, "user-2"))
	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.Members, "user-2")
}

func TestDeleteRoom_OwnerOnly(t *testing.T) {
	svc, repo := newRoomService()
	created, err := svc.CreateRoom("owner-1", models.CreateRoomRequest{
		Name: "Calculus crew", Subject: "math",
	})
	require.NoError(t, err)

	err = svc.DeleteRoom(created.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.DeleteRoom(created.ID, "owner-1"))
	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
