package roomRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository defines study-room data access.
type RoomRepository interface {
	GetByID(id string) (*models.StudyRoom, error)
	GetAll() ([]models.StudyRoom, error)
	Create(room *models.StudyRoom) error
	Update(room *models.StudyRoom) error
	Delete(id string) error
	// AddMember appends a user to the member list if not already present.
	AddMember(roomID, userID string) error
	// RemoveMember pulls a user from the member list.
	RemoveMember(roomID, userID string) error
}

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

func NewMongoRoomRepo() RoomRepository {
	return &MongoRoomRepo{coll: database.Collection("rooms")}
}

func (r *MongoRoomRepo) GetByID(id string) (*models.StudyRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var room models.StudyRoom
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) GetAll() ([]models.StudyRoom, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.StudyRoom
	for cursor.Next(ctx) {
		var room models.StudyRoom
		if err := cursor.Decode(&room); err != nil {
			return nil, fmt.Errorf("failed to decode room: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) Create(room *models.StudyRoom) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) Update(room *models.StudyRoom) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	room.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": room.ID}, bson.M{"$set": room})
	if err != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

func (r *MongoRoomRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}

func (r *MongoRoomRepo) AddMember(roomID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"members": userID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": roomID}, update)
	if err != nil {
		return fmt.Errorf("failed to add member to room %s: %w", roomID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", roomID)
	}
	return nil
}

func (r *MongoRoomRepo) RemoveMember(roomID, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"members": userID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": roomID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove member from room %s: %w", roomID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("room with id %s not found", roomID)
	}
	return nil
}
