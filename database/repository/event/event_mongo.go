package eventRepo

import (
	"context"
	"fmt"
	"time"

	"studyhub/database"
	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository defines calendar-event data access.
type EventRepository interface {
	GetByID(id string) (*models.CalendarEvent, error)
	// GetByUser lists a user's events ordered by start time.
	GetByUser(userID string) ([]models.CalendarEvent, error)
	Create(event *models.CalendarEvent) error
	Update(event *models.CalendarEvent) error
	Delete(id string) error
}

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

func NewMongoEventRepo() EventRepository {
	return &MongoEventRepo{coll: database.Collection("events")}
}

func (r *MongoEventRepo) GetByID(id string) (*models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var ev models.CalendarEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &ev, nil
}

func (r *MongoEventRepo) GetByUser(userID string) ([]models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	for cursor.Next(ctx) {
		var ev models.CalendarEvent
		if err := cursor.Decode(&ev); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (r *MongoEventRepo) Create(event *models.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *MongoEventRepo) Update(event *models.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": event.ID}, bson.M{"$set": event})
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}
