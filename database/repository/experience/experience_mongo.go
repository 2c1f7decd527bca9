package experienceRepo

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

// ExperienceRepository defines access to per-user XP records.
type ExperienceRepository interface {
	// GetByUserID retrieves the record for a user, or (nil, nil) when absent.
	GetByUserID(userID string) (*models.ExperienceRecord, error)
	// Create inserts a new experience record.
	Create(rec *models.ExperienceRecord) error
	// Update overwrites an existing record.
	Update(rec *models.ExperienceRecord) error
}

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.Collection("experience")
	repo := &MongoExperienceRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create experience index: %v\n", err)
	}
	return repo
}

func (r *MongoExperienceRepo) GetByUserID(userID string) (*models.ExperienceRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rec models.ExperienceRecord
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch experience for user %s: %w", userID, err)
	}
	return &rec, nil
}

func (r *MongoExperienceRepo) Create(rec *models.ExperienceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to create experience record: %w", err)
	}
	return nil
}

func (r *MongoExperienceRepo) Update(rec *models.ExperienceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"userId": rec.UserID}, bson.M{"$set": rec})
	if err != nil {
		return fmt.Errorf("failed to update experience for user %s: %w", rec.UserID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("experience record for user %s not found", rec.UserID)
	}
	return nil
}
