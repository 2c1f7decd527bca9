package materialRepo

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

// MaterialRepository defines study-material catalog access.
type MaterialRepository interface {
	GetByID(id string) (*models.Material, error)
	// GetBySubject lists materials for a subject, newest first.
	GetBySubject(subject string) ([]models.Material, error)
	// GetByRoom lists materials attached to a room.
	GetByRoom(roomID string) ([]models.Material, error)
	Create(mat *models.Material) error
	Delete(id string) error
}

// MongoMaterialRepo implements MaterialRepository using MongoDB.
type MongoMaterialRepo struct {
	coll *mongo.Collection
}

func NewMongoMaterialRepo() MaterialRepository {
	return &MongoMaterialRepo{coll: database.Collection("materials")}
}

func (r *MongoMaterialRepo) GetByID(id string) (*models.Material, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mat models.Material
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch material with id %s: %w", id, err)
	}
	return &mat, nil
}

func (r *MongoMaterialRepo) find(filter bson.M) ([]models.Material, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve materials: %w", err)
	}
	defer cursor.Close(ctx)

	var mats []models.Material
	for cursor.Next(ctx) {
		var m models.Material
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode material: %w", err)
		}
		mats = append(mats, m)
	}
	return mats, nil
}

func (r *MongoMaterialRepo) GetBySubject(subject string) ([]models.Material, error) {
	return r.find(bson.M{"subject": subject})
}

func (r *MongoMaterialRepo) GetByRoom(roomID string) ([]models.Material, error) {
	return r.find(bson.M{"roomId": roomID})
}

func (r *MongoMaterialRepo) Create(mat *models.Material) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	mat.CreatedAt = now
	mat.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, mat); err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}
	return nil
}

func (r *MongoMaterialRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete material with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("material with id %s not found", id)
	}
	return nil
}
