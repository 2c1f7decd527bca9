package institutionRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studyhub/database"
	"studyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InstitutionRepository resolves institutions by name.
type InstitutionRepository interface {
	// GetOrCreate returns the institution with the given name, creating it
	// when absent. Names are matched case-insensitively.
	GetOrCreate(name string) (*models.Institution, error)
	// GetByID retrieves an institution by ID.
	GetByID(id string) (*models.Institution, error)
}

// MongoInstitutionRepo implements InstitutionRepository using MongoDB.
type MongoInstitutionRepo struct {
	coll *mongo.Collection
}

func NewMongoInstitutionRepo() InstitutionRepository {
	coll := database.Collection("institutions")
	repo := &MongoInstitutionRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "normalizedName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create institution index: %v\n", err)
	}
	return repo
}

type institutionDoc struct {
	ID             string    `bson:"id"`
	Name           string    `bson:"name"`
	NormalizedName string    `bson:"normalizedName"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func (r *MongoInstitutionRepo) GetOrCreate(name string) (*models.Institution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, fmt.Errorf("institution name is empty")
	}

	doc := institutionDoc{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(name),
		NormalizedName: normalized,
		CreatedAt:      time.Now(),
	}

	// Upsert on the normalized name so concurrent resolves converge on one record.
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{"$setOnInsert": doc}

	var out institutionDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"normalizedName": normalized}, update, opts).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve institution %q: %w", name, err)
	}
	return &models.Institution{ID: out.ID, Name: out.Name, CreatedAt: out.CreatedAt}, nil
}

func (r *MongoInstitutionRepo) GetByID(id string) (*models.Institution, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out institutionDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to fetch institution with id %s: %w", id, err)
	}
	return &models.Institution{ID: out.ID, Name: out.Name, CreatedAt: out.CreatedAt}, nil
}
