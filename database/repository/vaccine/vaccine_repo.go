package vaccineRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vaxbook/database"
	"vaxbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VaccineRepository defines methods for vaccine catalogue access.
type VaccineRepository interface {
	// List returns the catalogue ordered by name.
	List(ctx context.Context) ([]models.Vaccine, error)
	// GetByID returns database.ErrNotFound when no vaccine matches.
	GetByID(ctx context.Context, id string) (*models.Vaccine, error)
	// Upsert inserts or replaces a vaccine by id.
	Upsert(ctx context.Context, v *models.Vaccine) error
}

// MemoryVaccineRepo keeps the catalogue in process memory.
type MemoryVaccineRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Vaccine
}

func NewMemoryVaccineRepo() VaccineRepository {
	return &MemoryVaccineRepo{byID: make(map[string]models.Vaccine)}
}

func (r *MemoryVaccineRepo) List(_ context.Context) ([]models.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Vaccine, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryVaccineRepo) GetByID(_ context.Context, id string) (*models.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &v, nil
}

func (r *MemoryVaccineRepo) Upsert(_ context.Context, v *models.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[v.ID] = *v
	return nil
}

// MongoVaccineRepo implements VaccineRepository using MongoDB.
type MongoVaccineRepo struct {
	coll *mongo.Collection
}

// NewMongoVaccineRepo creates a VaccineRepository backed by the "vaccines" collection.
func NewMongoVaccineRepo(db *mongo.Database) VaccineRepository {
	return &MongoVaccineRepo{coll: db.Collection("vaccines")}
}

func (r *MongoVaccineRepo) List(ctx context.Context) ([]models.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccines: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Vaccine{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode vaccines: %w", err)
	}
	return out, nil
}

func (r *MongoVaccineRepo) GetByID(ctx context.Context, id string) (*models.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var v models.Vaccine
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch vaccine %s: %w", id, err)
	}
	return &v, nil
}

func (r *MongoVaccineRepo) Upsert(ctx context.Context, v *models.Vaccine) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": v.ID}, v, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert vaccine %s: %w", v.ID, err)
	}
	return nil
}
