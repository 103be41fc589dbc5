package childRepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vaxbook/database"
	"vaxbook/models"
	"vaxbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ChildRepository defines methods for child profile access.
type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) error
	// ListByParent returns the parent's children in creation order.
	ListByParent(ctx context.Context, parentID string) ([]models.Child, error)
	// GetByID returns database.ErrNotFound when no child matches.
	GetByID(ctx context.Context, id string) (*models.Child, error)
}

// MemoryChildRepo keeps child profiles in process memory.
type MemoryChildRepo struct {
	mu       sync.RWMutex
	byID     map[string]models.Child
	byParent map[string][]string
}

func NewMemoryChildRepo() ChildRepository {
	return &MemoryChildRepo{
		byID:     make(map[string]models.Child),
		byParent: make(map[string][]string),
	}
}

func (r *MemoryChildRepo) Create(_ context.Context, child *models.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[child.ID]; exists {
		return database.ErrDuplicate
	}
	r.byID[child.ID] = *child
	r.byParent[child.ParentID] = append(r.byParent[child.ParentID], child.ID)
	return nil
}

func (r *MemoryChildRepo) ListByParent(_ context.Context, parentID string) ([]models.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byParent[parentID]
	out := make([]models.Child, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryChildRepo) GetByID(_ context.Context, id string) (*models.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &c, nil
}

// MongoChildRepo implements ChildRepository using MongoDB.
type MongoChildRepo struct {
	coll *mongo.Collection
}

// NewMongoChildRepo creates a ChildRepository backed by the "children" collection.
func NewMongoChildRepo(db *mongo.Database) ChildRepository {
	repo := &MongoChildRepo{coll: db.Collection("children")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "parentId", Value: 1}}})
	if err != nil {
		utils.GetLogger().Warn("failed to create child indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoChildRepo) Create(ctx context.Context, child *models.Child) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, child); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create child: %w", err)
	}
	return nil
}

func (r *MongoChildRepo) ListByParent(ctx context.Context, parentID string) ([]models.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"parentId": parentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Child{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode children: %w", err)
	}
	return out, nil
}

func (r *MongoChildRepo) GetByID(ctx context.Context, id string) (*models.Child, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Child
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch child %s: %w", id, err)
	}
	return &c, nil
}
