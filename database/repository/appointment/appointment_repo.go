package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"vaxbook/database"
	"vaxbook/models"
	"vaxbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// AppointmentRepository defines methods for appointment access.
type AppointmentRepository interface {
	Create(ctx context.Context, rec *models.AppointmentRecord) error
	// ListByUser returns the user's appointments, newest date first.
	ListByUser(ctx context.Context, userID string) ([]models.AppointmentRecord, error)
	// GetByID returns database.ErrNotFound when no appointment matches.
	GetByID(ctx context.Context, id string) (*models.AppointmentRecord, error)
	// Transition moves an appointment from one status to another atomically.
	// It returns database.ErrStatusConflict when the current status is not from.
	Transition(ctx context.Context, id string, from, to models.AppointmentStatus) (*models.AppointmentRecord, error)
}

// MemoryAppointmentRepo keeps appointments in process memory.
type MemoryAppointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]models.AppointmentRecord
}

func NewMemoryAppointmentRepo() AppointmentRepository {
	return &MemoryAppointmentRepo{byID: make(map[string]models.AppointmentRecord)}
}

func (r *MemoryAppointmentRepo) Create(_ context.Context, rec *models.AppointmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; exists {
		return database.ErrDuplicate
	}
	r.byID[rec.ID] = *rec
	return nil
}

func (r *MemoryAppointmentRepo) ListByUser(_ context.Context, userID string) ([]models.AppointmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.AppointmentRecord{}
	for _, rec := range r.byID {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *MemoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.AppointmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &rec, nil
}

func (r *MemoryAppointmentRepo) Transition(_ context.Context, id string, from, to models.AppointmentStatus) (*models.AppointmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	if rec.Status != from {
		return nil, database.ErrStatusConflict
	}
	rec.Status = to
	rec.UpdatedAt = time.Now().UTC()
	r.byID[id] = rec
	return &rec, nil
}

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates an AppointmentRepository backed by the
// "appointments" collection.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: db.Collection("appointments")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		utils.GetLogger().Warn("failed to create appointment indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoAppointmentRepo) Create(ctx context.Context, rec *models.AppointmentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *MongoAppointmentRepo) ListByUser(ctx context.Context, userID string) ([]models.AppointmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.AppointmentRecord{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return out, nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.AppointmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.AppointmentRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &rec, nil
}

func (r *MongoAppointmentRepo) Transition(ctx context.Context, id string, from, to models.AppointmentStatus) (*models.AppointmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var rec models.AppointmentRecord
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&rec)
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, database.ErrStatusConflict
}
