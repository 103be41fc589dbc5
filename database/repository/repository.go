package repository

import (
	appointmentRepo "vaxbook/database/repository/appointment"
	childRepo "vaxbook/database/repository/child"
	userRepo "vaxbook/database/repository/user"
	vaccineRepo "vaxbook/database/repository/vaccine"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	UserRepository        = userRepo.UserRepository
	VaccineRepository     = vaccineRepo.VaccineRepository
	ChildRepository       = childRepo.ChildRepository
	AppointmentRepository = appointmentRepo.AppointmentRepository
)

// Repositories bundles every store the backend needs.
type Repositories struct {
	Users        UserRepository
	Vaccines     VaccineRepository
	Children     ChildRepository
	Appointments AppointmentRepository
}

// NewMemory returns empty in-process repositories.
func NewMemory() *Repositories {
	return &Repositories{
		Users:        userRepo.NewMemoryUserRepo(),
		Vaccines:     vaccineRepo.NewMemoryVaccineRepo(),
		Children:     childRepo.NewMemoryChildRepo(),
		Appointments: appointmentRepo.NewMemoryAppointmentRepo(),
	}
}

// NewMongo returns repositories backed by collections of db.
func NewMongo(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:        userRepo.NewMongoUserRepo(db),
		Vaccines:     vaccineRepo.NewMongoVaccineRepo(db),
		Children:     childRepo.NewMongoChildRepo(db),
		Appointments: appointmentRepo.NewMongoAppointmentRepo(db),
	}
}

var SeedVaccines = vaccineRepo.Seed
