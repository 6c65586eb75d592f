package professionalRepo

import (
	"context"

	"clinagenda/config"
	"clinagenda/database"
	"clinagenda/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProfessionalRepository provides access to the clinic staff roster.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	ListActive(ctx context.Context) ([]models.Professional, error)
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoProfessionalRepo{
		coll: db.Collection("professionals"),
	}
}
