package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"clinagenda/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&professional); err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) ListActive(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"activo": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return professionals, nil
}
