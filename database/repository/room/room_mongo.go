package roomRepo

import (
	"context"
	"time"

	"clinagenda/config"
	"clinagenda/database"
	"clinagenda/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository provides access to the consultation rooms collection.
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*models.Room, error)
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRoomRepo{
		coll: db.Collection("rooms"),
	}
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}
