package models

// Professional is a clinic staff member that can receive appointments.
type Professional struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"nombre" json:"nombre"`
	Specialty string `bson:"especialidad,omitempty" json:"especialidad,omitempty"`
	Active    bool   `bson:"activo" json:"activo"`
}

// Room is a bookable consultation room.
type Room struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"nombre" json:"nombre"`
	Active bool   `bson:"activo" json:"activo"`
}
