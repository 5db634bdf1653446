package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient mirrors the patients collection. Only the fields the chatbot
// touches are mapped; the registration import carries more columns.
type Patient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID int                `bson:"patient_id" json:"patient_id"`
	UUID      string             `bson:"uuid,omitempty" json:"uuid,omitempty"`
	Age       int                `bson:"age,omitempty" json:"age,omitempty"`
	Gender    string             `bson:"gender,omitempty" json:"gender,omitempty"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
}

// Identity is what credential verification hands back for a turn.
type Identity struct {
	PatientID int
	Name      string
}

// Treatment is one row of a patient's treatment history.
type Treatment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID   int                `bson:"patient_id" json:"patient_id"`
	DoctorID    string             `bson:"doctor_id,omitempty" json:"doctor_id,omitempty"`
	Treatment   string             `bson:"treatment" json:"treatment"`
	RecordDate  string             `bson:"record_date" json:"record_date"`
	DiseaseType string             `bson:"disease_type,omitempty" json:"disease_type,omitempty"`
}
