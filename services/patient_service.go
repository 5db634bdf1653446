package services

import (
	"context"
	"errors"
	"regexp"

	"medassist-chatbot-backend/database"
	"medassist-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatientService is the MongoDB-backed credential and record store.
type PatientService struct {
	db *mongo.Database
}

func NewPatientService(db *mongo.Database) *PatientService {
	return &PatientService{db: db}
}

// Verify resolves (email, password) to the patient's identity. A miss is
// (nil, nil), not an error: bad credentials are a normal conversational
// outcome, not a failure.
func (s *PatientService) Verify(ctx context.Context, email, password string) (*models.Identity, error) {
	var patient models.Patient
	err := s.db.Collection(database.CollectionPatients).
		FindOne(ctx, bson.M{"email": email, "password": password}).
		Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.Identity{PatientID: patient.PatientID, Name: patient.FirstName}, nil
}

// Treatments returns the patient's full treatment history, newest first.
func (s *PatientService) Treatments(ctx context.Context, patientID int) ([]models.Treatment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "record_date", Value: -1}})
	cursor, err := s.db.Collection(database.CollectionTreatments).
		Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var treatments []models.Treatment
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, err
	}
	return treatments, nil
}

// SearchTreatment returns the newest treatment row whose treatment text
// contains the given substring, or nil when nothing matches. The substring
// is matched literally and case-sensitively.
func (s *PatientService) SearchTreatment(ctx context.Context, patientID int, substring string) (*models.Treatment, error) {
	filter := bson.M{
		"patient_id": patientID,
		"treatment":  bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(substring)}},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "record_date", Value: -1}})

	var treatment models.Treatment
	err := s.db.Collection(database.CollectionTreatments).
		FindOne(ctx, filter, opts).
		Decode(&treatment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &treatment, nil
}
