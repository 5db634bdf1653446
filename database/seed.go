package database

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"medassist-chatbot-backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed loads the CSV exports into MongoDB on first start. A collection
// that already holds documents is left alone, so restarting the server
// never duplicates records.
func Seed(dataDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedPatients(ctx, dataDir+"/patients.csv"); err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}
	if err := seedTreatments(ctx, dataDir+"/treatments.csv"); err != nil {
		return fmt.Errorf("failed to seed treatments: %w", err)
	}
	return nil
}

func seedPatients(ctx context.Context, path string) error {
	collection := GetMongoDB().Collection(CollectionPatients)
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Patients collection already has %d documents, skipping seed", count)
		return nil
	}

	rows, err := readCSV(path)
	if err != nil {
		return err
	}

	var docs []interface{}
	for _, row := range rows {
		if len(row) < 8 {
			continue
		}
		id, _ := strconv.Atoi(row[0])
		age, _ := strconv.Atoi(row[2])
		docs = append(docs, models.Patient{
			PatientID: id,
			UUID:      row[1],
			Age:       age,
			Gender:    row[3],
			FirstName: row[4],
			LastName:  row[5],
			Email:     row[6],
			Password:  row[7],
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d patients from %s", len(docs), path)
	return nil
}

func seedTreatments(ctx context.Context, path string) error {
	collection := GetMongoDB().Collection(CollectionTreatments)
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Treatments collection already has %d documents, skipping seed", count)
		return nil
	}

	rows, err := readCSV(path)
	if err != nil {
		return err
	}

	var docs []interface{}
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		patientID, _ := strconv.Atoi(row[0])
		docs = append(docs, models.Treatment{
			PatientID:   patientID,
			DoctorID:    row[1],
			Treatment:   row[2],
			RecordDate:  row[3],
			DiseaseType: row[4],
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seeded %d treatments from %s", len(docs), path)
	return nil
}

// readCSV returns all data rows of the file, header excluded.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}
