package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medassist-chatbot-backend/config"
)

// UpstreamError marks a failed call to the external vitals provider. A
// non-zero StatusCode means the provider answered with a non-200; an empty
// one means transport failed before any response arrived.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("vitals provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("vitals provider unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// VitalsService fetches clinical records from the external data source.
// The provider exposes whole tables; filtering by patient happens here.
type VitalsService struct {
	baseURL    string
	httpClient *http.Client
}

func NewVitalsService(cfg config.VitalsConfig) *VitalsService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &VitalsService{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// LatestBloodSugar returns the patient's latest blood sugar record, or nil
// when the table holds none for them.
func (s *VitalsService) LatestBloodSugar(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return s.latestRecord(ctx, "blood_sugar_analysis", patientID)
}

// LatestHeartRecord returns the patient's latest heart-disease test record.
func (s *VitalsService) LatestHeartRecord(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return s.latestRecord(ctx, "heart_disease_test", patientID)
}

// latestRecord fetches a whole table and picks the last record in returned
// order for the patient. The provider does not document its ordering, so
// "latest" means array-order-last, same as the data source's own clients.
func (s *VitalsService) latestRecord(ctx context.Context, table string, patientID int) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/table/%s", s.baseURL, table)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var records []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &UpstreamError{Err: err}
	}

	var latest map[string]interface{}
	for _, record := range records {
		if matchesPatientID(record["patient_id"], patientID) {
			latest = record
		}
	}
	return latest, nil
}

// matchesPatientID compares the provider's patient_id value against ours.
// Only a JSON number counts; a string id never matches, same as the data
// source's own clients.
func matchesPatientID(value interface{}, patientID int) bool {
	v, ok := value.(float64)
	return ok && int(v) == patientID
}
