package services

import (
	"context"
	"testing"

	"medassist-chatbot-backend/models"
	"medassist-chatbot-backend/utils"
)

type fakeCredentials struct {
	identity *models.Identity
	err      error
}

func (f *fakeCredentials) Verify(ctx context.Context, email, password string) (*models.Identity, error) {
	return f.identity, f.err
}

type fakeRecords struct {
	treatments []models.Treatment
	bySearch   map[string]*models.Treatment
}

func (f *fakeRecords) Treatments(ctx context.Context, patientID int) ([]models.Treatment, error) {
	return f.treatments, nil
}

func (f *fakeRecords) SearchTreatment(ctx context.Context, patientID int, substring string) (*models.Treatment, error) {
	return f.bySearch[substring], nil
}

type fakeVitals struct {
	sugar    map[string]interface{}
	sugarErr error
	heart    map[string]interface{}
	heartErr error
}

func (f *fakeVitals) LatestBloodSugar(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return f.sugar, f.sugarErr
}

func (f *fakeVitals) LatestHeartRecord(ctx context.Context, patientID int) (map[string]interface{}, error) {
	return f.heart, f.heartErr
}

type fakeVoice struct {
	heard  string
	spoken []string
}

func (f *fakeVoice) Listen(ctx context.Context) (string, error) { return f.heard, nil }
func (f *fakeVoice) Speak(text string)                          { f.spoken = append(f.spoken, text) }

type testHarness struct {
	service *ChatbotService
	store   *MemorySessionStore
	voice   *fakeVoice
	vitals  *fakeVitals
	records *fakeRecords
	creds   *fakeCredentials
}

func newHarness() *testHarness {
	h := &testHarness{
		creds:   &fakeCredentials{identity: &models.Identity{PatientID: 1, Name: "Hesam"}},
		records: &fakeRecords{bySearch: map[string]*models.Treatment{}},
		vitals:  &fakeVitals{},
		voice:   &fakeVoice{},
		store:   NewMemorySessionStore(0),
	}
	h.service = NewChatbotService(h.creds, h.records, h.vitals, h.voice, h.store, utils.DefaultMatchThreshold)
	return h
}

func (h *testHarness) send(t *testing.T, sessionID, message string) string {
	t.Helper()
	resp, err := h.service.ProcessMessage(context.Background(), sessionID, models.ChatRequest{
		Message:  message,
		Email:    "hesam.rahimi@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("ProcessMessage(%q) returned error: %v", message, err)
	}
	return resp.Response
}

func (h *testHarness) state(t *testing.T, sessionID string) models.ChatState {
	t.Helper()
	state, ok := h.store.Get(sessionID)
	if !ok {
		t.Fatalf("no session state for %q", sessionID)
	}
	return state
}

func TestProcessMessageRejectsBadCredentials(t *testing.T) {
	h := newHarness()
	h.creds.identity = nil

	got := h.send(t, "s1", "treatment")
	if got != "Invalid email or password." {
		t.Errorf("reply = %q", got)
	}

	if _, ok := h.store.Get("s1"); ok {
		t.Error("failed login must not create a session")
	}
}

func TestProcessMessageRejectsBadCredentialsPersian(t *testing.T) {
	h := newHarness()
	h.creds.identity = nil

	got := h.send(t, "s1", "درمان")
	if got != "ایمیل یا رمز عبور اشتباه است." {
		t.Errorf("reply = %q", got)
	}
}

func TestGreetingFlow(t *testing.T) {
	h := newHarness()

	got := h.send(t, "s1", "hello")
	if got != "Hi Hesam, how are you today?" {
		t.Errorf("greeting reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateAskedHowAreYou {
		t.Errorf("state after greeting = %q", state)
	}

	// A reply we cannot read as an affect re-asks without moving.
	got = h.send(t, "s1", "blah")
	if got != "Sorry Hesam, I didn't understand. How are you today?" {
		t.Errorf("unreadable reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateAskedHowAreYou {
		t.Errorf("state after unreadable reply = %q", state)
	}

	got = h.send(t, "s1", "fine")
	if got != "Great Hesam! How can I assist you today?" {
		t.Errorf("affect reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateReadyToAssist {
		t.Errorf("state after affect = %q", state)
	}

	// Ready but off-topic: prompt for a concrete request, keep waiting.
	got = h.send(t, "s1", "blah")
	if got != "Please specify what you need, e.g., 'heart rate', 'blood pressure', 'blood sugar', 'diabetes', or 'treatment'." {
		t.Errorf("off-topic reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateReadyToAssist {
		t.Errorf("state after off-topic = %q", state)
	}
}

func TestGreetingWhileReadyResetsToInitial(t *testing.T) {
	h := newHarness()
	h.store.Put("s1", models.StateReadyToAssist)

	got := h.send(t, "s1", "hello")
	if got != "How can I assist you today?" {
		t.Errorf("reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateInitial {
		t.Errorf("state = %q", state)
	}
}

func TestFieldBeatsGeneralIntent(t *testing.T) {
	h := newHarness()
	h.vitals.heart = map[string]interface{}{"patient_id": 1, "heartRate": 72}
	h.records.bySearch["Blood Pressure"] = &models.Treatment{Treatment: "Blood Pressure 135/88", RecordDate: "2024-11-02"}

	// Mentions a field and two general intents; the field wins.
	got := h.send(t, "s1", "heart rate and blood pressure")
	if got != "Heart Rate: 72" {
		t.Errorf("reply = %q", got)
	}
	if state := h.state(t, "s1"); state != models.StateInitial {
		t.Errorf("state after field turn = %q", state)
	}
}

func TestHeartFieldPersian(t *testing.T) {
	h := newHarness()
	h.vitals.heart = map[string]interface{}{"heartRate": 85}

	got := h.send(t, "s1", "ضربان قلب من چنده")
	if got != "ضربان قلب: 85" {
		t.Errorf("reply = %q", got)
	}
}

func TestHeartFieldMissingValue(t *testing.T) {
	h := newHarness()
	h.vitals.heart = map[string]interface{}{"patient_id": 1}

	got := h.send(t, "s1", "glucose level")
	if got != "Glucose: No value recorded" {
		t.Errorf("reply = %q", got)
	}
}

func TestHeartFieldNoRecord(t *testing.T) {
	h := newHarness()

	got := h.send(t, "s1", "glucose level")
	if got != "No records found." {
		t.Errorf("reply = %q", got)
	}
}

func TestUpstreamStatusBecomesReply(t *testing.T) {
	h := newHarness()
	h.vitals.heartErr = &UpstreamError{StatusCode: 500}

	got := h.send(t, "s1", "show my heart rate")
	if got != "Server connection error: 500" {
		t.Errorf("reply = %q", got)
	}
}

func TestTreatmentHistory(t *testing.T) {
	h := newHarness()
	h.records.treatments = []models.Treatment{
		{Treatment: "Blood Pressure 135/88", RecordDate: "2024-11-02", DiseaseType: "hypertension"},
		{Treatment: "", RecordDate: "2024-07-04", DiseaseType: "unknown"},
		{Treatment: "Metformin 500mg daily", RecordDate: "2024-09-30"},
	}

	got := h.send(t, "s1", "treatment")
	want := "Your treatments:\n" +
		"- Date: 2024-11-02, Treatment: Blood Pressure 135/88, Disease: hypertension\n" +
		"- Date: 2024-09-30, Treatment: Metformin 500mg daily"
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
}

func TestTreatmentHistoryEmpty(t *testing.T) {
	h := newHarness()

	if got := h.send(t, "s1", "treatment"); got != "No treatment records found." {
		t.Errorf("english reply = %q", got)
	}
	if got := h.send(t, "s1", "درمان"); got != "هیچ سابقه درمانی پیدا نشد." {
		t.Errorf("persian reply = %q", got)
	}
}

func TestBloodSugarFromProvider(t *testing.T) {
	h := newHarness()
	h.vitals.sugar = map[string]interface{}{"blood_sugar": 110, "date": "2025-01-05"}

	got := h.send(t, "s1", "قند خون")
	if got != "آخرین قند خون: 110 (تاریخ: 2025-01-05)" {
		t.Errorf("reply = %q", got)
	}
}

func TestBloodSugarMissingKeys(t *testing.T) {
	h := newHarness()
	h.vitals.sugar = map[string]interface{}{"patient_id": 1}

	got := h.send(t, "s1", "sugar")
	if got != "Latest blood sugar: No value recorded (Date: Unknown date)" {
		t.Errorf("reply = %q", got)
	}
}

func TestBloodTestLookup(t *testing.T) {
	h := newHarness()
	h.records.bySearch["blood test"] = &models.Treatment{Treatment: "blood test CBC normal", RecordDate: "2024-10-15"}

	// The search substring stays English regardless of the turn language.
	got := h.send(t, "s1", "آزمایش خون")
	if got != "آخرین نتیجه blood test: blood test CBC normal (تاریخ: 2024-10-15)" {
		t.Errorf("reply = %q", got)
	}
}

func TestBloodTestMessageLandsOnTestTimeField(t *testing.T) {
	h := newHarness()
	h.vitals.heart = map[string]interface{}{"test_time": 3}

	// The "test" token clears the threshold against the test_time field,
	// and the field phase runs before the general intents.
	got := h.send(t, "s1", "blood test")
	if got != "Test Time: 3" {
		t.Errorf("reply = %q", got)
	}
}

func TestVoiceFallbackOnEmptyMessage(t *testing.T) {
	h := newHarness()
	h.voice.heard = "treatment"

	got := h.send(t, "s1", "")
	if got != "No treatment records found." {
		t.Errorf("reply = %q", got)
	}
	if len(h.voice.spoken) == 0 {
		t.Error("reply was not mirrored to speech")
	}
}

func TestNoSpeechDetected(t *testing.T) {
	h := newHarness()

	got := h.send(t, "s1", "   ")
	if got != "No speech detected. Please try typing or speaking again." {
		t.Errorf("reply = %q", got)
	}
}

func TestRepliesAreSpoken(t *testing.T) {
	h := newHarness()

	h.send(t, "s1", "hello")
	h.send(t, "s1", "fine")
	if len(h.voice.spoken) != 2 {
		t.Fatalf("spoken %d replies, want 2", len(h.voice.spoken))
	}
	if h.voice.spoken[0] != "Hi Hesam, how are you today?" {
		t.Errorf("first spoken reply = %q", h.voice.spoken[0])
	}
}
