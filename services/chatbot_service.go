package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medassist-chatbot-backend/locales"
	"medassist-chatbot-backend/models"
	"medassist-chatbot-backend/utils"
)

// CredentialStore resolves login credentials to a patient identity.
type CredentialStore interface {
	Verify(ctx context.Context, email, password string) (*models.Identity, error)
}

// RecordStore serves the locally stored treatment history.
type RecordStore interface {
	Treatments(ctx context.Context, patientID int) ([]models.Treatment, error)
	SearchTreatment(ctx context.Context, patientID int, substring string) (*models.Treatment, error)
}

// VitalsProvider serves clinical records held by the external data source.
type VitalsProvider interface {
	LatestBloodSugar(ctx context.Context, patientID int) (map[string]interface{}, error)
	LatestHeartRecord(ctx context.Context, patientID int) (map[string]interface{}, error)
}

// VoiceAdapter is the speech-to-text fallback and text-to-speech mirror.
type VoiceAdapter interface {
	Listen(ctx context.Context) (string, error)
	Speak(text string)
}

// ChatbotService is the dialogue controller. Per turn it verifies the
// caller, normalizes and classifies the message, dispatches to a handler,
// and advances the session's chat state. Every error condition on the
// conversational path is folded into a localized reply; only
// infrastructure failures surface as errors.
type ChatbotService struct {
	credentials CredentialStore
	records     RecordStore
	vitals      VitalsProvider
	voice       VoiceAdapter
	sessions    SessionStore
	classifier  *utils.IntentClassifier
}

func NewChatbotService(
	credentials CredentialStore,
	records RecordStore,
	vitals VitalsProvider,
	voice VoiceAdapter,
	sessions SessionStore,
	matchThreshold int,
) *ChatbotService {
	return &ChatbotService{
		credentials: credentials,
		records:     records,
		vitals:      vitals,
		voice:       voice,
		sessions:    sessions,
		classifier:  utils.NewIntentClassifier(matchThreshold),
	}
}

// ProcessMessage handles one conversational turn.
func (s *ChatbotService) ProcessMessage(ctx context.Context, sessionID string, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.ToLower(req.Message)

	// Credentials are re-verified on every turn, never cached.
	identity, err := s.credentials.Verify(ctx, req.Email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("credential verification failed: %w", err)
	}
	if identity == nil {
		reply := locales.Get(locales.MsgInvalidCredentials, utils.DetectLanguage(message))
		return &models.ChatResponse{Response: reply}, nil
	}

	state, ok := s.sessions.Get(sessionID)
	if !ok {
		state = models.StateInitial
		s.sessions.Put(sessionID, state)
	}

	// Voice fallback: an empty turn means the client wants us to listen.
	if strings.TrimSpace(message) == "" {
		message, err = s.voice.Listen(ctx)
		if err != nil {
			return nil, fmt.Errorf("speech recognition failed: %w", err)
		}
		if message == "" {
			reply := locales.Get(locales.MsgNoSpeechDetected, utils.DetectLanguage(message))
			return &models.ChatResponse{Response: reply}, nil
		}
	}

	// Language is per turn, from the raw text, and never sticky.
	lang := utils.DetectLanguage(message)

	// Phase 1: specific field entries beat everything else.
	if field, ok := s.classifier.MatchField(message); ok {
		reply := s.handleHeartField(ctx, identity.PatientID, field, lang)
		return s.finishTurn(sessionID, reply)
	}

	// Phase 2: general intents, in fixed catalog order.
	if intent, ok := s.classifier.MatchIntent(message); ok {
		reply, err := s.handleIntent(ctx, identity.PatientID, intent, lang)
		if err != nil {
			return nil, err
		}
		return s.finishTurn(sessionID, reply)
	}

	// Phase 3: the stateful greeting flow.
	return s.handleGreetingFlow(ctx, sessionID, identity, state, message, lang)
}

// handleGreetingFlow walks the INITIAL -> ASKED_HOW_ARE_YOU ->
// READY_TO_ASSIST machine. Branch order matters: overlapping conditions
// are resolved by evaluation order, not by specificity.
func (s *ChatbotService) handleGreetingFlow(
	ctx context.Context,
	sessionID string,
	identity *models.Identity,
	state models.ChatState,
	message string,
	lang models.Language,
) (*models.ChatResponse, error) {
	isGreeting := s.classifier.IsGreeting(message)

	if state == models.StateInitial && isGreeting {
		s.sessions.Put(sessionID, models.StateAskedHowAreYou)
		reply := locales.Format(locales.MsgHowAreYou, lang, identity.Name)
		return s.speakAndReply(reply)
	}

	if state == models.StateAskedHowAreYou {
		if s.classifier.IsAffectReply(message) {
			s.sessions.Put(sessionID, models.StateReadyToAssist)
			reply := locales.Format(locales.MsgGreatAssist, lang, identity.Name)
			return s.speakAndReply(reply)
		}
		// Not an answer we understand; re-ask without moving.
		reply := locales.Format(locales.MsgDidNotUnderstand, lang, identity.Name)
		return s.speakAndReply(reply)
	}

	if state == models.StateReadyToAssist || isGreeting {
		if isGreeting {
			// A greeting here re-runs the catalog in case the same message
			// also carries a request, then lands back at INITIAL.
			reply, matched, err := s.lookupCatalog(ctx, identity.PatientID, message, lang)
			if err != nil {
				return nil, err
			}
			if !matched {
				reply = locales.Get(locales.MsgAssistGeneric, lang)
			}
			return s.finishTurn(sessionID, reply)
		}
		// Waiting for a topic; stay in READY_TO_ASSIST.
		reply := locales.Get(locales.MsgSpecifyTopic, lang)
		return s.speakAndReply(reply)
	}

	// No catalog match, no greeting, nothing to advance.
	reply := locales.Get(locales.MsgSpecifyTopic, lang)
	return s.speakAndReply(reply)
}

// lookupCatalog re-runs both catalog phases over the message and reports
// whether anything matched.
func (s *ChatbotService) lookupCatalog(ctx context.Context, patientID int, message string, lang models.Language) (string, bool, error) {
	if field, ok := s.classifier.MatchField(message); ok {
		return s.handleHeartField(ctx, patientID, field, lang), true, nil
	}
	if intent, ok := s.classifier.MatchIntent(message); ok {
		reply, err := s.handleIntent(ctx, patientID, intent, lang)
		if err != nil {
			return "", false, err
		}
		return reply, true, nil
	}
	return "", false, nil
}

// handleIntent dispatches a matched general intent to its handler.
func (s *ChatbotService) handleIntent(ctx context.Context, patientID int, intent models.Intent, lang models.Language) (string, error) {
	switch intent {
	case models.IntentBloodTest:
		return s.handleTestResults(ctx, patientID, "blood test", lang)
	case models.IntentBloodPressure:
		return s.handleBloodPressure(ctx, patientID, lang)
	case models.IntentBloodSugar:
		return s.handleBloodSugar(ctx, patientID, lang), nil
	case models.IntentTreatment:
		return s.handleTreatments(ctx, patientID, lang)
	case models.IntentOtherTest:
		return locales.Get(locales.MsgOtherTest, lang), nil
	default:
		return locales.Get(locales.MsgSpecifyTopic, lang), nil
	}
}

// handleTreatments renders the full treatment history, newest first.
// Rows with empty treatment text are skipped; the disease label only
// appears when present.
func (s *ChatbotService) handleTreatments(ctx context.Context, patientID int, lang models.Language) (string, error) {
	treatments, err := s.records.Treatments(ctx, patientID)
	if err != nil {
		return "", fmt.Errorf("treatment lookup failed: %w", err)
	}
	if len(treatments) == 0 {
		return locales.Get(locales.MsgNoTreatments, lang), nil
	}

	var b strings.Builder
	b.WriteString(locales.Get(locales.MsgTreatmentsHeader, lang))
	b.WriteString("\n")
	for _, t := range treatments {
		if strings.TrimSpace(t.Treatment) == "" {
			continue
		}
		b.WriteString(locales.Format(locales.MsgTreatmentLine, lang, t.RecordDate, t.Treatment))
		if strings.TrimSpace(t.DiseaseType) != "" {
			b.WriteString(locales.Format(locales.MsgTreatmentDisease, lang, t.DiseaseType))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

// handleTestResults returns the latest treatment row containing the test
// type as a substring.
func (s *ChatbotService) handleTestResults(ctx context.Context, patientID int, testType string, lang models.Language) (string, error) {
	result, err := s.records.SearchTreatment(ctx, patientID, testType)
	if err != nil {
		return "", fmt.Errorf("test result lookup failed: %w", err)
	}
	if result == nil {
		return locales.Format(locales.MsgNoTestResults, lang, testType), nil
	}
	return locales.Format(locales.MsgLatestTestResult, lang, testType, result.Treatment, result.RecordDate), nil
}

// handleBloodPressure is the test lookup pinned to the "Blood Pressure"
// substring the records use.
func (s *ChatbotService) handleBloodPressure(ctx context.Context, patientID int, lang models.Language) (string, error) {
	result, err := s.records.SearchTreatment(ctx, patientID, "Blood Pressure")
	if err != nil {
		return "", fmt.Errorf("blood pressure lookup failed: %w", err)
	}
	if result == nil {
		return locales.Get(locales.MsgNoBloodPressure, lang), nil
	}
	return locales.Format(locales.MsgLatestBloodPressure, lang, result.Treatment, result.RecordDate), nil
}

// handleBloodSugar fetches the latest blood sugar from the external
// provider. Upstream failures become reply text here, never errors.
func (s *ChatbotService) handleBloodSugar(ctx context.Context, patientID int, lang models.Language) string {
	record, err := s.vitals.LatestBloodSugar(ctx, patientID)
	if err != nil {
		return s.upstreamReply(err, lang)
	}
	if record == nil {
		return locales.Get(locales.MsgNoBloodSugar, lang)
	}

	sugar, ok := record["blood_sugar"]
	if !ok || sugar == nil {
		sugar = locales.Get(locales.MsgNoValueRecorded, lang)
	}
	date, ok := record["date"]
	if !ok || date == nil {
		date = locales.Get(locales.MsgUnknownDate, lang)
	}
	return locales.Format(locales.MsgLatestBloodSugar, lang, sugar, date)
}

// handleHeartField fetches one named field from the latest heart-disease
// test record.
func (s *ChatbotService) handleHeartField(ctx context.Context, patientID int, field utils.FieldEntry, lang models.Language) string {
	record, err := s.vitals.LatestHeartRecord(ctx, patientID)
	if err != nil {
		return s.upstreamReply(err, lang)
	}
	if record == nil {
		return locales.Get(locales.MsgNoRecords, lang)
	}

	value, ok := record[field.ID]
	if !ok || value == nil {
		value = locales.Get(locales.MsgNoValueRecorded, lang)
	}
	return fmt.Sprintf("%s: %v", field.DisplayName(lang), value)
}

// upstreamReply is the single point where provider failures turn into
// friendly text.
func (s *ChatbotService) upstreamReply(err error, lang models.Language) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		return locales.Format(locales.MsgServerError, lang, upstream.StatusCode)
	}
	return locales.Format(locales.MsgFetchError, lang, err)
}

// finishTurn closes a task-completing turn: state back to INITIAL, reply
// mirrored to speech.
func (s *ChatbotService) finishTurn(sessionID, reply string) (*models.ChatResponse, error) {
	s.sessions.Put(sessionID, models.StateInitial)
	return s.speakAndReply(reply)
}

func (s *ChatbotService) speakAndReply(reply string) (*models.ChatResponse, error) {
	s.voice.Speak(reply)
	return &models.ChatResponse{Response: reply}, nil
}
