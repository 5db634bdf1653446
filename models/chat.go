package models

// Language of a single utterance. Re-detected every turn from the raw text,
// never carried over from previous turns.
type Language string

const (
	LanguagePersian Language = "persian"
	LanguageEnglish Language = "english"
)

// ChatState tracks where a session is in the greeting flow. It says nothing
// about which data lookup was last served.
type ChatState string

const (
	StateInitial        ChatState = "initial"
	StateAskedHowAreYou ChatState = "asked_how_are_you"
	StateReadyToAssist  ChatState = "ready_to_assist"
)

// Intent is a general request category, distinct from a specific clinical
// field. Tested in fixed order after field matching fails.
type Intent string

const (
	IntentBloodTest     Intent = "blood_test"
	IntentBloodPressure Intent = "blood_pressure"
	IntentBloodSugar    Intent = "blood_sugar"
	IntentTreatment     Intent = "treatment"
	IntentOtherTest     Intent = "other_test"
)

// ChatRequest is the turn input. Credentials ride along on every turn and
// are re-verified each time; the session id travels out-of-band in a cookie.
// Empty credentials are not a binding error: they flow through verification
// and come back as the localized invalid-credentials reply.
type ChatRequest struct {
	Message  string `json:"message"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChatResponse is the turn output. Every error condition is folded into
// Response as localized text, so this is the only field.
type ChatResponse struct {
	Response string `json:"response"`
}
