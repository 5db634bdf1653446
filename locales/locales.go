// Package locales holds every user-facing reply string in both supported
// languages. Handlers pick a message by id and the turn's detected
// language, so no response site branches on language itself.
package locales

import (
	"fmt"

	"medassist-chatbot-backend/models"
)

type MessageID string

const (
	MsgInvalidCredentials  MessageID = "invalid_credentials"
	MsgNoSpeechDetected    MessageID = "no_speech_detected"
	MsgTreatmentsHeader    MessageID = "treatments_header"
	MsgTreatmentLine       MessageID = "treatment_line"
	MsgTreatmentDisease    MessageID = "treatment_disease"
	MsgNoTreatments        MessageID = "no_treatments"
	MsgLatestTestResult    MessageID = "latest_test_result"
	MsgNoTestResults       MessageID = "no_test_results"
	MsgLatestBloodPressure MessageID = "latest_blood_pressure"
	MsgNoBloodPressure     MessageID = "no_blood_pressure"
	MsgLatestBloodSugar    MessageID = "latest_blood_sugar"
	MsgNoBloodSugar        MessageID = "no_blood_sugar"
	MsgNoValueRecorded     MessageID = "no_value_recorded"
	MsgUnknownDate         MessageID = "unknown_date"
	MsgNoRecords           MessageID = "no_records"
	MsgServerError         MessageID = "server_error"
	MsgFetchError          MessageID = "fetch_error"
	MsgHowAreYou           MessageID = "how_are_you"
	MsgGreatAssist         MessageID = "great_assist"
	MsgDidNotUnderstand    MessageID = "did_not_understand"
	MsgAssistGeneric       MessageID = "assist_generic"
	MsgSpecifyTopic        MessageID = "specify_topic"
	MsgOtherTest           MessageID = "other_test"
)

type message struct {
	English string
	Persian string
}

var catalog = map[MessageID]message{
	MsgInvalidCredentials: {
		English: "Invalid email or password.",
		Persian: "ایمیل یا رمز عبور اشتباه است.",
	},
	MsgNoSpeechDetected: {
		English: "No speech detected. Please try typing or speaking again.",
		Persian: "صدا تشخیص داده نشد. لطفاً دوباره صحبت کنید یا تایپ کنید.",
	},
	MsgTreatmentsHeader: {
		English: "Your treatments:",
		Persian: "درمان‌های شما:",
	},
	MsgTreatmentLine: {
		English: "- Date: %s, Treatment: %s",
		Persian: "- تاریخ: %s، درمان: %s",
	},
	MsgTreatmentDisease: {
		English: ", Disease: %s",
		Persian: "، بیماری: %s",
	},
	MsgNoTreatments: {
		English: "No treatment records found.",
		Persian: "هیچ سابقه درمانی پیدا نشد.",
	},
	MsgLatestTestResult: {
		English: "Latest %s result: %s (Date: %s)",
		Persian: "آخرین نتیجه %s: %s (تاریخ: %s)",
	},
	MsgNoTestResults: {
		English: "No %s results found.",
		Persian: "هیچ نتیجه‌ای برای %s پیدا نشد.",
	},
	MsgLatestBloodPressure: {
		English: "Latest blood pressure: %s (Date: %s)",
		Persian: "آخرین فشار خون: %s (تاریخ: %s)",
	},
	MsgNoBloodPressure: {
		English: "No blood pressure records found.",
		Persian: "سابقه فشار خونی پیدا نشد.",
	},
	MsgLatestBloodSugar: {
		English: "Latest blood sugar: %v (Date: %v)",
		Persian: "آخرین قند خون: %v (تاریخ: %v)",
	},
	MsgNoBloodSugar: {
		English: "No blood sugar records found.",
		Persian: "هیچ سابقه قند خونی پیدا نشد.",
	},
	MsgNoValueRecorded: {
		English: "No value recorded",
		Persian: "مقداری ثبت نشده",
	},
	MsgUnknownDate: {
		English: "Unknown date",
		Persian: "تاریخ نامشخص",
	},
	MsgNoRecords: {
		English: "No records found.",
		Persian: "هیچ سابقه‌ای پیدا نشد.",
	},
	MsgServerError: {
		English: "Server connection error: %d",
		Persian: "خطا در ارتباط با سرور: %d",
	},
	MsgFetchError: {
		English: "Error fetching data: %v",
		Persian: "خطا در گرفتن داده‌ها: %v",
	},
	MsgHowAreYou: {
		English: "Hi %s, how are you today?",
		Persian: "سلام %s، امروز چطور هستید؟",
	},
	MsgGreatAssist: {
		English: "Great %s! How can I assist you today?",
		Persian: "عالیه %s! چطور می‌تونم بهتون کمک کنم؟",
	},
	MsgDidNotUnderstand: {
		English: "Sorry %s, I didn't understand. How are you today?",
		Persian: "متاسفم %s، متوجه نشدم. امروز چطور هستید؟",
	},
	MsgAssistGeneric: {
		English: "How can I assist you today?",
		Persian: "چطور می‌تونم بهتون کمک کنم؟",
	},
	MsgSpecifyTopic: {
		English: "Please specify what you need, e.g., 'heart rate', 'blood pressure', 'blood sugar', 'diabetes', or 'treatment'.",
		Persian: "لطفاً بگید چی نیاز دارید، مثلاً 'ضربان قلب'، 'فشار خون'، 'قند خون'، 'دیابت' یا 'درمان'.",
	},
	MsgOtherTest: {
		English: "test hesam",
		Persian: "تست حسام",
	},
}

// Get returns the raw message text for a language.
func Get(id MessageID, lang models.Language) string {
	msg, ok := catalog[id]
	if !ok {
		return string(id)
	}
	if lang == models.LanguagePersian {
		return msg.Persian
	}
	return msg.English
}

// Format renders a parameterized message.
func Format(id MessageID, lang models.Language, args ...interface{}) string {
	return fmt.Sprintf(Get(id, lang), args...)
}
