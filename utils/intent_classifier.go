package utils

import (
	"strings"

	"medassist-chatbot-backend/models"
)

// FieldEntry is one clinical attribute from the heart-disease test table,
// with its bilingual trigger phrases and display names.
type FieldEntry struct {
	ID          string
	Keywords    []string // one English phrase, one Persian phrase
	EnglishName string
	PersianName string
}

// IntentClassifier holds the static bilingual keyword catalog and runs the
// two-phase dispatch: specific field entries first, then general intents.
// Catalog order is load order and decides every tie, so both tables are
// slices, not maps.
type IntentClassifier struct {
	fields    []FieldEntry
	intents   []intentEntry
	greetings []string
	affects   []string
	threshold int
}

type intentEntry struct {
	intent   models.Intent
	keywords []string
}

// NewIntentClassifier builds the catalog. The field order matches the
// upstream heart-disease test table and must not be rearranged.
func NewIntentClassifier(threshold int) *IntentClassifier {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	return &IntentClassifier{
		threshold: threshold,
		fields: []FieldEntry{
			{ID: "patient_id", Keywords: []string{"patient id", "شناسه بیمار"}, EnglishName: "Patient ID", PersianName: "شناسه بیمار"},
			{ID: "education", Keywords: []string{"education", "تحصیلات"}, EnglishName: "Education", PersianName: "تحصیلات"},
			{ID: "currentSmoker", Keywords: []string{"current smoker", "سیگاری فعلی"}, EnglishName: "Current Smoker", PersianName: "سیگاری فعلی"},
			{ID: "cigsPerDay", Keywords: []string{"cigs per day", "سیگار در روز"}, EnglishName: "Cigarettes per Day", PersianName: "سیگار در روز"},
			{ID: "BPMeds", Keywords: []string{"bp meds", "داروی فشار خون"}, EnglishName: "Blood Pressure Medication", PersianName: "داروی فشار خون"},
			{ID: "prevalentStroke", Keywords: []string{"prevalent stroke", "سکته قبلی"}, EnglishName: "Prevalent Stroke", PersianName: "سکته قبلی"},
			{ID: "prevalentHyp", Keywords: []string{"prevalent hyp", "فشار خون بالا"}, EnglishName: "Prevalent Hypertension", PersianName: "فشار خون بالا"},
			{ID: "diabetes", Keywords: []string{"diabetes", "دیابت"}, EnglishName: "Diabetes", PersianName: "دیابت"},
			{ID: "BMI", Keywords: []string{"bmi", "شاخص توده بدنی"}, EnglishName: "BMI", PersianName: "شاخص توده بدنی"},
			{ID: "totChol", Keywords: []string{"total cholesterol", "کلسترول کل"}, EnglishName: "Total Cholesterol", PersianName: "کلسترول کل"},
			{ID: "sysBP", Keywords: []string{"systolic bp", "فشار سیستولیک"}, EnglishName: "Systolic BP", PersianName: "فشار سیستولیک"},
			{ID: "diaBP", Keywords: []string{"diastolic bp", "فشار دیاستولیک"}, EnglishName: "Diastolic BP", PersianName: "فشار دیاستولیک"},
			{ID: "heartRate", Keywords: []string{"heart rate", "ضربان قلب"}, EnglishName: "Heart Rate", PersianName: "ضربان قلب"},
			{ID: "glucose", Keywords: []string{"glucose", "گلوکز"}, EnglishName: "Glucose", PersianName: "گلوکز"},
			{ID: "test_time", Keywords: []string{"test time", "زمان تست"}, EnglishName: "Test Time", PersianName: "زمان تست"},
			{ID: "CHD", Keywords: []string{"chd", "بیماری قلبی"}, EnglishName: "Coronary Heart Disease", PersianName: "بیماری قلبی"},
		},
		intents: []intentEntry{
			{models.IntentBloodTest, []string{"blood test", "آزمایش خون"}},
			{models.IntentBloodPressure, []string{"blood pressure", "فشار خون"}},
			{models.IntentBloodSugar, []string{"blood sugar", "قند خون"}},
			{models.IntentTreatment, []string{"treatment", "درمان"}},
			{models.IntentOtherTest, []string{"other test", "تست دیگر"}},
		},
		greetings: []string{"hello", "hi", "سلام"},
		affects:   []string{"good", "fine", "great", "okay", "bad", "خوب", "بد"},
	}
}

// MatchField tests every message token against every field's keyword pair
// and returns the first field in catalog order that any token matches.
// Token granularity here is what lets "my heart rate please" land on
// heartRate even though the full sentence scores low.
func (ic *IntentClassifier) MatchField(message string) (FieldEntry, bool) {
	tokens := strings.Fields(Normalize(message))
	for _, field := range ic.fields {
		for _, token := range tokens {
			if MatchKeyword(token, field.Keywords, ic.threshold) {
				return field, true
			}
		}
	}
	return FieldEntry{}, false
}

// MatchIntent tests the general intents in fixed order and returns the
// first that matches. Only meaningful after MatchField came up empty.
func (ic *IntentClassifier) MatchIntent(message string) (models.Intent, bool) {
	for _, entry := range ic.intents {
		if MatchKeyword(message, entry.keywords, ic.threshold) {
			return entry.intent, true
		}
	}
	return "", false
}

// IsGreeting reports whether the message matches a greeting keyword.
func (ic *IntentClassifier) IsGreeting(message string) bool {
	return MatchKeyword(message, ic.greetings, ic.threshold)
}

// IsAffectReply reports whether the message answers "how are you". Each
// affect keyword is tested on its own, mirroring the greeting flow's
// one-keyword-at-a-time check.
func (ic *IntentClassifier) IsAffectReply(message string) bool {
	for _, affect := range ic.affects {
		if MatchKeyword(message, []string{affect}, ic.threshold) {
			return true
		}
	}
	return false
}

// FieldByID looks a field entry up by its upstream column name.
func (ic *IntentClassifier) FieldByID(id string) (FieldEntry, bool) {
	for _, field := range ic.fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldEntry{}, false
}

// DisplayName returns the localized label for the field.
func (f FieldEntry) DisplayName(lang models.Language) string {
	if lang == models.LanguagePersian {
		return f.PersianName
	}
	return f.EnglishName
}
