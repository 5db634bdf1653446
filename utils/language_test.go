package utils

import (
	"testing"

	"medassist-chatbot-backend/models"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Language
	}{
		{"persian word", "سلام", models.LanguagePersian},
		{"english word", "hello", models.LanguageEnglish},
		{"mostly english with one persian char", "my result for قند", models.LanguagePersian},
		{"empty defaults to english", "", models.LanguageEnglish},
		{"digits and punctuation", "123 !?", models.LanguageEnglish},
		{"persian sentence", "فشار خون من چنده؟", models.LanguagePersian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(tt.input)
			if got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
