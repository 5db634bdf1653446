package locales

import (
	"testing"

	"medassist-chatbot-backend/models"
)

func TestGetPicksLanguage(t *testing.T) {
	if got := Get(MsgNoTreatments, models.LanguageEnglish); got != "No treatment records found." {
		t.Errorf("english = %q", got)
	}
	if got := Get(MsgNoTreatments, models.LanguagePersian); got != "هیچ سابقه درمانی پیدا نشد." {
		t.Errorf("persian = %q", got)
	}
}

func TestGetUnknownIDFallsBack(t *testing.T) {
	if got := Get(MessageID("no_such_message"), models.LanguageEnglish); got != "no_such_message" {
		t.Errorf("fallback = %q", got)
	}
}

func TestFormat(t *testing.T) {
	got := Format(MsgHowAreYou, models.LanguageEnglish, "Hesam")
	if got != "Hi Hesam, how are you today?" {
		t.Errorf("formatted = %q", got)
	}
	got = Format(MsgServerError, models.LanguagePersian, 500)
	if got != "خطا در ارتباط با سرور: 500" {
		t.Errorf("formatted = %q", got)
	}
}

func TestCatalogIsBilingual(t *testing.T) {
	for id, msg := range catalog {
		if msg.English == "" {
			t.Errorf("%s has no English text", id)
		}
		if msg.Persian == "" {
			t.Errorf("%s has no Persian text", id)
		}
	}
}
