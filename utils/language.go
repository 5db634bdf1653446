package utils

import "medassist-chatbot-backend/models"

// DetectLanguage classifies an utterance by script inspection: any code
// point in the Arabic block U+0600..U+06FF marks the message as Persian.
// It runs on the raw text, before normalization.
func DetectLanguage(text string) models.Language {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return models.LanguagePersian
		}
	}
	return models.LanguageEnglish
}
