package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "tag_mismatch":
			return "要素名が一致しません"
		case "child_not_found":
			return "必須の子要素がありません"
		case "invalid_value":
			return "値が不正です"
		}
	default: // "en"
		switch code {
		case "tag_mismatch":
			return "element tag mismatch"
		case "child_not_found":
			return "required child element missing"
		case "invalid_value":
			return "invalid value"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T renders the message for code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
