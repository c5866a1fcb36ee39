package i18n

import "fmt"

// Translator retrieves localized reason strings for issue codes. data carries
// the values embedded in the message (for example "expected", "value", "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return fmt.Sprintf("%s を期待しましたが、%s が与えられました", get("expected"), get("actual"))
		case "out_of_range":
			return fmt.Sprintf("値 %s は型 %s の範囲外です。許容範囲: %s から %s", get("value"), get("type"), get("min"), get("max"))
		case "required":
			return "必須フィールドがありません"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return fmt.Sprintf("Expected %s, got %s", get("expected"), get("actual"))
		case "out_of_range":
			return fmt.Sprintf("Value %s is out of range for type %s. Expected range: %s to %s", get("value"), get("type"), get("min"), get("max"))
		case "required":
			return "missing required field"
		case "parse_error":
			return "parse error"
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
