package i18n

// Translator retrieves localized messages for error codes. data provides
// optional metadata to embed in the message (for example, "min" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須フィールドが不足しています"
		case "null":
			return "null は許可されていません"
		case "conversion":
			return "値を変換できません"
		case "validation":
			return "値が不正です"
		case "nested":
			return "ネストしたデータが不正です"
		case "process":
			return "処理に失敗しました"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "パターンに一致しません"
		case "not_member":
			return "許可された値ではありません"
		case "member":
			return "許可されていない値です"
		case "wrong_type":
			return "型が不正です"
		}
	default: // "en"
		switch code {
		case "required":
			return "missing data for required field"
		case "null":
			return "field may not be null"
		case "conversion":
			return "value cannot be converted"
		case "validation":
			return "invalid value"
		case "nested":
			return "nested data is invalid"
		case "process":
			return "process failed"
		case "too_small":
			return "value is too small"
		case "too_big":
			return "value is too big"
		case "too_short":
			return "value is too short"
		case "too_long":
			return "value is too long"
		case "pattern":
			return "value does not match pattern"
		case "not_member":
			return "value is not an allowed member"
		case "member":
			return "value is a forbidden member"
		case "wrong_type":
			return "wrong type"
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
