package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key"). The "kind" entry selects a variant such as
// "too_small.string".
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalogs = map[string]map[string]string{
	"en": {
		"invalid_type":               "Expected {expected}, received {received}",
		"invalid_type.never":         "Never type cannot be parsed",
		"invalid_type.integer":       "Expected integer, received float",
		"too_small.string":           "String must contain at least {minimum} character(s)",
		"too_small.number":           "Number must be greater than or equal to {minimum}",
		"too_small.number_exclusive": "Number must be greater than {minimum}",
		"too_small.array":            "Array must contain at least {minimum} element(s)",
		"too_big.string":             "String must contain at most {maximum} character(s)",
		"too_big.number":             "Number must be less than or equal to {maximum}",
		"too_big.number_exclusive":   "Number must be less than {maximum}",
		"too_big.array":              "Array must contain at most {maximum} element(s)",
		"invalid_array_length":       "Array must contain exactly {expected} element(s)",
		"invalid_tuple_length":       "Expected tuple length {expected}, got {received}",
		"invalid_tuple_length.rest":  "Expected tuple length of at least {expected}, got {received}",
		"missing_required":           "Missing required key '{key}'",
		"unrecognized_key":           "Unrecognized key '{key}'",
		"invalid_enum_value":         "Expected one of {options}",
		"invalid_literal":            "Expected literal {expected}",
		"invalid_string":             "Invalid string",
		"invalid_string.email":       "Invalid email address",
		"not_multiple_of":            "Number must be a multiple of {multiple}",
		"not_finite":                 "Expected finite number",
		"invalid_union":              "Input did not match any union member",
		"custom":                     "Invalid value",
		"parse_error":                "parse error",
		"duplicate_key":              "duplicate key",
		"truncated":                  "truncated",
	},
	"ja": {
		"invalid_type":               "{expected} を期待しましたが {received} でした",
		"invalid_type.never":         "この型は値を受け付けません",
		"invalid_type.integer":       "整数を期待しましたが小数でした",
		"too_small.string":           "{minimum} 文字以上で入力してください",
		"too_small.number":           "{minimum} 以上の数値を指定してください",
		"too_small.number_exclusive": "{minimum} より大きい数値を指定してください",
		"too_small.array":            "要素を {minimum} 個以上指定してください",
		"too_big.string":             "{maximum} 文字以下で入力してください",
		"too_big.number":             "{maximum} 以下の数値を指定してください",
		"too_big.number_exclusive":   "{maximum} より小さい数値を指定してください",
		"too_big.array":              "要素は {maximum} 個以下にしてください",
		"invalid_array_length":       "要素はちょうど {expected} 個必要です",
		"invalid_tuple_length":       "タプルの長さは {expected} である必要があります ({received})",
		"invalid_tuple_length.rest":  "タプルの長さは {expected} 以上である必要があります ({received})",
		"missing_required":           "必須キー '{key}' がありません",
		"unrecognized_key":           "未知のキー '{key}' です",
		"invalid_enum_value":         "{options} のいずれかを指定してください",
		"invalid_literal":            "{expected} を指定してください",
		"invalid_string":             "文字列の形式が不正です",
		"invalid_string.email":       "メールアドレスの形式が不正です",
		"not_multiple_of":            "{multiple} の倍数を指定してください",
		"not_finite":                 "有限の数値を指定してください",
		"invalid_union":              "いずれの候補にも一致しません",
		"custom":                     "値が不正です",
		"parse_error":                "解析エラー",
		"duplicate_key":              "キーが重複しています",
		"truncated":                  "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	cat := catalogs[t.lang]
	if cat == nil {
		cat = catalogs["en"]
	}
	tmpl, ok := "", false
	if kind := data["kind"]; kind != "" {
		tmpl, ok = cat[code+"."+kind]
	}
	if !ok {
		tmpl, ok = cat[code]
	}
	if !ok {
		return code
	}
	return render(tmpl, data)
}

// render substitutes {name} placeholders with values from data.
func render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
