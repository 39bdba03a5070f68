package keyword

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// vietnamese lower-case letters with diacritics, ascii letters and digits are checked separately
const vnLetters = "àáảãạâầấẩẫậăằắẳẵặđèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵ"

// IsValid reports whether phrase is an acceptable keyword. A valid phrase has at least two
// whitespace separated tokens of three or more letters each, built from latin and vietnamese
// letters and digits only.
func IsValid(phrase string) bool {
	phrase = norm.NFC.String(strings.TrimSpace(phrase))
	if utf8.RuneCountInString(phrase) <= 1 {
		return false
	}
	if strings.ContainsAny(phrase, `'"`) {
		return false
	}
	for _, r := range phrase {
		if !allowedRune(r) {
			return false
		}
	}

	tokens := strings.Fields(phrase)
	for _, t := range tokens {
		if utf8.RuneCountInString(t) <= 2 {
			return false
		}
	}
	return len(tokens) >= 2
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	default:
		return strings.ContainsRune(vnLetters, unicode.ToLower(r))
	}
}
