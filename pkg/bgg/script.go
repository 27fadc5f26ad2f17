package bgg

import "unicode"

// Script classification for catalog name tags. BGG mixes every localized
// edition title into one flat name list, so Japanese titles have to be
// picked out heuristically.

// IsJapaneseText reports whether text looks like a Japanese title.
//
// Any hiragana or katakana makes the call immediately. Kanji-only strings
// are ambiguous with Chinese, so those only count when they carry an ASCII
// character, a Japanese punctuation mark, or are short enough (1-6 runes)
// to match the common Japanese edition-title pattern.
func IsJapaneseText(text string) bool {
	if text == "" {
		return false
	}

	for _, r := range text {
		if (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF) {
			return true
		}
	}

	if !containsKanji(text) {
		return false
	}

	hasASCII := false
	for _, r := range text {
		if r <= unicode.MaxASCII {
			hasASCII = true
			break
		}
	}
	if hasASCII {
		return true
	}

	for _, r := range text {
		switch r {
		case '・', '〜', '～', '：':
			return true
		}
	}

	// Kanji-only short titles (plus the middle dot) are most likely Japanese.
	length := 0
	for _, r := range text {
		if !isKanji(r) && r != '・' {
			return false
		}
		length++
	}
	return length >= 1 && length <= 6
}

// IsEnglishText reports whether text is an ASCII title containing at least
// one letter. Pure punctuation or digits stay unclassified.
func IsEnglishText(text string) bool {
	if text == "" {
		return false
	}

	hasAlpha := false
	for _, r := range text {
		if r > unicode.MaxASCII {
			return false
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
		}
	}
	return hasAlpha
}

func containsKanji(text string) bool {
	for _, r := range text {
		if isKanji(r) {
			return true
		}
	}
	return false
}

func isKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FAF
}
