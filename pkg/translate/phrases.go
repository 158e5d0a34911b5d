package translate

import (
	"strings"
)

// phrase maps one English phrase to its translation. Table order is
// significant: the substring scan takes the first matching entry.
type phrase struct {
	english string
	foreign string
}

// phraseTables holds a small set of common phrases per language. This is
// the deterministic offline fallback; fidelity is intentionally low.
var phraseTables = map[string][]phrase{
	"es": {
		{"hello", "hola"},
		{"how are you", "cómo estás"},
		{"good morning", "buenos días"},
		{"thank you", "gracias"},
		{"goodbye", "adiós"},
		{"yes", "sí"},
		{"no", "no"},
		{"please", "por favor"},
		{"excuse me", "perdón"},
		{"i love you", "te amo"},
	},
	"fr": {
		{"hello", "bonjour"},
		{"how are you", "comment allez-vous"},
		{"good morning", "bonjour"},
		{"thank you", "merci"},
		{"goodbye", "au revoir"},
		{"yes", "oui"},
		{"no", "non"},
		{"please", "s'il vous plaît"},
		{"excuse me", "excusez-moi"},
		{"i love you", "je t'aime"},
	},
	"de": {
		{"hello", "hallo"},
		{"how are you", "wie geht es dir"},
		{"good morning", "guten morgen"},
		{"thank you", "danke"},
		{"goodbye", "auf wiedersehen"},
		{"yes", "ja"},
		{"no", "nein"},
		{"please", "bitte"},
		{"excuse me", "entschuldigung"},
		{"i love you", "ich liebe dich"},
	},
	"it": {
		{"hello", "ciao"},
		{"how are you", "come stai"},
		{"good morning", "buongiorno"},
		{"thank you", "grazie"},
		{"goodbye", "arrivederci"},
		{"yes", "sì"},
		{"no", "no"},
		{"please", "per favore"},
		{"excuse me", "scusi"},
		{"i love you", "ti amo"},
	},
}

// demoPrefixes tags fallback output per language when no phrase matches.
var demoPrefixes = map[string]string{
	"es": "[DEMO] Traducción: ",
	"fr": "[DEMO] Traduction: ",
	"de": "[DEMO] Übersetzung: ",
	"it": "[DEMO] Traduzione: ",
	"pt": "[DEMO] Tradução: ",
	"ru": "[DEMO] Перевод: ",
	"ja": "[DEMO] 翻訳: ",
	"ko": "[DEMO] 번역: ",
	"zh": "[DEMO] 翻译: ",
}

const genericDemoPrefix = "[DEMO] Translation: "

// LocalTranslation produces a deterministic offline translation. It never
// fails: exact phrase match first, then a substring replacement, then a
// language-tagged placeholder around the original text.
func LocalTranslation(text, targetLanguage string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	table := phraseTables[targetLanguage]

	for _, p := range table {
		if p.english == normalized {
			return p.foreign
		}
	}

	for _, p := range table {
		if strings.Contains(normalized, p.english) {
			return strings.ReplaceAll(normalized, p.english, p.foreign)
		}
	}

	prefix, ok := demoPrefixes[targetLanguage]
	if !ok {
		prefix = genericDemoPrefix
	}
	return prefix + text
}
