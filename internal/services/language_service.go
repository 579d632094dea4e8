package services

import "strings"

// LanguageService resolves UI string keys for the supported languages.
// Lookup is best-effort: an unknown key (or language) falls back to the
// raw key rather than erroring.
type LanguageService struct {
	translations map[string]map[string]string
	defaultLang  string
}

func NewLanguageService(translations map[string]map[string]string, defaultLang string) *LanguageService {
	if _, ok := translations[defaultLang]; !ok {
		defaultLang = "en"
	}
	return &LanguageService{translations: translations, defaultLang: defaultLang}
}

// Translate looks up a key in the given language and substitutes {param}
// placeholders from params.
func (s *LanguageService) Translate(lang, key string, params map[string]string) string {
	table, ok := s.translations[lang]
	if !ok {
		table = s.translations[s.defaultLang]
	}

	text, ok := table[key]
	if !ok {
		text = key
	}

	for param, value := range params {
		text = strings.ReplaceAll(text, "{"+param+"}", value)
	}
	return text
}

// Languages lists the supported language codes.
func (s *LanguageService) Languages() []string {
	codes := make([]string, 0, len(s.translations))
	for code := range s.translations {
		codes = append(codes, code)
	}
	return codes
}

// Table returns the full string table for a language, falling back to the
// default language for unknown codes.
func (s *LanguageService) Table(lang string) map[string]string {
	table, ok := s.translations[lang]
	if !ok {
		table = s.translations[s.defaultLang]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}
