package pictogram

// Language is an ARASAAC search language code.
type Language string

// The language codes supported by the ARASAAC pictogram API.
const (
	LanguageAragonese  Language = "an"
	LanguageArabic     Language = "ar"
	LanguageBulgarian  Language = "bg"
	LanguageBreton     Language = "br"
	LanguageCatalan    Language = "ca"
	LanguageCzech      Language = "cs"
	LanguageDanish     Language = "da"
	LanguageGerman     Language = "de"
	LanguageGreek      Language = "el"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageEstonian   Language = "et"
	LanguageBasque     Language = "eu"
	LanguagePersian    Language = "fa"
	LanguageFrench     Language = "fr"
	LanguageGalician   Language = "gl"
	LanguageHebrew     Language = "he"
	LanguageCroatian   Language = "hr"
	LanguageHungarian  Language = "hu"
	LanguageItalian    Language = "it"
	LanguageKorean     Language = "ko"
	LanguageLithuanian Language = "lt"
	LanguageLatvian    Language = "lv"
	LanguageMacedonian Language = "mk"
	LanguageNorwegian  Language = "nb"
	LanguageDutch      Language = "nl"
	LanguagePolish     Language = "pl"
	LanguagePortuguese Language = "pt"
	LanguageRomanian   Language = "ro"
	LanguageRussian    Language = "ru"
	LanguageSlovak     Language = "sk"
	LanguageAlbanian   Language = "sq"
	LanguageSwedish    Language = "sv"
	LanguageSerbian    Language = "sr"
	LanguageTurkish    Language = "tr"
	LanguageValencian  Language = "val"
	LanguageUkrainian  Language = "uk"
	LanguageChinese    Language = "zh"
)

var languageNames = map[Language]string{
	LanguageAragonese:  "Aragonese",
	LanguageArabic:     "Arabic",
	LanguageBulgarian:  "Bulgarian",
	LanguageBreton:     "Breton",
	LanguageCatalan:    "Catalan",
	LanguageCzech:      "Czech",
	LanguageDanish:     "Danish",
	LanguageGerman:     "German",
	LanguageGreek:      "Greek",
	LanguageEnglish:    "English",
	LanguageSpanish:    "Spanish",
	LanguageEstonian:   "Estonian",
	LanguageBasque:     "Basque",
	LanguagePersian:    "Persian",
	LanguageFrench:     "French",
	LanguageGalician:   "Galician",
	LanguageHebrew:     "Hebrew",
	LanguageCroatian:   "Croatian",
	LanguageHungarian:  "Hungarian",
	LanguageItalian:    "Italian",
	LanguageKorean:     "Korean",
	LanguageLithuanian: "Lithuanian",
	LanguageLatvian:    "Latvian",
	LanguageMacedonian: "Macedonian",
	LanguageNorwegian:  "Norwegian Bokmål",
	LanguageDutch:      "Dutch",
	LanguagePolish:     "Polish",
	LanguagePortuguese: "Portuguese",
	LanguageRomanian:   "Romanian",
	LanguageRussian:    "Russian",
	LanguageSlovak:     "Slovak",
	LanguageAlbanian:   "Albanian",
	LanguageSwedish:    "Swedish",
	LanguageSerbian:    "Serbian",
	LanguageTurkish:    "Turkish",
	LanguageValencian:  "Valencian",
	LanguageUkrainian:  "Ukrainian",
	LanguageChinese:    "Chinese",
}

// DisplayName returns the English name of the language, or the raw code for
// unknown values.
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// IsValid reports whether the code is one of the supported languages.
func (l Language) IsValid() bool {
	_, ok := languageNames[l]
	return ok
}
