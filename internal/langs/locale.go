package langs

// Locale maps language names to the short locale codes used by
// TranslateGemma ("en", "fr", regional variants like "de-DE").
var Locale = map[string]string{
	"Arabic":                  "ar",
	"Bengali":                 "bn",
	"Bulgarian":               "bg",
	"Catalan":                 "ca",
	"Chinese (Simplified)":    "zh-CN",
	"Chinese (Traditional)":   "zh-TW",
	"Croatian":                "hr",
	"Czech":                   "cs",
	"Danish":                  "da",
	"Dutch":                   "nl",
	"English":                 "en",
	"English (United Kingdom)": "en-GB",
	"Estonian":                "et",
	"Finnish":                 "fi",
	"French":                  "fr",
	"French (Canada)":         "fr-CA",
	"German":                  "de",
	"German (Germany)":        "de-DE",
	"Greek":                   "el",
	"Gujarati":                "gu",
	"Hebrew":                  "iw",
	"Hindi":                   "hi",
	"Hungarian":               "hu",
	"Icelandic":               "is",
	"Indonesian":              "id",
	"Italian":                 "it",
	"Japanese":                "ja",
	"Kannada":                 "kn",
	"Korean":                  "ko",
	"Latvian":                 "lv",
	"Lithuanian":              "lt",
	"Malay":                   "ms",
	"Malayalam":               "ml",
	"Marathi":                 "mr",
	"Norwegian":               "no",
	"Persian":                 "fa",
	"Polish":                  "pl",
	"Portuguese":              "pt",
	"Portuguese (Brazil)":     "pt-BR",
	"Portuguese (Portugal)":   "pt-PT",
	"Romanian":                "ro",
	"Russian":                 "ru",
	"Serbian":                 "sr",
	"Slovak":                  "sk",
	"Slovenian":               "sl",
	"Spanish":                 "es",
	"Spanish (Mexico)":        "es-MX",
	"Spanish (Spain)":         "es-ES",
	"Swahili":                 "sw",
	"Swedish":                 "sv",
	"Tamil":                   "ta",
	"Telugu":                  "te",
	"Thai":                    "th",
	"Turkish":                 "tr",
	"Ukrainian":               "uk",
	"Urdu":                    "ur",
	"Vietnamese":              "vi",
}
