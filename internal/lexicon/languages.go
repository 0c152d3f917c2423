package lexicon

import "strings"

// languageCodes maps ISO-639-1 codes to English language names.
var languageCodes = map[string]string{
	"aa": "Afar", "ab": "Abkhazian", "ae": "Avestan", "af": "Afrikaans",
	"ak": "Akan", "am": "Amharic", "an": "Aragonese", "ar": "Arabic",
	"as": "Assamese", "av": "Avaric", "ay": "Aymara", "az": "Azerbaijani",
	"ba": "Bashkir", "be": "Belarusian", "bg": "Bulgarian", "bh": "Bihari",
	"bi": "Bislama", "bm": "Bambara", "bn": "Bengali", "bo": "Tibetan",
	"br": "Breton", "bs": "Bosnian", "ca": "Catalan", "ce": "Chechen",
	"ch": "Chamorro", "co": "Corsican", "cr": "Cree", "cs": "Czech",
	"cu": "Church", "cv": "Chuvash", "cy": "Welsh", "da": "Danish",
	"de": "German", "dv": "Divehi", "dz": "Dzongkha", "ee": "Ewe",
	"el": "Greek", "en": "English", "eo": "Esperanto", "es": "Spanish",
	"et": "Estonian", "eu": "Basque", "fa": "Persian", "ff": "Fulah",
	"fi": "Finnish", "fj": "Fijian", "fo": "Faroese", "fr": "French",
	"fy": "Western Frisian", "ga": "Irish", "gd": "Scottish",
	"gl": "Galician", "gn": "Guaraní", "gu": "Gujarati", "gv": "Manx",
	"ha": "Hausa", "he": "Hebrew", "hi": "Hindi", "ho": "Hiri",
	"hr": "Croatian", "ht": "Haitian", "hu": "Hungarian", "hy": "Armenian",
	"hz": "Herero", "ia": "Interlingua", "id": "Indonesian",
	"ie": "Interlingue", "ig": "Igbo", "ii": "Sichuan", "ik": "Inupiaq",
	"io": "Ido", "is": "Icelandic", "it": "Italian", "iu": "Inuktitut",
	"ja": "Japanese", "jv": "Javanese", "ka": "Georgian", "kg": "Kongo",
	"ki": "Kikuyu", "kj": "Kwanyama", "kk": "Kazakh", "kl": "Kalaallisut",
	"km": "Khmer", "kn": "Kannada", "ko": "Korean", "kr": "Kanuri",
	"ks": "Kashmiri", "ku": "Kurdish", "kv": "Komi", "kw": "Cornish",
	"ky": "Kirghiz", "la": "Latin", "lb": "Luxembourgish", "lg": "Ganda",
	"li": "Limburgish", "ln": "Lingala", "lo": "Lao", "lt": "Lithuanian",
	"lu": "Luba-Katanga", "lv": "Latvian", "mg": "Malagasy",
	"mh": "Marshallese", "mi": "Maori", "mk": "Macedonian",
	"ml": "Malayalam", "mn": "Mongolian", "mo": "Moldavian", "mr": "Marathi",
	"ms": "Malay", "mt": "Maltese", "my": "Burmese", "na": "Nauru",
	"nb": "Norwegian", "nd": "North", "ne": "Nepali", "ng": "Ndonga",
	"nl": "Dutch", "nn": "Norwegian", "no": "Norwegian", "nr": "South",
	"nv": "Navajo", "ny": "Chichewa", "oc": "Occitan", "oj": "Ojibwa",
	"om": "Oromo", "or": "Oriya", "os": "Ossetian", "pa": "Panjabi",
	"pi": "Pali", "pl": "Polish", "ps": "Pashto", "pt": "Portuguese",
	"qu": "Quechua", "rm": "Raeto-Romance", "rn": "Kirundi",
	"ro": "Romanian", "ru": "Russian", "rw": "Kinyarwanda", "ry": "Rusyn",
	"sa": "Sanskrit", "sc": "Sardinian", "sd": "Sindhi", "se": "Northern",
	"sg": "Sango", "sh": "Serbo-Croatian", "si": "Sinhalese", "sk": "Slovak",
	"sl": "Slovenian", "sm": "Samoan", "sn": "Shona", "so": "Somali",
	"sq": "Albanian", "sr": "Serbian", "ss": "Swati", "st": "Sotho",
	"su": "Sundanese", "sv": "Swedish", "sw": "Swahili", "ta": "Tamil",
	"te": "Telugu", "tg": "Tajik", "th": "Thai", "ti": "Tigrinya",
	"tk": "Turkmen", "tl": "Tagalog", "tn": "Tswana", "to": "Tonga",
	"tr": "Turkish", "ts": "Tsonga", "tt": "Tatar", "tw": "Twi",
	"ty": "Tahitian", "ug": "Uighur", "uk": "Ukrainian", "ur": "Urdu",
	"uz": "Uzbek", "ve": "Venda", "vi": "Vietnamese", "vo": "Volapük",
	"wa": "Walloon", "wo": "Wolof", "xh": "Xhosa", "yi": "Yiddish",
	"yo": "Yoruba", "za": "Zhuang", "zh": "Chinese", "zu": "Zulu",
}

var languageNames = valueSet(languageCodes)

// upperFirst uppercases the first byte of an ASCII-led string.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// IsLanguage reports whether s names a language (first letter case-insensitive).
func IsLanguage(s string) bool {
	return languageNames[upperFirst(s)]
}

// IsLanguageCode reports whether s is an ISO-639-1 language code.
func IsLanguageCode(s string) bool {
	_, ok := languageCodes[strings.ToLower(s)]
	return ok
}

// LanguageForCode returns the language name for a code, or "".
func LanguageForCode(s string) string {
	return languageCodes[strings.ToLower(s)]
}
