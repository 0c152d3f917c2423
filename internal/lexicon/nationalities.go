package lexicon

// nationalityToNation maps demonyms (and continental adjectives) to the place
// they refer to. Lookups are exact; demonyms are proper adjectives.
var nationalityToNation = map[string]string{
	"African": "Africa", "Antarctic": "Antarctica", "Americana": "Americas",
	"Asian": "Asia", "Middle Eastern": "Middle East",
	"Australasian": "Australasia", "Australian": "Australia",
	"Eurasian": "Eurasia", "European": "Europe",
	"North American": "North America", "Oceanian": "Oceania",
	"South American": "South America",
	"Afghan":          "Afghanistan", "Albanian": "Albania",
	"Algerian": "Algeria", "American Samoan": "American Samoa",
	"Andorran": "Andorra", "Angolan": "Angola", "Anguillan": "Anguilla",
	"Antiguan": "Antigua and Barbuda", "Argentine": "Argentina",
	"Argentinean": "Argentina", "Argentinian": "Argentina",
	"Armenian": "Armenia", "Aruban": "Aruba", "Austrian": "Austria",
	"Azerbaijani": "Azerbaijan", "Azeri": "Azerbaijan",
	"Bahamian": "Bahamas", "Bahraini": "Bahrain",
	"Bangladeshi": "Bangladesh", "Barbadian": "Barbados",
	"Bajan": "Barbados", "Belarusian": "Belarus", "Belgian": "Belgium",
	"Belizean": "Belize", "Beninese": "Benin", "Bermudian": "Bermuda",
	"Bermudan": "Bermuda", "Bhutanese": "Bhutan", "Bolivian": "Bolivia",
	"Bosnian": "Bosnia and Herzegovina", "Bosniak": "Bosnia and Herzegovina",
	"Herzegovinian": "Bosnia and Herzegovina", "Botswanan": "Botswana",
	"Brazilian": "Brazil", "British Virgin Island": "British Virgin Islands",
	"Bruneian": "Brunei", "Bulgarian": "Bulgaria",
	"Burkinabe": "Burkina Faso", "Burmese": "Burma",
	"Burundian": "Burundi", "Cambodian": "Cambodia",
	"Cameroonian": "Cameroon", "Canadian": "Canada",
	"Cape Verdean": "Cape Verde", "Caymanian": "Cayman Islands",
	"Central African": "Central African Republic", "Chadian": "Chad",
	"Chilean": "Chile", "Chinese": "People's Republic of China",
	"Christmas Island": "Christmas Island",
	"Cocos Island":     "Cocos (Keeling) Islands", "Colombian": "Colombia",
	"Comorian": "Comoros", "Congolese": "Democratic Republic of the Congo",
	"Cook Island": "Cook Islands", "Costa Rican": "Costa Rica",
	"Ivorian": "Côte d'Ivoire", "Croatian": "Croatia", "Cuban": "Cuba",
	"Cypriot": "Cyprus", "Czech": "Czech Republic", "Danish": "Denmark",
	// "Dominican" names a citizen of both Dominica and the Dominican
	// Republic. The bare key resolves to the Dominican Republic; the
	// disambiguated key keeps Dominica in the nation set.
	"Djiboutian": "Djibouti", "Dominican": "Dominican Republic",
	"Dominican (Dominica)": "Dominica",
	"Timorese": "East Timor", "Ecuadorian": "Ecuador",
	"Egyptian": "Egypt", "Salvadoran": "El Salvador",
	"English": "England", "Equatorial Guinean": "Equatorial Guinea",
	"Eritrean": "Eritrea", "Estonian": "Estonia", "Ethiopian": "Ethiopia",
	"Falkland Island": "Falkland Islands", "Faroese": "Faroe Islands",
	"Fijian": "Fiji", "Finnish": "Finland", "French": "France",
	"French Guianese": "French Guiana",
	"French Polynesian": "French Polynesia", "Gabonese": "Gabon",
	"Gambian": "Gambia", "Georgian": "Georgia", "German": "Germany",
	"Ghanaian": "Ghana", "Gibraltar": "Gibraltar", "Greek": "Greece",
	"Greenlandic": "Greenland", "Grenadian": "Grenada",
	"Guadeloupe": "Guadeloupe", "Guamanian": "Guam",
	"Guatemalan": "Guatemala", "Guinean": "Guinea", "Guyanese": "Guyana",
	"Haitian": "Haiti", "Honduran": "Honduras", "Hong Kong": "Hong Kong",
	"Hungarian": "Hungary", "Icelandic": "Iceland", "Indian": "India",
	"Indonesian": "Indonesia", "Iranian": "Iran", "Iraqi": "Iraq",
	"Manx": "Isle of Man", "Israeli": "Israel", "Italian": "Italy",
	"Jamaican": "Jamaica", "Japanese": "Japan", "Jordanian": "Jordan",
	"Kazakhstani": "Kazakhstan", "Kenyan": "Kenya",
	"I-Kiribati": "Kiribati", "North Korean": "North Korea",
	"South Korean": "South Korea", "Kosovar": "Kosovo",
	"Kuwaiti": "Kuwait", "Kyrgyzstani": "Kyrgyzstan", "Laotian": "Laos",
	"Latvian": "Latvia", "Lebanese": "Lebanon", "Basotho": "Lesotho",
	"Liberian": "Liberia", "Libyan": "Libya",
	"Liechtenstein": "Liechtenstein", "Lithuanian": "Lithuania",
	"Luxembourg": "Luxembourg", "Macanese": "Macau",
	"Macedonian": "Republic of Macedonia", "Malagasy": "Madagascar",
	"Malawian": "Malawi", "Malaysian": "Malaysia", "Maldivian": "Maldives",
	"Malian": "Mali", "Maltese": "Malta",
	"Marshallese": "Marshall Islands", "Martiniquais": "Martinique",
	"Mauritanian": "Mauritania", "Mauritian": "Mauritius",
	"Mahoran": "Mayotte", "Mexican": "Mexico", "Micronesian": "Micronesia",
	"Moldovan": "Moldova", "Monégasque": "Monaco", "Mongolian": "Mongolia",
	"Montenegrin": "Montenegro", "Montserratian": "Montserrat",
	"Moroccan": "Morocco", "Mozambican": "Mozambique",
	"Namibian": "Namibia", "Nauruan": "Nauru", "Nepali": "Nepal",
	"Dutch": "Netherlands", "Dutch Antillean": "Netherlands Antilles",
	"New Caledonian": "New Caledonia", "New Zealand": "New Zealand",
	"Nicaraguan": "Nicaragua", "Niuean": "Niue", "Nigerien": "Niger",
	"Nigerian": "Nigeria", "Norwegian": "Norway",
	"Northern Irish": "Northern Ireland",
	"Northern Marianan": "Northern Marianas", "Omani": "Oman",
	"Pakistani": "Pakistan", "Palestinian": "Palestinian territories",
	"Palauan": "Palau", "Panamanian": "Panama",
	"Papua New Guinean": "Papua New Guinea", "Paraguayan": "Paraguay",
	"Peruvian": "Peru", "Philippine": "Philippines",
	"Filipino": "Philippines", "Pitcairn Island": "Pitcairn Island",
	"Polish": "Poland", "Portuguese": "Portugal",
	"Puerto Rican": "Puerto Rico", "Qatari": "Qatar",
	"Irish": "Republic of Ireland", "Réunionese": "Réunion",
	"Romanian": "Romania", "Russian": "Russia", "Rwandan": "Rwanda",
	"St. Helenian": "St. Helena", "Kittitian": "St. Kitts and Nevis",
	"St. Lucian": "St. Lucia",
	"Saint-Pierrais": "Saint-Pierre and Miquelon",
	"St. Vincentian": "St. Vincent and the Grenadines", "Samoan": "Samoa",
	"Sammarinese": "San Marino", "São Toméan": "São Tomé and Príncipe",
	"Saudi": "Saudi Arabia", "Scottish": "Scotland",
	"Senegalese": "Senegal", "Serbian": "Serbia",
	"Seychellois": "Seychelles", "Sierra Leonean": "Sierra Leone",
	"Singaporean": "Singapore", "Slovak": "Slovakia",
	"Slovene": "Slovenia", "Slovenian": "Slovenia",
	"Solomon Island": "Solomon Islands", "Somali": "Somalia",
	"Somaliland": "Somaliland", "South African": "South Africa",
	"Spanish": "Spain", "Sri Lankan": "Sri Lanka", "Sudanese": "Sudan",
	"Surinamese": "Surinam", "Swazi": "Swaziland", "Swedish": "Sweden",
	"Swiss": "Switzerland", "Syrian": "Syria", "Taiwanese": "Taiwan",
	"Tajikistani": "Tajikistan", "Tanzanian": "Tanzania",
	"Thai": "Thailand", "Togolese": "Togo", "Tongan": "Tonga",
	"Trinidadian": "Trinidad and Tobago", "Tunisian": "Tunisia",
	"Turkish": "Turkey", "Turkmen": "Turkmenistan", "Tuvaluan": "Tuvalu",
	"Ugandan": "Uganda", "Ukrainian": "Ukraine",
	"Emirati": "United Arab Emirates", "British": "United Kingdom",
	"American": "United States of America", "Uruguayan": "Uruguay",
	"Uzbekistani": "Uzbekistan", "Uzbek": "Uzbekistan",
	"Vanuatuan": "Vanuatu", "Venezuelan": "Venezuela",
	"Vietnamese": "Vietnam", "Virgin Island": "Virgin Islands",
	"Welsh": "Wales", "Wallisian": "Wallis and Futuna",
	"Sahrawi": "Western Sahara", "Yemeni": "Yemen", "Zambian": "Zambia",
	"Zimbabwean": "Zimbabwe",
}

var nationNames = valueSet(nationalityToNation)

// IsNation reports whether s is a nation (or region) named by the table.
func IsNation(s string) bool {
	return nationNames[s]
}

// IsNationality reports whether s is a known demonym.
func IsNationality(s string) bool {
	_, ok := nationalityToNation[s]
	return ok
}

// NationForNationality returns the nation for a demonym, or "".
func NationForNationality(s string) string {
	return nationalityToNation[s]
}
