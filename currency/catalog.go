package currency

// Record describes one catalog currency. Codes follow ISO 4217 plus the
// broker pseudo-currencies used for commodities, indices and crypto.
type Record struct {
	Code      string
	Number    string
	Digits    int
	Name      string
	Locations string
}

// Pair is one conventionally-quoted market pairing. The order of the
// table decides which direction of a conversion symbol is the natural
// market quote; it is scanned top to bottom and must stay in this order.
type Pair struct {
	Base  string
	Quote string
}

// References: instaforex, alpari UK, alpari NZ.
var pairs = []Pair{
	{"EUR", "USD"},
	{"GBP", "USD"},
	{"USD", "JPY"},
	{"USD", "CHF"},
	{"USD", "CAD"},
	{"AUD", "USD"},
	{"NZD", "USD"},
	{"EUR", "JPY"},
	{"EUR", "CHF"},
	{"EUR", "GBP"},
	{"AUD", "CAD"},
	{"AUD", "CHF"},
	{"AUD", "JPY"},
	{"CAD", "CHF"},
	{"CAD", "JPY"},
	{"CHF", "JPY"},
	{"NZD", "CAD"},
	{"NZD", "CHF"},
	{"NZD", "JPY"},
	{"EUR", "AUD"},
	{"GBP", "CHF"},
	{"GBP", "JPY"},
	{"AUD", "NZD"},
	{"EUR", "CAD"},
	{"EUR", "NZD"},
	{"GBP", "AUD"},
	{"GBP", "CAD"},
	{"GBP", "NZD"},
	{"USD", "DKK"},
	{"USD", "NOK"},
	{"USD", "SEK"},
	{"USD", "ZAR"},
	{"AUD", "CZK"},
	{"AUD", "DKK"},
	{"AUD", "HKD"},
	{"AUD", "HUF"},
	{"AUD", "MXN"},
	{"AUD", "NOK"},
	{"AUD", "PLN"},
	{"AUD", "SEK"},
	{"AUD", "SGD"},
	{"AUD", "ZAR"},
	{"CAD", "CZK"},
	{"CAD", "DKK"},
	{"CAD", "HKD"},
	{"CAD", "HUF"},
	{"CAD", "MXN"},
	{"CAD", "NOK"},
	{"CAD", "PLN"},
	{"CAD", "SEK"},
	{"CAD", "SGD"},
	{"CAD", "ZAR"},
	{"CHF", "CZK"},
	{"CHF", "DKK"},
	{"CHF", "HKD"},
	{"CHF", "HUF"},
	{"CHF", "MXN"},
	{"CHF", "NOK"},
	{"CHF", "PLN"},
	{"CHF", "SEK"},
	{"CHF", "SGD"},
	{"CHF", "ZAR"},
	{"EUR", "CZK"},
	{"EUR", "DKK"},
	{"EUR", "HKD"},
	{"EUR", "HUF"},
	{"EUR", "MXN"},
	{"EUR", "NOK"},
	{"EUR", "PLN"},
	{"EUR", "SEK"},
	{"EUR", "SGD"},
	{"EUR", "ZAR"},
	{"GBP", "CZK"},
	{"GBP", "DKK"},
	{"GBP", "HKD"},
	{"GBP", "HUF"},
	{"GBP", "MXN"},
	{"GBP", "NOK"},
	{"GBP", "PLN"},
	{"GBP", "SEK"},
	{"GBP", "SGD"},
	{"GBP", "ZAR"},
	{"NZD", "CZK"},
	{"NZD", "DKK"},
	{"NZD", "HKD"},
	{"NZD", "HUF"},
	{"NZD", "MXN"},
	{"NZD", "NOK"},
	{"NZD", "PLN"},
	{"NZD", "SEK"},
	{"NZD", "SGD"},
	{"NZD", "ZAR"},
	{"USD", "CZK"},
	{"USD", "HKD"},
	{"USD", "HUF"},
	{"USD", "MXN"},
	{"USD", "SGD"},
	{"USD", "PLN"},
	{"CZK", "JPY"},
	{"DKK", "JPY"},
	{"HKD", "JPY"},
	{"HUF", "JPY"},
	{"MXN", "JPY"},
	{"NOK", "JPY"},
	{"SGD", "JPY"},
	{"SEK", "JPY"},
	{"ZAR", "JPY"},
	{"NZD", "HKD"},
	{"USD", "TRY"},
	{"EUR", "TRY"},
	{"USD", "RUR"},
	{"XAG", "EUR"},
	{"XAG", "USD"},
	{"XAU", "AUD"},
	{"XAU", "EUR"},
	{"XAU", "USD"},
	{"XTI", "USD"},
	{"BTC", "USD"},
	{"ETH", "USD"},
	{"US500", "USD"},
	{"AUS200", "AUD"},
	{"GER30", "EUR"},
	{"USTEC", "USD"},
	{"NAS100", "USD"},
	{"SpotCrude", "USD"},
}

// Reference: ISO 4217. Declaration order is load-bearing: the symbol
// resolver scans this table top to bottom and ambiguous substring
// matches are broken by whichever code is declared first.
var records = []Record{
	{"AED", "784", 2, "United Arab Emirates dirham", "United Arab Emirates"},
	{"AFN", "971", 2, "Afghan afghani", "Afghanistan"},
	{"ALL", "008", 2, "Albanian lek", "Albania"},
	{"AMD", "051", 2, "Armenian dram", "Armenia"},
	{"ANG", "532", 2, "Netherlands Antillean guilder/florin", "Curaçao, Sint Maarten"},
	{"AOA", "973", 2, "Angolan kwanza", "Angola"},
	{"ARS", "032", 2, "Argentine peso", "Argentina"},
	{"AUD", "036", 2, "Australian dollar", "Australia, Australian Antarctic Territory, Christmas Island, Cocos (Keeling) Islands, Heard and McDonald Islands, Kiribati, Nauru, Norfolk Island, Tuvalu"},
	{"AWG", "533", 2, "Aruban guilder", "Aruba"},
	{"AZN", "944", 2, "Azerbaijanian manat", "Azerbaijan"},
	{"BAM", "977", 2, "Convertible marks", "Bosnia and Herzegovina"},
	{"BBD", "052", 2, "Barbados dollar", "Barbados"},
	{"BDT", "050", 2, "Bangladeshi taka", "Bangladesh"},
	{"BGN", "975", 2, "Bulgarian lev", "Bulgaria"},
	{"BHD", "048", 3, "Bahraini dinar", "Bahrain"},
	{"BIF", "108", 0, "Burundian franc", "Burundi"},
	{"BMD", "060", 2, "Bermuda dollar", "Bermuda"},
	{"BND", "096", 2, "Brunei dollar", "Brunei, Singapore"},
	{"BOB", "068", 2, "Boliviano", "Bolivia"},
	{"BOV", "984", 2, "Bolivian Mvdol (funds code)", "Bolivia"},
	{"BRL", "986", 2, "Brazilian real", "Brazil"},
	{"BSD", "044", 2, "Bahamian dollar", "Bahamas"},
	{"BTN", "064", 2, "Bhutanese Ngultrum", "Bhutan"},
	{"BWP", "072", 2, "Botswana Pula", "Botswana"},
	{"BYR", "974", 0, "Belarussian ruble", "Belarus"},
	{"BZD", "084", 2, "Belize dollar", "Belize"},
	{"CAD", "124", 2, "Canadian dollar", "Canada"},
	{"CDF", "976", 2, "Franc Congolais", "Democratic Republic of Congo"},
	{"CHE", "947", 2, "WIR euro (complementary currency)", "Switzerland"},
	{"CHF", "756", 2, "Swiss franc", "Switzerland, Liechtenstein"},
	{"CHW", "948", 2, "WIR franc (complementary currency)", "Switzerland"},
	{"CLF", "990", 0, "Unidad de Fomento (funds code)", "Chile"},
	{"CLP", "152", 0, "Chilean peso", "Chile"},
	{"CNY", "156", 2, "Chinese yuan", "Mainland China"},
	{"COP", "170", 2, "Colombian peso", "Colombia"},
	{"COU", "970", 2, "Unidad de Valor Real", "Colombia"},
	{"CRC", "188", 2, "Costa Rican colon", "Costa Rica"},
	{"CUP", "192", 2, "Cuban peso", "Cuba"},
	{"CVE", "132", 0, "Cape Verde escudo", "Cape Verde"},
	{"CZK", "203", 2, "Czech koruna", "Czech Republic"},
	{"DJF", "262", 0, "Djibouti franc", "Djibouti"},
	{"DKK", "208", 2, "Danish krone", "Denmark, Faroe Islands, Greenland"},
	{"DOP", "214", 2, "Dominican peso", "Dominican Republic"},
	{"DZD", "012", 2, "Algerian dinar", "Algeria"},
	{"EEK", "233", 2, "Estonian Kroon", "Estonia"},
	{"EGP", "818", 2, "Egyptian pound", "Egypt"},
	{"ERN", "232", 2, "Eritrean Nakfa", "Eritrea"},
	{"ETB", "230", 2, "Ethiopian birr", "Ethiopia"},
	{"EUR", "978", 2, "Euro", "Some European Union countries"},
	{"FJD", "242", 2, "Fiji dollar", "Fiji"},
	{"FKP", "238", 2, "Falkland Islands pound", "Falkland Islands"},
	{"GBP", "826", 2, "Pound sterling", "United Kingdom, Crown Dependencies (the Isle of Man and the Channel Islands), certain British Overseas Territories (South Georgia and the South Sandwich Islands, British Antarctic Territory and British Indian, Ocean Territory)"},
	{"GEL", "981", 2, "Georgian lari", "Georgia"},
	{"GHS", "936", 2, "Ghanaian cedi", "Ghana"},
	{"GIP", "292", 2, "Gibraltar pound", "Gibraltar"},
	{"GMD", "270", 2, "Gambian dalasi", "Gambia"},
	{"GNF", "324", 0, "Guinea franc", "Guinea"},
	{"GTQ", "320", 2, "Guatemalan quetzal", "Guatemala"},
	{"GYD", "328", 2, "Guyana dollar", "Guyana"},
	{"HKD", "344", 2, "Hong Kong dollar", "Hong Kong Special Administrative Region"},
	{"HNL", "340", 2, "Honduran lempira", "Honduras"},
	{"HRK", "191", 2, "Croatian kuna", "Croatia"},
	{"HTG", "332", 2, "Haiti gourde", "Haiti"},
	{"HUF", "348", 2, "Hungarian forint", "Hungary"},
	{"IDR", "360", 0, "Indonesian rupiah", "Indonesia"},
	{"ILS", "376", 2, "Israeli new sheqel", "Israel"},
	{"INR", "356", 2, "Indian rupee", "Bhutan, India"},
	{"IQD", "368", 0, "Iraqi dinar", "Iraq"},
	{"IRR", "364", 0, "Iranian rial", "Iran"},
	{"ISK", "352", 0, "Iceland krona", "Iceland"},
	{"JMD", "388", 2, "Jamaican dollar", "Jamaica"},
	{"JOD", "400", 3, "Jordanian dinar", "Jordan"},
	{"JPY", "392", 0, "Japanese yen", "Japan"},
	{"KES", "404", 2, "Kenyan shilling", "Kenya"},
	{"KGS", "417", 2, "Kyrgyzstani som", "Kyrgyzstan"},
	{"KHR", "116", 2, "Cambodian riel", "Cambodia"},
	{"KMF", "174", 0, "Comoro franc", "Comoros"},
	{"KPW", "408", 0, "North Korean won", "North Korea"},
	{"KRW", "410", 0, "South Korean won", "South Korea"},
	{"KWD", "414", 3, "Kuwaiti dinar", "Kuwait"},
	{"KYD", "136", 2, "Cayman Islands dollar", "Cayman Islands"},
	{"KZT", "398", 2, "Kazakhstani Tenge", "Kazakhstan"},
	{"LAK", "418", 0, "Lao Kip", "Laos"},
	{"LBP", "422", 0, "Lebanese pound", "Lebanon"},
	{"LKR", "144", 2, "Sri Lanka rupee", "Sri Lanka"},
	{"LRD", "430", 2, "Liberian dollar", "Liberia"},
	{"LSL", "426", 2, "Lesotho Loti", "Lesotho"},
	{"LTL", "440", 2, "Lithuanian litas", "Lithuania"},
	{"LVL", "428", 2, "Latvian lats", "Latvia"},
	{"LYD", "434", 3, "Libyan dinar", "Libya"},
	{"MAD", "504", 2, "Moroccan dirham", "Morocco, Western Sahara"},
	{"MDL", "498", 2, "Moldovan leu", "Moldova"},
	{"MGA", "969", 0, "Malagasy ariary", "Madagascar"},
	{"MKD", "807", 2, "Macedonian Denar", "Former Yugoslav, Republic of Macedonia"},
	{"MMK", "104", 0, "Myanma Kyat", "Myanmar"},
	{"MNT", "496", 2, "Mongolian Tugrik", "Mongolia"},
	{"MOP", "446", 1, "Macanese Pataca", "Macau Special Administrative Region"},
	{"MRO", "478", 0, "Mauritanian ouguiya", "Mauritania"},
	{"MUR", "480", 2, "Mauritius rupee", "Mauritius"},
	{"MVR", "462", 2, "Maldivian rufiyaa", "Maldives"},
	{"MWK", "454", 2, "Malawian kwacha", "Malawi"},
	{"MXN", "484", 2, "Mexican peso", "Mexico"},
	{"MXV", "979", 2, "Mexican Unidad de Inversion (UDI) (funds code)", "Mexico"},
	{"MYR", "458", 2, "Malaysian ringgit", "Malaysia"},
	{"MZN", "943", 2, "Mozambican metical", "Mozambique"},
	{"NAD", "516", 2, "Namibian dollar", "Namibia"},
	{"NGN", "566", 2, "Nigerian naira", "Nigeria"},
	{"NIO", "558", 2, "Cordoba oro", "Nicaragua"},
	{"NOK", "578", 2, "Norwegian krone", "Norway"},
	{"NPR", "524", 2, "Nepalese rupee", "Nepal"},
	{"NZD", "554", 2, "New Zealand dollar", "Cook Islands, New Zealand, Niue, Pitcairn, Tokelau"},
	{"OMR", "512", 3, "Omani Rial", "Oman"},
	{"PAB", "590", 2, "Panamanian balboa", "Panama"},
	{"PEN", "604", 2, "Peruvian nuevo sol", "Peru"},
	{"PGK", "598", 2, "Papua New Guinean kina", "Papua New Guinea"},
	{"PHP", "608", 2, "Philippine peso", "Philippines"},
	{"PKR", "586", 2, "Pakistan rupee", "Pakistan"},
	{"PLN", "985", 2, "Polish zloty", "Poland"},
	{"PYG", "600", 0, "Paraguayan Guarani", "Paraguay"},
	{"QAR", "634", 2, "Qatari rial", "Qatar"},
	{"RON", "946", 2, "Romanian new leu", "Romania"},
	{"RSD", "941", 2, "Serbian dinar", "Serbia"},
	{"RUB", "643", 2, "Russian ruble", "Russia, Abkhazia, South Ossetia"},
	{"RWF", "646", 0, "Rwandan franc", "Rwanda"},
	{"SAR", "682", 2, "Saudi riyal", "Saudi Arabia"},
	{"SBD", "090", 2, "Solomon Islands dollar", "Solomon Islands"},
	{"SCR", "690", 2, "Seychelles rupee", "Seychelles"},
	{"SDG", "938", 2, "Sudanese pound", "Sudan"},
	{"SEK", "752", 2, "Swedish krona", "Sweden"},
	{"SGD", "702", 2, "Singapore dollar", "Singapore, Brunei"},
	{"SHP", "654", 2, "Saint Helena pound", "Saint Helena"},
	{"SKK", "703", 2, "Slovak koruna", "Slovakia"},
	{"SLL", "694", 0, "Sierra Leonean Leone", "Sierra Leone"},
	{"SOS", "706", 2, "Somali shilling", "Somalia"},
	{"SRD", "968", 2, "Surinam dollar", "Suriname"},
	{"STD", "678", 0, "São Tomé and Príncipe Dobra", "São Tomé and Príncipe"},
	{"SYP", "760", 2, "Syrian pound", "Syria"},
	{"SZL", "748", 2, "Lilangeni", "Swaziland"},
	{"THB", "764", 2, "Thai baht", "Thailand"},
	{"TJS", "972", 2, "Tajikistani somoni", "Tajikistan"},
	{"TMM", "795", 2, "Turkmenistani manat", "Turkmenistan"},
	{"TND", "788", 3, "Tunisian dinar", "Tunisia"},
	{"TOP", "776", 2, "Tongan pa'anga", "Tonga"},
	{"TRY", "949", 2, "New Turkish lira", "Turkey"},
	{"TTD", "780", 2, "Trinidad and Tobago dollar", "Trinidad and Tobago"},
	{"TWD", "901", 2, "New Taiwan dollar", "Taiwan and other islands that are under the effective control of the Republic of China (ROC)"},
	{"TZS", "834", 2, "Tanzanian shilling", "Tanzania"},
	{"UAH", "980", 2, "Ukrainian hryvnia", "Ukraine"},
	{"UGX", "800", 0, "Uganda shilling", "Uganda"},
	{"USD", "840", 2, "US dollar", "American Samoa, British Indian Ocean Territory, Ecuador, El Salvador, Guam, Haiti, Marshall Islands, Micronesia, Northern Mariana Islands, Palau, Panama, Puerto Rico, Timor-Leste, Turks and Caicos Islands, United States, Virgin Islands"},
	{"USN", "997", 2, "United States dollar (next day) (funds code)", "United States"},
	{"USS", "998", 2, "United States dollar (same day) (funds code) (one source claims it is no longer used, but it is still on the ISO 4217-MA list)", "United States"},
	{"UYU", "858", 2, "Uruguayan Peso", "Uruguayo, Uruguay"},
	{"UZS", "860", 2, "Uzbekistan som", "Uzbekistan"},
	{"VEF", "937", 2, "Venezuelan bolívar fuerte", "Venezuela"},
	{"VND", "704", 0, "Vietnamese dong", "Vietnam"},
	{"VUV", "548", 0, "Vanuatu Vatu", "Vanuatu"},
	{"WST", "882", 2, "Samoan tala", "Samoa"},
	{"XAF", "950", 0, "CFA franc BEAC", "Cameroon, Central African Republic, Congo, Chad, Equatorial Guinea, Gabon"},
	{"XAG", "961", 0, "Silver (one troy ounce)", ""},
	{"XAU", "959", 0, "Gold (one troy ounce)", ""},
	{"XBA", "955", 0, "European Composite Unit (EURCO) (bond market unit)", ""},
	{"XBB", "956", 0, "European Monetary Unit (E.M.U.-6) (bond market unit)", ""},
	{"XBC", "957", 0, "European Unit of Account 9 (E.U.A.-9) (bond market unit)", ""},
	{"XBD", "958", 0, "European Unit of Account 17 (E.U.A.-17) (bond market unit)", ""},
	{"XCD", "951", 2, "East Caribbean dollar", "Anguilla, Antigua and Barbuda, Dominica, Grenada, Montserrat, Saint Kitts and Nevis, Saint Lucia, Saint Vincent and the Grenadines"},
	{"XDR", "960", 0, "Special Drawing Rights", "International Monetary Fund"},
	{"XFU", "Nil", 0, "UIC franc (special settlement currency)", "International Union of Railways"},
	{"XOF", "952", 0, "CFA Franc BCEAO", "Benin, Burkina Faso, Côte d'Ivoire, Guinea-Bissau, Mali, Niger, Senegal, Togo"},
	{"XPD", "964", 0, "Palladium (one troy ounce)", ""},
	{"XPF", "953", 0, "CFP franc", "French Polynesia, New Caledonia, Wallis and Futuna"},
	{"XPT", "962", 0, "Platinum (one troy ounce)", ""},
	{"XTS", "963", 0, "Code reserved for testing purposes", ""},
	{"XXX", "999", 0, "No currency", ""},
	{"YER", "886", 0, "Yemeni rial", "Yemen"},
	{"ZAR", "710", 2, "South African rand", "South Africa"},
	{"ZMK", "894", 0, "Kwacha", "Zambia"},
	{"ZWD", "716", 2, "Zimbabwe dollar", "Zimbabwe"},
	{"US500", "996", 2, "US 500 index", ""},
	{"AUS200", "995", 1, "ASX 200 index", ""},
	{"GER30", "994", 1, "GER 30 index", ""},
	{"XTI", "991", 2, "XTI OIL", ""},
	{"BTC", "992", 2, "BitCoin", ""},
	{"ETH", "899", 2, "EthenetCoin", ""},
	{"USTEC", "993", 2, "US 100 Tech index", ""},
	{"NAS100", "988", 2, "US 100 Tech index", ""},
	{"SpotCrude", "989", 3, "Spot Crude", ""},
}
