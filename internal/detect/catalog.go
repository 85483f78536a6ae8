package detect

// Static keyword catalogs. These are calibration data: matching behavior
// downstream depends on the exact contents and ordering, so entries should
// only be appended with care.

// institutionKeywords lists known institution aliases, lowercase. Body text
// matching is whole-word; filename matching is substring (filenames carry no
// reliable word boundaries).
var institutionKeywords = []string{
	// US major banks and card issuers
	"chase", "bank of america", "wells fargo", "citibank", "citi", "citicards", "us bank", "capital one",
	"american express", "discover", "synchrony", "visa", "mastercard", "amex",
	"jpmorgan", "jpm", "jpmc", "bofa", "bac", "wf", "wells", "usbank", "capone",
	// US regional banks
	"pnc", "truist", "citizens bank", "fifth third", "keybank", "huntington", "regions bank",
	"m&t bank", "comerica", "zions bank", "first national", "first citizens", "east west bank",
	"cathay bank", "bank of the west", "first republic", "silicon valley bank", "svb",
	// US credit unions
	"navy federal", "penfed", "state employees", "teachers federal", "alliant",
	// US investment / wealth management
	"fidelity", "schwab", "vanguard", "morgan stanley", "goldman sachs", "merrill lynch",
	"edward jones", "raymond james", "lpl financial", "ameriprise",
	// UK banks
	"hsbc", "barclays", "lloyds", "natwest", "rbs", "royal bank of scotland",
	"santander uk", "halifax", "nationwide", "tsb", "metrobank", "first direct",
	"monzo", "revolut", "starling", "monese", "chime", "ally bank",
	// French banks
	"bnp paribas", "credit agricole", "societe generale", "credit mutuel", "banque populaire",
	"la banque postale", "lcl", "credit lyonnais", "caisse d'epargne",
	// German banks
	"deutsche bank", "commerzbank", "sparkasse", "volksbank", "postbank", "dresdner bank",
	"hypovereinsbank", "landesbank", "bayernlb",
	// Italian banks
	"unicredit", "intesa sanpaolo", "monte dei paschi", "banco popolare", "banca mediolanum",
	"banca popolare", "mps", "mediobanca",
	// Spanish banks
	"bbva", "santander", "caixa", "bankia", "sabadell", "bankinter", "unicaja",
	"ibercaja", "kutxabank", "abanca",
	// Dutch banks
	"ing", "rabobank", "abn amro", "sns bank", "asn bank", "triodos",
	// Swiss banks
	"ubs", "credit suisse", "julius baer", "pictet", "lombard odier", "vontobel",
	"zuercher kantonalbank", "postfinance",
	// Belgian banks
	"kbc", "belfius", "axa bank", "argenta", "keytrade",
	// Nordic banks
	"danske bank", "nordea", "seb", "handelsbanken", "swedbank", "dnb", "op financial",
	"alandsbanken", "aktia", "sparebank",
	// Other European banks
	"erste bank", "raiffeisen", "otp bank", "sberbank", "alfa bank", "tinkoff",
	"millennium", "pkobp", "ing bank slaski", "mbank", "pekao",
	// Indian major banks
	"sbi", "state bank of india", "icici", "hdfc", "axis bank", "pnb", "punjab national bank",
	"kotak", "yes bank", "indusind", "rbl", "idfc", "idbi", "canara bank", "union bank",
	"indian bank", "bank of baroda", "bank of india", "central bank", "indian overseas bank",
	// Indian payment platforms
	"paytm", "phonepe", "gpay", "google pay", "amazon pay", "mobikwik", "freecharge",
	"razorpay", "payu", "cashfree", "instamojo",
	// Chinese major banks
	"icbc", "ccb", "boc", "abc", "bank of china", "industrial and commercial bank",
	"china construction bank", "agricultural bank of china", "china merchants bank",
	"bank of communications", "ping an bank", "china minsheng", "huaxia bank",
	"spdb", "china citic bank", "evergrowing bank",
	// Japanese major banks
	"mufg", "mizuho", "smbc", "sumitomo mitsui", "mitsubishi ufj", "resona", "shinsei",
	"saitama bank", "shizuoka bank", "fukuoka bank", "hokuriku bank",
	// Korean banks
	"kb", "kookmin", "shinhan", "hana", "woori", "nh", "nonghyup", "keb", "korea exchange bank",
	"ibk", "industrial bank of korea", "kdb", "korea development bank",
	// Singapore banks
	"dbs", "ocbc", "uob", "maybank singapore", "cimb singapore",
	// Malaysian banks
	"maybank", "cimb", "public bank", "hong leong bank", "ambank", "rhb bank",
	"affin bank", "alliance bank", "bank islam",
	// Thai banks
	"bangkok bank", "kasikorn", "siam commercial", "krung thai", "tmb", "thanachart",
	"cimb thai", "uob thai",
	// Indonesian banks
	"bca", "mandiri", "bni", "bri", "cimb niaga", "panin bank", "maybank indonesia",
	"uob indonesia", "ocbc nisp", "dbs indonesia",
	// Vietnamese banks
	"vietcombank", "bidv", "vietinbank", "agribank", "techcombank", "mbbank", "acb",
	"vietnam bank", "sacombank", "vpbank",
	// Philippine banks
	"bdo", "bpi", "security bank", "eastwest bank", "rcbc",
	"unionbank", "chinabank", "landbank",
	// Australian / New Zealand banks
	"commonwealth bank", "anz", "westpac", "nab", "asb", "anz nz", "bnz", "kiwibank",
	"bendigo bank", "suncorp", "bankwest", "ing australia", "macquarie",
	// Canadian banks
	"rbc", "td canada", "scotiabank", "bmo", "cibc", "national bank of canada",
	"desjardins", "tangerine", "simplii", "pc financial",
	// Middle Eastern banks
	"emirates nbd", "adcb", "adib", "fgb", "first abu dhabi", "dubai islamic",
	"al rajhi", "sabb", "riyad bank", "samba", "banque saudi fransi", "ncb",
	"qnb", "qatar national bank", "doha bank", "masraf al rayyan",
	"kuwait finance house", "national bank of kuwait", "gulf bank",
	"bank muscat", "nbo", "hsbc oman",
	// Latin American banks
	"banco do brasil", "itau", "bradesco", "santander brasil", "caixa economica",
	"banco de chile", "santander chile", "banco estado", "scotiabank chile",
	"banamex", "banorte", "santander mexico", "hsbc mexico", "bbva mexico",
	"banco de bogota", "bancolombia", "davivienda", "banco popular",
	"banco de venezuela", "banco mercantil", "banesco",
	"banco de la nacion", "bbva peru", "interbank", "scotiabank peru",
	// African banks
	"standard bank", "absa", "nedbank", "fnb", "firstrand", "capitec",
	"access bank", "gtbank", "zenith bank", "uba", "first bank",
	"equity bank", "kcb", "cooperative bank", "diamond trust",
	// Card networks
	"jcb", "unionpay", "diners club", "diners", "dinersclub", "rupay",
	// Global investment platforms
	"td ameritrade", "etrade", "robinhood", "interactive brokers", "etoro", "degiro",
	"icici direct", "hdfc securities", "zerodha", "upstox", "groww", "paytm money",
	"mufg securities", "nomura", "samsung securities", "mirae asset", "citic securities",
	"huatai securities", "comdirect", "consorsbank", "binckbank", "lynx", "boursorama",
	"selfbank", "renta 4", "finecobank", "directa", "trading 212", "freetrade",
	"revolut trading", "webull", "sofi", "m1 finance", "public", "stash",
	// Other global institutions
	"standard chartered", "jpmorgan chase", "hsbc global", "citibank global",
}

// canonicalInstitutionNames maps common aliases to display names. Keywords
// absent from this map fall back to first-letter capitalization.
var canonicalInstitutionNames = map[string]string{
	"bofa":            "Bank of America",
	"bank of america": "Bank of America",
	"wf":              "Wells Fargo",
	"wells fargo":     "Wells Fargo",
	"usbank":          "U.S. Bank",
	"us bank":         "U.S. Bank",
	"capone":          "Capital One",
	"capitol one":     "Capital One",
	"capital one":     "Capital One",
	"jpm":             "JPMorgan Chase",
	"jpmorgan":        "JPMorgan Chase",
	"amex":            "American Express",
	"american express": "American Express",
	"chase":           "Chase",
	"citi":            "Citibank",
	"citibank":        "Citibank",
	"citicards":       "Citibank",
	"east west bank":  "East West Bank",
	"eastwest bank":   "East West Bank",
}

// typeKeyword binds a lowercase keyword to an account type. Entries are
// checked in order: credit-card keywords come first so "credit card
// statement" never classifies as depository, and multi-word keywords precede
// the generic single words they contain ("home equity" before "loan").
type typeKeyword struct {
	keyword     string
	accountType string
}

var accountTypeKeywords = []typeKeyword{
	// Credit cards (most specific, checked first)
	{"credit card", TypeCredit},
	{"creditcard", TypeCredit},
	{"citi cash card", TypeCredit},
	{"citi cashcard", TypeCredit},
	{"card", TypeCredit},

	// Deposit accounts
	{"certificate of deposit", TypeDepository},
	{"recurring deposit", TypeDepository},
	{"fixed deposit", TypeDepository},
	{"term deposit", TypeDepository},
	{"time deposit", TypeDepository},
	{"money market", TypeDepository},
	{"checking", TypeDepository},
	{"check", TypeDepository},
	{"savings", TypeDepository},
	{"saving", TypeDepository},
	{"current", TypeDepository},
	{"giro", TypeDepository},
	{"transactional", TypeDepository},
	{"transaction", TypeDepository},
	{"demand", TypeDepository},

	// Loans (multi-word before generic)
	{"home equity", TypeLoan},
	{"heloc", TypeLoan},
	{"line of credit", TypeLoan},
	{"credit line", TypeLoan},
	{"housing loan", TypeLoan},
	{"home loan", TypeLoan},
	{"car loan", TypeLoan},
	{"vehicle loan", TypeLoan},
	{"education loan", TypeLoan},
	{"business loan", TypeLoan},
	{"commercial loan", TypeLoan},
	{"personal loan", TypeLoan},
	{"auto loan", TypeLoan},
	{"mortgage", TypeLoan},
	{"overdraft", TypeLoan},
	{"loan", TypeLoan},
	{"student", TypeLoan},

	// Card networks and generic credit (after loan multi-words)
	{"visa", TypeCredit},
	{"mastercard", TypeCredit},
	{"amex", TypeCredit},
	{"american express", TypeCredit},
	{"credit", TypeCredit},

	// Investments
	{"mutual fund", TypeInvestment},
	{"mutualfund", TypeInvestment},
	{"government bond", TypeInvestment},
	{"corporate bond", TypeInvestment},
	{"demat account", TypeInvestment},
	{"demat", TypeInvestment},
	{"brokerage", TypeInvestment},
	{"investment", TypeInvestment},
	{"trading", TypeInvestment},
	{"stocks", TypeInvestment},
	{"stock", TypeInvestment},
	{"equity", TypeInvestment},
	{"etf", TypeInvestment},
	{"bonds", TypeInvestment},
	{"bond", TypeInvestment},
	{"t-bill", TypeInvestment},
	{"treasury", TypeInvestment},
	{"commodity", TypeInvestment},
	{"forex", TypeInvestment},
	{"derivatives", TypeInvestment},
	{"options", TypeInvestment},
	{"futures", TypeInvestment},
	{"cryptocurrency", TypeInvestment},
	{"crypto", TypeInvestment},
	{"bitcoin", TypeInvestment},
	{"rothira", TypeInvestment},
	{"roth", TypeInvestment},
	{"ira", TypeInvestment},
	{"401k", TypeInvestment},
	{"403b", TypeInvestment},
	{"pension", TypeInvestment},
	{"superannuation", TypeInvestment},
	{"kiwisaver", TypeInvestment},
	{"ppf", TypeInvestment},
	{"epf", TypeInvestment},
	{"provident", TypeInvestment},
	{"retirement", TypeInvestment},
	{"cpf", TypeInvestment},
	{"kwsp", TypeInvestment},
	{"social security", TypeInvestment},
	{"national pension", TypeInvestment},
	{"fidelity", TypeInvestment},
	{"vanguard", TypeInvestment},
	{"schwab", TypeInvestment},
	{"robinhood", TypeInvestment},
	{"etrade", TypeInvestment},
	{"td ameritrade", TypeInvestment},
	{"icici direct", TypeInvestment},
	{"hdfc securities", TypeInvestment},
	{"zerodha", TypeInvestment},
	{"upstox", TypeInvestment},
	{"groww", TypeInvestment},
	{"paytm money", TypeInvestment},
}

// transactionColumnKeywords signal the start of a transaction table inside
// statement text. A line matching 2+ of these (whole word) opens the
// transaction section.
var transactionColumnKeywords = []string{
	"date", "posting date", "transaction date", "value date",
	"amount", "debit", "credit", "balance",
	"description", "details", "memo", "notes",
}

// tableColumnKeywords extends the section-split list for classifying a header
// row as a transaction table (3+ hits required there).
var tableColumnKeywords = append(transactionColumnKeywords[:len(transactionColumnKeywords):len(transactionColumnKeywords)],
	"type", "transaction type", "category",
	"check", "check number", "check or slip", "reference", "ref",
)

// creditCardIndicators are issuer-independent phrases that mark a statement
// as a credit card statement.
var creditCardIndicators = []string{
	"credit card",
	"card statement",
	"credit limit",
	"available credit",
	"cash advance",
	"cash advances",
	"minimum payment",
	"payment due date",
	"billing period",
	"credit counseling",
	"new balance",
	"previous balance",
	"purchases",
	"interest charge",
	"annual fee",
	"apr",
	"annual percentage rate",
}

// cardProductKeywords mark card product vocabulary; combined with an
// institution hit they also imply a credit card statement.
var cardProductKeywords = []string{
	"card", "rewards", "platinum", "gold", "silver", "preferred",
	"signature", "world", "elite", "infinite", "reserve", "freedom",
	"sapphire", "double cash", "cash back", "miles", "points",
	"venture", "savor", "quicksilver", "spark", "freedom unlimited",
	"unlimited", "blue cash", "everyday", "delta", "marriott", "hilton",
	"hyatt", "ihg", "aeroplan", "avios", "skywards",
	"classic", "premium", "black", "titanium", "carbon", "metal",
	"diamond", "imperial", "royal", "prestige", "exclusive",
	"credit", "debit", "charge", "prepaid", "gift", "travel", "business",
}

// Column-label keyword lists for header-row analysis.
var (
	accountNumberColumnKeywords = []string{
		"account number", "account #", "account no", "accountno", "acct number", "acct #", "acct no",
		"card number", "card #", "card no", "credit card number", "credit card #", "credit card no",
		"debit card number", "debit card #", "debit card no",
		"savings account number", "savings account #", "checking account number", "checking account #",
		"savings #", "checking #",
		"investment account number", "investment account #", "brokerage account number", "brokerage account #",
		"investment #", "brokerage #", "investment account", "brokerage account",
		"loan account number", "loan account #", "loan number", "loan #", "loan no",
		"mortgage account number", "mortgage account #", "mortgage number", "mortgage #",
		"auto loan number", "auto loan #", "personal loan number", "personal loan #",
		"account ending", "card ending", "acct ending", "account ending in", "card ending in", "acct ending in",
		"account ending with", "card ending with", "acct ending with",
		"account with last 4", "card with last 4", "account last 4 digits", "card last 4 digits",
		"last 4 digits", "last 4 numbers", "last four digits", "last four numbers",
		"account identifier", "account id", "account code",
	}

	accountNameColumnKeywords = []string{
		"account name", "accountname", "account", "acct name",
	}

	institutionColumnKeywords = []string{
		"institution", "institution name", "bank", "bank name", "financial institution",
		"issuer", "issuer name", "card issuer", "banking institution", "card account at",
		"online account at", "online chat at", "write us at",
	}

	productNameColumnKeywords = []string{
		"product name", "product", "card name", "account product", "card product",
		"product description", "account description", "card description",
		"product type", "card type", "account type name",
	}

	accountTypeColumnKeywords = []string{
		"account type", "type", "account category", "category",
		"product type", "card type", "account classification",
	}
)

// agreementSectionKeywords locate card/service agreement sections; card
// product names frequently sit there rather than in the first page.
var agreementSectionKeywords = []string{
	"service agreement", "cardholder agreement", "cardmember agreement",
	"terms and conditions", "card agreement", "account agreement",
}

// holderExcludedWords disqualify a holder-name candidate when present as a
// whole word.
var holderExcludedWords = []string{
	"sale", "post", "date", "description", "amount",
	"payments", "credits", "adjustments", "summary", "history",
}

// usStateAbbreviations: a standalone token from this set inside a candidate
// means the text is an address line, not a person's name.
var usStateAbbreviations = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true,
	"DE": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true, "IN": true,
	"IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MD": true, "MA": true,
	"MI": true, "MN": true, "MS": true, "MO": true, "MT": true, "NE": true, "NV": true,
	"NH": true, "NJ": true, "NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true, "WI": true,
	"WY": true, "DC": true,
}

// Product-name extraction vocabulary, ordered most specific first.
var productSpecificIndicators = []string{
	"amazon prime visa", "prime rewards visa", "prime visa signature", "amazon prime rewards",
	"amazon prime card", "prime visa", "prime card",
	"marriott bonvoy premier", "marriott bonvoy", "double cash", "cash back",
	"active cash", "blue cash", "freedom ultimate", "freedom unlimited", "freedom",
	"sapphire reserve", "sapphire preferred", "sapphire",
	"visa signature", "visa infinite", "visa platinum", "visa classic",
	"mastercard world elite", "mastercard world", "mastercard platinum", "mastercard gold",
	"amex platinum", "amex gold", "amex green", "amex blue",
	"quicksilver", "venture", "savor", "spark",
	"diamond preferred", "premier",
	"unlimited", "everyday", "miles", "points",
	"hilton", "hyatt", "delta", "marriott", "bonvoy",
	"platinum", "gold", "silver", "titanium",
	"signature", "world", "elite", "infinite", "reserve", "preferred", "ultimate",
	"classic", "premium", "black", "diamond", "imperial",
	"royal", "prestige", "exclusive", "travel", "business", "rewards",
	"card", "®", "™",
}

// productStrongIndicators override generic-term and URL filtering: a line
// carrying one of these is a product name even next to boilerplate.
var productStrongIndicators = []string{
	"prime visa", "amazon prime visa", "amazon prime card", "prime rewards visa",
	"prime visa signature", "amazon prime rewards",
	"freedom ultimate", "freedom unlimited", "freedom", "sapphire reserve",
	"sapphire preferred", "sapphire", "active cash", "double cash", "cash back",
	"blue cash", "marriott bonvoy premier", "marriott bonvoy",
	"visa signature", "visa infinite", "visa platinum",
	"mastercard world", "mastercard world elite",
	"amex platinum", "amex gold",
	"quicksilver", "spark", "venture", "savor",
}

// productGenericSkipTerms reject lines that are app/site boilerplate rather
// than product names.
var productGenericSkipTerms = []string{
	"mobile app", "mobile", "app", "website", "statement",
	"account", "login", "register", "contact", "support", "help",
}

// productActionPhrases mark instruction lines ("visit", "log in") that never
// carry a product name when combined with a URL.
var productActionPhrases = []string{
	"activate for free", "visit a", "visit", "go to", "log in", "sign in",
	"register", "enroll", "call", "contact us", "customer service",
}

// productRankedNames orders final candidate selection, most specific first.
var productRankedNames = []string{
	"prime visa", "amazon prime visa", "amazon prime card", "prime rewards visa",
	"prime visa signature", "amazon prime rewards", "prime card",
	"marriott bonvoy premier", "marriott bonvoy", "bonvoy premier", "bonvoy",
	"freedom ultimate", "freedom unlimited", "freedom", "active cash",
	"sapphire reserve", "sapphire preferred", "sapphire",
	"double cash", "cash back", "blue cash",
	"visa signature", "visa infinite", "visa platinum", "visa classic",
	"mastercard world elite", "mastercard world", "mastercard platinum",
	"amex platinum", "amex gold", "amex green",
	"quicksilver", "spark", "venture", "savor",
	"premier", "diamond preferred",
	"it", "miles",
	"unlimited", "everyday", "platinum", "gold", "silver",
	"signature", "world", "elite", "infinite", "ultimate",
	"hilton", "hyatt", "delta", "marriott",
}

// productValidationKeywords: a capitalization-bent product candidate must
// still contain at least one of these to count as a card product name.
var productValidationKeywords = []string{
	"prime", "visa", "mastercard", "amex", "american express", "discover",
	"platinum", "gold", "silver", "signature", "world", "elite", "infinite",
	"reserve", "preferred", "freedom", "sapphire", "bonvoy", "marriott",
	"hilton", "hyatt", "delta", "venture", "savor", "quicksilver", "spark",
	"cash back", "cashback", "rewards", "miles", "points", "card",
}

// productLowercaseAllowed are product words that legitimately appear all
// lowercase in statements.
var productLowercaseAllowed = map[string]bool{
	"platinum": true, "gold": true, "silver": true, "signature": true, "world": true,
	"elite": true, "infinite": true, "reserve": true, "preferred": true, "freedom": true,
	"sapphire": true, "bonvoy": true, "marriott": true, "hilton": true, "hyatt": true,
	"delta": true, "venture": true, "savor": true, "quicksilver": true, "spark": true,
	"unlimited": true, "everyday": true, "premier": true, "classic": true, "premium": true,
	"black": true, "coral": true, "diamond": true, "imperial": true, "royal": true,
	"prestige": true, "exclusive": true, "travel": true, "business": true, "rewards": true,
	"miles": true, "points": true, "cash": true, "simplicity": true, "latitude": true,
	"mastercard": true,
}

// productSmallWords may stay lowercase inside an otherwise capitalized name.
var productSmallWords = map[string]bool{
	"of": true, "the": true, "and": true, "or": true, "for": true,
	"at": true, "in": true, "on": true, "to": true, "b": true,
}

// productBlacklistPhrases reject contact/boilerplate lines during product
// name validation.
var productBlacklistPhrases = []string{
	"write us", "questions", "if you have", "contact us", "call us",
	"p.o. box", "po box", "post office", "electronic funds",
	"funds services", "you may", "for more", "for additional",
	"please", "thank you", "sincerely", "regards",
}

// productLineBlacklistPhrases reject whole statement lines during the product
// line scan: contact blocks, mailing addresses, boilerplate. Structured
// patterns (ZIP, phone, street suffixes) live in productBlacklistRes.
var productLineBlacklistPhrases = []string{
	"write us at", "write us", "questions", "question", "if you have",
	"contact us", "call us", "email us", "mail us", "send us",
	"customer service", "customer support", "technical support",
	"p.o. box", "po box", "post office box",
	"el paso", "san francisco", "new york", "los angeles",
	"@",
	"electronic funds", "funds services", "services,", "services.",
	"you may also", "you may", "for more", "for additional",
	"please", "thank you", "sincerely", "regards",
}
