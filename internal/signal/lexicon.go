package signal

// Lexicon keys are stored lowercase with diacritics already stripped, so
// a normalized token can be matched directly. The journal corpus is
// mixed Czech/English, hence both languages in every table.

// negations arm the one-hit lookahead flip. See Extract for the consume rule.
var negations = map[string]bool{
	"ne": true, "neni": true, "nejsem": true, "nejsi": true, "nemam": true,
	"nema": true, "nikdy": true, "nic": true, "zadny": true,
	"no": true, "not": true, "never": true, "dont": true, "cant": true,
	"isnt": true, "wont": true, "nothing": true,
}

// intensifiers boost intensity and are excluded from polarity scoring.
var intensifiers = map[string]float64{
	"velmi": 0.8, "hodne": 0.7, "moc": 0.6, "strasne": 0.9, "uplne": 0.8,
	"naprosto": 0.9, "totalne": 0.9, "extremne": 1.0, "opravdu": 0.6,
	"very": 0.8, "really": 0.6, "so": 0.4, "extremely": 1.0,
	"totally": 0.9, "completely": 0.9, "absolutely": 0.9, "incredibly": 1.0,
	"deeply": 0.7, "utterly": 0.9,
}

var positives = map[string]float64{
	"klid": 1.0, "bezpeci": 1.0, "bezpecny": 0.9, "radost": 1.0,
	"stesti": 1.0, "stastny": 1.0, "laska": 1.0, "dobre": 0.8,
	"dobry": 0.8, "skvele": 1.1, "skvely": 1.1, "krasne": 1.0,
	"krasny": 1.0, "krasa": 0.9, "nadeje": 1.0, "usmev": 0.9,
	"pohoda": 0.9, "vdecny": 1.0, "vdecnost": 1.0, "teplo": 0.7,
	"svetlo": 0.7, "mir": 0.9, "uleva": 0.9,
	"calm": 1.0, "safe": 1.0, "safety": 1.0, "peace": 1.0,
	"peaceful": 1.0, "good": 0.8, "great": 1.0, "happy": 1.0,
	"happiness": 1.0, "joy": 1.1, "love": 1.1, "loved": 1.1,
	"hope": 1.0, "hopeful": 1.0, "warm": 0.7, "light": 0.6,
	"grateful": 1.0, "gratitude": 1.0, "beautiful": 1.0,
	"wonderful": 1.1, "rest": 0.7, "rested": 0.8, "ease": 0.8,
	"relief": 0.9, "smile": 0.8,
}

var negatives = map[string]float64{
	"strach": 1.1, "uzkost": 1.1, "zlost": 1.0, "vztek": 1.1,
	"smutek": 1.0, "smutny": 1.0, "bolest": 1.1, "spatne": 0.9,
	"spatny": 0.9, "hrozne": 1.1, "hrozny": 1.1, "hruza": 1.2,
	"tma": 0.7, "chaos": 0.9, "samota": 1.0, "sam": 0.6,
	"unava": 0.8, "unaveny": 0.8, "beznadej": 1.2, "panika": 1.2,
	"stres": 1.0, "strachu": 1.1, "zrada": 1.1, "vina": 0.9,
	"fear": 1.1, "afraid": 1.1, "anxiety": 1.1, "anxious": 1.1,
	"anger": 1.0, "angry": 1.0, "sad": 1.0, "sadness": 1.0,
	"pain": 1.1, "hurt": 1.0, "bad": 0.8, "awful": 1.1,
	"terrible": 1.1, "dark": 0.6, "alone": 0.9, "lonely": 1.0,
	"tired": 0.8, "exhausted": 1.0, "hopeless": 1.2, "panic": 1.2,
	"stress": 1.0, "stressed": 1.0, "worry": 0.9, "worried": 0.9,
	"guilt": 0.9, "shame": 1.0, "empty": 0.8, "lost": 0.8,
}

var themeConflict = map[string]float64{
	"boj": 1, "bojovat": 1, "hadka": 1, "hadat": 1, "konflikt": 1,
	"valka": 1, "vztek": 1, "zlost": 1, "krik": 1, "tlak": 1,
	"napeti": 1, "rozpor": 1, "spor": 1, "zrada": 1, "utok": 1,
	"fight": 1, "fighting": 1, "argument": 1, "argue": 1, "conflict": 1,
	"war": 1, "anger": 1, "angry": 1, "pressure": 1, "tension": 1,
	"struggle": 1, "against": 1, "enemy": 1, "battle": 1, "attack": 1,
	"betrayal": 1, "blame": 1, "broken": 1,
}

var themeStability = map[string]float64{
	"klid": 1, "bezpeci": 1, "bezpecny": 1, "domov": 1, "doma": 1,
	"rad": 1, "poradek": 1, "jistota": 1, "rutina": 1, "zvyk": 1,
	"zem": 1, "koreny": 1, "rovnovaha": 1, "stabilita": 1, "pevny": 1,
	"calm": 1, "home": 1, "safe": 1, "safety": 1, "order": 1,
	"routine": 1, "steady": 1, "ground": 1, "grounded": 1, "roots": 1,
	"balance": 1, "stable": 1, "stability": 1, "settled": 1, "quiet": 1,
}

var themeCuriosity = map[string]float64{
	"proc": 1, "zajem": 1, "zvedavy": 1, "zvedavost": 1, "novy": 1,
	"nove": 1, "objev": 1, "objevit": 1, "otazka": 1, "tajemstvi": 1,
	"zvlastni": 1, "hledat": 1, "hledani": 1, "zmena": 1,
	"why": 1, "curious": 1, "curiosity": 1, "new": 1, "discover": 1,
	"discovery": 1, "question": 1, "wonder": 1, "wondering": 1,
	"learn": 1, "learning": 1, "explore": 1, "exploring": 1,
	"mystery": 1, "strange": 1, "unknown": 1, "search": 1, "change": 1,
}

// stemSuffixes is the fixed trial order: longer language suffixes first,
// single vowels and bare plurals last. A strip only counts when at least
// three characters remain.
var stemSuffixes = []string{
	"ness", "nost", "osti", "ovat", "ing", "ami", "emi", "ova", "ove",
	"ych", "eho", "emu", "ed", "es", "ly", "em", "ym", "mi", "ou",
	"s", "u", "y", "a", "e", "i", "o",
}
