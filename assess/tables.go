package assess

// WeakPattern is a substring that marks a password as structurally weak.
type WeakPattern struct {
	Pattern     string
	Description string
}

var weakPatterns = [...]WeakPattern{
	{"123", "Sequential numbers"},
	{"abc", "Sequential letters"},
	{"qwerty", "Keyboard pattern"},
	{"password", "Common word"},
	{"admin", "Common word"},
	{"letmein", "Common phrase"},
	{"welcome", "Common word"},
	{"monkey", "Common word"},
	{"dragon", "Common word"},
	{"baseball", "Common word"},
	{"football", "Common word"},
	{"mustang", "Common word"},
	{"master", "Common word"},
	{"hello", "Common word"},
	{"secret", "Common word"},
	{"asdf", "Keyboard pattern"},
	{"zxcv", "Keyboard pattern"},
	{"111", "Repeated numbers"},
	{"aaa", "Repeated letters"},
	{"000", "Repeated numbers"},
}

var keyboardRows = [...]string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

var dictionaryWords = [...]string{
	"password", "123456", "12345678", "1234", "qwerty",
	"12345", "dragon", "pussy", "baseball", "football",
	"letmein", "monkey", "696969", "abc123", "mustang",
	"michael", "shadow", "master", "jennifer", "111111",
	"2000", "jordan", "superman", "harley", "1234567",
	"fuckme", "hunter", "fuckyou", "trustno1", "ranger",
	"buster", "thomas", "tigger", "robert", "soccer",
	"fuck", "batman", "test", "pass", "killer",
	"hockey", "george", "charlie", "andrew", "michelle",
	"love", "sunshine", "jessica", "pepper", "daniel",
	"access", "123456789", "654321", "joshua", "maggie",
	"starwars", "silver", "william", "dallas", "yankees",
	"123123", "ashley", "666666", "hello", "amanda",
	"orange", "biteme", "freedom", "computer", "sexy",
	"thunder", "nicole", "ginger", "heather", "hammer",
	"summer", "corvette", "taylor", "fucker", "austin",
	"1111", "merlin", "matthew", "121212", "golfer",
	"cheese", "princess", "martin", "chelsea", "patrick",
	"richard", "diamond", "yellow", "bigdog", "secret",
	"asdfgh", "sparky", "cowboy",
}

// keyboardTriples holds every 3-character run of every keyboard row, forward
// and reversed.
var keyboardTriples = buildKeyboardTriples()

func buildKeyboardTriples() []string {
	out := make([]string, 0, 64)
	for _, row := range keyboardRows {
		for i := 0; i+3 <= len(row); i++ {
			out = append(out, row[i:i+3])
			out = append(out, string([]byte{row[i+2], row[i+1], row[i]}))
		}
	}
	return out
}

// leetTable maps common digit and symbol stand-ins back to letters.
var leetTable = [256]byte{
	'4': 'a',
	'3': 'e',
	'0': 'o',
	'1': 'i',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
	'!': 'i',
}

// WeakPatterns returns a copy of the weak-pattern table.
func WeakPatterns() []WeakPattern {
	out := make([]WeakPattern, len(weakPatterns))
	copy(out, weakPatterns[:])
	return out
}

// DictionaryWords returns a copy of the common-password list.
func DictionaryWords() []string {
	out := make([]string, len(dictionaryWords))
	copy(out, dictionaryWords[:])
	return out
}
