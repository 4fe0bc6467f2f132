// Package data holds the engine's baked-in static tables: the ASCII
// alphabet and vowel set, the three keyboard-proximity layouts, the
// homoglyph map, the look-alike substring map, the TLD whitelist and the
// brand-adjacent keyword list. Everything here is immutable package-level
// state, safe for concurrent reads from any number of goroutines, mirroring
// the `phf_map!`/`lazy_static!` tables in the predecessor engine's
// constants module.
package data

// ASCIILower is the 26 lowercase ASCII letters, in order.
var ASCIILower = []byte("abcdefghijklmnopqrstuvwxyz")

// Vowels is the five lowercase ASCII vowels, in order.
var Vowels = []rune{'a', 'e', 'i', 'o', 'u'}

// VowelShuffleCeiling caps the number of vowel positions the Vowel-Shuffle
// generator will combinatorially expand, to keep its output bounded for
// labels with many vowels.
const VowelShuffleCeiling = 6

// KeyboardLayout maps a character to the string of its physical neighbours
// on a given keyboard layout.
type KeyboardLayout map[rune]string

// KeyboardLayouts holds QWERTY, QWERTZ and AZERTY, in that order — the
// order in which the Insertion and Replacement generators consult them.
var KeyboardLayouts = []KeyboardLayout{qwerty, qwertz, azerty}

var qwerty = KeyboardLayout{
	'1': "2q", '2': "3wq1", '3': "4ew2", '4': "5re3", '5': "6tr4",
	'6': "7yt5", '7': "8uy6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'q': "12wa", 'w': "3esaq2", 'e': "4rdsw3", 'r': "5tfde4", 't': "6ygfr5",
	'y': "7uhgt6", 'u': "8ijhy7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0",
	'a': "qwsz", 's': "edxzaw", 'd': "rfcxse", 'f': "tgvcdr", 'g': "yhbvft",
	'h': "ujnbgy", 'j': "ikmnhu", 'k': "olmji", 'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn", 'n': "bhjm", 'm': "njk",
}

var qwertz = KeyboardLayout{
	'1': "2q", '2': "3wq1", '3': "4ew2", '4': "5re3", '5': "6tr4",
	'6': "7zt5", '7': "8uz6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'q': "12wa", 'w': "3esaq2", 'e': "4rdsw3", 'r': "5tfde4", 't': "6zgfr5",
	'z': "7uhgt6", 'u': "8ijhz7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0",
	'a': "qwsy", 's': "edxyaw", 'd': "rfcxse", 'f': "tgvcdr", 'g': "zhbvft",
	'h': "ujnbgz", 'j': "ikmnhu", 'k': "olmji", 'l': "kop",
	'y': "asx", 'x': "ysdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn", 'n': "bhjm", 'm': "njk",
}

var azerty = KeyboardLayout{
	'1': "2a", '2': "3za1", '3': "4ez2", '4': "5re3", '5': "6tr4",
	'6': "7yt5", '7': "8uy6", '8': "9iu7", '9': "0oi8", '0': "po9",
	'a': "2zq1", 'z': "3esqa2", 'e': "4rdsz3", 'r': "5tfde4", 't': "6ygfr5",
	'y': "7uhgt6", 'u': "8ijhy7", 'i': "9okju8", 'o': "0plki9", 'p': "lo0m",
	'q': "zswa", 's': "edxwqz", 'd': "rfcxse", 'f': "tgvcdr", 'g': "yhbvft",
	'h': "ujnbgy", 'j': "iknhu", 'k': "olji", 'l': "kopm", 'm': "lp",
	'w': "sxq", 'x': "wsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn", 'n': "bhj",
}

// Homoglyphs maps an ASCII character to the Unicode glyphs visually
// confusable with it, in natural (source-table) iteration order. Grounded
// on the predecessor engine's constants::HOMOGLYPHS table.
var Homoglyphs = map[rune]string{
	'a': "àáâãäåɑạǎăȧą",
	'b': "dʙɓḃḅḇƅ",
	'c': "eƈċćçčĉo",
	'd': "bɗđďɖḑḋḍḏḓ",
	'e': "céèêëēĕěėẹęȩɇḛ",
	'f': "ƒḟ",
	'g': "qɢɡġğǵģĝǧǥ",
	'h': "ĥȟħɦḧḩⱨḣḥḫẖ",
	'i': "1líìïıɩǐĭỉịɨȋī",
	'j': "ʝɉ",
	'k': "ḳḵⱪķ",
	'l': "1iɫł",
	'm': "nṁṃᴍɱḿ",
	'n': "mrńṅṇṉñņǹňꞑ",
	'o': "0ȯọỏơóö",
	'p': "ƿƥṕṗ",
	'q': "gʠ",
	'r': "ʀɼɽŕŗřɍɾȓȑṙṛṟ",
	's': "ʂśṣṡșŝš",
	't': "ţŧṫṭțƫ",
	'u': "ᴜǔŭüʉùúûũūųưůűȕȗụ",
	'v': "ṿⱱᶌṽⱴ",
	'w': "ŵẁẃẅⱳẇẉẘ",
	'y': "ʏýÿŷƴȳɏỿẏỵ",
	'z': "ʐżźᴢƶẓẕⱬ",
}

// MappedEntry is a single (key, replacement values) row of the look-alike
// substring table. The Mapped generator iterates MappedValues in order and
// relies on that order being stable across runs.
type MappedEntry struct {
	Key    string
	Values []string
}

// MappedValues is the ordered look-alike substring substitution table
// consulted by the Mapped generator. Entries are the classic
// typosquatting substring confusions (m/rn/nn, vv/w, d/cl, o/0, ...).
var MappedValues = []MappedEntry{
	{Key: "rn", Values: []string{"m"}},
	{Key: "m", Values: []string{"rn", "nn"}},
	{Key: "vv", Values: []string{"w"}},
	{Key: "w", Values: []string{"vv"}},
	{Key: "d", Values: []string{"cl", "dl"}},
	{Key: "ck", Values: []string{"k", "cc"}},
	{Key: "oo", Values: []string{"0o", "o0", "00"}},
	{Key: "o", Values: []string{"0"}},
	{Key: "l", Values: []string{"1", "i"}},
	{Key: "ph", Values: []string{"f"}},
	{Key: "b", Values: []string{"lb", "ib"}},
	{Key: "g", Values: []string{"q", "9"}},
}
