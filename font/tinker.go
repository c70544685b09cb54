package font

// Blank is the character used for padding and for clearing digits.
const Blank = ' '

// Undef is the default stand-in for characters the font lacks.
const Undef = '_'

// tinker has a little personality in '7' 'J' 'T' 'Y' and 'Z'. Some letters
// are unusual by necessity, particularly 'K' 'M' 'R' 'V' and 'W'.
var tinker = map[rune]byte{
	'0': 0x3F, '1': 0x06, '2': 0x5B, '3': 0x4F, '4': 0x66,
	'5': 0x6D, '6': 0x7D, '7': 0x27, '8': 0x7F, '9': 0x6F,

	'A': 0x77, 'B': 0x7F, 'C': 0x39, 'D': 0x3F, 'E': 0x79, 'F': 0x71, 'G': 0x3D,
	'H': 0x76, 'I': 0x06, 'J': 0x1E, 'K': 0x75, 'L': 0x38, 'M': 0x55, 'N': 0x37,
	'O': 0x3F, 'P': 0x73, 'Q': 0x67, 'R': 0x33, 'S': 0x6D, 'T': 0x07, 'U': 0x3E,
	'V': 0x2A, 'W': 0x6A, 'X': 0x76, 'Y': 0x6E, 'Z': 0x1B,

	'b': 0x7C, 'c': 0x58, 'd': 0x5E, 'h': 0x74, 'i': 0x04,
	'j': 0x0C, 'l': 0x30, 'n': 0x54, 'o': 0x5C, 'r': 0x50,
	't': 0x78, 'u': 0x1C, 'v': 0x14, 'w': 0x1D,

	' ': 0x00, '_': 0x08, '-': 0x40, '‾': 0x01, '^': 0x01,
	'(': 0x39, ')': 0x0F, '[': 0x39, ']': 0x0F,
	'"': 0x22, '`': 0x02, '\'': 0x20,
	'?': 0x53, '!': 0x82, '°': 0x63,
}

// Tinker returns the default font.
//
// Lower case is only defined where it differs visibly from upper case; 'a'
// and 'g' are left out on purpose.
func Tinker() Font {
	return New(tinker)
}
