package shield

// verdanaAdvances holds measured Verdana glyph advances in pixels at 11px,
// covering printable ASCII. Badge-sized strings measured with this table
// land within a pixel or two of the classic shields.io geometry.
var verdanaAdvances = map[rune]float64{
	' ': 3.87, '!': 4.40, '"': 5.05, '#': 9.00, '$': 7.00, '%': 11.84,
	'&': 7.99, '\'': 2.95, '(': 4.99, ')': 4.99, '*': 7.00, '+': 9.00,
	',': 4.00, '-': 4.99, '.': 4.00, '/': 4.99,
	'0': 7.00, '1': 7.00, '2': 7.00, '3': 7.00, '4': 7.00,
	'5': 7.00, '6': 7.00, '7': 7.00, '8': 7.00, '9': 7.00,
	':': 4.99, ';': 4.99, '<': 9.00, '=': 9.00, '>': 9.00, '?': 6.00,
	'@': 11.00,
	'A': 7.52, 'B': 7.54, 'C': 7.68, 'D': 8.48, 'E': 6.96, 'F': 6.32,
	'G': 8.53, 'H': 8.27, 'I': 4.63, 'J': 5.00, 'K': 7.61, 'L': 6.13,
	'M': 9.27, 'N': 8.23, 'O': 8.66, 'P': 6.63, 'Q': 8.66, 'R': 7.64,
	'S': 7.52, 'T': 6.78, 'U': 8.05, 'V': 7.52, 'W': 10.88, 'X': 7.54,
	'Y': 6.77, 'Z': 7.54,
	'[': 4.99, '\\': 4.99, ']': 4.99, '^': 9.00, '_': 7.00, '`': 7.00,
	'a': 6.61, 'b': 6.86, 'c': 5.73, 'd': 6.86, 'e': 6.55, 'f': 3.87,
	'g': 6.86, 'h': 6.96, 'i': 3.02, 'j': 3.79, 'k': 6.51, 'l': 3.02,
	'm': 10.70, 'n': 6.96, 'o': 6.67, 'p': 6.86, 'q': 6.86, 'r': 4.69,
	's': 5.73, 't': 4.34, 'u': 6.96, 'v': 6.51, 'w': 9.00, 'x': 6.51,
	'y': 6.51, 'z': 5.78,
	'{': 6.98, '|': 4.99, '}': 6.98, '~': 9.00,
}

// builtinMetrics returns metrics backed by the Verdana advance table. No
// font bytes are carried, so rendered badges rely on the viewer having
// Verdana (or the sans-serif fallbacks in the font stack).
func builtinMetrics() *FontMetrics {
	return &FontMetrics{
		name:     "Verdana",
		size:     11,
		advances: verdanaAdvances,
		fallback: 7.0,
	}
}
