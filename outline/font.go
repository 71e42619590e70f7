package outline

import "strings"

// boldKeywords are the font-name substrings that imply a bold or heavy
// weight. Western foundries encode weight in the face name ("Arial-Bold",
// "HelveticaNeue-Heavy"); CJK fonts signal display weight through family
// conventions instead (gothic faces are the common bold pairing for mincho
// body text, and similarly for the Chinese hei/kai/song families).
var boldKeywords = []string{
	// Western weight names
	"bold", "heavy", "black", "demi", "medium",
	// CJK family conventions
	"gothic", "maru", "futogo", "futomin", "hei", "kai", "song", "mincho",
}

// IsBoldFont reports whether a font name implies a bold weight, by
// case-insensitive substring match against the weight-keyword lexicon.
// An empty font name is never bold.
func IsBoldFont(fontName string) bool {
	if fontName == "" {
		return false
	}
	lower := strings.ToLower(fontName)
	for _, kw := range boldKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
