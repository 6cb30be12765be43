package markov

const (
	// StartToken is the serialized form of the Start element.
	StartToken = "start"
	// EndToken is the serialized form of the End element.
	EndToken = "end"
)

// elementKind discriminates the three Element variants.
type elementKind uint8

const (
	kindStart elementKind = iota
	kindEnd
	kindChar
)

// Element is a transition endpoint: the Start sentinel, the End sentinel,
// or a single character. It is a comparable value type, so it can be used
// directly as a map key. The zero value is Start.
type Element struct {
	kind elementKind
	char rune
}

// Start marks the beginning of a sequence. It never appears in generated
// output.
var Start = Element{kind: kindStart}

// End marks the end of a sequence. It never appears in generated output.
var End = Element{kind: kindEnd}

// Char returns the Element for a single character.
func Char(r rune) Element {
	return Element{kind: kindChar, char: r}
}

// IsStart reports whether e is the Start sentinel.
func (e Element) IsStart() bool { return e.kind == kindStart }

// IsEnd reports whether e is the End sentinel.
func (e Element) IsEnd() bool { return e.kind == kindEnd }

// IsChar reports whether e is a character element.
func (e Element) IsChar() bool { return e.kind == kindChar }

// Rune returns the character carried by e. The second return value is false
// for the two sentinels.
func (e Element) Rune() (rune, bool) {
	return e.char, e.kind == kindChar
}

// Compare returns a negative number, zero, or a positive number as e sorts
// before, equal to, or after other. The order is Start < End < Char(c),
// with characters ordered by code point. It exists for canonicalizing keys
// and carries no other meaning.
func (e Element) Compare(other Element) int {
	if e.kind != other.kind {
		return int(e.kind) - int(other.kind)
	}
	switch {
	case e.char < other.char:
		return -1
	case e.char > other.char:
		return 1
	default:
		return 0
	}
}

// String returns the token form of e: "start", "end", or the
// single-character string. This is exactly the representation used in the
// serialized alphabet.
func (e Element) String() string {
	switch e.kind {
	case kindStart:
		return StartToken
	case kindEnd:
		return EndToken
	default:
		return string(e.char)
	}
}
