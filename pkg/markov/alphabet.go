package markov

// alphabet is the ordered set of all elements a model knows, bracketed by
// the two sentinels, together with the inverse element->index map. The
// index of an element in the sequence is its canonical integer id; the map
// is only ever derived from the sequence, never mutated on its own.
type alphabet struct {
	elements []Element
	index    map[Element]int
}

// newAlphabet builds [Start, chars..., End]. The caller supplies the wanted
// character set; duplicates are not removed, in which case a duplicated
// character resolves to its last position.
func newAlphabet(chars []rune) *alphabet {
	elements := make([]Element, 0, len(chars)+2)
	elements = append(elements, Start)
	for _, r := range chars {
		elements = append(elements, Char(r))
	}
	elements = append(elements, End)

	index := make(map[Element]int, len(elements))
	for i, e := range elements {
		index[e] = i
	}
	return &alphabet{elements: elements, index: index}
}

// indexOf returns the canonical index of e. A missing element is a normal
// outcome, reported through ok, not an error.
func (a *alphabet) indexOf(e Element) (int, bool) {
	if a == nil {
		return 0, false
	}
	i, ok := a.index[e]
	return i, ok
}

// at returns the element at index i.
func (a *alphabet) at(i int) Element {
	return a.elements[i]
}

func (a *alphabet) len() int {
	if a == nil {
		return 0
	}
	return len(a.elements)
}

// equal reports whether two alphabets contain the same elements in the
// same order.
func (a *alphabet) equal(b *alphabet) bool {
	if a.len() != b.len() {
		return false
	}
	for i, e := range a.elements {
		if b.elements[i] != e {
			return false
		}
	}
	return true
}
