package markov

// AddList returns a copy of the model trained on every string in the
// corpus. Each string is wrapped in sentinels, [Start, c1, ..., cn, End],
// and every adjacent pair in that sequence increments one transition count.
// Empty strings are skipped, and pairs touching a character outside the
// alphabet are dropped silently, matching Add.
//
// Counts are purely additive, so the order and grouping of the corpus do
// not affect the result: only the multiset of strings matters.
func (m Model) AddList(corpus []string) Model {
	if m.alpha == nil {
		return m
	}
	trained := Model{alpha: m.alpha, mat: m.mat.clone()}
	for _, s := range corpus {
		if s == "" {
			continue
		}
		prev, prevOK := trained.alpha.indexOf(Start)
		for _, r := range s {
			cur, curOK := trained.alpha.indexOf(Char(r))
			if prevOK && curOK {
				trained.mat.set(prev, cur, trained.mat.at(prev, cur)+1)
			}
			prev, prevOK = cur, curOK
		}
		end, endOK := trained.alpha.indexOf(End)
		if prevOK && endOK {
			trained.mat.set(prev, end, trained.mat.at(prev, end)+1)
		}
	}
	return trained
}
