package word

// Distinct returns one reduced word for every group element whose shortest
// reduced word has length at most n, shortest first and in alphabetical
// order within a length. The empty word (the identity) is always first.
//
// Each candidate is compared against every word kept so far with the word
// problem, so the cost is quadratic in the size of the result. The growth of
// the group keeps this usable for n up to about a dozen.
func Distinct(n int) []Word {
	seen := []Word{{}}
	for length := 1; length <= n; length++ {
		seen = extend(seen, Word{}, length)
	}
	return seen
}

func extend(seen []Word, prefix Word, more int) []Word {
	if more == 0 {
		inv := Inverse(prefix)
		for _, q := range seen {
			if IsIdentity(Concat(q, inv)) {
				return seen
			}
		}
		return append(seen, append(Word(nil), prefix...))
	}
	for _, s := range Symbols {
		next := Append(append(Word(nil), prefix...), s)
		if len(next) != len(prefix)+1 {
			continue
		}
		seen = extend(seen, next, more-1)
	}
	return seen
}
