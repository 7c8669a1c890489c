package word

// IsIdentity decides the word problem: it reports whether w represents the
// identity element.
//
// A word equals the identity exactly when it does not swap the root and both
// of its halves are themselves the identity. The recursion terminates because
// the halves of a word are never longer than the word, and strictly shorter
// once the word has length two or more.
func IsIdentity(w Word) bool {
	switch {
	case len(w) == 0:
		return true
	case len(w) == 1 && w[0] == D:
		return false
	}
	sp := Split(w)
	if sp.Swap {
		return false
	}
	return IsIdentity(sp.Left) && IsIdentity(sp.Right)
}

// SameElement reports whether w and v represent the same group element.
func SameElement(w, v Word) bool {
	return IsIdentity(Concat(w, Inverse(v)))
}
