package token

// Trie maps literal strings to values and matches them against a
// [Scanner] by longest prefix.
type Trie[T any] struct {
	root trieNode[T]
}

type trieNode[T any] struct {
	kids  map[rune]*trieNode[T]
	val   T
	isVal bool
}

// Set associates key with v, replacing any previous value.
func (t *Trie[T]) Set(key string, v T) {
	n := &t.root
	for _, c := range key {
		if n.kids == nil {
			n.kids = make(map[rune]*trieNode[T])
		}
		k := n.kids[c]
		if k == nil {
			k = &trieNode[T]{}
			n.kids[c] = k
		}
		n = k
	}
	n.val = v
	n.isVal = true
}

// Get matches the longest key which is a prefix of the scanner's
// remaining input. On success the scanner is positioned just past the
// match. Otherwise the scanner is left where it was and ok is false.
func (t *Trie[T]) Get(s *Scanner) (v T, ok bool) {
	start := s.Backup()
	best := start
	n := &t.root
	for !s.EOF() {
		k := n.kids[s.Top()]
		if k == nil {
			break
		}
		s.Advance()
		n = k
		if n.isVal {
			v, ok = n.val, true
			best = s.Backup()
		}
	}
	s.Restore(best)
	return v, ok
}
