package entity

// Searcher performs a streaming longest-prefix match against the
// entity database (§4.3). Construct with the first character after
// '&', then feed subsequent characters one at a time via Next until
// NeedMoreInput returns false; Result then holds the longest matching
// entry, or ok=false if nothing matched.
type Searcher struct {
	left, right int // current candidate range [left, right] (inclusive) into the table
	lastMatch   int // table index of the last recorded match, or -1
	len         int // length of the prefix consumed so far
}

// NewSearcher begins a search rooted at the block of entities starting
// with first.
func NewSearcher(first byte) *Searcher {
	s := &Searcher{
		left:      Begin(first),
		right:     End(first) - 1,
		lastMatch: -1,
		len:       1,
	}
	if s.left > s.right {
		s.left, s.right = -1, -1
		return s
	}
	if len(At(s.left).Name) == s.len {
		s.lastMatch = s.left
	}
	return s
}

// Next narrows the candidate range by one more character. Call only
// while NeedMoreInput is true.
func (s *Searcher) Next(c byte) {
	if s.left == -1 {
		return
	}

	newLeft := s.nextBound(c, true)
	newRight := s.nextBound(c, false)

	if newLeft > newRight || (newLeft == newRight && s.compare(newLeft, c) != 0) {
		s.left, s.right = -1, -1
		return
	}

	s.left, s.right = newLeft, newRight
	s.len++

	if len(At(s.left).Name) == s.len {
		s.lastMatch = s.left
	}
}

// NeedMoreInput reports whether Next should be called again: the
// candidate range still straddles more than one entry, or the sole
// remaining candidate is longer than what's been consumed so far.
func (s *Searcher) NeedMoreInput() bool {
	if s.left == -1 {
		return false
	}
	return s.left != s.right || len(At(s.left).Name) > s.len
}

// Result returns the longest entry matched so far, if any.
func (s *Searcher) Result() (Entry, bool) {
	if s.lastMatch == -1 {
		return Entry{}, false
	}
	return At(s.lastMatch), true
}

// nextBound computes the new left (findLeft=true) or right bound of the
// candidate range after consuming character c at position s.len.
func (s *Searcher) nextBound(c byte, findLeft bool) int {
	left, right := s.left, s.right
	if left == right {
		return left
	}

	anchor := left
	if !findLeft {
		anchor = right
	}
	k := s.compare(anchor, c)
	if findLeft {
		if k >= 0 {
			return left
		}
		right++
	} else {
		if k <= 0 {
			return right
		}
		left--
	}

	for left+1 < right {
		half := left + (right-left)/2
		k := s.compare(half, c)
		if findLeft {
			if k < 0 {
				left = half
			} else {
				right = half
			}
		} else {
			if k > 0 {
				right = half
			} else {
				left = half
			}
		}
	}
	if findLeft {
		return right
	}
	return left
}

// compare reports how entity i's (len+1)-th character relates to c: a
// short entity (one whose name is exhausted at this depth) sorts before
// any character.
func (s *Searcher) compare(i int, c byte) int {
	name := At(i).Name
	if len(name) < s.len+1 {
		return -1
	}
	return int(name[s.len]) - int(c)
}
