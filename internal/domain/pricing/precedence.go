package pricing

// TakesPrecedence is the rule precedence policy: the most recently created
// rule wins. Ties on creation time are broken by the larger rule id so the
// outcome never depends on storage ordering.
func TakesPrecedence(a, b *Rule) bool {
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return a.id.String() > b.id.String()
}

// SelectWinner picks the single winning rule from a non-empty applicable
// set. Returns nil for an empty set.
func SelectWinner(applicable []*Rule) *Rule {
	var winner *Rule
	for _, r := range applicable {
		if winner == nil || TakesPrecedence(r, winner) {
			winner = r
		}
	}
	return winner
}
