package risk

// labeler hands out sequential anonymized labels: "Student A" through
// "Student Z", then "Student AA", "Student AB", and so on. It is created per
// request and passed explicitly, so concurrent requests never share or leak
// label sequences.
type labeler struct {
	next int
}

func newLabeler() *labeler {
	return &labeler{}
}

// Next returns the next label in the sequence.
func (l *labeler) Next() string {
	label := "Student " + alphaLabel(l.next)
	l.next++
	return label
}

// alphaLabel converts 0, 1, 2… to A, B, …, Z, AA, AB… (bijective base 26).
func alphaLabel(n int) string {
	var buf []byte
	n++
	for n > 0 {
		n--
		buf = append([]byte{byte('A' + n%26)}, buf...)
		n /= 26
	}
	return string(buf)
}
