package sieve

// Message is what travels between stages: either a candidate or the end of
// the stream. The end marker is a separate variant so every int, negative
// values included, stays usable as a candidate.
type Message struct {
	value int
	end   bool
}

func Candidate(n int) Message {
	return Message{value: n}
}

func EndOfStream() Message {
	return Message{end: true}
}

func (m Message) IsEnd() bool {
	return m.end
}

// Value returns the candidate. It is zero for the end marker.
func (m Message) Value() int {
	return m.value
}
