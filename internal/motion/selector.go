package motion

// SourceID identifies one of the two compared sources.
type SourceID int

const (
	SourceA SourceID = iota
	SourceB
)

func (s SourceID) String() string {
	switch s {
	case SourceA:
		return "A"
	case SourceB:
		return "B"
	default:
		return "?"
	}
}

// Select picks the source with the higher score. Ties go to SourceB.
func Select(scoreA, scoreB float64) SourceID {
	if scoreA > scoreB {
		return SourceA
	}
	return SourceB
}

func (s SourceID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
