package diskspace

// Outcome is the result of a free-space check.
type Outcome int

const (
	// Sufficient means at least the requested space is free.
	Sufficient Outcome = iota
	// Insufficient means the volume reported less than the requested space.
	Insufficient
	// Unknown means the volume could not be queried.
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Sufficient:
		return "sufficient"
	case Insufficient:
		return "insufficient"
	}
	return "unknown"
}
