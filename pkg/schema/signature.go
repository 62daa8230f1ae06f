package schema

// Unbounded is the MaxArgPossible of a signature with repeating arguments.
const Unbounded = -1

// Signature is the metadata derived from a function's argument declarations.
type Signature struct {
	Args            []ArgDefinition
	MinArgRequired  int
	MaxArgPossible  int
	NbrArgRepeating int
	NbrArgOptional  int
}

// NewSignature computes arity bounds and repeating-group size.
func NewSignature(args []ArgDefinition) Signature {
	sig := Signature{Args: args}
	for _, arg := range args {
		if !arg.IsOptional() {
			sig.MinArgRequired++
		}
		if arg.Repeating {
			sig.NbrArgRepeating++
		} else if arg.Optional || arg.Default {
			sig.NbrArgOptional++
		}
	}
	sig.MaxArgPossible = len(args)
	if sig.NbrArgRepeating > 0 {
		sig.MaxArgPossible = Unbounded
	}
	return sig
}

// ArgToFocus maps a 1-based call-site position to the 1-based position of the
// declaration governing it. Positions past the declarations cycle through the
// trailing repeating group.
func (s Signature) ArgToFocus(position int) int {
	count := len(s.Args)
	switch s.NbrArgRepeating {
	case 0:
		return position
	case 1:
		return min(position, count)
	}
	before := count - s.NbrArgRepeating
	if position <= before {
		return position
	}
	after := (position - before) % s.NbrArgRepeating
	if after == 0 {
		after = s.NbrArgRepeating
	}
	return before + after
}

// SpecAt returns the declaration governing the 0-based argument index.
func (s Signature) SpecAt(index int) (ArgDefinition, bool) {
	focus := s.ArgToFocus(index + 1)
	if focus < 1 || focus > len(s.Args) {
		return ArgDefinition{}, false
	}
	return s.Args[focus-1], true
}

// Accepts reports whether n arguments fit the arity bounds.
func (s Signature) Accepts(n int) bool {
	if n < s.MinArgRequired {
		return false
	}
	return s.MaxArgPossible == Unbounded || n <= s.MaxArgPossible
}
