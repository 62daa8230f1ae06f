package schema

// Validate checks a list of argument declarations before registration.
// Returns an *AggregateError with all failures found.
func Validate(args []ArgDefinition) error {
	var errs []error

	previousRepeating := false
	previousOptional := false

	for _, arg := range args {
		fail := func(reason string, value any) {
			errs = append(errs, &ValidationError{Key: arg.Name, Reason: reason, Value: value})
		}

		if arg.Name == "" {
			fail("name is required", nil)
		}
		if len(arg.Types) == 0 {
			fail("at least one type is required", nil)
		}

		hasMeta := false
		for _, t := range arg.Types {
			if _, ok := knownTypes[t]; !ok {
				fail("unsupported type", string(t))
			}
			if t == TypeMeta {
				hasMeta = true
			}
		}
		if hasMeta && len(arg.Types) > 1 {
			fail("type META cannot be combined with other types", nil)
		}

		if previousRepeating && !arg.Repeating {
			fail("non-repeating argument declared after repeating ones; all repeating arguments must be declared last", nil)
		}
		if previousOptional && !arg.IsOptional() {
			fail("mandatory argument declared after optional ones; all optional arguments must come after the mandatory ones", nil)
		}

		previousRepeating = arg.Repeating
		previousOptional = previousOptional || arg.IsOptional()
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
