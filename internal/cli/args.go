package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/cellfn/pkg/value"
)

// ParseArgs converts command line words into call arguments. Each word is
// decoded as JSON, so 2, true, null and [[1,2],[3,4]] keep their types.
// Words that are not JSON are taken as text.
func ParseArgs(words []string) ([]value.Arg, error) {
	raw := make([]any, len(words))
	for i, word := range words {
		v, err := decodeWord(word)
		if err != nil {
			raw[i] = word
			continue
		}
		raw[i] = v
	}
	args, err := value.ArgsFromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

func decodeWord(word string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(word)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after %q", word)
	}
	return v, nil
}
