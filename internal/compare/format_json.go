package compare

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONFormatter renders a comparison set for scripts and the API.
type JSONFormatter struct {
	Pretty bool
}

func indented(v interface{}) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }

// Format encodes the whole set, base result first.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	encode := json.Marshal
	if jf.Pretty {
		encode = indented
	}
	data, err := encode(compSet)
	if err != nil {
		return "", fmt.Errorf("encoding comparison: %w", err)
	}
	return string(data), nil
}
