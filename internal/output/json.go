package output

import (
	"github.com/goccy/go-json"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// JSONFormatter formats a projection as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string { return "json" }

// Format generates JSON output for a projection
func (jf JSONFormatter) Format(p *domain.Projection) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(p, "", "  ")
	}
	return json.Marshal(p)
}
