package output

import (
	"encoding/json"

	"github.com/Kai-23100/uganda-tax-full-mvp/internal/domain"
)

// JSONFormatter serializes the assessment as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(a *domain.Assessment) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
