package search

import (
	"github.com/invopop/jsonschema"
)

// candidate is the per-element shape the completion service must produce.
type candidate struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// resultSchema is the strict response schema sent with every request:
// a JSON array of candidate objects, nothing else permitted.
var resultSchema = buildResultSchema()

func buildResultSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}

	item := reflector.Reflect(&candidate{})
	item.Version = ""

	return &jsonschema.Schema{
		Type:  "array",
		Items: item,
	}
}
