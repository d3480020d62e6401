package constants

// OutputType describes the JSON shape an extraction definition produces.
type OutputType string

const (
	OutputArray  OutputType = "array"  // list of items, fallback []
	OutputObject OutputType = "object" // single object, fallback {}
	OutputValue  OutputType = "value"  // scalar/string, fallback ""
)

// OutputTypes holds the allowed values for the output_type field.
var OutputTypes = []string{
	string(OutputArray),
	string(OutputObject),
	string(OutputValue),
}

// TemplateCategory distinguishes list-style extractions from single datapoints.
type TemplateCategory string

const (
	CategoryExtraction TemplateCategory = "extraction"
	CategoryDatapoint  TemplateCategory = "datapoint"
)

// TemplateCategories holds the allowed values for the category field.
var TemplateCategories = []string{
	string(CategoryExtraction),
	string(CategoryDatapoint),
}

// SummaryKey is reserved in the composed schema for the summarization output.
// Extraction definitions must not claim it as their json_key.
const SummaryKey = "summary"

// EmptyJSONValue returns the canonical empty payload for an output type.
func EmptyJSONValue(t OutputType) string {
	switch t {
	case OutputArray:
		return "[]"
	case OutputObject:
		return "{}"
	default:
		return `""`
	}
}
