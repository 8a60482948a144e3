package observability

// Standard attribute keys recorded by the extraction dispatcher. Using these
// constants keeps field names consistent across providers.
const (
	AttrFormat     = "extract.format"
	AttrStatus     = "extract.status"
	AttrComments   = "extract.comments"
	AttrInputBytes = "extract.input_bytes"
)

// Metric names.
const (
	// MetricExtractions counts dispatcher calls; providers are expected to
	// record it with an AttrStatus attribute per call.
	MetricExtractions = "snipex.extractions"
)
