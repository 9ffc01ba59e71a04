package models

import "time"

// Keys injected into every harvested record. The mock feed does not use any
// of these names, so annotation never clobbers a source field.
const (
	KeyHarvestTimestamp = "harvest_timestamp"
	KeySourceURL        = "source_url"
	KeyAgent            = "agent"
)

// Invocation result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Record is one element of the source feed. The schema is owned by the feed;
// the harvester treats it as an opaque mapping and passes fields through
// untouched.
type Record map[string]interface{}

// Annotate stamps the record with harvest metadata. Source fields are not
// modified.
func (r Record) Annotate(ts time.Time, sourceURL, agent string) {
	r[KeyHarvestTimestamp] = ts.Format(time.RFC3339Nano)
	r[KeySourceURL] = sourceURL
	r[KeyAgent] = agent
}

// InvocationResult is the body returned to the caller of one harvest
// invocation. UploadedFiles is set on success (possibly empty), Message on
// error.
type InvocationResult struct {
	Status        string   `json:"status"`
	UploadedFiles []string `json:"uploaded_files,omitzero"`
	Message       string   `json:"message,omitempty"`
}
