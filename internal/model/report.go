package model

import "time"

// FunctionCall represents a structured extraction the model chose to emit.
type FunctionCall struct {
	Name string         `json:"name" bson:"name"`
	Args map[string]any `json:"args,omitempty" bson:"args,omitempty"`
}

// AnalysisReport is the outcome of a single video analysis run.
type AnalysisReport struct {
	ID         string         `json:"id" bson:"_id"`
	Video      string         `json:"video" bson:"video"`
	FileURI    string         `json:"file_uri" bson:"file_uri"`
	MIMEType   string         `json:"mime_type" bson:"mime_type"`
	Model      string         `json:"model" bson:"model"`
	TokenCount int32          `json:"token_count" bson:"token_count"`
	Calls      []FunctionCall `json:"calls" bson:"calls"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}

// Empty reports whether the model selected no functions at all. An empty
// report is a valid outcome, not an error.
func (r *AnalysisReport) Empty() bool {
	return len(r.Calls) == 0
}
