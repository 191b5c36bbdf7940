package models

// Document is a loaded source text with its origin. Immutable once loaded.
type Document struct {
	Source   string
	Content  string
	Metadata map[string]string
}

// Chunk is a bounded contiguous slice of a document's text, the unit of
// retrieval. Chunks are derived deterministically and never mutated.
type Chunk struct {
	Content string
	Source  string
	ChunkID int
}

// QueryRequest is an incoming user question.
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse is the fixed two-perspective structured answer shape.
type QueryResponse struct {
	Question            string `json:"question"`
	OffenderPerspective string `json:"offender_perspective"`
	VictimPerspective   string `json:"victim_perspective"`
}

// Health reports per-component readiness of the pipeline.
type Health struct {
	IndexReady    bool `json:"index_ready"`
	ModelReady    bool `json:"model_ready"`
	PipelineReady bool `json:"pipeline_ready"`
}
