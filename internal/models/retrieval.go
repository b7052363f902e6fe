// ABOUTME: Retrieval result types returned by the retriever
// ABOUTME: Carries bio content, relevant chunk texts, and optional per-match diagnostics
package models

// MatchDebug describes a single index match for retrieval inspection
type MatchDebug struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// RetrievalDebug carries per-match diagnostics for a retrieval
type RetrievalDebug struct {
	Bio    *MatchDebug  `json:"bio,omitempty"`
	Others []MatchDebug `json:"others,omitempty"`
}

// RetrievalResult is the output of one retrieval pass over the index.
// BioContent is empty when no bio chunk matched; that is not an error.
type RetrievalResult struct {
	BioContent     string          `json:"bio_content"`
	RelevantChunks []string        `json:"relevant_chunks"`
	Debug          *RetrievalDebug `json:"debug,omitempty"`
}
