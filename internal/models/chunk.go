// ABOUTME: Chunk represents a retrievable unit of portfolio narrative text
// ABOUTME: Each chunk has a stable id, a category type, and denormalized metadata
package models

// ChunkType categorizes a chunk by the portfolio section it came from
type ChunkType string

const (
	ChunkTypeBio             ChunkType = "bio"
	ChunkTypeCurrentRole     ChunkType = "current_role"
	ChunkTypeWorkProject     ChunkType = "work_project"
	ChunkTypeHealthcare      ChunkType = "healthcare_background"
	ChunkTypeVolunteer       ChunkType = "volunteer"
	ChunkTypePersonalProject ChunkType = "personal_project"
	ChunkTypePersonal        ChunkType = "personal"
	ChunkTypeCreative        ChunkType = "creative"
	ChunkTypeSkills          ChunkType = "skills"
)

// Chunk represents a single retrievable piece of the portfolio
type Chunk struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Type     ChunkType              `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// IndexMetadata returns the metadata stored alongside the vector. The type
// and full content ride along so retrieval never needs a second lookup.
func (c Chunk) IndexMetadata() map[string]interface{} {
	meta := make(map[string]interface{}, len(c.Metadata)+2)
	for k, v := range c.Metadata {
		meta[k] = v
	}
	meta["type"] = string(c.Type)
	meta["content"] = c.Content
	return meta
}
