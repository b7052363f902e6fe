// ABOUTME: Tests for chunk index metadata
package models

import "testing"

func TestIndexMetadata(t *testing.T) {
	c := Chunk{
		ID:      "work_project-search",
		Content: "Built the search pipeline.",
		Type:    ChunkTypeWorkProject,
		Metadata: map[string]interface{}{
			"project_name": "Search",
		},
	}

	meta := c.IndexMetadata()

	if meta["type"] != "work_project" {
		t.Errorf("type = %v", meta["type"])
	}
	if meta["content"] != "Built the search pipeline." {
		t.Errorf("content = %v", meta["content"])
	}
	if meta["project_name"] != "Search" {
		t.Errorf("extra metadata lost: %v", meta)
	}

	// the source chunk's map is not aliased
	meta["type"] = "mutated"
	if c.Metadata["type"] == "mutated" {
		t.Error("IndexMetadata should copy, not alias, the chunk metadata")
	}
}

func TestIndexMetadata_NoExtraMetadata(t *testing.T) {
	c := Chunk{ID: "bio-intro", Content: "Hi.", Type: ChunkTypeBio}

	meta := c.IndexMetadata()
	if len(meta) != 2 || meta["type"] != "bio" || meta["content"] != "Hi." {
		t.Errorf("meta = %v", meta)
	}
}
