package http

import (
	"maps"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
)

// entries lists documents as {id, result} pairs.
func entries(docs []domain.Document) []blogsdk.DocumentEntry {
	out := make([]blogsdk.DocumentEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, blogsdk.DocumentEntry{ID: d.ID, Result: d.Data})
	}
	return out
}

// flatten lists document payloads with the id folded in.
func flatten(docs []domain.Document) []blogsdk.Document {
	out := make([]blogsdk.Document, 0, len(docs))
	for _, d := range docs {
		data := maps.Clone(d.Data)
		if data == nil {
			data = map[string]any{}
		}
		data["id"] = d.ID
		out = append(out, data)
	}
	return out
}
