// Package persistence holds the content document codec and the decorators
// shared by every ContentRepository backend.
package persistence

import (
	"github.com/goccy/go-json"

	"portfolio/domain/core/entities"
)

// EncodeDocument renders doc the way it is kept on disk: two-space indented
// JSON with a trailing newline.
func EncodeDocument(doc entities.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DecodeDocument parses a stored document. Unknown fields are ignored.
func DecodeDocument(data []byte) (entities.Document, error) {
	var doc entities.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.Document{}, err
	}
	return doc, nil
}
