package source

import (
	"bytes"
	"encoding/json"
	"fmt"
)

func parseJSON(data []byte, cols Columns) (*Set, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return fromDocument(doc, cols)
}
