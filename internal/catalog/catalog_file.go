package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadProducts reads a catalog document from disk. The document is a JSON
// array of products; unknown fields are rejected so a schema drift is caught
// at startup rather than surfacing as zero values later.
func LoadProducts(path string) ([]Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var products []Product
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := ValidateProducts(products); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return products, nil
}
