package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// LoadError is returned when an external catalog cannot be read or is invalid.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadFile reads a JSON array of postings from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Parse(path, data)
}

// Parse builds a catalog from JSON data. The document is checked against the
// catalog schema, every posting is validated, and HTML in descriptions and
// requirements is flattened to text. name is used in error messages.
func Parse(name string, data []byte) (*Catalog, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, &LoadError{Path: name, Message: "schema validation failed", Cause: err}
	}

	var postings []types.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode postings", Cause: err}
	}

	for i := range postings {
		if err := Prepare(&postings[i]); err != nil {
			return nil, &LoadError{Path: name, Message: fmt.Sprintf("posting %d is invalid", i), Cause: err}
		}
	}

	return New(postings), nil
}

// Prepare validates a posting from an external source and flattens any HTML
// in its description and requirements.
func Prepare(p *types.JobPosting) error {
	if err := p.Validate(); err != nil {
		return err
	}

	description, err := ingestion.HTMLToText(p.Description)
	if err != nil {
		return fmt.Errorf("description: %w", err)
	}
	requirements, err := ingestion.HTMLToText(p.Requirements)
	if err != nil {
		return fmt.Errorf("requirements: %w", err)
	}

	p.Description = ingestion.CleanText(description)
	p.Requirements = ingestion.CleanText(requirements)
	return nil
}
