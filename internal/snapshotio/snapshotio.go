// Package snapshotio reads and writes the journal's portable JSON form, for
// backups and for moving a journal between machines.
package snapshotio

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abelldev/huntlog/internal/engine"
)

// SchemaVersion is the document version this binary writes. Imports reject
// documents from a newer major.minor than this.
const SchemaVersion = "v1.0.0"

// Document is the portable envelope around a full progression state.
type Document struct {
	SchemaVersion string        `json:"schemaVersion"`
	ExportedAt    time.Time     `json:"exportedAt"`
	State         *engine.State `json:"state"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Export renders the state as an indented portable document.
func Export(state *engine.State, now time.Time) ([]byte, error) {
	doc := Document{
		SchemaVersion: SchemaVersion,
		ExportedAt:    now.UTC(),
		State:         state,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// Import validates raw against the document schema and version gate, then
// returns the contained state. Nothing is trusted before validation passes.
func Import(raw []byte) (*engine.State, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("document rejected: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	if !semver.IsValid(doc.SchemaVersion) {
		return nil, fmt.Errorf("invalid schemaVersion %q", doc.SchemaVersion)
	}
	if semver.Compare(semver.MajorMinor(doc.SchemaVersion), semver.MajorMinor(SchemaVersion)) > 0 {
		return nil, fmt.Errorf("document version %s is newer than supported %s", doc.SchemaVersion, SchemaVersion)
	}

	state := doc.State
	if state == nil {
		return nil, fmt.Errorf("document has no state")
	}
	if state.Days == nil {
		state.Days = make(map[engine.Date]*engine.DayRecord)
	}
	if !state.Severity.Valid() {
		state.Severity = engine.SeverityNormal
	}
	if !state.DefaultView.Valid() {
		state.DefaultView = engine.ViewYear
	}
	return state, nil
}

// getSchema returns the compiled document schema, compiling it once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://huntlog-document.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
