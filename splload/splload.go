// Package splload is the I/O boundary around the engine's core packages
// (token, lexer, parser, ast, fieldlineage, pattern, handler,
// splanalyzer): loading pipeline text and cached lookup-table schemas
// from a filesystem or object store via afs, and YAML-decoding the
// latter (spec.md §6 "lookupSchemas"). None of the core packages import
// this one.
package splload

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/splfield/handler"
	"gopkg.in/yaml.v3"
)

// Loader fetches pipeline source and lookup schema manifests.
type Loader struct {
	fs afs.Service
}

// New creates a Loader backed by afs's default storage-scheme dispatch
// (file, s3, gs, and so on), mirroring the teacher's own afs.New() usage.
func New() *Loader {
	return &Loader{fs: afs.New()}
}

// LoadPipeline downloads the SPL source at URL as plain text.
func (l *Loader) LoadPipeline(ctx context.Context, URL string) (string, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("splload: download pipeline %s: %w", URL, err)
	}
	return string(data), nil
}

// schemaColumn is the YAML row shape for one cached lookup table schema.
type schemaColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// schemaManifest is the YAML document shape: table name -> column list.
type schemaManifest map[string][]schemaColumn

// LoadLookupSchemas downloads and decodes a YAML manifest of lookup-table
// schemas (spec.md §6 "lookupSchemas"), suitable for passing straight
// into splanalyzer.WithLookupSchemas.
func (l *Loader) LoadLookupSchemas(ctx context.Context, URL string) (map[string][]handler.SchemaField, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("splload: download lookup schemas %s: %w", URL, err)
	}
	var manifest schemaManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("splload: decode lookup schemas %s: %w", URL, err)
	}
	out := make(map[string][]handler.SchemaField, len(manifest))
	for table, cols := range manifest {
		fields := make([]handler.SchemaField, 0, len(cols))
		for _, c := range cols {
			fields = append(fields, handler.SchemaField{Name: c.Name, Type: c.Type})
		}
		out[table] = fields
	}
	return out, nil
}

// JoinURL is a thin re-export of afs's URL joining helper, used by
// callers assembling manifest-relative paths (spec.md §6 loader
// convenience, grounded on the teacher's url.Join usage).
func JoinURL(baseURL, relative string) string {
	return url.Join(baseURL, relative)
}
