package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://howtobangalore.com/schemas/catalog.json"

type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// EncodingFromPath picks the decoder from the file extension; anything that
// is not YAML is read as JSON.
func EncodingFromPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// Loader decodes catalog files in either shape after validating them
// against the embedded catalog schema.
type Loader struct {
	schema *jsonschema.Schema
}

func NewLoader() (*Loader, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	return &Loader{schema: schema}, nil
}

func (l *Loader) Load(r io.Reader, enc Encoding) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	if enc == EncodingYAML {
		data, err = yamlToJSON(data)
		if err != nil {
			return Document{}, err
		}
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Document{}, apperr.NewValidationWrap("catalog is not valid JSON", err)
	}
	if err := l.schema.Validate(inst); err != nil {
		return Document{}, apperr.NewValidationWrap("catalog does not match schema", err)
	}

	return decode(data)
}

// yamlToJSON re-encodes a YAML catalog as JSON. Timestamps keep their
// source text, so an unquoted publishDate stays "2024-01-15".
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.NewValidationWrap("catalog is not valid YAML", err)
	}

	v, err := nodeValue(&doc)
	if err != nil {
		return nil, apperr.NewValidationWrap("catalog is not valid YAML", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML catalog: %w", err)
	}
	return out, nil
}

func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])

	case yaml.AliasNode:
		return nodeValue(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.ScalarNode:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}

	return nil, fmt.Errorf("unsupported YAML node at line %d", n.Line)
}

func decode(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Document{}, apperr.NewValidation("catalog is empty")
	}

	if data[0] == '{' {
		var c Catalog
		if err := json.Unmarshal(data, &c); err != nil {
			return Document{}, fmt.Errorf("failed to decode catalog: %w", err)
		}
		return Document{Nested: &c}, nil
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return Document{}, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(items) > 0 {
		if _, nested := items[0]["subcategories"]; nested {
			var c Catalog
			if err := json.Unmarshal(data, &c.Categories); err != nil {
				return Document{}, fmt.Errorf("failed to decode categories: %w", err)
			}
			return Document{Nested: &c}, nil
		}
	}

	posts, err := DecodeFlat(bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}
	return Document{Flat: posts}, nil
}

// DecodeFlat reads a flat JSON array of article records.
func DecodeFlat(r io.Reader) ([]Post, error) {
	var posts []Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// DecodePost reads a single JSON article record.
func DecodePost(r io.Reader) (Post, error) {
	var p Post
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Post{}, fmt.Errorf("failed to decode article: %w", err)
	}
	return p, nil
}
