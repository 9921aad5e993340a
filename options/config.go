package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	jsonschemavalidate "github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema returns the JSON Schema for [Options], reflected from its struct
// tags. CLI config discovery (`.jsfmtrc.yaml`/`.jsfmtrc.json`) validates
// against this schema before unmarshaling into [Options].
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}

	return r.Reflect(&Options{})
}

// LoadBytes parses a `.jsfmtrc` document (YAML or JSON, selected by ext —
// one of ".yaml", ".yml", ".json") into [Options], validating the document
// against [Schema] first so malformed configuration is reported as an
// [Error] rather than a field-by-field zero value.
func LoadBytes(data []byte, ext string) (Options, error) {
	doc, err := toJSON(data, ext)
	if err != nil {
		return Options{}, newError("config", err.Error())
	}

	if err := validateAgainstSchema(doc); err != nil {
		return Options{}, newError("config", err.Error())
	}

	o := Default()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, newError("config", err.Error())
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// toJSON normalizes a YAML or JSON config document to JSON bytes for schema
// validation; JSON is valid YAML so both extensions share one code path.
func toJSON(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}

		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("reencode config: %w", err)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}
}

func validateAgainstSchema(doc []byte) error {
	raw, err := json.Marshal(Schema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschemavalidate.NewCompiler()

	schemaDoc, err := jsonschemavalidate.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode schema: %w", err)
	}

	if err := compiler.AddResource("jsfmtrc.json", schemaDoc); err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	sch, err := compiler.Compile("jsfmtrc.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	instDoc, err := jsonschemavalidate.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := sch.Validate(instDoc); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	return nil
}

// FileName reports the conventional config file name for ext (one of
// ".yaml", ".yml", ".json"), used by callers discovering `.jsfmtrc*` in a
// project root.
func FileName(ext string) string {
	return ".jsfmtrc" + ext
}

// ConfigExt returns the config extension implied by path, or "" if path
// does not look like a `.jsfmtrc*` file.
func ConfigExt(path string) string {
	base := filepath.Base(path)
	if !strings.HasPrefix(base, ".jsfmtrc") {
		return ""
	}

	return filepath.Ext(base)
}
