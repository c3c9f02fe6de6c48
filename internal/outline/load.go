package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Format identifies an outline document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", &LoadError{
			Code:    ErrCodeFormat,
			Message: fmt.Sprintf("unsupported extension %q (want .yaml, .yml, .json or .cue)", filepath.Ext(path)),
			Path:    path,
		}
	}
}

// Load reads, decodes, validates and normalises the outline stored at path.
// Nodes without an ID get one from ids.
func Load(path string, ids IDGenerator) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "outline file not found", Path: path}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: "reading outline", Path: path, Err: err}
	}

	root, err := Parse(data, format, ids)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && le.Path == "" {
			le.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse decodes an in-memory outline document, then validates and normalises it.
func Parse(data []byte, format Format, ids IDGenerator) (*Node, error) {
	var (
		root *Node
		err  error
	)
	switch format {
	case FormatYAML:
		root, err = decodeYAML(data)
	case FormatJSON:
		root, err = decodeJSON(data)
	case FormatCUE:
		root, err = decodeCUE(data)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Message: fmt.Sprintf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("decoding %s", format), Err: err}
	}

	if err := Validate(root); err != nil {
		return nil, err
	}
	Normalize(root, ids)
	if err := checkUniqueIDs(root); err != nil {
		return nil, err
	}
	return root, nil
}

func decodeYAML(data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root *Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return root, nil
}

func decodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var root *Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return root, nil
}

// decodeCUE evaluates a CUE document. The outline is either the whole value or,
// when present, the value of its top-level "outline" field.
func decodeCUE(data []byte) (*Node, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename("outline.cue"))
	if err := value.Err(); err != nil {
		return nil, err
	}

	if nested := value.LookupPath(cue.ParsePath("outline")); nested.Exists() {
		value = nested
	}
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}

	var root Node
	if err := value.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}
