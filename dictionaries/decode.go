package dictionaries

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"go.yaml.in/yaml/v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension of a path or URL.
func FormatOf(location string) (Format, error) {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", wrap(fmt.Errorf("unknown dictionary format: %s", location))
}

func Decode(name string, format Format, r io.Reader) (*Layer, error) {
	layer := NewLayer(name)
	var err error
	switch format {
	case FormatJSON:
		err = decodeJSON(layer, r)
	case FormatYAML:
		err = decodeYAML(layer, r)
	default:
		err = wrap(fmt.Errorf("unknown dictionary format: %s", format))
	}
	if err != nil {
		return nil, wrap.WithInfo("decode %s", name)(err)
	}
	return layer, nil
}

// decodeJSON reads {"STROKE/STROKE": "translation"} keeping file order.
func decodeJSON(layer *Layer, r io.Reader) error {
	decoder := json.NewDecoder(r)
	token, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return wrap(err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return wrap(fmt.Errorf("expecting object, got %v", token))
	}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return wrap(err)
		}
		key, ok := token.(string)
		if !ok {
			return wrap(fmt.Errorf("expecting key, got %v", token))
		}
		var translation string
		if err := decoder.Decode(&translation); err != nil {
			return wrap.WithInfo("entry %s", key)(err)
		}
		layer.add(key, translation)
	}
	if _, err := decoder.Token(); err != nil {
		return wrap(err)
	}
	return nil
}

// decodeYAML reads `translation: [STROKE, ...]`, a single stroke may be a scalar.
func decodeYAML(layer *Layer, r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); errors.Is(err, io.EOF) {
		return nil
	} else if err != nil {
		return wrap(err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return wrap(fmt.Errorf("line %d: expecting mapping", root.Line))
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		var translation string
		if err := keyNode.Decode(&translation); err != nil {
			return wrap.WithInfo("line %d", keyNode.Line)(err)
		}
		var keys []string
		switch valueNode.Kind {
		case yaml.ScalarNode:
			keys = []string{valueNode.Value}
		case yaml.SequenceNode:
			if err := valueNode.Decode(&keys); err != nil {
				return wrap.WithInfo("line %d", valueNode.Line)(err)
			}
		default:
			return wrap(fmt.Errorf("line %d: expecting strokes", valueNode.Line))
		}
		for _, key := range keys {
			layer.add(key, translation)
		}
	}
	return nil
}
