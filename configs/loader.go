package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files lazily, earlier files take precedence.
type Loader struct {
	paths []string
	load  func() ([]document, error)
}

type document struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schemaSrc string) Loader {
	return Loader{
		paths: paths,
		load: sync.OnceValues(func() ([]document, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({"+schemaSrc+"})", cue.Filename("schema.cue"))
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			docs := make([]document, 0, len(paths))
			for _, path := range paths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
						return nil, fmt.Errorf("validate %s: %w", path, err)
					}
				}
				docs = append(docs, document{
					path:  path,
					value: value,
				})
			}
			return docs, nil
		}),
	}
}

func (l Loader) Paths() []string {
	return l.paths
}

// Values yields the value at path of every file defining it.
func (l Loader) Values(path string) iter.Seq2[cue.Value, error] {
	return func(yield func(cue.Value, error) bool) {
		if l.load == nil {
			return
		}
		docs, err := l.load()
		if err != nil {
			yield(cue.Value{}, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, doc := range docs {
			value := doc.value.LookupPath(cuePath)
			if !value.Exists() {
				continue
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}

// Decode assigns the first defined value at path to target.
func (l Loader) Decode(path string, target any) error {
	for value, err := range l.Values(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
