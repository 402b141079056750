package dictionaries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/stenowiki/logs"
	"github.com/reusee/stenowiki/nets"
)

// Open returns the content of a file path or an http(s) URL.
type Open func(ctx context.Context, location string) (io.ReadCloser, error)

func (Module) Open(
	client nets.HTTPClient,
) Open {
	return func(ctx context.Context, location string) (io.ReadCloser, error) {
		if !isURL(location) {
			f, err := os.Open(location)
			if err != nil {
				return nil, wrap(err)
			}
			return f, nil
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, wrap(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, wrap(err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, wrap(fmt.Errorf("fetch %s: %s", location, resp.Status))
		}
		return resp.Body, nil
	}
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}

type Load func(ctx context.Context, location string) (*Layer, error)

func (Module) Load(
	open Open,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Load {
	return func(ctx context.Context, location string) (_ *Layer, err error) {
		ctx, _ = newSpan(ctx, "", "dictionary", location)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		format, err := FormatOf(location)
		if err != nil {
			return nil, err
		}
		r, err := open(ctx, location)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		layer, err := Decode(location, format, r)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "dictionary loaded",
			"location", location,
			"entries", layer.Len(),
			"skipped", layer.Skipped,
		)
		return layer, nil
	}
}
