package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ecoavobot/internal/intent"
	"ecoavobot/internal/intent/repository"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Load reads, decodes and validates the catalog file.
func (r *implRepository) Load(ctx context.Context) (intent.Catalog, error) {
	format, err := detectFormat(r.path)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("Load"), err)
		return intent.Catalog{}, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", repository.ErrCatalogMissing, r.path)
		}
		r.l.Errorf(ctx, "%s: read %s: %v", r.scope("Load"), r.path, err)
		return intent.Catalog{}, err
	}

	catalog, err := decode(format, data)
	if err != nil {
		r.l.Errorf(ctx, "%s: decode %s: %v", r.scope("Load"), r.path, err)
		return intent.Catalog{}, err
	}

	if err := catalog.Validate(); err != nil {
		r.l.Errorf(ctx, "%s: validate %s: %v", r.scope("Load"), r.path, err)
		return intent.Catalog{}, err
	}

	r.l.Debugf(ctx, "%s: loaded %d intents with %d patterns from %s",
		r.scope("Load"), len(catalog.Intents), catalog.PatternCount(), r.path)
	return catalog, nil
}

func detectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", repository.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decode(format string, data []byte) (intent.Catalog, error) {
	var catalog intent.Catalog
	var err error
	switch format {
	case formatJSON:
		err = json.Unmarshal(data, &catalog)
	case formatYAML:
		err = yaml.Unmarshal(data, &catalog)
	}
	if err != nil {
		return intent.Catalog{}, fmt.Errorf("%w: %w", repository.ErrCatalogMalformed, err)
	}
	return catalog, nil
}
