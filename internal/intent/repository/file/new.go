package file

import (
	"fmt"

	"ecoavobot/internal/intent/repository"
	"ecoavobot/pkg/log"
)

type implRepository struct {
	path string
	l    log.Logger
}

// New creates a Repository reading a JSON or YAML catalog at path.
// The format is picked from the file extension.
func New(path string, l log.Logger) repository.Repository {
	if path == "" {
		panic("intent/repository/file: path is required")
	}
	return &implRepository{path: path, l: l}
}

func (r *implRepository) Source() string {
	return r.path
}

func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("intent/repository/file.%s", method)
}
