package descriptor

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/docck/internal/domain"
)

func parseYAML(data []byte) (domain.Project, error) {
	var p domain.Project
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return domain.Project{}, err
	}
	return p, nil
}
