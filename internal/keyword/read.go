package keyword

import (
	"fmt"
	"time"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/mj1618/forms-cli/internal/platform"
)

// Read serializes the open form, as an output.ReadResult or, with flat, an
// output.ReadFlatResult.
func (s *Session) Read(opts platform.ReadOptions, flat bool) (interface{}, error) {
	if s.Provider.Reader == nil {
		return nil, fmt.Errorf("binding cannot read the form tree")
	}
	elements, err := s.Provider.Reader.ReadElements(opts)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	var window string
	if s.Provider.Context != nil {
		window, _ = s.Provider.Context()
	}
	ts := time.Now().Unix()
	if flat {
		return output.ReadFlatResult{
			Form:     s.Provider.Name,
			Window:   window,
			TS:       ts,
			Elements: model.FlattenElements(elements),
		}, nil
	}
	return output.ReadResult{
		Form:     s.Provider.Name,
		Window:   window,
		TS:       ts,
		Elements: elements,
	}, nil
}

// Save persists the form to path when the binding supports it.
func (s *Session) Save(path string) error {
	if s.Provider.Saver == nil {
		return fmt.Errorf("binding cannot save the form")
	}
	return s.Provider.Saver.Save(path)
}
