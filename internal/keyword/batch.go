package keyword

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Step is one entry of a keyword script: a keyword name and its parameters.
type Step struct {
	Keyword string
	Params  Params
}

// BatchResult is the outcome of running a keyword script.
type BatchResult struct {
	OK        bool     `yaml:"ok"              json:"ok"`
	Action    string   `yaml:"action"          json:"action"`
	Steps     int      `yaml:"steps"           json:"steps"`
	Completed int      `yaml:"completed"       json:"completed"`
	Error     string   `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []Result `yaml:"results"         json:"results"`
}

// ParseSteps decodes a YAML list of single-key maps:
//
//   - set-field: { name: customer, value: acme }
//   - select-row: { keys: [jeff, accounting] }
func ParseSteps(data []byte) ([]Step, error) {
	var raw []map[string]Params
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no steps provided, expected a YAML list of keywords")
	}
	steps := make([]Step, 0, len(raw))
	for i, entry := range raw {
		if len(entry) != 1 {
			return nil, fmt.Errorf("step %d: expected exactly one keyword, got %d", i+1, len(entry))
		}
		for name, params := range entry {
			if params == nil {
				params = Params{}
			}
			steps = append(steps, Step{Keyword: name, Params: params})
		}
	}
	return steps, nil
}

// RunSteps executes steps in order. With stopOnError, execution ends at the
// first failing step.
func (s *Session) RunSteps(steps []Step, stopOnError bool) BatchResult {
	out := BatchResult{Action: "do", Steps: len(steps), Results: make([]Result, 0, len(steps))}
	for i, step := range steps {
		result, err := s.Execute(step.Keyword, step.Params)
		result.Step = i + 1
		out.Results = append(out.Results, result)
		if err != nil {
			if out.Error == "" {
				out.Error = fmt.Sprintf("step %d: %s", i+1, err.Error())
			}
			if stopOnError {
				break
			}
			continue
		}
		out.Completed++
	}
	out.OK = out.Completed == len(steps)
	return out
}

func init() {
	register(Keyword{
		Name:        "sleep",
		Description: "Pause a keyword script.",
		Params:      []Param{{Name: "ms", Type: TypeNumber, Required: true, Description: "Milliseconds to sleep"}},
		Run: func(_ *Session, p Params) (Result, error) {
			ms, err := p.Int("ms", 0)
			if err != nil {
				return Result{}, err
			}
			if ms < 0 {
				return Result{}, fmt.Errorf("ms must not be negative")
			}
			time.Sleep(time.Duration(ms) * time.Millisecond)
			return Result{}, nil
		},
	})
}
