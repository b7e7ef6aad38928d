// Package keyword is the keyword layer: every user-facing operation (set a
// field, select a row, check a row checkbox, ...) as a named keyword with
// typed parameters and a serializable result. The CLI, the batch runner and
// the MCP server all execute keywords through a Session.
package keyword

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mj1618/forms-cli/internal/config"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/operator"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/watch"
)

// ParamType is the JSON type of a keyword parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
)

// Param describes one keyword parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Keyword is one named operation.
type Keyword struct {
	Name        string
	Description string
	Params      []Param
	// Mutates is set for keywords that change the form. Their results carry
	// the resulting changes, and the CLI can persist the form afterwards.
	Mutates bool
	Run     func(s *Session, p Params) (Result, error)
}

// Result is the serializable outcome of one keyword call.
type Result struct {
	Step          int              `yaml:"step,omitempty"           json:"step,omitempty"`
	OK            bool             `yaml:"ok"                       json:"ok"`
	Keyword       string           `yaml:"keyword"                  json:"keyword"`
	Error         string           `yaml:"error,omitempty"          json:"error,omitempty"`
	Code          string           `yaml:"code,omitempty"           json:"code,omitempty"`
	Value         string           `yaml:"value,omitempty"          json:"value,omitempty"`
	Values        []string         `yaml:"values,omitempty"         json:"values,omitempty"`
	Exists        *bool            `yaml:"exists,omitempty"         json:"exists,omitempty"`
	Checked       *bool            `yaml:"checked,omitempty"        json:"checked,omitempty"`
	WindowChanged *bool            `yaml:"window_changed,omitempty" json:"window_changed,omitempty"`
	Window        string           `yaml:"window,omitempty"         json:"window,omitempty"`
	Row           *RowInfo         `yaml:"row,omitempty"            json:"row,omitempty"`
	Diagnostics   []string         `yaml:"diagnostics,omitempty"    json:"diagnostics,omitempty"`
	Changes       []model.UIChange `yaml:"changes,omitempty"        json:"changes,omitempty"`
}

// RowInfo describes a resolved row.
type RowInfo struct {
	Anchor     int    `yaml:"anchor"               json:"anchor"`
	Bounds     [4]int `yaml:"b"                    json:"b"`
	Candidates int    `yaml:"candidates,omitempty" json:"candidates,omitempty"`
}

// Session executes keywords against one form.
type Session struct {
	Provider *platform.Provider
	Config   *config.Config
	Table    *operator.Table
	Field    *operator.Field
}

// NewSession wires the operators for a provider. A nil cfg means defaults.
func NewSession(p *platform.Provider, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	searcher := cfg.Searcher()
	var newWatcher operator.WatcherFunc
	if p.Context != nil {
		interval := cfg.WatchInterval()
		newWatcher = func() watch.Watcher { return watch.NewPoller(p.Context, interval) }
	}
	return &Session{
		Provider: p,
		Config:   cfg,
		Table:    operator.NewTable(p.Tree, searcher),
		Field:    operator.NewField(p.Tree, searcher, newWatcher),
	}
}

// Execute runs the named keyword. Failures are reported in the result, with
// the error code of typed errors; the returned error is the same failure for
// callers that need a non-zero exit.
func (s *Session) Execute(name string, p Params) (Result, error) {
	kw, ok := Lookup(name)
	if !ok {
		err := fmt.Errorf("unknown keyword %q", name)
		return Result{Keyword: name, Error: err.Error()}, err
	}

	var before []model.FlatElement
	if kw.Mutates {
		before = s.flat()
	}

	result, err := kw.Run(s, p)
	result.Keyword = kw.Name
	if err != nil {
		result.OK = false
		result.Error = err.Error()
		var coded operator.Coded
		if errors.As(err, &coded) {
			result.Code = coded.Code()
		}
		logger.L().WithField("keyword", kw.Name).WithField("code", result.Code).Warn(err.Error())
		return result, err
	}
	result.OK = true

	if kw.Mutates && before != nil {
		result.Changes = model.DiffElements(before, s.flat())
	}
	if s.Provider.Context != nil {
		if w, err := s.Provider.Context(); err == nil {
			result.Window = w
		}
	}
	return result, nil
}

// flat reads the whole form for change detection, or nil when the binding
// cannot serialize it.
func (s *Session) flat() []model.FlatElement {
	if s.Provider.Reader == nil {
		return nil
	}
	elements, err := s.Provider.Reader.ReadElements(platform.ReadOptions{})
	if err != nil {
		logger.Debug("read for change detection failed: %v", err)
		return nil
	}
	return model.FlattenElements(elements)
}

var registry = map[string]Keyword{}

func register(kws ...Keyword) {
	for _, kw := range kws {
		if _, dup := registry[kw.Name]; dup {
			panic("keyword: duplicate registration of " + kw.Name)
		}
		registry[kw.Name] = kw
	}
}

// Lookup returns the keyword with the given name.
func Lookup(name string) (Keyword, bool) {
	kw, ok := registry[name]
	return kw, ok
}

// All returns every keyword, sorted by name.
func All() []Keyword {
	out := make([]Keyword, 0, len(registry))
	for _, kw := range registry {
		out = append(out, kw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func rowInfo(res *operator.Resolution) *RowInfo {
	info := &RowInfo{Anchor: res.Anchor.ID(), Candidates: len(res.Candidates)}
	if b, err := platform.BoundsOf(res.Anchor); err == nil {
		info.Bounds = b.Array()
	}
	return info
}

func boolPtr(b bool) *bool { return &b }
