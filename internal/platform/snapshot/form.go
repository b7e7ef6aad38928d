package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
	"gopkg.in/yaml.v3"
)

// BindingName is the name the binding registers under.
const BindingName = "snapshot"

// Document is the on-disk layout of a snapshot file.
type Document struct {
	Form     string          `yaml:"form,omitempty"  json:"form,omitempty"`
	Elements []model.Element `yaml:"elements"        json:"elements"`
}

// Form is a live, mutable form tree. All handle operations lock the form, so
// a watcher may sample the context while an action runs.
type Form struct {
	mu       sync.Mutex
	name     string
	elements []model.Element
	byID     map[int]*model.Element
	parent   map[int]int
	pending  map[int]string
}

func init() {
	platform.RegisterBinding(BindingName, func(source string) (*platform.Provider, error) {
		f, err := Load(source)
		if err != nil {
			return nil, err
		}
		return f.Provider(), nil
	})
}

// New builds a form from an element tree. IDs are reassigned in traversal
// order. The form takes ownership of elements.
func New(name string, elements []model.Element) *Form {
	model.AssignIDs(elements)
	f := &Form{
		name:     name,
		elements: elements,
		byID:     make(map[int]*model.Element),
		parent:   make(map[int]int),
		pending:  make(map[int]string),
	}
	f.index(f.elements, 0)
	return f
}

func (f *Form) index(elements []model.Element, parentID int) {
	for i := range elements {
		el := &elements[i]
		f.byID[el.ID] = el
		f.parent[el.ID] = parentID
		f.index(el.Children, el.ID)
	}
}

// Parse decodes a snapshot document. JSON is detected by a leading '{'.
func Parse(data []byte) (*Form, error) {
	var doc Document
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse snapshot json: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot yaml: %w", err)
	}
	for i := range doc.Elements {
		normalizeTypes(&doc.Elements[i])
	}
	return New(doc.Form, doc.Elements), nil
}

// normalizeTypes maps toolkit class names to type tags in place.
func normalizeTypes(el *model.Element) {
	el.Type = model.MapType(el.Type)
	for i := range el.Children {
		normalizeTypes(&el.Children[i])
	}
}

// Load reads a snapshot file.
func Load(path string) (*Form, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided snapshot file
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Parse(data)
}

// Save writes the current tree to path, as JSON when the extension is .json
// and as YAML otherwise.
func (f *Form) Save(path string) error {
	f.mu.Lock()
	doc := Document{Form: f.name, Elements: f.elements}
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	f.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Provider returns the platform provider backed by this form.
func (f *Form) Provider() *platform.Provider {
	return &platform.Provider{
		Name:    f.name,
		Reader:  f,
		Tree:    f,
		Context: f.Context,
		Saver:   f,
	}
}

// Root returns the synthetic root handle whose children are the open
// top-level windows.
func (f *Form) Root() (platform.Handle, error) {
	return &rootHandle{form: f}, nil
}

// ReadElements returns a copy of the open part of the tree, filtered by opts.
func (f *Form) ReadElements(opts platform.ReadOptions) ([]model.Element, error) {
	f.mu.Lock()
	elements := openCopy(f.elements)
	f.mu.Unlock()

	if opts.Prune {
		elements = model.PruneEmptyContainers(elements)
	}
	var bbox *[4]int
	if opts.BBox != nil {
		b := opts.BBox.Array()
		bbox = &b
	}
	elements = model.FilterElements(elements, opts.Types, bbox)
	return model.FilterByText(elements, opts.Text), nil
}

// Context reports the name of the frontmost open window.
func (f *Form) Context() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	win := model.FrontmostWindow(openCopy(f.elements))
	if win == nil {
		return "", nil
	}
	return win.Name, nil
}

// openCopy deep-copies elements, dropping closed top-level windows.
func openCopy(elements []model.Element) []model.Element {
	out := make([]model.Element, 0, len(elements))
	for _, el := range elements {
		if el.Type == model.TypeWindow && !el.IsRealized() {
			continue
		}
		out = append(out, deepCopy(el))
	}
	return out
}

func deepCopy(el model.Element) model.Element {
	cp := el
	if el.Realized != nil {
		v := *el.Realized
		cp.Realized = &v
	}
	if el.Checked != nil {
		v := *el.Checked
		cp.Checked = &v
	}
	if len(el.Children) > 0 {
		cp.Children = make([]model.Element, len(el.Children))
		for i, c := range el.Children {
			cp.Children[i] = deepCopy(c)
		}
	}
	return cp
}

// realizedLocked reports whether el and all its ancestors are realized.
func (f *Form) realizedLocked(el *model.Element) bool {
	for el != nil {
		if !el.IsRealized() {
			return false
		}
		el = f.byID[f.parent[el.ID]]
	}
	return true
}

// windowOfLocked returns the top-level window enclosing el, or nil.
func (f *Form) windowOfLocked(el *model.Element) *model.Element {
	var win *model.Element
	for el != nil {
		if el.Type == model.TypeWindow {
			win = el
		}
		el = f.byID[f.parent[el.ID]]
	}
	return win
}

func (f *Form) windowByNameLocked(name string) *model.Element {
	for i := range f.elements {
		if f.elements[i].Type == model.TypeWindow && f.elements[i].Name == name {
			return &f.elements[i]
		}
	}
	return nil
}

func (f *Form) clearLocked(elements []model.Element, focus, selection bool) {
	for i := range elements {
		if focus {
			elements[i].Focused = false
		}
		if selection {
			elements[i].Selected = false
		}
		f.clearLocked(elements[i].Children, focus, selection)
	}
}
