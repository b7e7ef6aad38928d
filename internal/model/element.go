package model

// Element is one component of a form tree as exposed by a toolkit binding.
type Element struct {
	ID       int       `yaml:"i"            json:"i"`                  // Sequential integer ID (traversal order)
	Type     string    `yaml:"y"            json:"y"`                  // Component type tag
	Name     string    `yaml:"n,omitempty"  json:"n,omitempty"`        // Display name, may be empty
	Text     string    `yaml:"t,omitempty"  json:"t,omitempty"`        // Current text content
	Bounds   [4]int    `yaml:"b"            json:"b"`                  // [x, y, width, height]
	Realized *bool     `yaml:"z,omitempty"  json:"z,omitempty"`        // nil or true = realized; false = bounds unreadable
	Checked  *bool     `yaml:"k,omitempty"  json:"k,omitempty"`        // Toggle state for checkbox types
	Focused  bool      `yaml:"f,omitempty"  json:"f,omitempty"`        // Has keyboard focus
	Selected bool      `yaml:"s,omitempty"  json:"s,omitempty"`        // Last clicked
	Opens    string    `yaml:"open,omitempty"  json:"open,omitempty"`  // Window title activated when pressed
	Closes   bool      `yaml:"close,omitempty" json:"close,omitempty"` // Pressing closes the enclosing window
	Children []Element `yaml:"c,omitempty"  json:"c,omitempty"`        // Child elements
}

// IsRealized reports whether the element has a readable on-screen box.
func (e Element) IsRealized() bool {
	return e.Realized == nil || *e.Realized
}

// AssignIDs numbers every element in depth-first order starting at 1.
// Snapshots written by hand usually omit IDs; handles rely on them being unique.
func AssignIDs(elements []Element) {
	next := 1
	assignIDs(elements, &next)
}

func assignIDs(elements []Element, next *int) {
	for i := range elements {
		elements[i].ID = *next
		*next++
		assignIDs(elements[i].Children, next)
	}
}
