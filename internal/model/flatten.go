package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID       int    `yaml:"i"            json:"i"`
	Type     string `yaml:"y"            json:"y"`
	Name     string `yaml:"n,omitempty"  json:"n,omitempty"`
	Text     string `yaml:"t,omitempty"  json:"t,omitempty"`
	Bounds   [4]int `yaml:"b"            json:"b"`
	Realized *bool  `yaml:"z,omitempty"  json:"z,omitempty"`
	Checked  *bool  `yaml:"k,omitempty"  json:"k,omitempty"`
	Focused  bool   `yaml:"f,omitempty"  json:"f,omitempty"`
	Selected bool   `yaml:"s,omitempty"  json:"s,omitempty"`
	Path     string `yaml:"p,omitempty"  json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list in traversal
// order. Each element gets a path string showing its location in the tree,
// using the element name where present and the type tag otherwise, joined
// with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	seg := el.Type
	if el.Name != "" {
		seg = el.Type + "[" + el.Name + "]"
	}
	currentPath := seg
	if parentPath != "" {
		currentPath = parentPath + " > " + seg
	}

	*result = append(*result, FlatElement{
		ID:       el.ID,
		Type:     el.Type,
		Name:     el.Name,
		Text:     el.Text,
		Bounds:   el.Bounds,
		Realized: el.Realized,
		Checked:  el.Checked,
		Focused:  el.Focused,
		Selected: el.Selected,
		Path:     currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}
