package platform

import "github.com/mj1618/forms-cli/internal/model"

// Handle is an opaque reference to one component of the external widget tree.
// The tree owns the component; holders never mutate or destroy it except
// through the capability interfaces below.
type Handle interface {
	// ID is unique within one binding session and stable between reads.
	ID() int
	// Type is the component type tag (see model.Type*).
	Type() string
	// Name is the display name, "" when the component has none.
	Name() string
	// Bounds reads the current screen box. It fails when the component is
	// not realized instead of returning a zero box.
	Bounds() (Bounds, error)
	// Children returns the direct children in traversal order.
	Children() []Handle
}

// TextReadable is implemented by components exposing text content.
type TextReadable interface {
	Text() (string, error)
}

// TextWritable is implemented by components accepting text content.
type TextWritable interface {
	SetText(text string) error
}

// FocusDispatcher delivers focus-gained / focus-lost events to a component.
type FocusDispatcher interface {
	DispatchFocus(gained bool) error
}

// ItemContainer is implemented by composites exposing an item list, such as
// a status bar.
type ItemContainer interface {
	Items() ([]Handle, error)
}

// Composite is implemented by wrappers exposing an inner derived handle, such
// as a checkbox wrapper and its toggle.
type Composite interface {
	Inner() (Handle, error)
}

// Toggle is implemented by two-state components.
type Toggle interface {
	Checked() (bool, error)
	SetChecked(checked bool) error
}

// Clicker simulates mouse clicks on a component.
type Clicker interface {
	Click(count int) error
}

// Reader serializes the live tree for display.
type Reader interface {
	// ReadElements returns the element tree, filtered by opts.
	ReadElements(opts ReadOptions) ([]model.Element, error)
}

// Tree exposes the root of the live widget tree.
type Tree interface {
	Root() (Handle, error)
}

// Saver persists mutations made through the capability interfaces.
type Saver interface {
	Save(path string) error
}
