package model

// Component type tags. The set is closed: bindings map every toolkit class to
// one of these, falling back to TypeOther.
const (
	TypeWindow    = "window"
	TypePanel     = "panel"
	TypeText      = "text"
	TypeTextArea  = "textarea"
	TypeCombo     = "combo"
	TypeButton    = "button"
	TypePush      = "push"
	TypeCheck     = "check"
	TypeCheckWrap = "checkwrap"
	TypeLabel     = "label"
	TypeStatusBar = "statusbar"
	TypeOther     = "other"
)

// TypeMap maps toolkit implementation class names to type tags.
var TypeMap = map[string]string{
	"oracle.forms.ui.VTextField":      TypeText,
	"oracle.forms.ui.VTextArea":       TypeTextArea,
	"oracle.forms.ui.VPopList":        TypeCombo,
	"oracle.forms.ui.VComboBox":       TypeCombo,
	"oracle.forms.ui.VButton":         TypeButton,
	"oracle.ewt.lwAWT.LWButton":       TypePush,
	"oracle.ewt.lwAWT.LWCheckbox":     TypeCheck,
	"oracle.forms.ui.VCheckbox":       TypeCheckWrap,
	"oracle.ewt.lwAWT.LWLabel":        TypeLabel,
	"oracle.forms.ui.VLabel":          TypeLabel,
	"oracle.ewt.statusBar.StatusBar":  TypeStatusBar,
	"oracle.forms.engine.FormWindow":  TypeWindow,
	"oracle.forms.ui.FormCanvas":      TypePanel,
	"oracle.ewt.lwAWT.LWComponent":    TypeOther,
	"oracle.ewt.lwAWT.BufferedFrame":  TypeWindow,
	"oracle.ewt.scrolling.ScrollPane": TypePanel,
}

// TypeGroups maps group names to the concrete type tags they expand to.
var TypeGroups = map[string][]string{
	"textfield": {TypeText, TypeTextArea, TypeCombo},
	"buttons":   {TypeButton, TypePush},
	"checkbox":  {TypeCheckWrap},
}

// TextFieldTypes are the types whose text can be read and matched by value.
var TextFieldTypes = TypeGroups["textfield"]

// ButtonTypes are the pressable button types.
var ButtonTypes = TypeGroups["buttons"]

// ExpandTypes expands any group names in the given list to their concrete
// tags. Plain tags pass through unchanged. Duplicates are removed.
func ExpandTypes(types []string) []string {
	seen := make(map[string]bool, len(types))
	var expanded []string
	for _, t := range types {
		if concrete, ok := TypeGroups[t]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[t] {
			seen[t] = true
			expanded = append(expanded, t)
		}
	}
	return expanded
}

// MapType converts a toolkit class name to a type tag. Names that are already
// tags are returned as-is.
func MapType(class string) string {
	if short, ok := TypeMap[class]; ok {
		return short
	}
	switch class {
	case TypeWindow, TypePanel, TypeText, TypeTextArea, TypeCombo, TypeButton,
		TypePush, TypeCheck, TypeCheckWrap, TypeLabel, TypeStatusBar:
		return class
	}
	return TypeOther
}
