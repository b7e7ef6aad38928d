package keyword

var (
	paramName   = Param{Name: "name", Type: TypeString, Required: true, Description: "Field name; a trailing ':' is ignored"}
	paramValue  = Param{Name: "value", Type: TypeString, Required: true, Description: "Text to set"}
	paramLabel  = Param{Name: "label", Type: TypeString, Required: true, Description: "Label to the left of the field; a trailing ':' is ignored"}
	paramDetect = Param{Name: "detect-window-change", Type: TypeBoolean, Description: "Report whether the action opened or closed a window (default: true)"}
)

func init() {
	register(
		Keyword{
			Name:        "set-field",
			Description: "Locate a text field by name and set it to the given value.",
			Params:      []Param{paramName, paramValue},
			Mutates:     true,
			Run: func(s *Session, p Params) (Result, error) {
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				value, err := p.requireString("value")
				if err != nil {
					return Result{}, err
				}
				return Result{Value: value}, s.Field.SetField(name, value)
			},
		},
		Keyword{
			Name:        "get-field",
			Description: "Get the value of a text field located by name.",
			Params:      []Param{paramName},
			Run: func(s *Session, p Params) (Result, error) {
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				value, err := s.Field.GetField(name)
				return Result{Value: value}, err
			},
		},
		Keyword{
			Name:        "verify-field",
			Description: "Verify that a text field matches a pattern ('*' any run, '?' one character). Not for repeated table fields; use get-row-field.",
			Params: []Param{paramName,
				{Name: "pattern", Type: TypeString, Required: true, Description: "Expected value, may contain wildcards"}},
			Run: func(s *Session, p Params) (Result, error) {
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				pattern, err := p.requireString("pattern")
				if err != nil {
					return Result{}, err
				}
				return Result{Value: pattern}, s.Field.VerifyField(name, pattern)
			},
		},
		Keyword{
			Name:        "set-field-next-to-label",
			Description: "Set the text field immediately right of a label. For fields that have no name of their own.",
			Params:      []Param{paramLabel, paramValue},
			Mutates:     true,
			Run: func(s *Session, p Params) (Result, error) {
				label, err := p.requireString("label")
				if err != nil {
					return Result{}, err
				}
				value, err := p.requireString("value")
				if err != nil {
					return Result{}, err
				}
				return Result{Value: value}, s.Field.SetFieldNextToLabel(label, value)
			},
		},
		Keyword{
			Name:        "get-field-next-to-label",
			Description: "Get the value of the text field immediately right of a label.",
			Params:      []Param{paramLabel},
			Run: func(s *Session, p Params) (Result, error) {
				label, err := p.requireString("label")
				if err != nil {
					return Result{}, err
				}
				value, err := s.Field.GetFieldNextToLabel(label)
				return Result{Value: value}, err
			},
		},
		Keyword{
			Name:        "click-text-field",
			Description: "Click a text field located by name.",
			Params:      []Param{paramName, paramDetect},
			Mutates:     true,
			Run: func(s *Session, p Params) (Result, error) {
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				detect, err := p.Bool("detect-window-change", true)
				if err != nil {
					return Result{}, err
				}
				changed, err := s.Field.ClickTextField(name, detect)
				r := Result{}
				if detect {
					r.WindowChanged = boolPtr(changed)
				}
				return r, err
			},
		},
		Keyword{
			Name:        "push-button",
			Description: "Push a button located by name.",
			Params:      []Param{paramName, paramDetect},
			Mutates:     true,
			Run: func(s *Session, p Params) (Result, error) {
				name, err := p.requireString("name")
				if err != nil {
					return Result{}, err
				}
				detect, err := p.Bool("detect-window-change", true)
				if err != nil {
					return Result{}, err
				}
				changed, err := s.Field.PushButton(name, detect)
				r := Result{}
				if detect {
					r.WindowChanged = boolPtr(changed)
				}
				return r, err
			},
		},
		Keyword{
			Name:        "find-text-fields",
			Description: "List the names of text fields whose value matches a pattern.",
			Params:      []Param{{Name: "pattern", Type: TypeString, Required: true, Description: "Value pattern, may contain wildcards"}},
			Run: func(s *Session, p Params) (Result, error) {
				pattern, err := p.requireString("pattern")
				if err != nil {
					return Result{}, err
				}
				names, err := s.Field.FindTextFields(pattern)
				return Result{Values: names}, err
			},
		},
	)
}
