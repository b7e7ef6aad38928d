package search

import (
	"errors"
	"testing"

	"github.com/mj1618/forms-cli/internal/model"
	"github.com/mj1618/forms-cli/internal/platform"
	"github.com/mj1618/forms-cli/internal/platform/snapshot"
)

const tableYAML = `
elements:
  - y: window
    n: Orders
    b: [0, 0, 800, 600]
    c:
      - y: label
        n: "Customer:"
        b: [10, 10, 70, 20]
      - y: text
        n: customer
        t: acme
        b: [90, 10, 150, 20]
      - y: panel
        b: [0, 90, 800, 100]
        c:
          - {y: text, n: name, t: jeff, b: [10, 100, 100, 20]}
          - {y: text, n: dept, t: sales, b: [110, 100, 100, 20]}
          - {y: text, n: amount, t: "100", b: [210, 100, 80, 20]}
          - {y: text, n: name, t: jeff, b: [10, 130, 100, 20]}
          - {y: text, n: dept, t: accounting, b: [110, 130, 100, 20]}
          - {y: text, n: amount, t: "200", b: [210, 130, 80, 20]}
          - {y: text, n: name, t: anne, b: [10, 160, 100, 20]}
          - {y: text, n: dept, t: sales, b: [110, 160, 100, 20]}
          - {y: text, n: amount, t: "300", b: [210, 160, 80, 20]}
`

func tableRoot(t *testing.T) platform.Handle {
	t.Helper()
	f, err := snapshot.Parse([]byte(tableYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, err := f.Root()
	if err != nil {
		t.Fatalf("Root() error: %v", err)
	}
	return root
}

func texts(t *testing.T, handles []platform.Handle) []string {
	t.Helper()
	out := make([]string, len(handles))
	for i, h := range handles {
		s, err := platform.GetString(h, platform.OpGetText)
		if err != nil {
			t.Fatalf("getText on #%d: %v", h.ID(), err)
		}
		out[i] = s
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	root := tableRoot(t)
	s := New()

	tests := []struct {
		name string
		p    Predicate
		want []string
	}{
		{"all text fields", ByType{Index: -1, Types: []string{"textfield"}},
			[]string{"acme", "jeff", "sales", "100", "jeff", "accounting", "200", "anne", "sales", "300"}},
		{"first text field", ByType{Index: 0, Types: []string{model.TypeText}}, []string{"acme"}},
		{"fifth text field", ByType{Index: 4, Types: []string{model.TypeText}}, []string{"jeff"}},
		{"index past end", ByType{Index: 10, Types: []string{model.TypeText}}, []string{}},
		{"by name", ByName{Name: "dept", Types: model.TextFieldTypes}, []string{"sales", "accounting", "sales"}},
		{"by name with separator", ByName{Name: "amount:", Types: model.TextFieldTypes}, []string{"100", "200", "300"}},
		{"by name wrong type", ByName{Name: "dept", Types: []string{model.TypeCombo}}, []string{}},
		{"by value exact", ByValue{Pattern: "jeff"}, []string{"jeff", "jeff"}},
		{"by value wildcard", ByValue{Pattern: "s*"}, []string{"sales", "sales"}},
		{"by value single char", ByValue{Pattern: "?00"}, []string{"100", "200", "300"}},
		{"by value no match", ByValue{Pattern: "bob"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(root, tt.p)
			if err != nil {
				t.Fatalf("Search(%s) error: %v", tt.p, err)
			}
			if values := texts(t, got); !equal(values, tt.want) {
				t.Errorf("Search(%s) = %v, want %v", tt.p, values, tt.want)
			}
		})
	}
}

func TestSearchByNameLabel(t *testing.T) {
	root := tableRoot(t)
	got, err := New().Search(root, ByName{Name: "Customer", Types: []string{model.TypeLabel}})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got) != 1 || got[0].Name() != "Customer:" {
		t.Fatalf("got %d labels, want the Customer: label", len(got))
	}

	noSep := Searcher{}
	got, _ = noSep.Search(root, ByName{Name: "Customer", Types: []string{model.TypeLabel}})
	if len(got) != 0 {
		t.Error("without a separator the trailing ':' must not be stripped")
	}
}

func TestSearchByRow(t *testing.T) {
	root := tableRoot(t)
	s := New()
	anchors, err := s.Search(root, ByValue{Pattern: "accounting"})
	if err != nil || len(anchors) != 1 {
		t.Fatalf("anchor search: %v, %d results", err, len(anchors))
	}
	got, err := s.Search(root, ByRow{Anchor: anchors[0], Name: "amount", Types: model.TextFieldTypes})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if values := texts(t, got); !equal(values, []string{"200"}) {
		t.Errorf("row field = %v, want [200]", values)
	}

	if _, err := s.Search(root, ByRow{Name: "amount"}); err == nil {
		t.Error("ByRow without anchor should fail")
	}
}

func TestSearchResultsHaveAllowedTypes(t *testing.T) {
	root := tableRoot(t)
	s := New()
	preds := []Predicate{
		ByType{Index: -1, Types: []string{model.TypeLabel}},
		ByType{Index: -1, Types: []string{model.TypePanel, model.TypeWindow}},
		ByName{Name: "name", Types: []string{model.TypeText}},
		ByValue{Pattern: "*", Types: []string{model.TypeText}},
	}
	for _, p := range preds {
		got, err := s.Search(root, p)
		if err != nil {
			t.Fatalf("Search(%s) error: %v", p, err)
		}
		var allowed []string
		switch p := p.(type) {
		case ByType:
			allowed = p.Types
		case ByName:
			allowed = p.Types
		case ByValue:
			allowed = p.Types
		}
		set := map[string]bool{}
		for _, a := range allowed {
			set[a] = true
		}
		for _, h := range got {
			if !set[h.Type()] {
				t.Errorf("Search(%s) returned %s#%d", p, h.Type(), h.ID())
			}
		}
	}
}

func TestSearchByRowUnrealizedCandidate(t *testing.T) {
	f := snapshot.New("", []model.Element{{
		Type:   model.TypeWindow,
		Bounds: [4]int{0, 0, 400, 400},
		Children: []model.Element{
			{Type: model.TypeText, Name: "key", Text: "k", Bounds: [4]int{0, 100, 50, 20}},
			{Type: model.TypeText, Name: "col", Realized: new(bool), Bounds: [4]int{60, 100, 50, 20}},
		},
	}})
	root, _ := f.Root()
	s := New()
	anchors, _ := s.Search(root, ByValue{Pattern: "k"})
	if len(anchors) != 1 {
		t.Fatalf("got %d anchors, want 1", len(anchors))
	}
	_, err := s.Search(root, ByRow{Anchor: anchors[0], Name: "col", Types: model.TextFieldTypes})
	var invErr *platform.InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("err = %v, want InvocationError", err)
	}
}
