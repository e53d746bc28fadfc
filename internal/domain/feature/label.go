package feature

import "fmt"

// Label is a canonical bilingual feature label. Primary is the English
// catalog text, Secondary the Nepali text. A label produced by Literal has
// no secondary script and matches as a plain pattern.
type Label struct {
	primary   string
	secondary string
	category  Category
}

// NewLabel validates and creates a canonical bilingual label.
func NewLabel(primary, secondary string, c Category) (Label, error) {
	if primary == "" || secondary == "" {
		return Label{}, fmt.Errorf("label requires both scripts, got %q/%q", primary, secondary)
	}
	if !c.IsValid() {
		return Label{}, fmt.Errorf("invalid category %q", c)
	}
	return Label{primary: primary, secondary: secondary, category: c}, nil
}

// Literal wraps an unmatched user token as a single-script label so it is
// never silently dropped from the query.
func Literal(text string, c Category) Label {
	return Label{primary: text, category: c}
}

// Primary returns the English script text.
func (l Label) Primary() string { return l.primary }

// Secondary returns the Nepali script text ("" for literals).
func (l Label) Secondary() string { return l.secondary }

// Category returns the category the label belongs to.
func (l Label) Category() Category { return l.category }

// IsLiteral reports whether the label is a raw passthrough token.
func (l Label) IsLiteral() bool { return l.secondary == "" }

// String renders the label in the catalog "EN/NE" form.
func (l Label) String() string {
	if l.secondary == "" {
		return l.primary
	}
	return l.primary + "/" + l.secondary
}

func mustLabel(primary, secondary string, c Category) Label {
	l, err := NewLabel(primary, secondary, c)
	if err != nil {
		panic(err)
	}
	return l
}
