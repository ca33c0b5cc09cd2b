package placeholder

// Placeholder describes a token a template author may use.
type Placeholder struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// New describes a single token.
func New(name string, description string) Placeholder {
	return Placeholder{Name: name, Description: description}
}

// Block describes the start and end markers of a conditional block.
func Block(name string, description string) []Placeholder {
	return []Placeholder{
		{Name: StartToken(name), Description: description},
		{Name: EndToken(name), Description: description},
	}
}

// List is an ordered placeholder catalog.
type List []Placeholder

// Token appends a single token.
func (l List) Token(name string, description string) List {
	return append(l, New(name, description))
}

// Block appends the marker pair of a conditional block.
func (l List) Block(name string, description string) List {
	return append(l, Block(name, description)...)
}

// Append appends another catalog.
func (l List) Append(other []Placeholder) List {
	return append(l, other...)
}

// Names returns the placeholder names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, p := range l {
		names[i] = p.Name
	}
	return names
}
