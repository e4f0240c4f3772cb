package recognizer

// Class is a gesture name and how many templates it has.
type Class struct {
	Name     string
	Variants int
}

// store keeps templates grouped by name. Names iterate in the order they were
// first added, variants in the order they were appended.
type store struct {
	names     []string
	templates map[string][]*Template
	count     int
}

func newStore() *store {
	return &store{templates: make(map[string][]*Template)}
}

func (s *store) add(t *Template) int {
	variants, ok := s.templates[t.Name]
	if !ok {
		s.names = append(s.names, t.Name)
	}
	s.templates[t.Name] = append(variants, t)
	s.count++
	return len(s.templates[t.Name])
}

func (s *store) len() int {
	return s.count
}

func (s *store) each(fn func(t *Template, variant int)) {
	for _, name := range s.names {
		for i, t := range s.templates[name] {
			fn(t, i)
		}
	}
}

func (s *store) classes() []Class {
	classes := make([]Class, 0, len(s.names))
	for _, name := range s.names {
		classes = append(classes, Class{Name: name, Variants: len(s.templates[name])})
	}
	return classes
}

func (s *store) variants(name string) []*Template {
	variants := make([]*Template, 0, len(s.templates[name]))
	for _, t := range s.templates[name] {
		variants = append(variants, t.clone())
	}
	return variants
}

// keepBuiltin drops every template that is not built in, and any class left
// without templates.
func (s *store) keepBuiltin() {
	names := s.names[:0]
	s.count = 0
	for _, name := range s.names {
		var kept []*Template
		for _, t := range s.templates[name] {
			if t.builtin {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			delete(s.templates, name)
			continue
		}
		s.templates[name] = kept
		s.count += len(kept)
		names = append(names, name)
	}
	s.names = names
}
