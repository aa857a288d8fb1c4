package expert

import (
	"errors"
	"fmt"
)

// Persona is a named system-prompt preset offered to the user.
type Persona struct {
	Label        string
	SystemPrompt string
}

// Registry is an immutable, ordered set of personas with a designated default.
type Registry struct {
	personas     []Persona
	byLabel      map[string]string
	defaultLabel string
}

const (
	Baseball = "野球の専門家"
	Cooking  = "料理の専門家"
)

// New validates personas and builds a registry. Labels must be unique and
// defaultLabel must be one of them.
func New(defaultLabel string, personas ...Persona) (*Registry, error) {
	if len(personas) == 0 {
		return nil, errors.New("expert registry is empty")
	}
	r := &Registry{
		personas:     make([]Persona, 0, len(personas)),
		byLabel:      make(map[string]string, len(personas)),
		defaultLabel: defaultLabel,
	}
	for _, p := range personas {
		if p.Label == "" {
			return nil, errors.New("expert label is empty")
		}
		if _, dup := r.byLabel[p.Label]; dup {
			return nil, fmt.Errorf("duplicate expert label %q", p.Label)
		}
		r.byLabel[p.Label] = p.SystemPrompt
		r.personas = append(r.personas, p)
	}
	if _, ok := r.byLabel[defaultLabel]; !ok {
		return nil, fmt.Errorf("default expert %q is not registered", defaultLabel)
	}
	return r, nil
}

// Default returns the two built-in experts with baseball as the fallback.
func Default() *Registry {
	r, err := New(Baseball,
		Persona{Label: Baseball, SystemPrompt: "あなたは野球の専門家です。専門的で実践的な回答をしてください。必要に応じて用語の説明を加えてください。"},
		Persona{Label: Cooking, SystemPrompt: "あなたは料理の専門家です。専門的で実践的な回答をしてください。必要に応じて用語の説明を加えてください。"},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the system prompt for label. Unknown labels silently get the
// default expert's prompt; callers that care should check Has first.
func (r *Registry) Lookup(label string) string {
	if p, ok := r.byLabel[label]; ok {
		return p
	}
	return r.byLabel[r.defaultLabel]
}

func (r *Registry) Has(label string) bool {
	_, ok := r.byLabel[label]
	return ok
}

// Labels returns labels in display order.
func (r *Registry) Labels() []string {
	out := make([]string, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, p.Label)
	}
	return out
}

func (r *Registry) DefaultLabel() string { return r.defaultLabel }
