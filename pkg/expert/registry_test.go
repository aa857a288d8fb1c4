package expert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookupKnownLabels(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{Baseball, Cooking}, r.Labels())
	assert.Equal(t, Baseball, r.DefaultLabel())

	for _, label := range r.Labels() {
		assert.True(t, r.Has(label))
	}
	assert.Equal(t, "あなたは野球の専門家です。専門的で実践的な回答をしてください。必要に応じて用語の説明を加えてください。", r.Lookup(Baseball))
	assert.Equal(t, "あなたは料理の専門家です。専門的で実践的な回答をしてください。必要に応じて用語の説明を加えてください。", r.Lookup(Cooking))
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	r, err := New("b",
		Persona{Label: "a", SystemPrompt: "prompt a"},
		Persona{Label: "b", SystemPrompt: "prompt b"},
	)
	require.NoError(t, err)

	assert.Equal(t, "prompt a", r.Lookup("a"))
	assert.Equal(t, "prompt b", r.Lookup("b"))
	for _, label := range []string{"", "c", "A", " a"} {
		assert.False(t, r.Has(label))
		assert.Equal(t, "prompt b", r.Lookup(label), "label %q", label)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New("a")
	assert.Error(t, err)

	_, err = New("a", Persona{Label: "a"}, Persona{Label: "a"})
	assert.ErrorContains(t, err, "duplicate")

	_, err = New("missing", Persona{Label: "a"})
	assert.ErrorContains(t, err, "not registered")

	_, err = New("a", Persona{Label: ""})
	assert.Error(t, err)
}

func TestLabelsReturnsCopy(t *testing.T) {
	r := Default()
	labels := r.Labels()
	labels[0] = "changed"
	assert.Equal(t, Baseball, r.Labels()[0])
}
