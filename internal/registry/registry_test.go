package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/box-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                          { return g.id }
func (g *stubGame) Title() string                       { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)            {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                 {}
func (g *stubGame) State() core.GameState               { return core.GameState{} }
func (g *stubGame) Controls() string                    { return "arrows" }
func (g *stubGame) Variants() []Variant {
	return []Variant{{ID: "4x4", Label: "4 x 4"}, {ID: "3x3", Label: "3 x 3"}}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	require.True(t, Exists("zz_stub"))
	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	info, ok := Info("zz_stub")
	require.True(t, ok)
	assert.Equal(t, "Stub zz_stub", info.Title)
	assert.Equal(t, "arrows", info.Controls)
	assert.Len(t, info.Variants, 2)

	assert.True(t, HasVariant("zz_stub", "3x3"))
	assert.True(t, HasVariant("zz_stub", ""))
	assert.False(t, HasVariant("zz_stub", "9x9"))

	list := List()
	assert.Equal(t, "zz_stub", list[len(list)-1].ID, "sorted by id")

	assert.Panics(t, func() {
		Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	})

	_, err = Create("missing")
	assert.Error(t, err)
}
