package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/trinket/component"
	"github.com/lixenwraith/trinket/config"
	"github.com/lixenwraith/trinket/core"
)

// TestQueryBuilder verifies intersection across stores of different sizes
func TestQueryBuilder(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)

	e1 := w.CreateEntity()
	w.Components.Name.Set(e1, component.NameComponent{Name: "lantern"})
	w.Components.Storable.Set(e1, component.StorableComponent{Width: 1, Height: 2})

	e2 := w.CreateEntity()
	w.Components.Name.Set(e2, component.NameComponent{Name: "tree"})

	e3 := w.CreateEntity()
	w.Components.Storable.Set(e3, component.StorableComponent{Width: 1, Height: 1})

	results := w.Query().
		With(w.Components.Name).
		With(w.Components.Storable).
		Execute()
	assert.Equal(t, []core.Entity{e1}, results)

	assert.Len(t, w.Query().With(w.Components.Name).Execute(), 2)
	assert.Empty(t, w.Query().Execute())
	assert.Empty(t, w.Query().With(w.Components.Storage).With(w.Components.Name).Execute())

	q := w.Query().With(w.Components.Storable)
	first := q.Execute()
	assert.Equal(t, first, q.Execute())
}

// TestQueryBuilder_Panic verifies With after Execute panics
func TestQueryBuilder_Panic(t *testing.T) {
	w := NewWorld(config.DefaultTuning(), nil)
	q := w.Query().With(w.Components.Name)
	q.Execute()
	assert.Panics(t, func() { q.With(w.Components.Storable) })
}
