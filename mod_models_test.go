package rotvis

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModels = []Model{
	{Name: "Teapot", Prefab: "models/teapot.vox"},
	{Name: "Plane", Prefab: "models/plane.vox"},
	{Name: "Arrow", Prefab: "models/arrow.vox"},
}

func TestModelCatalog_Select(t *testing.T) {
	c := NewModelCatalog(testModels, nil)
	_, ok := c.Active()
	assert.False(t, ok)

	require.True(t, c.Select("plane"))
	first, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "Plane", first.Model.Name)
	_, err := uuid.Parse(string(first.Id))
	assert.NoError(t, err)

	// Reselecting the same model still replaces the instance.
	require.True(t, c.Select("PLANE"))
	second, _ := c.Active()
	assert.NotEqual(t, first.Id, second.Id)

	assert.False(t, c.Select(""))
	assert.False(t, c.Select("Cube"))
	kept, _ := c.Active()
	assert.Equal(t, second, kept)
}

func TestModelCatalog_Next(t *testing.T) {
	c := NewModelCatalog(testModels, nil)
	var seen []string
	c.OnModelChanged(func(m ModelInstance) { seen = append(seen, m.Model.Name) })

	for i := 0; i < 4; i++ {
		require.True(t, c.Next())
	}
	assert.Equal(t, []string{"Teapot", "Plane", "Arrow", "Teapot"}, seen)

	assert.False(t, NewModelCatalog(nil, nil).Next())
}

func TestModelCatalog_CopiesModels(t *testing.T) {
	models := append([]Model(nil), testModels...)
	c := NewModelCatalog(models, nil)
	models[0].Name = "Changed"
	assert.Equal(t, []string{"Teapot", "Plane", "Arrow"}, c.Names())
}

func TestModelModule_Install(t *testing.T) {
	app := NewApp().UseModules(ModelModule{Models: testModels, Initial: "arrow"})
	c := MustResource[ModelCatalog](app, "test")
	m, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "Arrow", m.Model.Name)

	app = NewApp().UseModules(ModelModule{Models: testModels})
	m, _ = MustResource[ModelCatalog](app, "test").Active()
	assert.Equal(t, "Teapot", m.Model.Name)

	app = NewApp().UseModules(ModelModule{})
	_, ok = MustResource[ModelCatalog](app, "test").Active()
	assert.False(t, ok)
}
