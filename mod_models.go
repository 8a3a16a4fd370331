package rotvis

import (
	"strings"

	"github.com/google/uuid"
)

type InstanceId string

// Model is a named prefab that can be shown in the preview.
type Model struct {
	Name   string `mapstructure:"name" json:"name"`
	Prefab string `mapstructure:"prefab" json:"prefab"`
}

// ModelInstance is the currently instantiated prefab. Each selection
// destroys the previous instance and creates a fresh one.
type ModelInstance struct {
	Id    InstanceId
	Model Model
}

type ModelCatalog struct {
	models    []Model
	active    *ModelInstance
	logger    Logger
	listeners listeners[ModelInstance]
}

type ModelModule struct {
	Models []Model
	// Initial is selected on install if present.
	Initial string
}

func (mod ModelModule) Install(app *App, cmd *Commands) {
	catalog := NewModelCatalog(mod.Models, app.Logger())
	if mod.Initial != "" {
		catalog.Select(mod.Initial)
	} else if len(mod.Models) > 0 {
		catalog.Select(mod.Models[0].Name)
	}
	cmd.AddResources(catalog)
}

func NewModelCatalog(models []Model, logger Logger) *ModelCatalog {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &ModelCatalog{
		models: append([]Model(nil), models...),
		logger: logger,
	}
}

// Names lists the selectable model names in order.
func (c *ModelCatalog) Names() []string {
	names := make([]string, len(c.models))
	for i, m := range c.models {
		names[i] = m.Name
	}
	return names
}

// Active returns the current instance, if any.
func (c *ModelCatalog) Active() (ModelInstance, bool) {
	if c.active == nil {
		return ModelInstance{}, false
	}
	return *c.active, true
}

// Select instantiates the model whose name matches, ignoring case. An empty
// or unknown name is a silent no-op and reports false.
func (c *ModelCatalog) Select(name string) bool {
	if name == "" {
		return false
	}
	for _, m := range c.models {
		if !strings.EqualFold(name, m.Name) {
			continue
		}
		if c.active != nil {
			c.logger.Debugf("destroying model instance %s (%s)", c.active.Id, c.active.Model.Name)
		}
		c.active = &ModelInstance{Id: makeInstanceId(), Model: m}
		c.logger.Infof("instantiated model %s from %s as %s", m.Name, m.Prefab, c.active.Id)
		c.listeners.emit(*c.active)
		return true
	}
	return false
}

// Next selects the model after the active one, wrapping around.
func (c *ModelCatalog) Next() bool {
	if len(c.models) == 0 {
		return false
	}
	next := 0
	if c.active != nil {
		for i, m := range c.models {
			if m.Name == c.active.Model.Name {
				next = (i + 1) % len(c.models)
				break
			}
		}
	}
	return c.Select(c.models[next].Name)
}

func (c *ModelCatalog) OnModelChanged(fn func(ModelInstance)) (remove func()) {
	return c.listeners.add(fn)
}

func makeInstanceId() InstanceId {
	return InstanceId(uuid.NewString())
}
