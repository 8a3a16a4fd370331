package rotvis

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type orderModule struct {
	name  string
	order *[]string
}

func (m orderModule) Install(app *App, commands *Commands) {
	*m.order = append(*m.order, m.name)
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Expected Install to wait for Build")
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	app := builder.Build()

	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
	if len(app.modules) != 1 {
		t.Errorf("Expected app to record 1 module, got %v", len(app.modules))
	}
}

func TestAppBuilder_Build_InstallsInOrder(t *testing.T) {
	var order []string
	NewAppBuilder().
		UseModule(orderModule{"a", &order}, orderModule{"b", &order}).
		UseModule(orderModule{"c", &order}).
		Build()

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected modules installed as [a b c], got %v", order)
	}
}
