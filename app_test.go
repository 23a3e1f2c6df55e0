package ballpit

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

type callLog struct {
	calls []string
}

type frameCounter struct {
	n int
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)

	assert.Panics(t, func() { app.addResources(MockResource1{}) }, "non-pointer resources are rejected")
}

func TestApp_SystemsRunInStageOrder(t *testing.T) {
	app := NewApp()
	log := &callLog{}
	app.Commands().AddResources(log)

	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "render") }).InStage(Render))
	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "update") }))
	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "prelude") }).InStage(Prelude))

	app.Step()

	assert.Equal(t, []string{"prelude", "update", "render"}, log.calls)
	assert.Equal(t, uint64(1), app.Frames())
}

func TestApp_UseStage(t *testing.T) {
	app := NewApp()
	log := &callLog{}
	app.Commands().AddResources(log)

	collide := Stage{Name: "Collide"}
	app.UseStage(collide, AfterStage(Update))
	app.UseStage(Stage{Name: "Setup"}, BeforeStage(Prelude))

	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "post") }).InStage(PostUpdate))
	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "collide") }).InStage(collide))
	app.UseSystem(System(func(l *callLog) { l.calls = append(l.calls, "update") }).InStage(Update))
	app.Step()

	assert.Equal(t, []string{"update", "collide", "post"}, log.calls)
	assert.Equal(t, "Setup", app.stages[0].Name)

	assert.Panics(t, func() { app.UseStage(Stage{Name: "X"}, AfterStage(Stage{Name: "Missing"})) })
	assert.Panics(t, func() { app.UseStage(collide, AfterStage(Render)) })
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"})) })
}

func TestApp_RunUntilExit(t *testing.T) {
	app := NewApp()
	counter := &frameCounter{}
	app.Commands().AddResources(counter)
	app.UseSystem(System(func(cmd *Commands, c *frameCounter) {
		c.n++
		if c.n == 3 {
			cmd.Exit()
		}
	}))

	frames := app.Run(0)

	assert.Equal(t, uint64(3), frames)
	assert.Equal(t, 3, counter.n)
}

func TestApp_RunMaxFrames(t *testing.T) {
	app := NewApp().UseModules(TimeModule{Fixed: time.Millisecond})
	assert.Equal(t, uint64(4), app.Run(4))

	tm, ok := Resource[Time](app)
	require.True(t, ok)
	assert.Equal(t, uint64(4), tm.Frame)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(m *MockResource1) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_ModulesInstallOnce(t *testing.T) {
	app := NewApp().UseModules(ArenaModule{Width: 10, Height: 20})

	app.Step()
	app.Step()

	arena, ok := Resource[Arena](app)
	require.True(t, ok)
	assert.Equal(t, 10.0, arena.Width)
}
