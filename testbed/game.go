package testbed

import (
	"github.com/spaghettifunk/facet/engine"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/renderer/components"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	pentagon components.Renderable
	cube     components.Renderable
	char     components.Renderable

	width  uint32
	height uint32
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

// Initialize builds the scene: the textured pentagon, the instanced cube
// grid and the overlay glyph.
func (g *TestGame) Initialize() error {
	core.LogInfo("initializing testbed...")
	state := g.State.(*gameState)
	scene := g.ApplicationConfig.Scene

	loaded, err := loadSceneAssets(scene)
	if err != nil {
		return err
	}
	texture := loaded.texture

	if scene.ShowPentagon {
		if state.pentagon, err = g.Renderer.CreateRenderable(components.NewPentagonConfig(texture)); err != nil {
			return err
		}
	}

	if scene.ShowCube {
		if state.cube, err = g.Renderer.CreateRenderable(components.NewCubeConfig(texture, scene.CubeRows)); err != nil {
			return err
		}
	}

	if scene.ShowChar {
		if state.char, err = g.Renderer.CreateRenderable(components.NewCharConfig(loaded.glyph, scene.CharQuad())); err != nil {
			return err
		}
	}

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed...")
	return nil
}

// gameOnKey moves the camera eye with the arrow keys when camera controls
// are enabled. Each press moves it one step.
func (g *TestGame) gameOnKey(context core.EventContext) bool {
	if !g.ApplicationConfig.Camera.Controls {
		return false
	}
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	camera := g.Renderer.Camera()
	eye, moved := StepEye(camera.Eye, ke.KeyCode)
	if !moved {
		return false
	}
	camera.UpdateEye(eye)
	core.LogDebug("Camera eye: [%.2f, %.2f, %.2f]", eye.X, eye.Y, eye.Z)
	return true
}

// StepEye returns eye moved by one controller step for key.
func StepEye(eye math.Vec3, key core.KeyCode) (math.Vec3, bool) {
	switch key {
	case core.KEY_LEFT:
		return math.NewVec3(eye.X-0.1, eye.Y, eye.Z), true
	case core.KEY_RIGHT:
		return math.NewVec3(eye.X+0.1, eye.Y, eye.Z), true
	case core.KEY_UP:
		return math.NewVec3(eye.X, eye.Y, eye.Z-0.02), true
	case core.KEY_DOWN:
		return math.NewVec3(eye.X, eye.Y, eye.Z+0.02), true
	}
	return eye, false
}
