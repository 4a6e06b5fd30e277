package engine

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/facet/engine/assets"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/platform"
	"github.com/spaghettifunk/facet/engine/renderer"
	"github.com/spaghettifunk/facet/engine/renderer/vulkan"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// maxFrameDelta caps the delta handed to the game update, in seconds.
const maxFrameDelta = 0.25

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	platform     *platform.Platform
	renderer     *renderer.Renderer
	watcher      *assets.Watcher
	quit         chan struct{}
	frameErr     error
	configPath   string
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	lastMetrics  float64
}

func New(g *Game, configPath string) (*Engine, error) {
	if g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game has no application config")
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		return nil, err
	}
	core.SetLogLevel(g.ApplicationConfig.Level())

	p := platform.New()
	r := renderer.New(p)
	g.Renderer = r

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		platform:     p,
		renderer:     r,
		configPath:   configPath,
		quit:         make(chan struct{}, 1),
		isRunning:    true,
		isSuspended:  false,
		width:        g.ApplicationConfig.Window.StartWidth,
		height:       g.ApplicationConfig.Window.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_REDRAW_REQUESTED, e.onRedraw)

	if err := e.platform.Startup(config.Window.Name,
		config.Window.StartPosX,
		config.Window.StartPosY,
		config.Window.StartWidth,
		config.Window.StartHeight); err != nil {
		return err
	}

	if config.Diagnostics.VulkanProbe {
		vulkan.LogDevices(config.Window.Name)
	}

	// the framebuffer can differ from the requested window size on HiDPI screens
	e.width, e.height = e.platform.GetFramebufferSize()
	if err := e.renderer.Initialize(config.Window.Name, e.width, e.height); err != nil {
		return err
	}
	if err := config.Camera.Apply(e.renderer.Camera()); err != nil {
		return err
	}

	if config.Diagnostics.WatchConfig {
		w, err := assets.NewWatcher(assets.DefaultDebounce, e.configPath)
		if err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		} else {
			e.watcher = w
		}
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.renderer.Prime(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}

		if e.frameErr != nil {
			break
		}

		e.drainQuit()
		e.drainWatcher()
		if !e.isRunning {
			break
		}

		if e.isSuspended {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		// a long stall (resume from minimize, debugger) counts as one slow frame
		var delta float64 = math.Clamp(currentTime-e.lastTime, 0, maxFrameDelta)
		var frameStartTime float64 = platform.GetAbsoluteTime()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down.")
			return err
		}

		if err := e.drawFrame(); err != nil {
			core.LogError("Frame failed, shutting down: %s", err)
			return err
		}

		var frameEndTime float64 = platform.GetAbsoluteTime()
		e.metrics.Update(frameEndTime - frameStartTime)
		e.logMetrics(currentTime)

		core.InputUpdate(delta)

		e.lastTime = currentTime
	}

	return e.frameErr
}

func (e *Engine) drawFrame() error {
	e.clock.Update()
	return e.renderer.DrawFrame(e.clock.ElapsedSeconds())
}

func (e *Engine) logMetrics(now float64) {
	interval := e.gameInstance.ApplicationConfig.Diagnostics.MetricsInterval
	if interval <= 0 || now-e.lastMetrics < interval {
		return
	}
	e.lastMetrics = now
	fps, frameTime := e.metrics.Frame()
	core.LogDebug("FPS: %.0f, frame time: %.3fms", fps, frameTime)
}

// RequestQuit asks the loop to stop. Safe to call from any goroutine; the
// quit event itself is fired on the loop thread.
func (e *Engine) RequestQuit() {
	select {
	case e.quit <- struct{}{}:
	default:
	}
}

func (e *Engine) drainQuit() {
	select {
	case <-e.quit:
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	default:
	}
}

// drainWatcher applies at most one pending configuration change without blocking.
func (e *Engine) drainWatcher() {
	if e.watcher == nil {
		return
	}
	select {
	case path := <-e.watcher.Changes():
		e.reloadConfig(path)
	case err := <-e.watcher.Errors():
		core.LogWarn("config watcher: %s", err)
	default:
	}
}

// reloadConfig re-reads the configuration and applies the settings that can
// change at runtime: camera and log level. A broken file keeps the old values.
func (e *Engine) reloadConfig(path string) {
	config, err := LoadApplicationConfig(path)
	if err != nil {
		core.LogWarn("ignoring configuration change: %s", err)
		return
	}
	if err := config.Camera.Apply(e.renderer.Camera()); err != nil {
		core.LogWarn("ignoring camera change: %s", err)
		return
	}

	current := e.gameInstance.ApplicationConfig
	current.Camera = config.Camera
	current.LogLevel = config.LogLevel
	core.SetLogLevel(current.Level())

	core.LogInfo("configuration reloaded from %s", path)
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if ke.KeyCode == core.KEY_ESCAPE {
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		return true
	}
	return false
}

func (e *Engine) onRedraw(context core.EventContext) bool {
	if e.currentStage != EngineStageRunning || e.isSuspended || e.frameErr != nil {
		return false
	}
	if err := e.drawFrame(); err != nil {
		core.LogError("Frame failed, shutting down: %s", err)
		// reported by Run once PumpMessages returns
		e.frameErr = err
		e.isRunning = false
	}
	return true
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if err := e.renderer.OnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError(err.Error())
	}
	return true
}
