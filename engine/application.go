package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/facet/engine/core"
	"github.com/spaghettifunk/facet/engine/math"
	"github.com/spaghettifunk/facet/engine/renderer/components"
)

const (
	DefaultConfigPath = "facet.toml"
	// ConfigPathEnv overrides DefaultConfigPath.
	ConfigPathEnv = "FACET_CONFIG"
)

type WindowConfig struct {
	// The application name used in windowing.
	Name string `toml:"name"`
	// Window starting position x axis.
	StartPosX uint32 `toml:"x"`
	// Window starting position y axis.
	StartPosY uint32 `toml:"y"`
	// Window starting width.
	StartWidth uint32 `toml:"width"`
	// Window starting height.
	StartHeight uint32 `toml:"height"`
}

type CameraConfig struct {
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	FovY   float32    `toml:"fovy"`
	ZNear  float32    `toml:"znear"`
	ZFar   float32    `toml:"zfar"`
	// Enables the arrow key camera controller.
	Controls bool `toml:"controls"`
}

type SceneConfig struct {
	ShowPentagon bool   `toml:"show_pentagon"`
	ShowCube     bool   `toml:"show_cube"`
	ShowChar     bool   `toml:"show_char"`
	CubeRows     uint32 `toml:"cube_rows"`
	// AngelCode .fnt file the char glyph is taken from. Empty uses the built-in glyph.
	GlyphFont string `toml:"glyph_font"`
	// The glyph to take from GlyphFont, a single character.
	GlyphRune  string     `toml:"glyph_rune"`
	CharScale  float32    `toml:"char_scale"`
	CharOffset [2]float32 `toml:"char_offset"`
}

type DiagnosticsConfig struct {
	// Lists the Vulkan physical devices at startup.
	VulkanProbe bool `toml:"vulkan_probe"`
	// Seconds between frame metric log lines. Zero disables them.
	MetricsInterval float64 `toml:"metrics_interval"`
	// Watches the configuration file and re-applies camera and log level on change.
	WatchConfig bool `toml:"watch_config"`
}

type ApplicationConfig struct {
	Window      WindowConfig      `toml:"window"`
	LogLevel    string            `toml:"log_level"`
	Camera      CameraConfig      `toml:"camera"`
	Scene       SceneConfig       `toml:"scene"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	camera := components.NewCamera()
	return &ApplicationConfig{
		Window: WindowConfig{
			Name:        "Facet",
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  800,
			StartHeight: 600,
		},
		LogLevel: "info",
		Camera: CameraConfig{
			Eye:    [3]float32{camera.Eye.X, camera.Eye.Y, camera.Eye.Z},
			Target: [3]float32{camera.Target.X, camera.Target.Y, camera.Target.Z},
			FovY:   camera.FovY,
			ZNear:  camera.ZNear,
			ZFar:   camera.ZFar,
		},
		Scene: SceneConfig{
			ShowPentagon: true,
			ShowCube:     true,
			ShowChar:     true,
			CubeRows:     components.NumInstancesPerRow,
			GlyphRune:    "A",
			CharScale:    components.DefaultCharQuad().Scale,
		},
		Diagnostics: DiagnosticsConfig{
			MetricsInterval: 5,
			WatchConfig:     true,
		},
	}
}

// ConfigPath returns the configuration file path, honouring FACET_CONFIG.
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadApplicationConfig reads path on top of the defaults. A missing file
// yields the defaults; unknown keys are rejected.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogInfo("no configuration at %s, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.Window.StartWidth == 0 || c.Window.StartHeight == 0 {
		return fmt.Errorf("window size must be non-zero, got %dx%d", c.Window.StartWidth, c.Window.StartHeight)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("unknown log level '%s'", c.LogLevel)
	}
	camera := components.NewCamera()
	c.Camera.apply(camera)
	if err := camera.Validate(); err != nil {
		return err
	}
	if c.Scene.ShowCube && c.Scene.CubeRows == 0 {
		return fmt.Errorf("scene.cube_rows must be at least 1")
	}
	if utf8.RuneCountInString(c.Scene.GlyphRune) != 1 {
		return fmt.Errorf("scene.glyph_rune must be a single character, got '%s'", c.Scene.GlyphRune)
	}
	if !(c.Scene.CharScale > 0) {
		return fmt.Errorf("scene.char_scale must be positive")
	}
	if c.Diagnostics.MetricsInterval < 0 {
		return fmt.Errorf("diagnostics.metrics_interval must not be negative")
	}
	return nil
}

func (c *ApplicationConfig) Level() core.LogLevel {
	return core.ParseLogLevel(c.LogLevel)
}

// Glyph returns the codepoint of Scene.GlyphRune.
func (c *SceneConfig) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.GlyphRune)
	return r
}

func (c *SceneConfig) CharQuad() components.CharQuad {
	return components.CharQuad{
		Scale:  c.CharScale,
		Offset: math.NewVec2(c.CharOffset[0], c.CharOffset[1]),
	}
}

// Apply copies the camera settings into camera, leaving its aspect alone.
// camera is untouched when the result would be invalid.
func (c *CameraConfig) Apply(camera *components.Camera) error {
	candidate := *camera
	c.apply(&candidate)
	if err := candidate.Validate(); err != nil {
		return err
	}
	*camera = candidate
	return nil
}

func (c *CameraConfig) apply(camera *components.Camera) {
	camera.Eye = math.NewVec3(c.Eye[0], c.Eye[1], c.Eye[2])
	camera.Target = math.NewVec3(c.Target[0], c.Target[1], c.Target[2])
	camera.FovY = c.FovY
	camera.ZNear = c.ZNear
	camera.ZFar = c.ZFar
}
