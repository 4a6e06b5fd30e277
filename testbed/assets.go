package testbed

import (
	"image"
	"runtime"

	"github.com/spaghettifunk/facet/engine"
	"github.com/spaghettifunk/facet/engine/assets"
	"github.com/spaghettifunk/facet/engine/assets/loaders"
	"github.com/spaghettifunk/facet/engine/renderer/components"
	"github.com/spaghettifunk/facet/engine/systems"
)

type sceneAssets struct {
	texture *image.RGBA
	glyph   *image.RGBA
}

// loadSceneAssets decodes the diffuse texture and the overlay glyph on the
// job system workers. GPU uploads stay on the caller's thread.
func loadSceneAssets(scene engine.SceneConfig) (*sceneAssets, error) {
	js, err := systems.NewJobSystem(min(2, runtime.NumCPU()), 2)
	if err != nil {
		return nil, err
	}

	loaded := &sceneAssets{glyph: components.DefaultGlyph()}
	errs := make([]error, 2)

	submitErr := js.Submit(systems.JobTask{
		Name: "diffuse texture",
		OnStart: func() (interface{}, error) {
			return assets.DiffuseTexture()
		},
		OnComplete: func(result interface{}) { loaded.texture = result.(*image.RGBA) },
		OnFailure:  func(err error) { errs[0] = err },
	})
	if submitErr == nil && scene.ShowChar && scene.GlyphFont != "" {
		submitErr = js.Submit(systems.JobTask{
			Name: "glyph " + scene.GlyphRune,
			OnStart: func() (interface{}, error) {
				return loaders.LoadGlyph(scene.GlyphFont, scene.Glyph())
			},
			OnComplete: func(result interface{}) { loaded.glyph = result.(*loaders.Glyph).Pixels },
			OnFailure:  func(err error) { errs[1] = err },
		})
	}

	if err := js.Shutdown(); err != nil {
		return nil, err
	}
	if submitErr != nil {
		return nil, submitErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return loaded, nil
}
