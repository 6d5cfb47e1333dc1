package render

import "github.com/lixenwraith/booster-catch/scene"

// Renderer presents a scene; Render is called once per frame from the run loop
type Renderer interface {
	Render(sc *scene.Scene) error
	Close() error
}
