package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// Ground is a single textured quad spanning ±Size on X/Z at height Y.
type Ground struct {
	Texture rl.Texture2D
	Size    float32
	Y       float32
}

// Draw emits the quad with the texture bound. Call inside the 3D view.
func (g *Ground) Draw() {
	s, y := g.Size, g.Y
	rl.SetTexture(g.Texture.ID)
	rl.Begin(rl.Quads)
	rl.Color4ub(255, 255, 255, 255)
	rl.Normal3f(0, 1, 0)
	rl.TexCoord2f(0, 0)
	rl.Vertex3f(-s, y, -s)
	rl.TexCoord2f(0, 1)
	rl.Vertex3f(-s, y, s)
	rl.TexCoord2f(1, 1)
	rl.Vertex3f(s, y, s)
	rl.TexCoord2f(1, 0)
	rl.Vertex3f(s, y, -s)
	rl.End()
	rl.SetTexture(0)
}

// Unload releases the GPU texture.
func (g *Ground) Unload() {
	if rl.IsTextureValid(g.Texture) {
		rl.UnloadTexture(g.Texture)
	}
}
