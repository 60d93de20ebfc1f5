package lighting

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"pyramid-show/internal/state"
)

// Controller owns the lit shader used for filled pyramid faces. One directional light (fixed) and one
// positional light (colour and position change at runtime) plus an ambient term.
// Light positions are in model space, so the lights turn with the camera transform.
type Controller struct {
	shader   rl.Shader
	locs     map[string]int32
	uploaded bool
	version  uint64
}

var uniformNames = []string{"ambient", "dirDirection", "dirColor", "pointPosition", "pointColor"}

// New compiles the lit shader. Must be called after the window (GL context) exists.
func New() (*Controller, error) {
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("lighting: shader compile failed")
	}
	c := &Controller{shader: shader, locs: make(map[string]int32, len(uniformNames))}
	for _, name := range uniformNames {
		c.locs[name] = rl.GetShaderLocation(shader, name)
	}
	return c, nil
}

// Apply uploads the light uniforms when l changed since the last upload.
func (c *Controller) Apply(l *state.Lights) {
	if c.uploaded && l.Version == c.version {
		return
	}
	c.set("ambient", l.Ambient)
	c.set("dirDirection", l.DirectionalDir)
	c.set("dirColor", l.DirectionalColor)
	c.set("pointPosition", l.PointPosition)
	c.set("pointColor", l.PointColor)
	c.uploaded = true
	c.version = l.Version
}

// set copies v into a local array before handing it to cgo.
func (c *Controller) set(name string, v mgl32.Vec3) {
	loc, ok := c.locs[name]
	if !ok || loc < 0 {
		return
	}
	vals := [3]float32{v[0], v[1], v[2]}
	rl.SetShaderValue(c.shader, loc, vals[:], rl.ShaderUniformVec3)
}

// Begin routes following immediate-mode draws through the lit shader.
func (c *Controller) Begin() {
	rl.BeginShaderMode(c.shader)
}

// End restores the default shader.
func (c *Controller) End() {
	rl.EndShaderMode()
}

// Unload releases the shader.
func (c *Controller) Unload() {
	rl.UnloadShader(c.shader)
}

// Same vertex attribute names as raylib's default batch: vertexPosition, vertexNormal, vertexColor.
// Faces have no consistent winding, so both sides are lit.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec4 vertexColor;
uniform mat4 mvp;
out vec3 fragPosition;
out vec3 fragNormal;
out vec4 fragColor;
void main() {
  fragPosition = vertexPosition;
  fragNormal = vertexNormal;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
in vec4 fragColor;
uniform vec4 colDiffuse;
uniform vec3 ambient;
uniform vec3 dirDirection;
uniform vec3 dirColor;
uniform vec3 pointPosition;
uniform vec3 pointColor;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float d = abs(dot(N, normalize(dirDirection)));
  float p = abs(dot(N, normalize(pointPosition - fragPosition)));
  vec3 light = ambient + dirColor * d + pointColor * p;
  finalColor = vec4(fragColor.rgb * light, fragColor.a) * colDiffuse;
}
`
)
