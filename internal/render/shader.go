package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxLights is the number of point-light slots in the shader; unused slots have zero intensity.
const maxLights = 4

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// litFS: ambient plus up to maxLights point lights, lit from both sides so single-sided planes read from inside rooms.
	litFS = `#version 330
#define MAX_LIGHTS 4
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float useTexture;
uniform vec2 tiling;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 lightPos[MAX_LIGHTS];
uniform float lightIntensity[MAX_LIGHTS];
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  if (useTexture > 0.5) {
    tint *= texture(texture0, fragTexCoord * tiling);
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  if (dot(N, V) < 0.0) {
    N = -N;
  }
  vec3 light = ambient;
  for (int i = 0; i < MAX_LIGHTS; i++) {
    vec3 toLight = lightPos[i] - fragPosition;
    float d = length(toLight);
    vec3 L = toLight / max(d, 0.0001);
    float att = lightIntensity[i] / (1.0 + 0.01 * d * d);
    light += vec3(max(dot(N, L), 0.0) * att);
  }
  finalColor = vec4(tint.rgb * light, tint.a);
}
`
)

// litShader wraps the lighting shader and its uniform locations.
type litShader struct {
	shader       rl.Shader
	useTexture   int32
	tiling       int32
	viewPos      int32
	ambient      int32
	lightPos     int32
	lightIntense int32
}

func loadLitShader() (litShader, bool) {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(sh) {
		return litShader{}, false
	}
	return litShader{
		shader:       sh,
		useTexture:   rl.GetShaderLocation(sh, "useTexture"),
		tiling:       rl.GetShaderLocation(sh, "tiling"),
		viewPos:      rl.GetShaderLocation(sh, "viewPos"),
		ambient:      rl.GetShaderLocation(sh, "ambient"),
		lightPos:     rl.GetShaderLocation(sh, "lightPos"),
		lightIntense: rl.GetShaderLocation(sh, "lightIntensity"),
	}, true
}

// setFrame uploads per-frame uniforms (cgo-safe: local arrays).
func (s litShader) setFrame(view [3]float32, lights lightUniforms) {
	viewPos := view
	amb := lights.ambient
	pos := lights.positions
	in := lights.intensities
	if s.viewPos >= 0 {
		rl.SetShaderValueV(s.shader, s.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if s.ambient >= 0 {
		rl.SetShaderValueV(s.shader, s.ambient, amb[:], rl.ShaderUniformVec3, 1)
	}
	if s.lightPos >= 0 {
		rl.SetShaderValueV(s.shader, s.lightPos, pos[:], rl.ShaderUniformVec3, maxLights)
	}
	if s.lightIntense >= 0 {
		rl.SetShaderValueV(s.shader, s.lightIntense, in[:], rl.ShaderUniformFloat, maxLights)
	}
}

// setSurface uploads per-draw uniforms.
func (s litShader) setSurface(textured bool, tiling [2]float32) {
	use := []float32{0}
	if textured {
		use[0] = 1
	}
	t := tiling
	if s.useTexture >= 0 {
		rl.SetShaderValue(s.shader, s.useTexture, use, rl.ShaderUniformFloat)
	}
	if s.tiling >= 0 {
		rl.SetShaderValueV(s.shader, s.tiling, t[:], rl.ShaderUniformVec2, 1)
	}
}
