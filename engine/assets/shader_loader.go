package assets

import (
	"embed"
	"path"

	"github.com/pkg/errors"
)

//go:embed shaders
var shaders embed.FS

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaders.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", errors.Wrapf(err, "load shader %q", name)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
