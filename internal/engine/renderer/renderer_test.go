package renderer

import (
	"strings"
	"testing"

	"github.com/Faultbox/sphere-explorer/internal/engine/lighting"
)

func TestVertexLayout(t *testing.T) {
	if VertexStride != 44 {
		t.Errorf("stride = %d, want 44", VertexStride)
	}
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"position", offsetPosition, 0},
		{"color", offsetColor, 12},
		{"texcoord", offsetTexCoord, 24},
		{"normal", offsetNormal, 32},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Errorf("%s offset = %d, want %d", o.name, o.got, o.want)
		}
	}
}

func TestShaderLocationsMatchLayout(t *testing.T) {
	for _, want := range []string{
		"layout (location = 0) in vec3 aPos",
		"layout (location = 1) in vec3 aColor",
		"layout (location = 2) in vec2 aTexCoord",
		"layout (location = 3) in vec3 aNormal",
	} {
		if !strings.Contains(planetVertSrc, want) {
			t.Errorf("vertex shader missing %q", want)
		}
	}
}

func TestShaderLightArraySize(t *testing.T) {
	if !strings.Contains(planetFragSrc, "#define MAX_POINT_LIGHTS 8") || lighting.MaxPointLights != 8 {
		t.Error("fragment shader light array must match lighting.MaxPointLights")
	}
}

func TestNeedsUpload(t *testing.T) {
	tests := []struct {
		have, want         uint64
		haveMesh, wantMesh int
		upload             bool
	}{
		{0, 1, 0, 6, true},
		{1, 1, 6, 6, false},
		{1, 2, 6, 6, true},
		{3, 3, 0, 6, true},
	}
	for _, tt := range tests {
		if got := needsUpload(tt.have, tt.want, tt.haveMesh, tt.wantMesh); got != tt.upload {
			t.Errorf("needsUpload(%d, %d, %d, %d) = %v, want %v", tt.have, tt.want, tt.haveMesh, tt.wantMesh, got, tt.upload)
		}
	}
}

func TestAspect(t *testing.T) {
	if a := Aspect(1600, 800); a != 2 {
		t.Errorf("Aspect = %f, want 2", a)
	}
	if a := Aspect(640, 0); a != 640 {
		t.Errorf("Aspect with zero height = %f", a)
	}
}
