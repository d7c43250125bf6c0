package lighting

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight is a point light source for GPU upload.
type PointLight struct {
	Position  [3]float32 `yaml:"position,flow"`
	Color     [3]float32 `yaml:"color,flow"` // 0-1
	Range     float32    `yaml:"range"`
	Intensity float32    `yaml:"intensity"`
}

// Sanitized clamps color to 0-1 and fills in a missing range or intensity.
func (l PointLight) Sanitized() PointLight {
	for i := range l.Color {
		if l.Color[i] > 1 {
			l.Color[i] = 1
		}
		if l.Color[i] < 0 {
			l.Color[i] = 0
		}
	}
	if l.Range <= 0 {
		l.Range = 5
	}
	if l.Intensity <= 0 {
		l.Intensity = 1
	}
	return l
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light. Returns false if the buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light.Sanitized())
	return true
}

// SetLights replaces all lights, truncating to MaxPointLights.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	for _, l := range lights {
		if !b.AddLight(l) {
			return
		}
	}
}

// Positions returns positions as [x0, y0, z0, x1, ...] padded to MaxPointLights.
func (b *PointLightBuffer) Positions() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i, l := range b.Lights {
		copy(out[i*3:], l.Position[:])
	}
	return out
}

// Colors returns colors as [r0, g0, b0, r1, ...] padded to MaxPointLights.
func (b *PointLightBuffer) Colors() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i, l := range b.Lights {
		copy(out[i*3:], l.Color[:])
	}
	return out
}

// Ranges returns light ranges padded to MaxPointLights.
func (b *PointLightBuffer) Ranges() []float32 {
	out := make([]float32, MaxPointLights)
	for i, l := range b.Lights {
		out[i] = l.Range
	}
	return out
}

// Intensities returns light intensities padded to MaxPointLights.
func (b *PointLightBuffer) Intensities() []float32 {
	out := make([]float32, MaxPointLights)
	for i, l := range b.Lights {
		out[i] = l.Intensity
	}
	return out
}
