package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	matrices := map[string]Mat4{
		"translate":   Translate(1, 2, 3),
		"scale":       Scale(2, 3, 4),
		"rotate axis": RotateAxis(Vec3{1, 1, 0}, 0.7),
		"perspective": Perspective(DegToRad(45), 4.0/3.0, 0.1, 100),
		"look at":     LookAt(Vec3{1, 2, 3}, Vec3{}, Vec3{0, 1, 0}),
	}
	id := Identity()

	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			if got := m.Mul(id); !got.ApproxEqual(m, 1e-6) {
				t.Errorf("M * I = %v, want %v", got, m)
			}
			if got := id.Mul(m); !got.ApproxEqual(m, 1e-6) {
				t.Errorf("I * M = %v, want %v", got, m)
			}
		})
	}
}

// Pins the composition order: a.Mul(b) applies b first.
func TestMulConvention(t *testing.T) {
	p := Vec3{1, 0, 0}

	// Scale first, then translate: (1,0,0) -> (2,0,0) -> (12,0,0)
	got := Translate(10, 0, 0).Mul(ScaleUniform(2)).TransformPoint(p)
	if !got.ApproxEqual(Vec3{12, 0, 0}, 1e-5) {
		t.Errorf("T*S applied to %v = %v, want (12, 0, 0)", p, got)
	}

	// Translate first, then scale: (1,0,0) -> (11,0,0) -> (22,0,0)
	got = ScaleUniform(2).Mul(Translate(10, 0, 0)).TransformPoint(p)
	if !got.ApproxEqual(Vec3{22, 0, 0}, 1e-5) {
		t.Errorf("S*T applied to %v = %v, want (22, 0, 0)", p, got)
	}

	// Same result as applying one after the other
	a := RotateY(0.3)
	b := Translate(1, 2, 3)
	want := a.TransformPoint(b.TransformPoint(p))
	if got := a.Mul(b).TransformPoint(p); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("(A*B)p = %v, want A(Bp) = %v", got, want)
	}
}

func TestMulNotCommutative(t *testing.T) {
	a := Translate(1, 0, 0)
	b := RotateZ(float32(math.Pi / 2))
	if a.Mul(b).ApproxEqual(b.Mul(a), 1e-6) {
		t.Error("expected A*B != B*A for translation and rotation")
	}
}

func TestAdd(t *testing.T) {
	sum := Identity().Add(Identity())
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 2
		}
		if sum[i] != want {
			t.Errorf("I + I element %d: got %f, want %f", i, sum[i], want)
		}
	}
}

func TestFromColumns(t *testing.T) {
	m := FromColumns(
		Vec4{1, 2, 3, 4},
		Vec4{5, 6, 7, 8},
		Vec4{9, 10, 11, 12},
		Vec4{13, 14, 15, 16},
	)
	if m.Col(2) != (Vec4{9, 10, 11, 12}) {
		t.Errorf("Col(2) = %v, want (9, 10, 11, 12)", m.Col(2))
	}
	if m.At(1, 3) != 14 {
		t.Errorf("At(1, 3) = %f, want 14", m.At(1, 3))
	}

	rm := m.RowMajor()
	wantRow0 := [4]float32{1, 5, 9, 13}
	for i, want := range wantRow0 {
		if rm[i] != want {
			t.Errorf("RowMajor()[%d] = %f, want %f", i, rm[i], want)
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTranslateVec3(t *testing.T) {
	v := Vec3{5, 10, 15}
	if TranslateVec3(v) != Translate(5, 10, 15) {
		t.Error("TranslateVec3 differs from Translate")
	}
	if got := TranslateVec3(v).TransformPoint(Vec3{1, 1, 1}); got != (Vec3{6, 11, 16}) {
		t.Errorf("TransformPoint: got %v, want (6, 11, 16)", got)
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 1, 11)

	// Box corners map to the NDC cube, near to -1 and far to +1.
	tests := []struct {
		in, want Vec3
	}{
		{Vec3{-2, -1, -1}, Vec3{-1, -1, -1}},
		{Vec3{2, 1, -11}, Vec3{1, 1, 1}},
		{Vec3{0, 0, -6}, Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !got.ApproxEqual(tt.want, 1e-5) {
			t.Errorf("Ortho(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint(Vec3{1, 2, 3})

	expected := Vec3{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !result.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateAxisMatchesFixedAxes(t *testing.T) {
	angle := float32(0.83)
	tests := []struct {
		name  string
		axis  Vec3
		fixed Mat4
	}{
		{"pitch", Vec3{1, 0, 0}, RotateX(angle)},
		{"yaw", Vec3{0, 1, 0}, RotateY(angle)},
		{"roll", Vec3{0, 0, 1}, RotateZ(angle)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAxis(tt.axis, angle)
			if !got.ApproxEqual(tt.fixed, 1e-6) {
				t.Errorf("RotateAxis(%v) = %v, want %v", tt.axis, got, tt.fixed)
			}
		})
	}
}

func TestRotateAxisChecked(t *testing.T) {
	if _, err := RotateAxisChecked(Vec3{}, 1); err != ErrZeroLength {
		t.Errorf("expected ErrZeroLength for zero axis, got %v", err)
	}
	if _, err := RotateAxisChecked(Vec3{0, 2, 0}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRotateEuler(t *testing.T) {
	pitch, yaw, roll := float32(0.1), float32(0.2), float32(0.3)
	want := RotateY(yaw).Mul(RotateX(pitch)).Mul(RotateZ(roll))
	if got := RotateEuler(pitch, yaw, roll); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("RotateEuler = %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	m := Perspective(fov, 1.0, 0.1, 100.0)

	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// Near plane maps to -1, far plane maps to +1
	near := m.TransformPoint(Vec3{0, 0, -0.1})
	far := m.TransformPoint(Vec3{0, 0, -100})
	if !ApproxEqual(near.Z, -1, 1e-4) || !ApproxEqual(far.Z, 1, 1e-4) {
		t.Errorf("depth remap: near z=%f far z=%f, want -1 and 1", near.Z, far.Z)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// Eye maps to the origin of view space
	if got := m.TransformPoint(eye); !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	// Center lies straight ahead on -Z
	if got := m.TransformPoint(Vec3{}); !got.ApproxEqual(Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("center in view space = %v, want (0, 0, -5)", got)
	}
}

func TestLookAtChecked(t *testing.T) {
	tests := []struct {
		name           string
		eye, center, u Vec3
		wantErr        bool
	}{
		{"valid", Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0}, false},
		{"eye equals center", Vec3{1, 1, 1}, Vec3{1, 1, 1}, Vec3{0, 1, 0}, true},
		{"up parallel to view", Vec3{0, 5, 0}, Vec3{}, Vec3{0, 1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LookAtChecked(tt.eye, tt.center, tt.u)
			if tt.wantErr && err != ErrDegenerateView {
				t.Errorf("expected ErrDegenerateView, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMatchesMathGL(t *testing.T) {
	eye := Vec3{3, 2, 5}
	center := Vec3{0, 0.5, 0}
	up := Vec3{0, 1, 0}
	axis := Vec3{0.3, 0.8, -0.2}.Normalize()

	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{
			"perspective",
			Perspective(DegToRad(60), 16.0/9.0, 0.1, 50),
			mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 50),
		},
		{
			"look at",
			LookAt(eye, center, up),
			mgl32.LookAtV(mgl32.Vec3{eye.X, eye.Y, eye.Z}, mgl32.Vec3{center.X, center.Y, center.Z}, mgl32.Vec3{up.X, up.Y, up.Z}),
		},
		{
			"rotate axis",
			RotateAxis(axis, 1.1),
			mgl32.HomogRotate3D(1.1, mgl32.Vec3{axis.X, axis.Y, axis.Z}),
		},
		{
			"ortho",
			Ortho(-4, 2, -1, 3, 0.5, 20),
			mgl32.Ortho(-4, 2, -1, 3, 0.5, 20),
		},
		{
			"translate vec3",
			TranslateVec3(Vec3{-7, 0.25, 9}),
			mgl32.Translate3D(-7, 0.25, 9),
		},
		{
			"translate scale",
			Translate(1, -2, 3).Mul(Scale(2, 3, 4)),
			mgl32.Translate3D(1, -2, 3).Mul4(mgl32.Scale3D(2, 3, 4)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 16; i++ {
				if abs(tt.got[i]-tt.want[i]) > 1e-4 {
					t.Errorf("element %d: got %f, want %f", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.5)).Mul(Scale(2, 2, 2))
	if got := m.Mul(m.Inverse()); !got.ApproxEqual(Identity(), 1e-5) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
