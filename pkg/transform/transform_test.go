package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// near compares with an absolute tolerance. ApproxEqualThreshold is relative
// and rejects float32 noise next to an exact zero.
func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func nearMat(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestComposeIdentity(t *testing.T) {
	m := Compose()
	if m != mgl32.Ident4() {
		t.Errorf("Compose() = %v, want identity", m)
	}
}

func TestComposeTranslate(t *testing.T) {
	m := Compose(Translate(mgl32.Vec3{5, 10, 15}))

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestComposeOrder(t *testing.T) {
	// Rotate first in the sequence means it is applied after the translation
	// to the point, so (1,0,0) is moved to (2,0,0) and then spun to (0,0,-2).
	m := Compose(
		Rotate(float32(math.Pi/2), AxisY),
		Translate(mgl32.Vec3{1, 0, 0}),
	)
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{0, 0, -2}
	if !near(got, want) {
		t.Errorf("Compose(R, T) * (1,0,0) = %v, want %v", got, want)
	}

	m = Compose(
		Translate(mgl32.Vec3{1, 0, 0}),
		Rotate(float32(math.Pi/2), AxisY),
	)
	got = m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want = mgl32.Vec3{1, 0, -1}
	if !near(got, want) {
		t.Errorf("Compose(T, R) * (1,0,0) = %v, want %v", got, want)
	}
}

func TestRotateNormalizesAxis(t *testing.T) {
	a := Rotate(0.7, mgl32.Vec3{0, 0, 5}).Matrix()
	b := mgl32.HomogRotate3DZ(0.7)
	if !nearMat(a, b) {
		t.Errorf("Rotate with unnormalized axis = %v, want %v", a, b)
	}
}

func TestRotateZeroAxis(t *testing.T) {
	m := Rotate(1, mgl32.Vec3{}).Matrix()
	if m != mgl32.Ident4() {
		t.Errorf("Rotate around zero axis should be identity, got %v", m)
	}
}

func TestFrameMatchesCompose(t *testing.T) {
	p := mgl32.Vec3{3, -1, 2}
	f := At(p).RotateY(0.4).Translate(mgl32.Vec3{0, 2, 0}).RotateZ(-0.3)
	want := Compose(
		Translate(p),
		Rotate(0.4, AxisY),
		Translate(mgl32.Vec3{0, 2, 0}),
		Rotate(-0.3, AxisZ),
	)
	if !nearMat(f.Matrix(), want) {
		t.Errorf("Frame = %v, want %v", f.Matrix(), want)
	}
}

func TestLeafScaleDoesNotLeak(t *testing.T) {
	body := At(mgl32.Vec3{1, 2, 3}).RotateY(0.5)

	// Drawing the body with a big anisotropic scale must not change the
	// frame its children see.
	_ = body.Leaf(mgl32.Vec3{5, 3, 2.5})
	fin := body.Translate(mgl32.Vec3{0, 2, 0}).Leaf(mgl32.Vec3{1, 1, 1})

	// A unit fin keeps unit-length basis vectors.
	for col := 0; col < 3; col++ {
		l := fin.Col(col).Vec3().Len()
		if math.Abs(float64(l-1)) > eps {
			t.Errorf("fin basis column %d length = %f, want 1", col, l)
		}
	}

	// And the fin origin is 2 units above the body origin.
	got := fin.Col(3).Vec3()
	want := mgl32.Vec3{1, 4, 3}
	if !near(got, want) {
		t.Errorf("fin origin = %v, want %v", got, want)
	}
}

func TestLeafScaleIsLast(t *testing.T) {
	f := At(mgl32.Vec3{10, 0, 0})
	m := f.Leaf(mgl32.Vec3{2, 2, 2})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	// Scale then translate: 1*2 + 10
	want := mgl32.Vec3{12, 0, 0}
	if !near(got, want) {
		t.Errorf("Leaf point = %v, want %v", got, want)
	}
}

func TestFramePoint(t *testing.T) {
	f := At(mgl32.Vec3{0, 5, 0}).RotateY(float32(math.Pi))
	got := f.Point(mgl32.Vec3{1, 0, 0})
	want := mgl32.Vec3{-1, 5, 0}
	if !near(got, want) {
		t.Errorf("Point = %v, want %v", got, want)
	}
	if o := f.Origin(); !near(o, mgl32.Vec3{0, 5, 0}) {
		t.Errorf("Origin = %v, want (0,5,0)", o)
	}
}
