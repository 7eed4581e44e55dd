package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math32.Abs(length-1) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3MoveTowards(t *testing.T) {
	from := NewVec3(0, 0, 0)
	to := NewVec3(10, 0, 0)

	stepped := from.MoveTowards(to, 3)
	if stepped != NewVec3(3, 0, 0) {
		t.Errorf("MoveTowards: expected (3,0,0), got %v", stepped)
	}

	// Overshooting lands exactly on the target
	arrived := NewVec3(9.5, 0, 0).MoveTowards(to, 3)
	if arrived != to {
		t.Errorf("MoveTowards: expected %v, got %v", to, arrived)
	}

	// Zero distance is a no-op
	if to.MoveTowards(to, 1) != to {
		t.Error("MoveTowards: expected target when already there")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)

	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4Compose(t *testing.T) {
	// model.Mul(view) must apply model first, view second
	model := Mat4Translation(NewVec3(1, 0, 0))
	view := Mat4Translation(NewVec3(0, 2, 0))

	combined := model.Mul(view)
	p := combined.MulVec3(Vec3Zero)

	if p != NewVec3(1, 2, 0) {
		t.Errorf("Compose: expected (1,2,0), got %v", p)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Mat4Translation(NewVec3(3, -2, 5)).
		Mul(Mat4RotationY(Radians(40))).
		Mul(Mat4Scale(NewVec3(2, 2, 2)))

	inv := m.Inverse()
	round := m.Mul(inv)
	identity := Mat4Identity()

	tolerance := float32(0.0001)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math32.Abs(round[i][j]-identity[i][j]) > tolerance {
				t.Fatalf("Inverse: M*M^-1 not identity at [%d][%d]: %v", i, j, round[i][j])
			}
		}
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)

	m := Mat4LookAt(eye, target, Vec3Up)

	// The view matrix should transform the eye position to origin
	result := m.MulVec(eye.ToVec4(1))

	tolerance := float32(0.001)
	if math32.Abs(result.X) > tolerance ||
		math32.Abs(result.Y) > tolerance ||
		math32.Abs(result.Z) > tolerance {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestNormalMatrixUniformScale(t *testing.T) {
	// For a pure rotation the normal matrix equals the rotation itself
	rot := Mat4RotationZ(Radians(30))
	nm := rot.NormalMatrix()
	expected := rot.Mat3()

	tolerance := float32(0.0001)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math32.Abs(nm[i][j]-expected[i][j]) > tolerance {
				t.Fatalf("NormalMatrix: mismatch at [%d][%d]: %v vs %v", i, j, nm[i][j], expected[i][j])
			}
		}
	}
}

func TestQuaternionRotation(t *testing.T) {
	// 90 degree rotation around Y axis
	q := QuaternionFromAxisAngle(Vec3Up, math32.Pi/2)

	result := q.RotateVector(Vec3Right)

	tolerance := float32(0.001)
	if math32.Abs(result.X) > tolerance ||
		math32.Abs(result.Y) > tolerance ||
		math32.Abs(result.Z+1) > tolerance {
		t.Errorf("Quaternion rotation: expected approximately (0,0,-1), got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestQuaternionMat4Agreement(t *testing.T) {
	q := QuaternionFromEuler(NewVec3(Radians(20), Radians(45), Radians(-10)))
	v := NewVec3(1, 2, 3)

	byQuat := q.RotateVector(v)
	byMat := q.ToMat4().MulVec3(v)

	tolerance := float32(0.0005)
	if math32.Abs(byQuat.X-byMat.X) > tolerance ||
		math32.Abs(byQuat.Y-byMat.Y) > tolerance ||
		math32.Abs(byQuat.Z-byMat.Z) > tolerance {
		t.Errorf("Quaternion/Mat4 disagree: %v vs %v", byQuat, byMat)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Identity()
	m2 := Mat4Identity()

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
