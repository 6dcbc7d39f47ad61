package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector, used for points, directions and colors alike
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Divide returns the vector scaled by 1/scalar. It fails when the divisor is
// not meaningfully distinguishable from zero, rather than producing Inf/NaN
// components that would silently corrupt downstream shading.
func (v Vec3) Divide(scalar float64) (Vec3, error) {
	if math.Abs(scalar) <= math.SmallestNonzeroFloat64 {
		return Vec3{}, fmt.Errorf("divide by %g: %w", scalar, ErrDegenerate)
	}
	return v.Multiply(1 / scalar), nil
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
// Preferred over Length for comparisons to skip the sqrt.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns a unit vector in the same direction. It fails for vectors
// whose length is not meaningfully distinguishable from zero.
func (v Vec3) Unit() (Vec3, error) {
	length := v.Length()
	if length <= math.SmallestNonzeroFloat64 {
		return Vec3{}, fmt.Errorf("normalize vector of length %g: %w", length, ErrDegenerate)
	}
	return v.Multiply(1 / length), nil
}

// Component returns the component at index i (0=X, 1=Y, 2=Z)
func (v Vec3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	default:
		return 0, fmt.Errorf("component %d: %w", i, ErrIndexOutOfRange)
	}
}

// NearZero reports whether every component is close to zero
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect returns the vector mirrored about the unit normal n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere by rejection sampling the unit cube. The lower bound on the squared
// length keeps the normalization away from the degenerate-division threshold.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		lensq := p.LengthSquared()
		if lensq > 1e-160 && lensq <= 1.0 {
			return p.Multiply(1 / math.Sqrt(lensq))
		}
	}
}
