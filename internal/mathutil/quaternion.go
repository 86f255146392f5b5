package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a quaternion stored as (w, x, y, z).
// Value type; algebra is delegated to gonum's quat.Number.
type Quat [4]float64

// QuatIdentity returns the zero rotation (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{1, 0, 0, 0}
}

// QuatFromNumber converts a gonum quaternion.
func QuatFromNumber(n quat.Number) Quat {
	return Quat{n.Real, n.Imag, n.Jmag, n.Kmag}
}

// Number returns q as a gonum quaternion.
func (q Quat) Number() quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

// Mul returns the Hamilton product q × r.
func (q Quat) Mul(r Quat) Quat {
	return QuatFromNumber(quat.Mul(q.Number(), r.Number()))
}

// Conj returns the conjugate (w, -x, -y, -z).
func (q Quat) Conj() Quat {
	return QuatFromNumber(quat.Conj(q.Number()))
}

func (q Quat) Neg() Quat {
	return QuatFromNumber(quat.Scale(-1, q.Number()))
}

func (q Quat) Len() float64 {
	return quat.Abs(q.Number())
}

// Normalize returns q scaled to unit length.
// A zero quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity()
	}
	return QuatFromNumber(quat.Scale(1/l, q.Number()))
}

// ApproxEqual reports whether every component of q and r differs by at most eps.
func (q Quat) ApproxEqual(r Quat, eps float64) bool {
	for i := range q {
		if math.Abs(q[i]-r[i]) > eps {
			return false
		}
	}
	return true
}

// SameRotation reports whether q and r encode the same rotation,
// accepting either sign (q and -q are the same rotation).
func (q Quat) SameRotation(r Quat, eps float64) bool {
	return q.ApproxEqual(r, eps) || q.ApproxEqual(r.Neg(), eps)
}

// AxisAngleToQuat builds a rotation of angleDeg degrees about axis.
// A zero-length axis yields the identity regardless of the angle.
func AxisAngleToQuat(axis Vec3, angleDeg float64) Quat {
	if axis.LenSq() == 0 {
		return QuatIdentity()
	}
	axis = axis.Normalize()
	half := Deg2Rad(angleDeg) / 2
	s := math.Sin(half)
	return Quat{math.Cos(half), axis[0] * s, axis[1] * s, axis[2] * s}
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
// q is not normalized here; pass a unit quaternion for an orthonormal result.
func QuatToMat3(q Quat) Mat3 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Euler holds roll, pitch and yaw in degrees.
type Euler struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// QuatToEulerXYZ decomposes q into intrinsic X, then Y, then Z rotations.
// Near pitch = ±90° yaw is pinned to 0 and roll absorbs the remainder.
func QuatToEulerXYZ(q Quat) Euler {
	m := QuatToMat3(q)
	m02 := math.Max(-1, math.Min(1, m[2]))

	var e Euler
	e.Pitch = math.Asin(m02)
	if math.Abs(m02) < 0.9999999 {
		e.Roll = math.Atan2(-m[5], m[8])
		e.Yaw = math.Atan2(-m[1], m[0])
	} else {
		e.Roll = math.Atan2(m[7], m[4])
	}

	return Euler{
		Roll:  Rad2Deg(e.Roll),
		Pitch: Rad2Deg(e.Pitch),
		Yaw:   Rad2Deg(e.Yaw),
	}
}

// QuatToEulerZYX decomposes q into aerospace Tait-Bryan angles in radians:
// R = Rz(yaw)·Ry(pitch)·Rx(roll). Near pitch = ±90° yaw is pinned to 0.
func QuatToEulerZYX(q Quat) (roll, pitch, yaw float64) {
	m := QuatToMat3(q)
	m20 := math.Max(-1, math.Min(1, m[6]))

	pitch = -math.Asin(m20)
	if math.Abs(m20) < 0.9999999 {
		roll = math.Atan2(m[7], m[8])
		yaw = math.Atan2(m[3], m[0])
	} else {
		roll = math.Atan2(-m[5], m[4])
	}
	return roll, pitch, yaw
}
