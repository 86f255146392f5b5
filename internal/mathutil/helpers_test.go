package mathutil

import "math"

var identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

func det(m Mat3) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func transpose(m Mat3) Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func rotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// eulerXYZToQuat composes intrinsic X, Y, Z rotations given in degrees.
func eulerXYZToQuat(e Euler) Quat {
	return AxisAngleToQuat(Vec3{1, 0, 0}, e.Roll).
		Mul(AxisAngleToQuat(Vec3{0, 1, 0}, e.Pitch)).
		Mul(AxisAngleToQuat(Vec3{0, 0, 1}, e.Yaw))
}

// eulerZYXToQuat composes yaw, pitch, roll given in radians.
func eulerZYXToQuat(roll, pitch, yaw float64) Quat {
	return AxisAngleToQuat(Vec3{0, 0, 1}, Rad2Deg(yaw)).
		Mul(AxisAngleToQuat(Vec3{0, 1, 0}, Rad2Deg(pitch))).
		Mul(AxisAngleToQuat(Vec3{1, 0, 0}, Rad2Deg(roll)))
}
