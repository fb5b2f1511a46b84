// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted initially from gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Matrix2 is a 3x2 affine transform matrix, representing a 2D
// linear part plus a translation, in the SVG matrix(a b c d e f) order:
//
//	[XX XY X0]   [a c e]
//	[YX YY Y0] = [b d f]
//	[ 0  0  1]   [0 0 1]
//
// The zero value is not the identity; use [Identity2].
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 scaling matrix by given x and y factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
// A positive angle rotates the X axis toward the Y axis.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// IsIdentity returns true if the matrix is exactly the identity.
func (a Matrix2) IsIdentity() bool {
	return a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1 && a.X0 == 0 && a.Y0 == 0
}

// SetIdentity resets the matrix to the identity.
func (a *Matrix2) SetIdentity() {
	*a = Identity2()
}

// Mul returns a * b: the transform that applies b first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a * b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// Translate returns the matrix pre-multiplied by a translation,
// so the translation is applied after the existing transform.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return Translate2D(x, y).Mul(a)
}

// Rotate returns the matrix pre-multiplied by a rotation of angle
// radians, so the rotation is applied after the existing transform.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return Rotate2D(angle).Mul(a)
}

// Scale returns the matrix pre-multiplied by a scaling.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return Scale2D(x, y).Mul(a)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the linear part.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix returns the zero matrix.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Matrix2{}
	}
	inv := 1 / det
	return Matrix2{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * inv,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * inv,
	}
}

// ExtractRot extracts the rotation component from a given matrix
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the scaling component from a given matrix
func (a Matrix2) ExtractScale() (scx, scy float32) {
	rot := a.ExtractRot()
	tx := a.Rotate(-rot)
	return tx.XX, tx.YY
}

// String returns the matrix as a compact SVG transform list:
// "none" for the identity, translate / scale forms when there
// is no rotation or skew, and matrix(...) otherwise.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX != 0 || a.XY != 0 {
		return fmt.Sprintf("matrix(%s,%s,%s,%s,%s,%s)", fmtNum(a.XX), fmtNum(a.YX), fmtNum(a.XY), fmtNum(a.YY), fmtNum(a.X0), fmtNum(a.Y0))
	}
	var parts []string
	if a.X0 != 0 || a.Y0 != 0 {
		parts = append(parts, fmt.Sprintf("translate(%s,%s)", fmtNum(a.X0), fmtNum(a.Y0)))
	}
	if a.XX != 1 || a.YY != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s,%s)", fmtNum(a.XX), fmtNum(a.YY)))
	}
	return strings.Join(parts, " ")
}

// TransformAttr returns the matrix as a full SVG transform attribute:
// transform="matrix(a b c d e f)".
func (a Matrix2) TransformAttr() string {
	return fmt.Sprintf("transform=\"matrix(%s %s %s %s %s %s)\"", fmtNum(a.XX), fmtNum(a.YX), fmtNum(a.XY), fmtNum(a.YY), fmtNum(a.X0), fmtNum(a.Y0))
}

func fmtNum(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SetString processes the standard SVG-style transform strings:
// none, matrix, translate, scale, rotate (degrees). Multiple transforms
// are composed left to right, as in SVG. The matrix is set to the
// identity before parsing, and left as the identity on error.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "none") {
		return nil
	}
	res := Identity2()
	for str != "" {
		op := strings.Index(str, "(")
		cp := strings.Index(str, ")")
		if op < 0 || cp < op {
			return fmt.Errorf("math32.Matrix2.SetString: malformed transform %q", str)
		}
		cmd := strings.ToLower(strings.TrimSpace(str[:op]))
		args, err := parseFloats(str[op+1 : cp])
		if err != nil {
			return fmt.Errorf("math32.Matrix2.SetString: %q: %w", str, err)
		}
		var m Matrix2
		switch cmd {
		case "matrix":
			if len(args) != 6 {
				return fmt.Errorf("math32.Matrix2.SetString: matrix needs 6 values, got %d", len(args))
			}
			m = Matrix2{args[0], args[1], args[2], args[3], args[4], args[5]}
		case "translate":
			switch len(args) {
			case 1:
				m = Translate2D(args[0], 0)
			case 2:
				m = Translate2D(args[0], args[1])
			default:
				return fmt.Errorf("math32.Matrix2.SetString: translate needs 1 or 2 values, got %d", len(args))
			}
		case "scale":
			switch len(args) {
			case 1:
				m = Scale2D(args[0], args[0])
			case 2:
				m = Scale2D(args[0], args[1])
			default:
				return fmt.Errorf("math32.Matrix2.SetString: scale needs 1 or 2 values, got %d", len(args))
			}
		case "rotate":
			if len(args) != 1 {
				return fmt.Errorf("math32.Matrix2.SetString: rotate needs 1 value, got %d", len(args))
			}
			m = Rotate2D(DegToRad(args[0]))
		default:
			return fmt.Errorf("math32.Matrix2.SetString: unknown transform %q", cmd)
		}
		res = res.Mul(m)
		str = strings.TrimLeft(str[cp+1:], " ,\t\n")
	}
	*a = res
	return nil
}

func parseFloats(s string) ([]float32, error) {
	fs := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fs) == 0 {
		return nil, errors.New("no values")
	}
	vals := make([]float32, len(fs))
	for i, f := range fs {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}
