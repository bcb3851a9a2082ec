package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 fill texture for polygon triangles, the usual
// ebiten trick to avoid bleeding at texture edges.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Draw renders every active particle onto dst. Each particle is drawn at
// its position, rotated by its rotation, with its color at its current
// alpha. Iteration order is pool-slot order; there is no z-ordering.
func (ps *ParticleSystem) Draw(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	for _, idx := range ps.pool.active {
		p := &ps.pool.records[idx]
		if !p.Active || p.Alpha <= 0 {
			continue
		}
		drawParticle(dst, p)
	}
}

func drawParticle(dst *ebiten.Image, p *Particle) {
	size := p.Size * p.Scale
	if size <= 0 {
		return
	}
	col := color.NRGBA{
		R: p.Color.R,
		G: p.Color.G,
		B: p.Color.B,
		A: uint8(clamp(p.Alpha, 0, 1) * 255),
	}

	switch p.Shape {
	case ShapeCircle:
		// Rotation is invisible on a disc; skip the transform.
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(size/2), col, true)
	case ShapeSquare:
		fillPolygon(dst, squareVertices(p.X, p.Y, size, p.Rotation), col)
	case ShapeTriangle:
		fillPolygon(dst, triangleVertices(p.X, p.Y, size, p.Rotation), col)
	case ShapeStar:
		fillPolygon(dst, starVertices(p.X, p.Y, size, p.Rotation), col)
	}
}

// squareVertices returns the corners of a filled square of side size
// centered on (x, y), rotated by rot.
func squareVertices(x, y, size, rot float64) [][2]float64 {
	h := size / 2
	return rotateAbout(x, y, rot, [][2]float64{
		{-h, -h}, {h, -h}, {h, h}, {-h, h},
	})
}

// triangleVertices returns an isoceles triangle inscribed in size,
// apex up before rotation.
func triangleVertices(x, y, size, rot float64) [][2]float64 {
	h := size / 2
	return rotateAbout(x, y, rot, [][2]float64{
		{0, -h}, {h, h}, {-h, h},
	})
}

// starVertices returns a 5-point star with outer radius size/2 and inner
// radius size/4, first point up before rotation.
func starVertices(x, y, size, rot float64) [][2]float64 {
	outer := size / 2
	inner := size / 4
	pts := make([][2]float64, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	return rotateAbout(x, y, rot, pts)
}

// rotateAbout applies the particle's local transform: rotate the local
// points by rot, then translate to (x, y).
func rotateAbout(x, y, rot float64, pts [][2]float64) [][2]float64 {
	sin, cos := math.Sincos(rot)
	for i, pt := range pts {
		pts[i][0] = x + pt[0]*cos - pt[1]*sin
		pts[i][1] = y + pt[0]*sin + pt[1]*cos
	}
	return pts
}

func fillPolygon(dst *ebiten.Image, pts [][2]float64, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt[0]), float32(pt[1]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
