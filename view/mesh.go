package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mosaic"
)

// cubeFace is one side of a unit cube centred on the origin.
type cubeFace struct {
	normal  mosaic.Vec3
	corners [4]mosaic.Vec3
}

// cubeFaces lists the six sides of a unit cube. Corners run around each
// face so that (0, 1, 2) and (0, 2, 3) split it into two triangles.
var cubeFaces = [6]cubeFace{
	{mosaic.Vec3{X: 1}, [4]mosaic.Vec3{{X: .5, Y: -.5, Z: .5}, {X: .5, Y: -.5, Z: -.5}, {X: .5, Y: .5, Z: -.5}, {X: .5, Y: .5, Z: .5}}},
	{mosaic.Vec3{X: -1}, [4]mosaic.Vec3{{X: -.5, Y: -.5, Z: -.5}, {X: -.5, Y: -.5, Z: .5}, {X: -.5, Y: .5, Z: .5}, {X: -.5, Y: .5, Z: -.5}}},
	{mosaic.Vec3{Y: 1}, [4]mosaic.Vec3{{X: -.5, Y: .5, Z: .5}, {X: .5, Y: .5, Z: .5}, {X: .5, Y: .5, Z: -.5}, {X: -.5, Y: .5, Z: -.5}}},
	{mosaic.Vec3{Y: -1}, [4]mosaic.Vec3{{X: -.5, Y: -.5, Z: -.5}, {X: .5, Y: -.5, Z: -.5}, {X: .5, Y: -.5, Z: .5}, {X: -.5, Y: -.5, Z: .5}}},
	{mosaic.Vec3{Z: 1}, [4]mosaic.Vec3{{X: -.5, Y: -.5, Z: .5}, {X: .5, Y: -.5, Z: .5}, {X: .5, Y: .5, Z: .5}, {X: -.5, Y: .5, Z: .5}}},
	{mosaic.Vec3{Z: -1}, [4]mosaic.Vec3{{X: .5, Y: -.5, Z: -.5}, {X: -.5, Y: -.5, Z: -.5}, {X: -.5, Y: .5, Z: -.5}, {X: .5, Y: .5, Z: -.5}}},
}

// face is a projected, shaded quad waiting to be sorted and drawn.
type face struct {
	pts   [4][2]float32
	color [4]float32 // premultiplied RGBA
	depth float64
}

// faceList collects the visible faces of a frame. Buffers are reused across
// frames, so steady-state meshing does not allocate.
type faceList struct {
	faces   []face
	sortBuf []face
	verts   []ebiten.Vertex
	inds    []uint32

	// shades[i][f] is element i's color lit for cubeFaces[f].
	shades    [][6]mosaic.RGB
	shadedFor Lighting
}

// reset empties the list for a new frame.
func (l *faceList) reset() {
	l.faces = l.faces[:0]
	l.verts = l.verts[:0]
	l.inds = l.inds[:0]
}

// shade precomputes the lit face colors of every element. Element colors
// never change, so this only reruns when the element count or the lighting
// does.
func (l *faceList) shade(elems []mosaic.Element, light Lighting) {
	if len(l.shades) == len(elems) && l.shadedFor == light {
		return
	}
	if cap(l.shades) < len(elems) {
		l.shades = make([][6]mosaic.RGB, len(elems))
	}
	l.shades = l.shades[:len(elems)]
	for i := range elems {
		c := elems[i].Color()
		for f := range cubeFaces {
			l.shades[i][f] = light.Shade(c, cubeFaces[f].normal)
		}
	}
	l.shadedFor = light
}

// addCubes appends the camera-facing faces of a cube of the given size
// around every element. Faces with a corner behind the near plane are
// dropped.
func (l *faceList) addCubes(cam *Camera, elems []mosaic.Element, size float64) {
	eye := cam.Position()
	half := size / 2
	for i := range elems {
		center := elems[i].Position()
		for f := range cubeFaces {
			cf := &cubeFaces[f]
			faceCenter := center.Add(cf.normal.Scale(half))
			if eye.Sub(faceCenter).Dot(cf.normal) <= 0 {
				continue
			}
			var fc face
			var depth float64
			ok := true
			for k, corner := range cf.corners {
				sx, sy, d, vis := cam.Project(center.Add(corner.Scale(size)))
				if !vis {
					ok = false
					break
				}
				fc.pts[k] = [2]float32{float32(sx), float32(sy)}
				depth += d
			}
			if !ok {
				continue
			}
			fc.depth = depth / 4
			fc.color = premultiply(l.shades[i][f], 1)
			l.faces = append(l.faces, fc)
		}
	}
}

// build sorts the collected faces far-to-near and fills the vertex and index
// buffers. SrcX/SrcY address the centre of a 1x1 white source image.
func (l *faceList) build() {
	l.sortFaces()
	for i := range l.faces {
		fc := &l.faces[i]
		base := uint32(len(l.verts))
		for k := range fc.pts {
			l.verts = append(l.verts, ebiten.Vertex{
				DstX:   fc.pts[k][0],
				DstY:   fc.pts[k][1],
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: fc.color[0],
				ColorG: fc.color[1],
				ColorB: fc.color[2],
				ColorA: fc.color[3],
			})
		}
		l.inds = append(l.inds,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}
}

// draw submits the built buffers as a single DrawTriangles32 call.
func (l *faceList) draw(target *ebiten.Image) {
	if len(l.inds) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(l.verts, l.inds, ensureWhitePixel(), &op)
}

// premultiply converts c and an opacity into premultiplied float color.
func premultiply(c mosaic.RGB, alpha float64) [4]float32 {
	r, g, b := c.Floats()
	a := float32(alpha)
	return [4]float32{float32(r) * a, float32(g) * a, float32(b) * a, a}
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily created 1x1 white image used as the
// source of every untextured triangle.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
