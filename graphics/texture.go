package graphics

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
)

// Texture2D holds CPU-side RGBA8 pixel data and lazily uploads a GL texture
// object on first bind.
type Texture2D struct {
	Name   string
	Width  int
	Height int
	Pixels []byte

	id       uint32
	uploaded bool
}

// LoadTexture2D reads a PNG, JPEG or BMP file and converts it to RGBA8.
func LoadTexture2D(path string) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	rgba := toRGBA(img)
	bounds := img.Bounds()
	return &Texture2D{
		Name:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}

// LoadTexture2DOrPlaceholder falls back to a 1x1 white texture when the file
// cannot be loaded, so a missing asset shows up as flat color rather than a
// crash.
func LoadTexture2DOrPlaceholder(path string) *Texture2D {
	tex, err := LoadTexture2D(path)
	if err != nil {
		fmt.Printf("texture %s: %v (using placeholder)\n", path, err)
		return NewSolidTexture(path, 255, 255, 255, 255)
	}
	return tex
}

// NewSolidTexture creates a 1x1 texture with the given RGBA values (0-255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture2D {
	return &Texture2D{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// Bind makes the texture current on the given texture unit, uploading it
// first if needed.
func (t *Texture2D) Bind(unit uint32) {
	if !t.uploaded {
		t.upload()
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *Texture2D) upload() {
	t.uploaded = true
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(t.Width), int32(t.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (t *Texture2D) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
	t.uploaded = false
}

// ── Cubemap ───────────────────────────────────────────────────────────────────

// CubeMap holds the six faces of an environment map, sliced out of a single
// 4x3 horizontal-cross image.
type CubeMap struct {
	Name     string
	FaceSize int
	faces    [6][]byte

	id       uint32
	uploaded bool
}

// Cross cell coordinates (column, row) for each cubemap face, in the GL
// target order +X, -X, +Y, -Y, +Z, -Z.
var crossCells = [6][2]int{
	{2, 1}, // +X
	{0, 1}, // -X
	{1, 0}, // +Y
	{1, 2}, // -Y
	{1, 1}, // +Z
	{3, 1}, // -Z
}

// NewSolidCubeMap creates a 1x1-per-face cubemap with a uniform color, used
// as a fallback when the environment image is missing.
func NewSolidCubeMap(name string, r, g, b, a uint8) *CubeMap {
	cm := &CubeMap{Name: name, FaceSize: 1}
	for i := range cm.faces {
		cm.faces[i] = []byte{r, g, b, a}
	}
	return cm
}

// LoadCubeMapCross reads a 4x3 cross layout image and slices it into the six
// cubemap faces. The image width must be 4/3 of its height.
func LoadCubeMapCross(path string) (*CubeMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cubemap %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode cubemap %q: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w/4 != h/3 || w%4 != 0 || h%3 != 0 {
		return nil, fmt.Errorf("cubemap %q: expected 4x3 cross layout, got %dx%d", path, w, h)
	}
	faceSize := w / 4

	rgba := toRGBA(img)
	cm := &CubeMap{Name: path, FaceSize: faceSize}
	for i, cell := range crossCells {
		cm.faces[i] = extractFace(rgba, cell[0]*faceSize, cell[1]*faceSize, faceSize)
	}
	return cm, nil
}

// extractFace copies a faceSize x faceSize block out of the cross image.
func extractFace(src *image.RGBA, x0, y0, faceSize int) []byte {
	out := make([]byte, faceSize*faceSize*4)
	for y := 0; y < faceSize; y++ {
		srcOff := src.PixOffset(src.Rect.Min.X+x0, src.Rect.Min.Y+y0+y)
		copy(out[y*faceSize*4:(y+1)*faceSize*4], src.Pix[srcOff:srcOff+faceSize*4])
	}
	return out
}

func (c *CubeMap) Bind(unit uint32) {
	if !c.uploaded {
		c.upload()
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)
}

func (c *CubeMap) upload() {
	c.uploaded = true
	gl.GenTextures(1, &c.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.id)

	for i, face := range c.faces {
		gl.TexImage2D(uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X+i), 0, gl.RGBA8,
			int32(c.FaceSize), int32(c.FaceSize), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
}

func (c *CubeMap) Destroy() {
	if c.id != 0 {
		gl.DeleteTextures(1, &c.id)
		c.id = 0
	}
	c.uploaded = false
}

// toRGBA converts any decoded image to RGBA8.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba
}
