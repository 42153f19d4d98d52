package graphics
// Conversion between image.Image frames and the filter engine's pixel buffers.

import (
  "errors"
  "fmt"
  "image"
  "image/color"

  "github.com/InfinityTools/camfx/fx"
)

// GetBuffer converts the frame at the specified index into an interleaved pixel buffer
// of 3 (RGB) or 4 (RGBA) channels. Returns nil and sets the error state on failure.
func (g *Graphics) GetBuffer(index, channels int) *fx.Buffer {
  if g.err != nil { return nil }
  img := g.GetImage(index)
  if img == nil { g.err = fmt.Errorf("Frame index out of range: %d", index); return nil }

  width := img.Bounds().Dx()
  height := img.Bounds().Dy()
  buf, err := fx.Allocate(width, height, channels)
  if err != nil { g.err = err; return nil }

  data := buf.Data()
  ofs := 0
  for y := 0; y < height; y++ {
    for x := 0; x < width; x++ {
      c := color.NRGBAModel.Convert(img.At(img.Bounds().Min.X + x, img.Bounds().Min.Y + y)).(color.NRGBA)
      data[ofs] = c.R
      data[ofs+1] = c.G
      data[ofs+2] = c.B
      if channels == 4 { data[ofs+3] = c.A }
      ofs += channels
    }
  }
  return buf
}


// PutBuffer stores the content of the pixel buffer as the frame image at the specified
// index. Sets the error state when buf is nil or the index is out of range.
func (g *Graphics) PutBuffer(index int, buf *fx.Buffer) {
  if g.err != nil { return }
  if index < 0 || index >= len(g.frames) { g.err = fmt.Errorf("Frame index out of range: %d", index); return }
  img := FromBuffer(buf)
  if img == nil { g.err = errors.New("No pixel buffer specified"); return }
  g.frames[index].img = img
}


// FromBuffer converts an interleaved pixel buffer back into an image. 3-channel
// buffers produce fully opaque images. Returns nil when buf is nil or released.
func FromBuffer(buf *fx.Buffer) image.Image {
  if buf == nil || buf.Data() == nil { return nil }

  width, height, channels := buf.Width(), buf.Height(), buf.Channels()
  img := image.NewRGBA(image.Rect(0, 0, width, height))
  data := buf.Data()
  ofs := 0
  for y := 0; y < height; y++ {
    for x := 0; x < width; x++ {
      c := color.NRGBA{R: data[ofs], G: data[ofs+1], B: data[ofs+2], A: 255}
      if channels == 4 { c.A = data[ofs+3] }
      img.Set(x, y, c)
      ofs += channels
    }
  }
  return img
}


// GetMask returns the frame at the specified index as a raw RGBA pixel slice together
// with its dimensions, suitable as overlay input for fx.ApplyFaceMask. Returns nil and
// sets the error state on failure.
func (g *Graphics) GetMask(index int) (mask []byte, width, height int) {
  if g.err != nil { return }
  buf := g.GetBuffer(index, 4)
  if buf == nil { return }
  defer buf.Release()

  width, height = buf.Width(), buf.Height()
  mask = make([]byte, len(buf.Data()))
  copy(mask, buf.Data())
  return
}
