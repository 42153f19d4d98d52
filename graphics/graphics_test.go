package graphics

import (
  "bytes"
  "image"
  "image/color"
  "image/png"
  "testing"

  "github.com/InfinityTools/camfx/fx"
)

// Encodes a small test image as PNG and returns it wrapped in a ReadSeeker.
func pngSource(t *testing.T, width, height int) *bytes.Reader {
  t.Helper()
  img := image.NewNRGBA(image.Rect(0, 0, width, height))
  for y := 0; y < height; y++ {
    for x := 0; x < width; x++ {
      img.Set(x, y, color.NRGBA{R: byte(x * 16), G: byte(y * 16), B: 128, A: 255})
    }
  }
  var buf bytes.Buffer
  if err := png.Encode(&buf, img); err != nil { t.Fatalf("png.Encode: %v", err) }
  return bytes.NewReader(buf.Bytes())
}

func TestImportPNG(t *testing.T) {
  g := Import(pngSource(t, 8, 6))
  if g.Error() != nil { t.Fatalf("Import: %v", g.Error()) }
  if g.GetImageType() != TYPE_PNG { t.Errorf("format = %d, want TYPE_PNG", g.GetImageType()) }
  if g.GetImageLength() != 1 { t.Errorf("frames = %d, want 1", g.GetImageLength()) }
  img := g.GetImage(0)
  if img == nil { t.Fatal("GetImage(0) returned nil") }
  if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
    t.Errorf("bounds = %v", img.Bounds())
  }
  if g.GetImage(1) != nil { t.Error("out-of-range index must return nil") }
}

func TestImportUnrecognized(t *testing.T) {
  g := Import(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04}))
  if g.Error() == nil { t.Fatal("expected an error for unknown input") }
  if g.GetImageLength() != 0 { t.Error("frame count must be 0 in error state") }
  g.ClearError()
  if g.Error() != nil { t.Error("ClearError did not reset the error state") }
}

func TestImportNilSource(t *testing.T) {
  g := Import(nil)
  if g.Error() == nil { t.Fatal("expected an error for nil input") }
}

func TestGetBufferRoundTrip(t *testing.T) {
  g := Import(pngSource(t, 8, 6))
  if g.Error() != nil { t.Fatal(g.Error()) }

  for _, channels := range []int{3, 4} {
    buf := g.GetBuffer(0, channels)
    if g.Error() != nil { t.Fatalf("GetBuffer(%d channels): %v", channels, g.Error()) }
    if buf.Width() != 8 || buf.Height() != 6 || buf.Channels() != channels {
      t.Fatalf("buffer shape = %dx%dx%d", buf.Width(), buf.Height(), buf.Channels())
    }
    if got := buf.GetPixel(3, 2, 0); got != 48 {
      t.Errorf("pixel (3,2) red = %d, want 48", got)
    }
    if got := buf.GetPixel(3, 2, 2); got != 128 {
      t.Errorf("pixel (3,2) blue = %d, want 128", got)
    }

    img := FromBuffer(buf)
    if img == nil { t.Fatal("FromBuffer returned nil") }
    c := color.NRGBAModel.Convert(img.At(3, 2)).(color.NRGBA)
    if c.R != 48 || c.G != 32 || c.B != 128 || c.A != 255 {
      t.Errorf("round-tripped pixel = %v", c)
    }
    buf.Release()
  }
}

func TestFromBufferNil(t *testing.T) {
  if FromBuffer(nil) != nil { t.Error("FromBuffer(nil) must return nil") }
  buf, _ := fx.Allocate(2, 2, 3)
  buf.Release()
  if FromBuffer(buf) != nil { t.Error("FromBuffer on a released buffer must return nil") }
}

func TestPutBuffer(t *testing.T) {
  g := Import(pngSource(t, 8, 6))
  if g.Error() != nil { t.Fatal(g.Error()) }

  buf, _ := fx.Allocate(8, 6, 3)
  for i := range buf.Data() { buf.Data()[i] = 200 }
  g.PutBuffer(0, buf)
  if g.Error() != nil { t.Fatalf("PutBuffer: %v", g.Error()) }
  c := color.NRGBAModel.Convert(g.GetImage(0).At(4, 4)).(color.NRGBA)
  if c.R != 200 || c.G != 200 || c.B != 200 {
    t.Errorf("stored pixel = %v", c)
  }

  g.PutBuffer(5, buf)
  if g.Error() == nil { t.Error("out-of-range index must set the error state") }
}

func TestGetMask(t *testing.T) {
  g := Import(pngSource(t, 4, 4))
  if g.Error() != nil { t.Fatal(g.Error()) }
  mask, w, h := g.GetMask(0)
  if g.Error() != nil { t.Fatalf("GetMask: %v", g.Error()) }
  if w != 4 || h != 4 { t.Errorf("mask size = %dx%d", w, h) }
  if len(mask) != 4*4*4 { t.Errorf("mask length = %d, want %d", len(mask), 4*4*4) }
  if mask[3] != 255 { t.Errorf("mask alpha = %d, want 255", mask[3]) }
}

func TestExportPNGRoundTrip(t *testing.T) {
  g := Import(pngSource(t, 8, 6))
  if g.Error() != nil { t.Fatal(g.Error()) }

  var out bytes.Buffer
  g.Export(&out, TYPE_PNG)
  if g.Error() != nil { t.Fatalf("Export: %v", g.Error()) }

  g2 := Import(bytes.NewReader(out.Bytes()))
  if g2.Error() != nil { t.Fatalf("re-import: %v", g2.Error()) }
  if g2.GetImageType() != TYPE_PNG { t.Error("re-imported image is not PNG") }
  c := color.NRGBAModel.Convert(g2.GetImage(0).At(3, 2)).(color.NRGBA)
  if c.R != 48 || c.G != 32 || c.B != 128 {
    t.Errorf("re-imported pixel = %v", c)
  }
}

func TestExportGIFAnimation(t *testing.T) {
  g := CreateNew()
  for _, col := range []color.NRGBA{{R: 255, A: 255}, {B: 255, A: 255}} {
    img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
    for y := 0; y < 8; y++ {
      for x := 0; x < 8; x++ { img.Set(x, y, col) }
    }
    g.AddFrame(img, 10)
  }

  var out bytes.Buffer
  g.Export(&out, TYPE_GIF)
  if g.Error() != nil { t.Fatalf("Export: %v", g.Error()) }

  g2 := Import(bytes.NewReader(out.Bytes()))
  if g2.Error() != nil { t.Fatalf("re-import: %v", g2.Error()) }
  if g2.GetImageType() != TYPE_GIF { t.Error("re-imported image is not GIF") }
  if g2.GetImageLength() != 2 { t.Fatalf("frames = %d, want 2", g2.GetImageLength()) }
  for idx := 0; idx < 2; idx++ {
    if d := g2.GetDelay(idx); d != 10 { t.Errorf("frame %d delay = %d, want 10", idx, d) }
  }
  // Palette quantization may round colors slightly.
  c := color.NRGBAModel.Convert(g2.GetImage(0).At(4, 4)).(color.NRGBA)
  if c.R < 240 || c.G > 15 || c.B > 15 {
    t.Errorf("first frame pixel = %v, want red", c)
  }
  c = color.NRGBAModel.Convert(g2.GetImage(1).At(4, 4)).(color.NRGBA)
  if c.B < 240 || c.R > 15 || c.G > 15 {
    t.Errorf("second frame pixel = %v, want blue", c)
  }
}

func TestExportInvalidFormat(t *testing.T) {
  g := Import(pngSource(t, 4, 4))
  var out bytes.Buffer
  g.Export(&out, 12345)
  if g.Error() == nil { t.Error("expected an error for an unknown output format") }
}
