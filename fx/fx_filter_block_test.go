package fx

import (
  "testing"
)

func TestPixelateBlockMean(t *testing.T) {
  // One 10x10 block, half 100 and half 200, collapses to the mean 150.
  buf, _ := Allocate(10, 10, 4)
  for y := 0; y < 10; y++ {
    v := byte(100)
    if y >= 5 { v = 200 }
    for x := 0; x < 10; x++ {
      for c := 0; c < 3; c++ { buf.SetPixel(x, y, c, v) }
      buf.SetPixel(x, y, 3, 77)
    }
  }
  if err := Apply(buf, FILTER_PIXELATE, nil, 0); err != nil { t.Fatal(err) }
  for y := 0; y < 10; y++ {
    for x := 0; x < 10; x++ {
      for c := 0; c < 3; c++ {
        if got := buf.GetPixel(x, y, c); got != 150 {
          t.Fatalf("pixel (%d,%d) channel %d = %d, want 150", x, y, c, got)
        }
      }
      if got := buf.GetPixel(x, y, 3); got != 77 {
        t.Fatalf("pixel (%d,%d) alpha changed to %d", x, y, got)
      }
    }
  }
}

func TestPixelatePartialBlocks(t *testing.T) {
  // Width 12 leaves a 2-wide partial block at the right edge. Each block averages
  // only its own pixels.
  buf, _ := Allocate(12, 10, 3)
  for y := 0; y < 10; y++ {
    for x := 0; x < 12; x++ {
      v := byte(10)
      if x >= 10 { v = 250 }
      for c := 0; c < 3; c++ { buf.SetPixel(x, y, c, v) }
    }
  }
  if err := Apply(buf, FILTER_PIXELATE, nil, 0); err != nil { t.Fatal(err) }
  if got := buf.GetPixel(0, 0, 0); got != 10 {
    t.Errorf("full block mean = %d, want 10", got)
  }
  if got := buf.GetPixel(11, 0, 0); got != 250 {
    t.Errorf("partial block mean = %d, want 250", got)
  }
}

func TestBlurUniformInvariant(t *testing.T) {
  buf := uniformBuffer(t, 16, 16, 42, 84, 126)
  if err := Apply(buf, FILTER_BLUR, nil, 0); err != nil { t.Fatal(err) }
  for i, v := range buf.Data() {
    want := []byte{42, 84, 126}[i%3]
    if v != want { t.Fatalf("uniform image changed at offset %d: %d != %d", i, v, want) }
  }
}

func TestBlurSmooths(t *testing.T) {
  // A single bright pixel spreads into its window and loses intensity.
  buf := uniformBuffer(t, 16, 16, 0, 0, 0)
  buf.SetPixel(8, 8, 0, 255)
  if err := Apply(buf, FILTER_BLUR, nil, 0); err != nil { t.Fatal(err) }
  center := buf.GetPixel(8, 8, 0)
  if center >= 255 { t.Errorf("center kept full intensity: %d", center) }
  if got := buf.GetPixel(10, 10, 0); got != center {
    t.Errorf("window neighbor %d differs from center %d", got, center)
  }
  if got := buf.GetPixel(15, 15, 0); got != 0 {
    t.Errorf("pixel outside the window changed to %d", got)
  }
}

func TestSharpenCenterResponse(t *testing.T) {
  // Kernel weights sum to 1: 9*center - 8*neighbors.
  buf := uniformBuffer(t, 3, 3, 90, 90, 90)
  for c := 0; c < 3; c++ { buf.SetPixel(1, 1, c, 100) }
  if err := Apply(buf, FILTER_SHARPEN, nil, 0); err != nil { t.Fatal(err) }
  if got := buf.GetPixel(1, 1, 0); got != 180 {
    t.Errorf("sharpened center = %d, want 180", got)
  }
  // Border pixels are outside the convolution's reach.
  if got := buf.GetPixel(0, 0, 0); got != 90 {
    t.Errorf("border pixel changed to %d", got)
  }
}

func TestConvolutionUniformInvariant(t *testing.T) {
  // Both kernels sum to 1, so a constant image passes through unchanged.
  for _, kind := range []FilterKind{FILTER_SHARPEN, FILTER_EMBOSS} {
    buf := uniformBuffer(t, 8, 8, 120, 120, 120)
    if err := Apply(buf, kind, nil, 0); err != nil { t.Fatal(err) }
    for i, v := range buf.Data() {
      if v != 120 {
        t.Errorf("%s: uniform image changed at offset %d: %d", FilterName(kind), i, v)
        break
      }
    }
    buf.Release()
  }
}

func TestConvolutionBordersUntouched(t *testing.T) {
  buf, _ := Allocate(8, 8, 3)
  fillPattern(buf)
  orig := append([]byte(nil), buf.Data()...)
  if err := Apply(buf, FILTER_EMBOSS, nil, 0); err != nil { t.Fatal(err) }
  for y := 0; y < 8; y++ {
    for x := 0; x < 8; x++ {
      if x > 0 && x < 7 && y > 0 && y < 7 { continue }
      ofs := (y*8 + x) * 3
      for c := 0; c < 3; c++ {
        if buf.Data()[ofs+c] != orig[ofs+c] {
          t.Fatalf("border pixel (%d,%d) channel %d changed", x, y, c)
        }
      }
    }
  }
}

func TestHalftoneQuantization(t *testing.T) {
  tests := []struct{ in, want byte }{
    {0, 0}, {63, 0}, {64, 64}, {100, 64}, {128, 128}, {200, 192}, {255, 192},
  }
  for _, tt := range tests {
    buf := uniformBuffer(t, 8, 8, tt.in, tt.in, tt.in)
    if err := Apply(buf, FILTER_HALFTONE, nil, 0); err != nil { t.Fatal(err) }
    for c := 0; c < 3; c++ {
      if got := buf.GetPixel(3, 3, c); got != tt.want {
        t.Errorf("halftone(%d) channel %d = %d, want %d", tt.in, c, got, tt.want)
      }
    }
    buf.Release()
  }
}

func TestSketchUniformIsWhite(t *testing.T) {
  // Dodging a gray value by its own blurred negative saturates to white.
  buf := uniformBuffer(t, 12, 12, 100, 100, 100)
  if err := Apply(buf, FILTER_SKETCH, nil, 0); err != nil { t.Fatal(err) }
  for i, v := range buf.Data() {
    if v != 255 { t.Fatalf("offset %d = %d, want 255", i, v) }
  }
}
