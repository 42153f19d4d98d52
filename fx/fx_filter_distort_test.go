package fx

import (
  "testing"
)

// Pixels outside the effect radius must come through bit-identical.
func TestDistortionPassThroughOutsideRadius(t *testing.T) {
  for _, kind := range []FilterKind{FILTER_BULGE, FILTER_SWIRL} {
    buf, _ := Allocate(16, 16, 3)
    fillPattern(buf)
    orig := append([]byte(nil), buf.Data()...)
    if err := Apply(buf, kind, nil, 0); err != nil {
      t.Fatalf("Apply(%s): %v", FilterName(kind), err)
    }
    // Center (8,8), radius 8: all four corners lie well outside.
    for _, p := range [][2]int{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
      for c := 0; c < 3; c++ {
        ofs := (p[1]*16 + p[0]) * 3
        if buf.Data()[ofs+c] != orig[ofs+c] {
          t.Errorf("%s: pixel (%d,%d) channel %d changed outside radius", FilterName(kind), p[0], p[1], c)
        }
      }
    }
    buf.Release()
  }
}

func TestDistortionCenterFixedPoint(t *testing.T) {
  // On an even-sized frame the center pixel sits exactly on the effect center
  // and maps onto itself for radial distortions.
  for _, kind := range []FilterKind{FILTER_BULGE, FILTER_SWIRL, FILTER_TWIRL, FILTER_FISHEYE, FILTER_PINCH} {
    buf, _ := Allocate(16, 16, 3)
    fillPattern(buf)
    want := buf.GetPixel(8, 8, 0)
    if err := Apply(buf, kind, nil, 0); err != nil {
      t.Fatalf("Apply(%s): %v", FilterName(kind), err)
    }
    if got := buf.GetPixel(8, 8, 0); got != want {
      t.Errorf("%s: center pixel changed from %d to %d", FilterName(kind), want, got)
    }
    buf.Release()
  }
}

func TestDistortionUniformInvariant(t *testing.T) {
  // Remapping a constant image yields the same constant image.
  kinds := []FilterKind{
    FILTER_BULGE, FILTER_SWIRL, FILTER_FISHEYE, FILTER_PINCH, FILTER_WAVE,
    FILTER_RIPPLE, FILTER_ZOOM_IN, FILTER_ZOOM_OUT, FILTER_ROTATE, FILTER_ROTATE_90,
    FILTER_SKEW_HORIZONTAL, FILTER_SKEW_VERTICAL, FILTER_MELT, FILTER_RADIAL_WAVE,
  }
  for _, kind := range kinds {
    buf := uniformBuffer(t, 12, 12, 70, 110, 190)
    if err := Apply(buf, kind, nil, 7); err != nil {
      t.Fatalf("Apply(%s): %v", FilterName(kind), err)
    }
    for i, v := range buf.Data() {
      want := []byte{70, 110, 190}[i%3]
      if v != want {
        t.Errorf("%s: uniform image changed at offset %d: %d != %d", FilterName(kind), i, v, want)
        break
      }
    }
    buf.Release()
  }
}

func TestRotate90SourceMapping(t *testing.T) {
  buf, _ := Allocate(9, 9, 3)
  fillPattern(buf)
  src, _ := buf.Clone()
  defer src.Release()
  if err := Apply(buf, FILTER_ROTATE_90, nil, 0); err != nil { t.Fatal(err) }
  // Rotation by pi/2 around the center: destination (4,0) samples source (8,4) after
  // clamping, and destination (0,4) samples source (5,0). Both mappings must be exact;
  // the rotation coefficients may not carry trigonometric residues that shift the
  // sampled value by one intensity step.
  for c := 0; c < 3; c++ {
    want := src.GetPixel(8, 4, c)
    if got := buf.GetPixel(4, 0, c); got != want {
      t.Errorf("channel %d: got %d, want %d", c, got, want)
    }
    want = src.GetPixel(5, 0, c)
    if got := buf.GetPixel(0, 4, c); got != want {
      t.Errorf("channel %d at (0,4): got %d, want %d", c, got, want)
    }
  }
}

func TestStretchWithoutFace(t *testing.T) {
  // Falls back to the frame center when no face is available.
  buf, _ := Allocate(16, 16, 3)
  fillPattern(buf)
  if err := Apply(buf, FILTER_STRETCH, nil, 0); err != nil {
    t.Fatalf("Apply(FILTER_STRETCH) without face: %v", err)
  }
  buf.Release()

  buf, _ = Allocate(16, 16, 3)
  fillPattern(buf)
  face := &FaceRect{X: 4, Y: 4, Width: 8, Height: 8, Confidence: 0.9}
  if err := Apply(buf, FILTER_STRETCH, face, 0); err != nil {
    t.Fatalf("Apply(FILTER_STRETCH) with face: %v", err)
  }
}

func TestShakeIsTranslation(t *testing.T) {
  // At frame 0 the offset is exactly (0, 15), a whole-pixel vertical shift.
  buf, _ := Allocate(8, 32, 3)
  fillPattern(buf)
  src, _ := buf.Clone()
  defer src.Release()
  if err := Apply(buf, FILTER_SHAKE, nil, 0); err != nil { t.Fatal(err) }
  for c := 0; c < 3; c++ {
    if got, want := buf.GetPixel(4, 20, c), src.GetPixel(4, 5, c); got != want {
      t.Errorf("channel %d: interior shift got %d, want %d", c, got, want)
    }
    // Rows shifted in from above the frame clamp to the source's first row.
    if got, want := buf.GetPixel(4, 3, c), src.GetPixel(4, 0, c); got != want {
      t.Errorf("channel %d: clamped shift got %d, want %d", c, got, want)
    }
  }
}
