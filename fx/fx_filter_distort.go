package fx
/*
Implements the geometric distortion filters:
bulge, swirl, twirl, fisheye, pinch, wave, vertical_wave, horizontal_wave, stretch,
ripple, radial_wave, zoom_in, zoom_out, skew_horizontal, skew_vertical, rotate,
rotate_45, rotate_90, rotate_zoom, melt, zoom_blur.

Every distortion follows the same three-step structure: take a full scratch copy of
the frame, compute a destination-to-source coordinate for each pixel through a
filter-specific inverse mapping, and sample the copy with bilinear interpolation.
Pixels the mapping declares outside the effect region keep their source value
(pass-through).
*/

import (
  "math"
)

func init() {
  registerFilter(FILTER_BULGE, applyBulge)
  registerFilter(FILTER_SWIRL, applySwirl)
  registerFilter(FILTER_TWIRL, applyTwirl)
  registerFilter(FILTER_FISHEYE, applyFisheye)
  registerFilter(FILTER_PINCH, applyPinch)
  registerFilter(FILTER_WAVE, applyWave)
  registerFilter(FILTER_VERTICAL_WAVE, applyVerticalWave)
  registerFilter(FILTER_HORIZONTAL_WAVE, applyHorizontalWave)
  registerFilter(FILTER_STRETCH, applyStretch)
  registerFilter(FILTER_RIPPLE, applyRipple)
  registerFilter(FILTER_RADIAL_WAVE, applyRadialWave)
  registerFilter(FILTER_ZOOM_IN, applyZoomIn)
  registerFilter(FILTER_ZOOM_OUT, applyZoomOut)
  registerFilter(FILTER_SKEW_HORIZONTAL, applySkewHorizontal)
  registerFilter(FILTER_SKEW_VERTICAL, applySkewVertical)
  registerFilter(FILTER_ROTATE, applyRotate45)
  registerFilter(FILTER_ROTATE_45, applyRotate45)
  registerFilter(FILTER_ROTATE_90, applyRotate90)
  registerFilter(FILTER_ROTATE_ZOOM, applyRotateZoom)
  registerFilter(FILTER_MELT, applyMelt)
  registerFilter(FILTER_ZOOM_BLUR, applyZoomBlur)
}

// mapFunc is the inverse mapping of a distortion filter: it returns the source
// coordinate to sample for destination pixel (x, y), or ok=false for pass-through.
type mapFunc func(x, y int) (sx, sy float64, ok bool)


// Used internally. Applies fn to every pixel of buf, sampling from a scratch copy.
// The scratch copy is released on every return path.
func remap(buf *Buffer, fn mapFunc) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  remapFrom(buf, temp, fn)
  return nil
}

// Used internally. Like remap, but samples from an explicit source buffer. dst pixels
// with ok=false keep their current value.
func remapFrom(dst, src *Buffer, fn mapFunc) {
  for y := 0; y < dst.height; y++ {
    for x := 0; x < dst.width; x++ {
      sx, sy, ok := fn(x, y)
      if !ok { continue }
      for c := 0; c < dst.channels; c++ {
        dst.SetPixel(x, y, c, src.SampleBilinear(sx, sy, c))
      }
    }
  }
}

// Used internally. Returns the image center and effect radius min(w, h)/2.
func effectCenter(buf *Buffer) (cx, cy, radius float64) {
  cx = float64(buf.width) / 2.0
  cy = float64(buf.height) / 2.0
  radius = math.Min(float64(buf.width), float64(buf.height)) / 2.0
  return
}


// Compresses pixels toward the center inside the effect radius.
func applyBulge(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, radius := effectCenter(buf)
  const strength = 0.5
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    if d >= radius { return 0, 0, false }
    factor := clampFloat(1.0 - (d / radius) * strength, 0.0, 1.0)
    return cx + dx * factor, cy + dy * factor, true
  })
}

func applySwirl(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, swirlMapper(buf, 2.0))
}

// Same mapping as swirl at higher strength.
func applyTwirl(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, swirlMapper(buf, 3.0))
}

// Used internally. Rotates pixels around the center by an angle that falls off
// linearly with distance, zero at the effect radius.
func swirlMapper(buf *Buffer, strength float64) mapFunc {
  cx, cy, radius := effectCenter(buf)
  return func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    if d >= radius { return 0, 0, false }
    angle := math.Atan2(dy, dx)
    angle += strength * (1.0 - clampFloat(d / radius, 0.0, 1.0))
    return cx + d * math.Cos(angle), cy + d * math.Sin(angle), true
  }
}

func applyFisheye(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, radius := effectCenter(buf)
  const strength = 0.8
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    nd := clampFloat(d / radius, 0.0, 1.0)
    sd := nd * (1.0 - strength * nd * nd) * radius
    angle := math.Atan2(dy, dx)
    return cx + sd * math.Cos(angle), cy + sd * math.Sin(angle), true
  })
}

func applyPinch(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, radius := effectCenter(buf)
  const strength = 0.6
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    if d >= radius { return 0, 0, false }
    nd := clampFloat(d / radius, 0.0, 1.0)
    sd := nd * (1.0 + strength * (1.0 - nd)) * radius
    angle := math.Atan2(dy, dx)
    return cx + sd * math.Cos(angle), cy + sd * math.Sin(angle), true
  })
}

// Horizontal displacement driven by a sine over the vertical distance to the center.
func applyWave(buf *Buffer, face *FaceRect, frameCount int) error {
  cy := float64(buf.height) / 2.0
  const amplitude, frequency = 30.0, 0.05
  return remap(buf, func(x, y int) (float64, float64, bool) {
    phase := math.Sin((float64(y) - cy) * frequency) * amplitude
    return float64(x) + phase, float64(y), true
  })
}

func applyVerticalWave(buf *Buffer, face *FaceRect, frameCount int) error {
  cx := float64(buf.width) / 2.0
  const amplitude, frequency = 25.0, 0.05
  return remap(buf, func(x, y int) (float64, float64, bool) {
    phase := math.Sin((float64(x) - cx) * frequency) * amplitude
    return float64(x), float64(y) + phase, true
  })
}

func applyHorizontalWave(buf *Buffer, face *FaceRect, frameCount int) error {
  cy := float64(buf.height) / 2.0
  const amplitude, frequency = 25.0, 0.05
  return remap(buf, func(x, y int) (float64, float64, bool) {
    phase := math.Sin((float64(y) - cy) * frequency) * amplitude
    return float64(x) + phase, float64(y), true
  })
}

// Widens and flattens around the face center; falls back to the image center when no
// face is available.
func applyStretch(buf *Buffer, face *FaceRect, frameCount int) error {
  cx := float64(buf.width) / 2.0
  cy := float64(buf.height) / 2.0
  if face != nil {
    cx = face.X + face.Width / 2.0
    cy = face.Y + face.Height / 2.0
  }
  const stretchX, stretchY = 1.5, 0.7
  return remap(buf, func(x, y int) (float64, float64, bool) {
    return cx + (float64(x) - cx) * stretchX, cy + (float64(y) - cy) * stretchY, true
  })
}

// Concentric rings pushed outward along the radial direction.
func applyRipple(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, _ := effectCenter(buf)
  const amplitude, frequency = 20.0, 0.1
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    ripple := math.Sin(d * frequency) * amplitude
    angle := math.Atan2(dy, dx)
    return float64(x) + ripple * math.Cos(angle), float64(y) + ripple * math.Sin(angle), true
  })
}

// Angular displacement driven by a radial sine.
func applyRadialWave(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, _ := effectCenter(buf)
  const amplitude, frequency = 15.0, 0.1
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    wave := math.Sin(d * frequency) * amplitude
    angle := math.Atan2(dy, dx) + wave / math.Max(d, 1.0)
    return cx + d * math.Cos(angle), cy + d * math.Sin(angle), true
  })
}

func applyZoomIn(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, zoomMapper(buf, 1.3))
}

func applyZoomOut(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, zoomMapper(buf, 0.8))
}

// Used internally. Uniform zoom around the image center: source = center + delta/factor.
func zoomMapper(buf *Buffer, factor float64) mapFunc {
  cx := float64(buf.width) / 2.0
  cy := float64(buf.height) / 2.0
  return func(x, y int) (float64, float64, bool) {
    return cx + (float64(x) - cx) / factor, cy + (float64(y) - cy) / factor, true
  }
}

func applySkewHorizontal(buf *Buffer, face *FaceRect, frameCount int) error {
  cy := float64(buf.height) / 2.0
  const strength = 0.3
  return remap(buf, func(x, y int) (float64, float64, bool) {
    return float64(x) + (float64(y) - cy) * strength, float64(y), true
  })
}

func applySkewVertical(buf *Buffer, face *FaceRect, frameCount int) error {
  cx := float64(buf.width) / 2.0
  const strength = 0.3
  return remap(buf, func(x, y int) (float64, float64, bool) {
    return float64(x), float64(y) + (float64(x) - cx) * strength, true
  })
}

func applyRotate45(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, rotateMapper(buf, math.Pi / 4.0))
}

func applyRotate90(buf *Buffer, face *FaceRect, frameCount int) error {
  return remap(buf, rotateMapper(buf, math.Pi / 2.0))
}

// Used internally. Rotation around the image center by a fixed angle.
func rotateMapper(buf *Buffer, angle float64) mapFunc {
  cx := float64(buf.width) / 2.0
  cy := float64(buf.height) / 2.0
  sin, cos := math.Sincos(angle)
  // Sincos leaves residues of about 1e-16 at right angles, which pushes the truncating
  // sampler one intensity step below the exact source pixel.
  if math.Abs(sin) < 1e-15 { sin = 0.0 }
  if math.Abs(cos) < 1e-15 { cos = 0.0 }
  return func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    return cx + dx * cos - dy * sin, cy + dx * sin + dy * cos, true
  }
}

// Rotation and zoom both growing with distance from the center.
func applyRotateZoom(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, radius := effectCenter(buf)
  return remap(buf, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    angle := math.Atan2(dy, dx) + 2.0 * math.Pi * (d / radius)
    sd := d * (1.0 + 0.3 * (d / radius))
    return cx + sd * math.Cos(angle), cy + sd * math.Sin(angle), true
  })
}

// Vertical displacement driven by a sine over x.
func applyMelt(buf *Buffer, face *FaceRect, frameCount int) error {
  const amplitude, frequency = 30.0, 0.05
  return remap(buf, func(x, y int) (float64, float64, bool) {
    return float64(x), float64(y) + math.Sin(float64(x) * frequency) * amplitude, true
  })
}

// Radial zoom over a blurred copy of the frame, approximating motion blur away from
// the center.
func applyZoomBlur(buf *Buffer, face *FaceRect, frameCount int) error {
  cx, cy, radius := effectCenter(buf)
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  boxBlur(temp, 7)
  remapFrom(buf, temp, func(x, y int) (float64, float64, bool) {
    dx := float64(x) - cx
    dy := float64(y) - cy
    d := math.Sqrt(dx * dx + dy * dy)
    factor := 1.0 + (d / radius) * 0.3
    return cx + dx * factor, cy + dy * factor, true
  })
  return nil
}
