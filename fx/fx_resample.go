package fx
// Bilinear resampling over a pixel buffer.

// SampleBilinear samples channel c at the real-valued coordinate (x, y) using bilinear
// interpolation of the four nearest pixels. Coordinates are clamped into
// [0, width-1] x [0, height-1] first, so probing outside the image repeats the edge.
// The result is clamped to [0, 255] and truncated to 8 bit.
//
// This is the single resampling primitive used by every geometric filter, which keeps
// edge behavior and precision identical across filters.
func (b *Buffer) SampleBilinear(x, y float64, c int) byte {
  if b == nil || b.pix == nil { return 0 }

  x = clampFloat(x, 0.0, float64(b.width - 1))
  y = clampFloat(y, 0.0, float64(b.height - 1))

  x1 := int(x)
  y1 := int(y)
  x2 := x1 + 1
  y2 := y1 + 1
  if x2 > b.width - 1 { x2 = b.width - 1 }
  if y2 > b.height - 1 { y2 = b.height - 1 }

  tx := x - float64(x1)
  ty := y - float64(y1)

  c11 := float64(b.GetPixel(x1, y1, c))
  c21 := float64(b.GetPixel(x2, y1, c))
  c12 := float64(b.GetPixel(x1, y2, c))
  c22 := float64(b.GetPixel(x2, y2, c))

  return clampByte(blerp(c11, c21, c12, c22, tx, ty))
}


func lerp(s, e, t float64) float64 {
  return s + (e - s) * t
}

func blerp(c00, c10, c01, c11, tx, ty float64) float64 {
  return lerp(lerp(c00, c10, tx), lerp(c01, c11, tx), ty)
}
