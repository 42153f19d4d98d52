package fx
/*
Implements the mirror and layout filters:
mirror, flip_horizontal, flip_vertical, flip_both, quad_mirror, kaleidoscope, tile,
radial_tile, double_vision, glitch.

These rearrange whole pixels instead of remapping through fractional coordinates, so
they copy directly rather than resample where possible.
*/

import (
  "math/rand"
)

func init() {
  registerFilter(FILTER_MIRROR, applyMirror)
  registerFilter(FILTER_FLIP_HORIZONTAL, applyFlipHorizontal)
  registerFilter(FILTER_FLIP_VERTICAL, applyFlipVertical)
  registerFilter(FILTER_FLIP_BOTH, applyFlipBoth)
  registerFilter(FILTER_QUAD_MIRROR, applyQuadMirror)
  registerFilter(FILTER_KALEIDOSCOPE, applyKaleidoscope)
  registerFilter(FILTER_TILE, applyTile)
  registerFilter(FILTER_RADIAL_TILE, applyRadialTile)
  registerFilter(FILTER_DOUBLE_VISION, applyDoubleVision)
  registerFilter(FILTER_GLITCH, applyGlitch)
}


// Reflects the left half of the frame onto the right half.
func applyMirror(buf *Buffer, face *FaceRect, frameCount int) error {
  cx := buf.width / 2
  for y := 0; y < buf.height; y++ {
    for x := cx; x < buf.width; x++ {
      sx := 2 * cx - 1 - x
      if sx < 0 { continue }
      copyPixel(buf, x, y, buf, sx, y)
    }
  }
  return nil
}

func applyFlipHorizontal(buf *Buffer, face *FaceRect, frameCount int) error {
  for y := 0; y < buf.height; y++ {
    for x := 0; x < buf.width / 2; x++ {
      swapPixel(buf, x, y, buf.width - 1 - x, y)
    }
  }
  return nil
}

func applyFlipVertical(buf *Buffer, face *FaceRect, frameCount int) error {
  for y := 0; y < buf.height / 2; y++ {
    for x := 0; x < buf.width; x++ {
      swapPixel(buf, x, y, x, buf.height - 1 - y)
    }
  }
  return nil
}

func applyFlipBoth(buf *Buffer, face *FaceRect, frameCount int) error {
  if err := applyFlipHorizontal(buf, face, frameCount); err != nil { return err }
  return applyFlipVertical(buf, face, frameCount)
}

// Mirrors the top-left quadrant into the other three. Reads only from the top-left
// region, which is never written, so no scratch copy is needed.
func applyQuadMirror(buf *Buffer, face *FaceRect, frameCount int) error {
  cx := buf.width / 2
  cy := buf.height / 2
  for y := 0; y < buf.height; y++ {
    sy := y
    if y >= cy { sy = buf.height - 1 - y }
    for x := 0; x < buf.width; x++ {
      if x < cx && y < cy { continue }
      sx := x
      if x >= cx { sx = buf.width - 1 - x }
      copyPixel(buf, x, y, buf, sx, sy)
    }
  }
  return nil
}

// Four half-scale copies of the frame, mirrored into a symmetric mosaic.
func applyKaleidoscope(buf *Buffer, face *FaceRect, frameCount int) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  for y := 0; y < buf.height; y++ {
    ly := y
    if y >= buf.height / 2 { ly = buf.height - 1 - y }
    for x := 0; x < buf.width; x++ {
      lx := x
      if x >= buf.width / 2 { lx = buf.width - 1 - x }
      for c := 0; c < buf.channels; c++ {
        buf.SetPixel(x, y, c, temp.SampleBilinear(float64(lx) * 2.0, float64(ly) * 2.0, c))
      }
    }
  }
  return nil
}

// 4x4 grid of quarter-scale copies.
func applyTile(buf *Buffer, face *FaceRect, frameCount int) error {
  return tileGrid(buf, 4)
}

// 3x3 grid of third-scale copies.
func applyRadialTile(buf *Buffer, face *FaceRect, frameCount int) error {
  return tileGrid(buf, 3)
}

// Used internally. Fills the frame with an n x n grid of downscaled copies.
func tileGrid(buf *Buffer, n int) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  tw := buf.width / n
  th := buf.height / n
  if tw < 1 || th < 1 { return nil }
  for y := 0; y < buf.height; y++ {
    sy := float64(y % th) * float64(buf.height) / float64(th)
    for x := 0; x < buf.width; x++ {
      sx := float64(x % tw) * float64(buf.width) / float64(tw)
      for c := 0; c < buf.channels; c++ {
        buf.SetPixel(x, y, c, temp.SampleBilinear(sx, sy, c))
      }
    }
  }
  return nil
}

// 50/50 blend of the frame with a copy shifted 10 pixels to the right (wrapping).
func applyDoubleVision(buf *Buffer, face *FaceRect, frameCount int) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  const shift = 10
  for y := 0; y < buf.height; y++ {
    for x := 0; x < buf.width; x++ {
      sx := ((x - shift) % buf.width + buf.width) % buf.width
      ofs := (y * buf.width + x) * buf.channels
      sofs := (y * buf.width + sx) * buf.channels
      for c := 0; c < 3; c++ {
        buf.pix[ofs+c] = byte((uint32(temp.pix[ofs+c]) + uint32(temp.pix[sofs+c])) / 2)
      }
    }
  }
  return nil
}

// Displaces 10-row bands by random horizontal-scan offsets. Offsets are drawn from a
// generator seeded with the frame counter, so a given frame always renders the same.
func applyGlitch(buf *Buffer, face *FaceRect, frameCount int) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  rng := rand.New(rand.NewSource(int64(frameCount)))
  for band := 0; band < buf.height; band += 20 {
    offset := rng.Intn(21) - 10
    src := band + offset
    if src < 0 || src >= buf.height { continue }
    for dy := 0; dy < 10 && band + dy < buf.height && src + dy < buf.height; dy++ {
      dofs := (band + dy) * buf.width * buf.channels
      sofs := (src + dy) * buf.width * buf.channels
      copy(buf.pix[dofs:dofs + buf.width * buf.channels], temp.pix[sofs:sofs + buf.width * buf.channels])
    }
  }
  return nil
}


// Used internally. Copies all channels of one pixel position to another.
func copyPixel(dst *Buffer, dx, dy int, src *Buffer, sx, sy int) {
  dofs := (dy * dst.width + dx) * dst.channels
  sofs := (sy * src.width + sx) * src.channels
  copy(dst.pix[dofs:dofs + dst.channels], src.pix[sofs:sofs + src.channels])
}

// Used internally. Swaps all channels of two pixel positions.
func swapPixel(buf *Buffer, x1, y1, x2, y2 int) {
  ofs1 := (y1 * buf.width + x1) * buf.channels
  ofs2 := (y2 * buf.width + x2) * buf.channels
  for c := 0; c < buf.channels; c++ {
    buf.pix[ofs1+c], buf.pix[ofs2+c] = buf.pix[ofs2+c], buf.pix[ofs1+c]
  }
}
