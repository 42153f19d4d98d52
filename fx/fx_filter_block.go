package fx
/*
Implements the block and neighborhood filters:
pixelate, blur, sharpen, emboss, halftone, sketch.

Pixelate and blur average over block or window neighborhoods with edge-shrunk
denominators. The convolution filters apply a fixed 3x3 kernel to interior pixels
only; border rows and columns are left unmodified.
*/

func init() {
  registerFilter(FILTER_PIXELATE, applyPixelate)
  registerFilter(FILTER_BLUR, applyBlur)
  registerFilter(FILTER_SHARPEN, applySharpen)
  registerFilter(FILTER_EMBOSS, applyEmboss)
  registerFilter(FILTER_HALFTONE, applyHalftone)
  registerFilter(FILTER_SKETCH, applySketch)
}


// Replaces each 10x10 block with its per-channel mean. Blocks at the right and bottom
// edge may be partial. Alpha is untouched.
func applyPixelate(buf *Buffer, face *FaceRect, frameCount int) error {
  const blockSize = 10
  for y := 0; y < buf.height; y += blockSize {
    for x := 0; x < buf.width; x += blockSize {
      var r, g, b float64
      count := 0
      for dy := 0; dy < blockSize && y + dy < buf.height; dy++ {
        ofs := ((y + dy) * buf.width + x) * buf.channels
        for dx := 0; dx < blockSize && x + dx < buf.width; dx++ {
          r += float64(buf.pix[ofs])
          g += float64(buf.pix[ofs+1])
          b += float64(buf.pix[ofs+2])
          count++
          ofs += buf.channels
        }
      }
      if count == 0 { continue }
      mr := byte(r / float64(count))
      mg := byte(g / float64(count))
      mb := byte(b / float64(count))
      for dy := 0; dy < blockSize && y + dy < buf.height; dy++ {
        ofs := ((y + dy) * buf.width + x) * buf.channels
        for dx := 0; dx < blockSize && x + dx < buf.width; dx++ {
          buf.pix[ofs] = mr
          buf.pix[ofs+1] = mg
          buf.pix[ofs+2] = mb
          ofs += buf.channels
        }
      }
    }
  }
  return nil
}

func applyBlur(buf *Buffer, face *FaceRect, frameCount int) error {
  return boxBlur(buf, 5)
}

// Used internally. Box blur with the given radius: each R,G,B value becomes the mean
// of its (2r+1)x(2r+1) window. At image edges only in-bounds neighbors are counted and
// the denominator shrinks accordingly. Also serves as a building block for artistic
// filters (sketch, zoom_blur).
func boxBlur(buf *Buffer, radius int) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  for y := 0; y < buf.height; y++ {
    for x := 0; x < buf.width; x++ {
      var r, g, b float64
      count := 0
      for dy := -radius; dy <= radius; dy++ {
        yy := y + dy
        if yy < 0 || yy >= buf.height { continue }
        for dx := -radius; dx <= radius; dx++ {
          xx := x + dx
          if xx < 0 || xx >= buf.width { continue }
          ofs := (yy * buf.width + xx) * buf.channels
          r += float64(temp.pix[ofs])
          g += float64(temp.pix[ofs+1])
          b += float64(temp.pix[ofs+2])
          count++
        }
      }
      ofs := (y * buf.width + x) * buf.channels
      buf.pix[ofs] = byte(r / float64(count))
      buf.pix[ofs+1] = byte(g / float64(count))
      buf.pix[ofs+2] = byte(b / float64(count))
    }
  }
  return nil
}

func applySharpen(buf *Buffer, face *FaceRect, frameCount int) error {
  kernel := [9]float64{
    -1, -1, -1,
    -1,  9, -1,
    -1, -1, -1,
  }
  return convolve3x3(buf, kernel)
}

func applyEmboss(buf *Buffer, face *FaceRect, frameCount int) error {
  kernel := [9]float64{
    -2, -1, 0,
    -1,  1, 1,
     0,  1, 2,
  }
  return convolve3x3(buf, kernel)
}

// Used internally. Applies a 3x3 kernel to the R,G,B channels of interior pixels.
// Border pixels are skipped: no wraparound, no edge extension.
func convolve3x3(buf *Buffer, kernel [9]float64) error {
  temp, err := buf.Clone()
  if err != nil { return err }
  defer temp.Release()
  for y := 1; y < buf.height - 1; y++ {
    for x := 1; x < buf.width - 1; x++ {
      for c := 0; c < 3; c++ {
        var sum float64
        ki := 0
        for dy := -1; dy <= 1; dy++ {
          ofs := ((y + dy) * buf.width + x - 1) * buf.channels + c
          for dx := -1; dx <= 1; dx++ {
            sum += kernel[ki] * float64(temp.pix[ofs])
            ki++
            ofs += buf.channels
          }
        }
        buf.pix[(y * buf.width + x) * buf.channels + c] = clampByte(sum)
      }
    }
  }
  return nil
}

// Grayscale halftone: 4x4 blocks collapse to their mean gray value quantized into
// 64-wide steps.
func applyHalftone(buf *Buffer, face *FaceRect, frameCount int) error {
  const blockSize = 4
  for y := 0; y < buf.height; y += blockSize {
    for x := 0; x < buf.width; x += blockSize {
      var sum float64
      count := 0
      for dy := 0; dy < blockSize && y + dy < buf.height; dy++ {
        ofs := ((y + dy) * buf.width + x) * buf.channels
        for dx := 0; dx < blockSize && x + dx < buf.width; dx++ {
          sum += (float64(buf.pix[ofs]) + float64(buf.pix[ofs+1]) + float64(buf.pix[ofs+2])) / 3.0
          count++
          ofs += buf.channels
        }
      }
      gray := byte(sum / float64(count)) / 64 * 64
      for dy := 0; dy < blockSize && y + dy < buf.height; dy++ {
        ofs := ((y + dy) * buf.width + x) * buf.channels
        for dx := 0; dx < blockSize && x + dx < buf.width; dx++ {
          buf.pix[ofs] = gray
          buf.pix[ofs+1] = gray
          buf.pix[ofs+2] = gray
          ofs += buf.channels
        }
      }
    }
  }
  return nil
}

// Pencil sketch: grayscale, invert, blur the inversion, then color-dodge the gray
// values by the blurred negative.
func applySketch(buf *Buffer, face *FaceRect, frameCount int) error {
  if err := applyBlackWhite(buf, face, frameCount); err != nil { return err }

  blurred, err := buf.Clone()
  if err != nil { return err }
  defer blurred.Release()
  if err := applyNegative(blurred, face, frameCount); err != nil { return err }
  if err := boxBlur(blurred, 10); err != nil { return err }

  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    gray := float64(buf.pix[ofs])
    denom := float64(255 - blurred.pix[ofs])
    var v byte
    if denom <= 0.0 {
      v = 255
    } else {
      v = clampByte(gray * 256.0 / denom)
    }
    buf.pix[ofs] = v
    buf.pix[ofs+1] = v
    buf.pix[ofs+2] = v
  }
  return nil
}
