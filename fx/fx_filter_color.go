package fx
/*
Implements the single-pass color filters:
black_white, sepia, negative, vintage, red_tint, green_tint, blue_tint, posterize,
thermal, solarize, rainbow_shift.

Each filter is one forward pass over the pixel data without scratch buffers. Filters
touch the R,G,B channels only; a 4th (alpha) channel is always preserved.
*/

import (
  "math"
)

func init() {
  registerFilter(FILTER_BLACK_WHITE, applyBlackWhite)
  registerFilter(FILTER_SEPIA, applySepia)
  registerFilter(FILTER_NEGATIVE, applyNegative)
  registerFilter(FILTER_VINTAGE, applyVintage)
  registerFilter(FILTER_RED_TINT, applyRedTint)
  registerFilter(FILTER_GREEN_TINT, applyGreenTint)
  registerFilter(FILTER_BLUE_TINT, applyBlueTint)
  registerFilter(FILTER_POSTERIZE, applyPosterize)
  registerFilter(FILTER_THERMAL, applyThermal)
  registerFilter(FILTER_SOLARIZE, applySolarize)
  registerFilter(FILTER_RAINBOW_SHIFT, applyRainbowShift)
}


// Luminance-weighted grayscale: gray = round(0.299R + 0.587G + 0.114B).
func applyBlackWhite(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    r := float64(buf.pix[ofs])
    g := float64(buf.pix[ofs+1])
    b := float64(buf.pix[ofs+2])
    gray := byte(math.Round(0.299 * r + 0.587 * g + 0.114 * b))
    buf.pix[ofs] = gray
    buf.pix[ofs+1] = gray
    buf.pix[ofs+2] = gray
  }
  return nil
}

// Fixed 3x3 sepia matrix. Channel results are clamped to [0, 255] and truncated.
func applySepia(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    r := float64(buf.pix[ofs])
    g := float64(buf.pix[ofs+1])
    b := float64(buf.pix[ofs+2])
    buf.pix[ofs] = clampByte(0.393 * r + 0.769 * g + 0.189 * b)
    buf.pix[ofs+1] = clampByte(0.349 * r + 0.686 * g + 0.168 * b)
    buf.pix[ofs+2] = clampByte(0.272 * r + 0.534 * g + 0.131 * b)
  }
  return nil
}

func applyNegative(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    buf.pix[ofs] = 255 - buf.pix[ofs]
    buf.pix[ofs+1] = 255 - buf.pix[ofs+1]
    buf.pix[ofs+2] = 255 - buf.pix[ofs+2]
  }
  return nil
}

func applyVintage(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    buf.pix[ofs] = clampByte(float64(buf.pix[ofs]) * 0.9 + 20.0)
    buf.pix[ofs+1] = clampByte(float64(buf.pix[ofs+1]) * 0.85 + 15.0)
    buf.pix[ofs+2] = clampByte(float64(buf.pix[ofs+2]) * 0.8 + 10.0)
  }
  return nil
}

func applyRedTint(buf *Buffer, face *FaceRect, frameCount int) error {
  return applyTint(buf, 0)
}

func applyGreenTint(buf *Buffer, face *FaceRect, frameCount int) error {
  return applyTint(buf, 1)
}

func applyBlueTint(buf *Buffer, face *FaceRect, frameCount int) error {
  return applyTint(buf, 2)
}

// Used internally. Boosts the given channel by factor 1.5, other channels untouched.
func applyTint(buf *Buffer, channel int) error {
  size := buf.width * buf.height
  for i, ofs := 0, channel; i < size; i, ofs = i + 1, ofs + buf.channels {
    buf.pix[ofs] = clampByte(float64(buf.pix[ofs]) * 1.5)
  }
  return nil
}

// Quantizes R,G,B into 4 levels of width 64.
func applyPosterize(buf *Buffer, face *FaceRect, frameCount int) error {
  const step = 64
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    buf.pix[ofs] = buf.pix[ofs] / step * step
    buf.pix[ofs+1] = buf.pix[ofs+1] / step * step
    buf.pix[ofs+2] = buf.pix[ofs+2] / step * step
  }
  return nil
}

// False-color heat map over the channel mean: blue ramp below 85, yellow-white band
// up to 170, red ramp above.
func applyThermal(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    gray := (float64(buf.pix[ofs]) + float64(buf.pix[ofs+1]) + float64(buf.pix[ofs+2])) / 3.0
    switch {
      case gray < 85.0:
        buf.pix[ofs] = 0
        buf.pix[ofs+1] = 0
        buf.pix[ofs+2] = clampByte(gray * 3.0)
      case gray < 170.0:
        buf.pix[ofs] = clampByte((gray - 85.0) * 3.0)
        buf.pix[ofs+1] = 255
        buf.pix[ofs+2] = 255
      default:
        buf.pix[ofs] = 255
        buf.pix[ofs+1] = clampByte(255.0 - (gray - 170.0) * 3.0)
        buf.pix[ofs+2] = 0
    }
  }
  return nil
}

// Inverts channel values above the threshold of 128.
func applySolarize(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    for c := 0; c < 3; c++ {
      if buf.pix[ofs+c] > 128 { buf.pix[ofs+c] = 255 - buf.pix[ofs+c] }
    }
  }
  return nil
}

// Rotates the hue of every pixel by a third of the color circle.
func applyRainbowShift(buf *Buffer, face *FaceRect, frameCount int) error {
  size := buf.width * buf.height
  for i, ofs := 0, 0; i < size; i, ofs = i + 1, ofs + buf.channels {
    h, s, l := rgbToHSL(buf.pix[ofs], buf.pix[ofs+1], buf.pix[ofs+2])
    h += 1.0 / 3.0
    if h > 1.0 { h -= 1.0 }
    r, g, b := hslToRGB(h, s, l)
    buf.pix[ofs] = byte(r * 255.0 + 0.5)
    buf.pix[ofs+1] = byte(g * 255.0 + 0.5)
    buf.pix[ofs+2] = byte(b * 255.0 + 0.5)
  }
  return nil
}


// Converts R,G,B bytes into hue, saturation and lightness, all in range [0, 1].
func rgbToHSL(r, g, b byte) (h, s, l float64) {
  fr, fg, fb := float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0
  cmin := fr; if fg < cmin { cmin = fg }; if fb < cmin { cmin = fb }
  cmax := fr; if fg > cmax { cmax = fg }; if fb > cmax { cmax = fb }
  csum := cmax + cmin
  cdelta := cmax - cmin
  cdelta2 := cdelta / 2.0

  l = csum / 2.0

  if cdelta != 0.0 {
    if l < 0.5 {
      s = cdelta / csum
    } else {
      s = cdelta / (2.0 - csum)
    }

    dr := ((cmax - fr) / 6.0 + cdelta2) / cdelta
    dg := ((cmax - fg) / 6.0 + cdelta2) / cdelta
    db := ((cmax - fb) / 6.0 + cdelta2) / cdelta

    switch cmax {
      case fr:  h = db - dg
      case fg:  h = 1.0/3.0 + dr - db
      default:  h = 2.0/3.0 + dg - dr
    }

    if h < 0.0 { h += 1.0 }
    if h > 1.0 { h -= 1.0 }
  }
  return
}

// Converts HSL values back to RGB values in range [0, 1].
func hslToRGB(h, s, l float64) (r, g, b float64) {
  if s == 0.0 {
    r, g, b = l, l, l
    return
  }

  var f2 float64
  if l < 0.5 {
    f2 = l * (1.0 + s)
  } else {
    f2 = (l + s) - (s * l)
  }
  f1 := 2.0 * l - f2

  r = hueToChannel(f1, f2, h + 1.0/3.0)
  g = hueToChannel(f1, f2, h)
  b = hueToChannel(f1, f2, h - 1.0/3.0)
  return
}

// Used internally. Resolves a single RGB channel from hue position t.
func hueToChannel(f1, f2, t float64) float64 {
  if t < 0.0 { t += 1.0 }
  if t > 1.0 { t -= 1.0 }
  var v float64
  switch {
    case 6.0 * t < 1.0: v = f1 + (f2 - f1) * 6.0 * t
    case 2.0 * t < 1.0: v = f2
    case 3.0 * t < 2.0: v = f1 + (f2 - f1) * (2.0/3.0 - t) * 6.0
    default:            v = f1
  }
  return clampFloat(v, 0.0, 1.0)
}
