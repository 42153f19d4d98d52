package fx
/*
Implements the time-varying filters:
pulse, shake, fast_zoom_in, fast_zoom_out.

These derive their parameters from the caller-maintained frame counter, interpreted
against a nominal 30 fps display rate. A fixed frame counter yields a fixed image, so
the filters stay deterministic per call.
*/

import (
  "math"
)

// Nominal display rate the animation constants are tuned for.
const animFPS = 30.0

func init() {
  registerFilter(FILTER_PULSE, applyPulse)
  registerFilter(FILTER_SHAKE, applyShake)
  registerFilter(FILTER_FAST_ZOOM_IN, applyFastZoomIn)
  registerFilter(FILTER_FAST_ZOOM_OUT, applyFastZoomOut)
}


// Breathing zoom oscillating by 15% around unity at 3 cycles per second.
func applyPulse(buf *Buffer, face *FaceRect, frameCount int) error {
  const speed = 3.0
  cycle := math.Mod(float64(frameCount) / animFPS * speed * 2.0 * math.Pi, 2.0 * math.Pi)
  factor := 1.0 + 0.15 * math.Sin(cycle)
  return remap(buf, zoomMapper(buf, factor))
}

// Circular camera shake of 15 pixels at 20 cycles per second.
func applyShake(buf *Buffer, face *FaceRect, frameCount int) error {
  const speed, amount = 20.0, 15.0
  phase := float64(frameCount) / animFPS * speed * 2.0 * math.Pi
  offsetX := amount * math.Sin(phase)
  offsetY := amount * math.Cos(phase)
  return remap(buf, func(x, y int) (float64, float64, bool) {
    return float64(x) - offsetX, float64(y) - offsetY, true
  })
}

// Zoom factor ramping from 1.0 to 3.0 and wrapping every second.
func applyFastZoomIn(buf *Buffer, face *FaceRect, frameCount int) error {
  const speed = 2.0
  factor := 1.0 + math.Mod(float64(frameCount) / animFPS * speed, 2.0)
  return remap(buf, zoomMapper(buf, factor))
}

// Zoom factor falling from 1.5 toward 0.5 and wrapping.
func applyFastZoomOut(buf *Buffer, face *FaceRect, frameCount int) error {
  const speed = 2.0
  factor := 1.5 - math.Mod(float64(frameCount) / animFPS * speed, 1.0)
  if factor < 0.5 { factor = 0.5 }
  return remap(buf, zoomMapper(buf, factor))
}
