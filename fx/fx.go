/*
Package fx implements the camfx image filter engine: a mutable interleaved pixel buffer,
a bilinear resampling primitive, per-pixel color transforms, inverse-mapping distortion
filters, block operators and a face-relative mask compositor.

The engine is synchronous and self-contained. It performs no I/O, keeps no state between
calls and owns no resources beyond the buffers handed to it. Camera capture, face
detection and frame output are external collaborators (see FrameSource, FrameSink and
FaceDetector).

camfx is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package fx

import (
  "errors"
)

// Errors reported across the public engine boundary. Operations never panic; every
// failure is classified as one of these sentinels and can be tested with errors.Is.
var (
  // ErrAllocation indicates that a buffer or scratch copy could not be created.
  ErrAllocation = errors.New("buffer allocation failed")
  // ErrInvalidArgument indicates a nil or released buffer, a missing face or mask,
  // or mask data shorter than its declared dimensions. The operation is a no-op.
  ErrInvalidArgument = errors.New("invalid argument")
  // ErrUnimplemented indicates a recognized filter kind without a registered handler.
  // Callers should treat it as "no filter" rather than as a failure.
  ErrUnimplemented = errors.New("filter not implemented")
)

// Buffer represents a width x height image as a contiguous byte array of interleaved
// 8-bit channels in R,G,B[,A] order. Pixel address: (y*width + x)*channels + c.
type Buffer struct {
  width     int
  height    int
  channels  int
  pix       []byte
}


// Allocate creates a zero-initialized buffer of the given dimensions. Channels must be
// 3 (RGB) or 4 (RGBA). Returns ErrAllocation on invalid dimensions.
func Allocate(width, height, channels int) (*Buffer, error) {
  if width < 1 || height < 1 { return nil, ErrAllocation }
  if channels != 3 && channels != 4 { return nil, ErrAllocation }
  return &Buffer{width: width, height: height, channels: channels,
                 pix: make([]byte, width * height * channels)}, nil
}

// Clone creates a deep copy of the buffer. Returns ErrAllocation if the source buffer
// is nil or has been released.
func (b *Buffer) Clone() (*Buffer, error) {
  if b == nil || b.pix == nil { return nil, ErrAllocation }
  dst, err := Allocate(b.width, b.height, b.channels)
  if err != nil { return nil, err }
  copy(dst.pix, b.pix)
  return dst, nil
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
  if b == nil { return 0 }
  return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
  if b == nil { return 0 }
  return b.height
}

// Channels returns the number of interleaved channels (3 or 4).
func (b *Buffer) Channels() int {
  if b == nil { return 0 }
  return b.channels
}

// GetPixel returns the value of channel c at (x, y). Coordinates outside the image are
// clamped to the nearest edge. Returns 0 for a nil or released buffer, or a channel
// outside [0, channels).
func (b *Buffer) GetPixel(x, y, c int) byte {
  if b == nil || b.pix == nil { return 0 }
  if c < 0 || c >= b.channels { return 0 }
  x = clampInt(x, 0, b.width - 1)
  y = clampInt(y, 0, b.height - 1)
  return b.pix[(y * b.width + x) * b.channels + c]
}

// SetPixel assigns the value of channel c at (x, y). Coordinates outside the image are
// clamped to the nearest edge; invalid buffers or channels are silently ignored. The
// permissive clamping lets distortion filters probe near edges without branching.
func (b *Buffer) SetPixel(x, y, c int, value byte) {
  if b == nil || b.pix == nil { return }
  if c < 0 || c >= b.channels { return }
  x = clampInt(x, 0, b.width - 1)
  y = clampInt(y, 0, b.height - 1)
  b.pix[(y * b.width + x) * b.channels + c] = value
}

// SetData copies width*height*channels bytes from raw into the buffer. The call is a
// no-op when raw holds fewer bytes than required.
func (b *Buffer) SetData(raw []byte) {
  if b == nil || b.pix == nil { return }
  if len(raw) < len(b.pix) { return }
  copy(b.pix, raw[:len(b.pix)])
}

// Data returns a view into the buffer's backing storage. The slice stays valid until
// the next mutation or Release; it is not a copy.
func (b *Buffer) Data() []byte {
  if b == nil { return nil }
  return b.pix
}

// Release drops the buffer's backing storage. Accessor calls on a released buffer take
// the null-buffer path (GetPixel returns 0, mutations are ignored).
func (b *Buffer) Release() {
  if b == nil { return }
  b.pix = nil
}


// Used internally. Clamps an int into [min, max].
func clampInt(value, min, max int) int {
  if value < min { return min }
  if value > max { return max }
  return value
}

// Used internally. Clamps a float into [min, max].
func clampFloat(value, min, max float64) float64 {
  if value < min { return min }
  if value > max { return max }
  return value
}

// Used internally. Clamps a float into [0, 255] and truncates to a byte.
func clampByte(value float64) byte {
  return byte(clampFloat(value, 0.0, 255.0))
}
