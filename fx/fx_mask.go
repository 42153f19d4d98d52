package fx
// Face-relative mask compositing.

// ApplyFaceMask alpha-blends an RGBA overlay image onto the frame, scaled and centered
// over the detected face rectangle. mask holds maskWidth*maskHeight RGBA pixels in
// row-major order.
//
// The mask is scaled uniformly by max(face.Width/maskWidth, face.Height/maskHeight)
// times a 1.6 overscan so it covers the whole face area rather than just its bounding
// box, then sampled nearest-neighbor. Blending uses the mask's alpha channel per R,G,B
// channel; frame alpha is untouched. Destinations outside the frame are skipped, so a
// face rectangle extending beyond the frame never causes out-of-bounds writes.
//
// Returns ErrInvalidArgument when buf, face or mask is absent, when maskWidth or
// maskHeight is not positive, or when mask holds fewer than maskWidth*maskHeight*4
// bytes. The frame is never partially mutated on error.
func ApplyFaceMask(buf *Buffer, face *FaceRect, mask []byte, maskWidth, maskHeight int) error {
  if buf == nil || buf.pix == nil { return ErrInvalidArgument }
  if face == nil || mask == nil { return ErrInvalidArgument }
  if maskWidth < 1 || maskHeight < 1 { return ErrInvalidArgument }
  if len(mask) < maskWidth * maskHeight * 4 { return ErrInvalidArgument }

  scaleX := face.Width / float64(maskWidth)
  scaleY := face.Height / float64(maskHeight)
  scale := scaleX
  if scaleY > scale { scale = scaleY }
  scale *= 1.6  // overscan so the mask covers the whole face, not just its box

  maskW := int(float64(maskWidth) * scale)
  maskH := int(float64(maskHeight) * scale)
  if maskW < 1 || maskH < 1 { return nil }

  originX := int(face.X - (float64(maskW) - face.Width) / 2.0)
  originY := int(face.Y - (float64(maskH) - face.Height) / 2.0)

  for my := 0; my < maskH; my++ {
    dy := originY + my
    if dy < 0 { continue }
    if dy >= buf.height { break }
    srcY := my * maskHeight / maskH
    for mx := 0; mx < maskW; mx++ {
      dx := originX + mx
      if dx < 0 { continue }
      if dx >= buf.width { break }
      srcX := mx * maskWidth / maskW
      mofs := (srcY * maskWidth + srcX) * 4
      alpha := float64(mask[mofs+3]) / 255.0
      ofs := (dy * buf.width + dx) * buf.channels
      for c := 0; c < 3; c++ {
        buf.pix[ofs+c] = byte(float64(mask[mofs+c]) * alpha + float64(buf.pix[ofs+c]) * (1.0 - alpha))
      }
    }
  }
  return nil
}
