package graphics
// Export functionality for processed frames.

import (
  "errors"
  "fmt"
  "image"
  "image/gif"
  "image/jpeg"
  "image/png"
  "io"

  "github.com/InfinityTools/go-imagequant"
  "github.com/InfinityTools/go-logging"
  "golang.org/x/image/bmp"
)

// Export encodes the frames of the Graphics object into the specified output format.
// See TYPE_xxx constants. Single-frame formats (PNG, JPG, BMP) encode only the first
// frame; GIF encodes all frames as an animation, preserving imported frame delays.
// Use function Error() to check if Export returned successfully.
func (g *Graphics) Export(w io.Writer, format int) {
  if g.err != nil { return }
  if w == nil { g.err = errors.New("No output target specified"); return }
  if len(g.frames) == 0 { g.err = errors.New("No frames available"); return }

  switch format {
    case TYPE_BMP:
      g.err = bmp.Encode(w, g.GetImage(0))
    case TYPE_GIF:
      g.exportImageGIF(w)
    case TYPE_JPG:
      g.err = jpeg.Encode(w, g.GetImage(0), nil)
    case TYPE_PNG:
      g.err = png.Encode(w, g.GetImage(0))
    default:
      g.err = fmt.Errorf("Unrecognized output format: %d", format)
  }
}


// Used internally. Encodes all frames as a (potentially animated) GIF resource. Colors
// are quantized to an adaptive 256-color palette shared by all frames.
func (g *Graphics) exportImageGIF(w io.Writer) {
  numFrames := len(g.frames)
  isAnim := numFrames > 1

  att := imagequant.CreateAttributes()
  defer att.Release()

  // Quantization settings
  g.err = att.SetMaxColors(256)
  if g.err != nil { return }
  g.err = att.SetQuality(0, 100)  // Setting minquality to 0 to ensure a successful quantization
  if g.err != nil { return }
  g.err = att.SetSpeed(3)
  if g.err != nil { return }

  // Feeding all frames into a shared histogram
  if isAnim { logging.Log("Preparing GIF frames") }
  hist := att.CreateHistogram()
  qimgList := make([]*imagequant.Image, numFrames)
  for idx := 0; idx < numFrames; idx++ {
    qimgList[idx] = att.CreateImage(g.GetImage(idx), 0.0)
    if qimgList[idx] == nil { g.err = fmt.Errorf("Unable to process frame #%d", idx); return }
    g.err = att.AddImageToHistogram(hist, qimgList[idx])
    if g.err != nil { return }
    if isAnim { logging.LogProgressDot(idx, numFrames, 79 - 20) }  // 20 is length of prefixed string
  }
  if isAnim { logging.OverridePrefix(false, false, false).Logln("") }

  res, err := att.QuantizeHistogram(hist)
  if err != nil { g.err = err; return }
  g.err = att.SetDitheringLevel(res, 1.0)
  if g.err != nil { return }

  // Creating paletted output frames
  out := gif.GIF{
    Image: make([]*image.Paletted, numFrames),
    Delay: make([]int, numFrames),
  }
  for idx, qimg := range qimgList {
    img, err := att.WriteRemappedImage(res, qimg)
    if err != nil { g.err = err; return }
    imgPal, ok := img.(*image.Paletted)
    if !ok { g.err = fmt.Errorf("Unable to encode frame #%d", idx); return }
    out.Image[idx] = imgPal
    out.Delay[idx] = g.frames[idx].delay
  }

  g.err = gif.EncodeAll(w, &out)
}
