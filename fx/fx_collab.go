package fx
// Collaborator interfaces consumed by the engine's callers. The engine itself neither
// captures frames, detects faces nor persists anything; these contracts describe the
// surrounding pipeline it slots into.

// FaceRect is an axis-aligned face bounding box with detection confidence, supplied
// per frame by an external face detector. Position and size may be fractional. The
// engine treats it as read-only and never retains it beyond a call.
type FaceRect struct {
  X           float64
  Y           float64
  Width       float64
  Height      float64
  Confidence  float64   // in [0, 1]
}

// FrameSource produces raw frames at a fixed width/height/channel count per tick.
// NextFrame fills the caller-owned buffer with the next frame's pixel data.
type FrameSource interface {
  NextFrame(buf *Buffer) error
}

// FrameSink consumes mutated frames for display, encoding or virtual-camera output.
type FrameSink interface {
  PushFrame(buf *Buffer) error
}

// FaceDetector reports zero or one face per frame. The second return value is false
// when no face was found; filters that do not require a face accept a nil FaceRect.
type FaceDetector interface {
  DetectFace(buf *Buffer) (*FaceRect, bool)
}
