package fx

import (
  "bytes"
  "testing"
)

// Fills the buffer with a deterministic position-dependent pattern.
func fillPattern(buf *Buffer) {
  data := buf.Data()
  for i := range data {
    data[i] = byte((i * 31) % 251)
  }
}

func TestAllocateInvariant(t *testing.T) {
  tests := []struct{ w, h, c int }{
    {1, 1, 3}, {4, 4, 3}, {7, 3, 4}, {640, 480, 3},
  }
  for _, tt := range tests {
    buf, err := Allocate(tt.w, tt.h, tt.c)
    if err != nil { t.Fatalf("Allocate(%d, %d, %d): %v", tt.w, tt.h, tt.c, err) }
    if buf.Width() != tt.w || buf.Height() != tt.h || buf.Channels() != tt.c {
      t.Errorf("Allocate(%d, %d, %d): got %dx%dx%d", tt.w, tt.h, tt.c, buf.Width(), buf.Height(), buf.Channels())
    }
    if len(buf.Data()) != tt.w * tt.h * tt.c {
      t.Errorf("Allocate(%d, %d, %d): data length %d", tt.w, tt.h, tt.c, len(buf.Data()))
    }
    for i, v := range buf.Data() {
      if v != 0 { t.Fatalf("Allocate(%d, %d, %d): byte %d not zero-initialized", tt.w, tt.h, tt.c, i) }
    }
  }
}

func TestAllocateInvalid(t *testing.T) {
  tests := []struct{ w, h, c int }{
    {0, 4, 3}, {4, 0, 3}, {-1, 4, 3}, {4, 4, 0}, {4, 4, 2}, {4, 4, 5},
  }
  for _, tt := range tests {
    if _, err := Allocate(tt.w, tt.h, tt.c); err != ErrAllocation {
      t.Errorf("Allocate(%d, %d, %d): expected ErrAllocation, got %v", tt.w, tt.h, tt.c, err)
    }
  }
}

func TestClone(t *testing.T) {
  buf, _ := Allocate(8, 6, 3)
  fillPattern(buf)
  dup, err := buf.Clone()
  if err != nil { t.Fatalf("Clone: %v", err) }
  if !bytes.Equal(buf.Data(), dup.Data()) { t.Error("Clone: data differs from source") }
  dup.SetPixel(0, 0, 0, 99)
  if buf.GetPixel(0, 0, 0) == 99 { t.Error("Clone: copy shares storage with source") }

  buf.Release()
  if _, err := buf.Clone(); err != ErrAllocation {
    t.Errorf("Clone of released buffer: expected ErrAllocation, got %v", err)
  }
}

func TestClampedAccessors(t *testing.T) {
  buf, _ := Allocate(5, 4, 3)
  fillPattern(buf)
  if got, want := buf.GetPixel(-5, -5, 0), buf.GetPixel(0, 0, 0); got != want {
    t.Errorf("GetPixel(-5, -5, 0) = %d, want %d", got, want)
  }
  if got, want := buf.GetPixel(5, 4, 0), buf.GetPixel(4, 3, 0); got != want {
    t.Errorf("GetPixel(width, height, 0) = %d, want %d", got, want)
  }
  if got := buf.GetPixel(0, 0, 3); got != 0 {
    t.Errorf("GetPixel with invalid channel = %d, want 0", got)
  }

  buf.SetPixel(-1, -1, 0, 42)
  if got := buf.GetPixel(0, 0, 0); got != 42 {
    t.Errorf("SetPixel(-1, -1, 0, 42): pixel (0, 0) = %d", got)
  }
  before := append([]byte(nil), buf.Data()...)
  buf.SetPixel(0, 0, 7, 42)  // invalid channel, must be ignored
  if !bytes.Equal(buf.Data(), before) { t.Error("SetPixel with invalid channel mutated the buffer") }
}

func TestSetData(t *testing.T) {
  buf, _ := Allocate(2, 2, 3)
  raw := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}  // longer than needed
  buf.SetData(raw)
  if !bytes.Equal(buf.Data(), raw[:12]) { t.Error("SetData did not copy the leading bytes") }

  buf.SetData([]byte{9, 9})  // too short, must be ignored
  if !bytes.Equal(buf.Data(), raw[:12]) { t.Error("SetData with short input mutated the buffer") }
}

func TestRelease(t *testing.T) {
  buf, _ := Allocate(3, 3, 3)
  fillPattern(buf)
  buf.Release()
  if buf.Data() != nil { t.Error("Release: data still present") }
  if got := buf.GetPixel(1, 1, 0); got != 0 {
    t.Errorf("GetPixel on released buffer = %d, want 0", got)
  }
  buf.SetPixel(1, 1, 0, 5)  // must not panic
  buf.Release()             // double release must be harmless
}
