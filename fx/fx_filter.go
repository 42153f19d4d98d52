package fx
// Filter identification, registration and dispatch.

import (
  "strings"
)

// FilterKind identifies a filter effect. Ordinal values are stable and part of the
// public API: callers persist them and UI layers use them as menu indices. New kinds
// are appended before FILTER_COUNT_ and existing values are never reordered.
type FilterKind int

const (
  FILTER_NONE FilterKind = iota
  FILTER_BLACK_WHITE
  FILTER_SEPIA
  FILTER_NEGATIVE
  FILTER_VINTAGE
  FILTER_NEON_GLOW
  FILTER_RED_TINT
  FILTER_BLUE_TINT
  FILTER_GREEN_TINT
  FILTER_POSTERIZE
  FILTER_THERMAL
  FILTER_PIXELATE
  FILTER_BLUR
  FILTER_SHARPEN
  FILTER_EMBOSS
  FILTER_SKETCH
  FILTER_CARTOON
  FILTER_RAINBOW
  FILTER_RAINBOW_SHIFT
  FILTER_ACID_TRIP
  FILTER_VHS
  FILTER_RETRO
  FILTER_CYBERPUNK
  FILTER_ANIME
  FILTER_GLOW
  FILTER_SOLARIZE
  FILTER_EDGE_DETECT
  FILTER_HALFTONE
  FILTER_BULGE
  FILTER_STRETCH
  FILTER_SWIRL
  FILTER_FISHEYE
  FILTER_PINCH
  FILTER_WAVE
  FILTER_MIRROR
  FILTER_TWIRL
  FILTER_RIPPLE
  FILTER_SPHERE
  FILTER_TUNNEL
  FILTER_WATER_RIPPLE
  FILTER_RADIAL_BLUR
  FILTER_CYLINDER
  FILTER_BARREL
  FILTER_PINCUSHION
  FILTER_WHIRLPOOL
  FILTER_RADIAL_ZOOM
  FILTER_CONCAVE
  FILTER_CONVEX
  FILTER_SPIRAL
  FILTER_RADIAL_STRETCH
  FILTER_RADIAL_COMPRESS
  FILTER_VERTICAL_WAVE
  FILTER_HORIZONTAL_WAVE
  FILTER_SKEW_HORIZONTAL
  FILTER_SKEW_VERTICAL
  FILTER_ROTATE_ZOOM
  FILTER_RADIAL_WAVE
  FILTER_ZOOM_IN
  FILTER_ZOOM_OUT
  FILTER_ROTATE
  FILTER_ROTATE_45
  FILTER_ROTATE_90
  FILTER_FLIP_HORIZONTAL
  FILTER_FLIP_VERTICAL
  FILTER_FLIP_BOTH
  FILTER_QUAD_MIRROR
  FILTER_TILE
  FILTER_RADIAL_TILE
  FILTER_ZOOM_BLUR
  FILTER_MELT
  FILTER_KALEIDOSCOPE
  FILTER_GLITCH
  FILTER_DOUBLE_VISION
  FILTER_FAST_ZOOM_IN
  FILTER_FAST_ZOOM_OUT
  FILTER_SHAKE
  FILTER_PULSE
  FILTER_SPIRAL_ZOOM
  FILTER_EXTREME_CLOSEUP
  FILTER_PUZZLE

  FILTER_COUNT_   // number of filter kinds; not a valid filter
)

// filterFunc applies a filter effect to buf in place. face may be nil; frameCount is
// the caller-maintained frame counter consumed by time-varying filters.
type filterFunc func(buf *Buffer, face *FaceRect, frameCount int) error

// Dispatch table indexed by FilterKind. Handlers are attached by registerFilter calls
// from init functions in the fx_filter_*.go files; entries without a handler report
// ErrUnimplemented from Apply.
var filterTable [FILTER_COUNT_]filterFunc

// Names are registered for every kind, including unimplemented placeholders, so UI
// layers can build complete filter menus without hardcoding counts.
var filterNames = [FILTER_COUNT_]string{
  FILTER_NONE:             "none",
  FILTER_BLACK_WHITE:      "black_white",
  FILTER_SEPIA:            "sepia",
  FILTER_NEGATIVE:         "negative",
  FILTER_VINTAGE:          "vintage",
  FILTER_NEON_GLOW:        "neon_glow",
  FILTER_RED_TINT:         "red_tint",
  FILTER_BLUE_TINT:        "blue_tint",
  FILTER_GREEN_TINT:       "green_tint",
  FILTER_POSTERIZE:        "posterize",
  FILTER_THERMAL:          "thermal",
  FILTER_PIXELATE:         "pixelate",
  FILTER_BLUR:             "blur",
  FILTER_SHARPEN:          "sharpen",
  FILTER_EMBOSS:           "emboss",
  FILTER_SKETCH:           "sketch",
  FILTER_CARTOON:          "cartoon",
  FILTER_RAINBOW:          "rainbow",
  FILTER_RAINBOW_SHIFT:    "rainbow_shift",
  FILTER_ACID_TRIP:        "acid_trip",
  FILTER_VHS:              "vhs",
  FILTER_RETRO:            "retro",
  FILTER_CYBERPUNK:        "cyberpunk",
  FILTER_ANIME:            "anime",
  FILTER_GLOW:             "glow",
  FILTER_SOLARIZE:         "solarize",
  FILTER_EDGE_DETECT:      "edge_detect",
  FILTER_HALFTONE:         "halftone",
  FILTER_BULGE:            "bulge",
  FILTER_STRETCH:          "stretch",
  FILTER_SWIRL:            "swirl",
  FILTER_FISHEYE:          "fisheye",
  FILTER_PINCH:            "pinch",
  FILTER_WAVE:             "wave",
  FILTER_MIRROR:           "mirror",
  FILTER_TWIRL:            "twirl",
  FILTER_RIPPLE:           "ripple",
  FILTER_SPHERE:           "sphere",
  FILTER_TUNNEL:           "tunnel",
  FILTER_WATER_RIPPLE:     "water_ripple",
  FILTER_RADIAL_BLUR:      "radial_blur",
  FILTER_CYLINDER:         "cylinder",
  FILTER_BARREL:           "barrel",
  FILTER_PINCUSHION:       "pincushion",
  FILTER_WHIRLPOOL:        "whirlpool",
  FILTER_RADIAL_ZOOM:      "radial_zoom",
  FILTER_CONCAVE:          "concave",
  FILTER_CONVEX:           "convex",
  FILTER_SPIRAL:           "spiral",
  FILTER_RADIAL_STRETCH:   "radial_stretch",
  FILTER_RADIAL_COMPRESS:  "radial_compress",
  FILTER_VERTICAL_WAVE:    "vertical_wave",
  FILTER_HORIZONTAL_WAVE:  "horizontal_wave",
  FILTER_SKEW_HORIZONTAL:  "skew_horizontal",
  FILTER_SKEW_VERTICAL:    "skew_vertical",
  FILTER_ROTATE_ZOOM:      "rotate_zoom",
  FILTER_RADIAL_WAVE:      "radial_wave",
  FILTER_ZOOM_IN:          "zoom_in",
  FILTER_ZOOM_OUT:         "zoom_out",
  FILTER_ROTATE:           "rotate",
  FILTER_ROTATE_45:        "rotate_45",
  FILTER_ROTATE_90:        "rotate_90",
  FILTER_FLIP_HORIZONTAL:  "flip_horizontal",
  FILTER_FLIP_VERTICAL:    "flip_vertical",
  FILTER_FLIP_BOTH:        "flip_both",
  FILTER_QUAD_MIRROR:      "quad_mirror",
  FILTER_TILE:             "tile",
  FILTER_RADIAL_TILE:      "radial_tile",
  FILTER_ZOOM_BLUR:        "zoom_blur",
  FILTER_MELT:             "melt",
  FILTER_KALEIDOSCOPE:     "kaleidoscope",
  FILTER_GLITCH:           "glitch",
  FILTER_DOUBLE_VISION:    "double_vision",
  FILTER_FAST_ZOOM_IN:     "fast_zoom_in",
  FILTER_FAST_ZOOM_OUT:    "fast_zoom_out",
  FILTER_SHAKE:            "shake",
  FILTER_PULSE:            "pulse",
  FILTER_SPIRAL_ZOOM:      "spiral_zoom",
  FILTER_EXTREME_CLOSEUP:  "extreme_closeup",
  FILTER_PUZZLE:           "puzzle",
}


// registerFilter attaches the handler for the given filter kind. It must be called
// once per implemented filter.
func registerFilter(kind FilterKind, fn filterFunc) {
  filterTable[kind] = fn
}


// Apply applies the given filter to buf in place. face is optional and may be nil;
// frameCount is a monotonically increasing counter maintained by the caller and only
// consumed by time-varying filters.
//
// Returns ErrInvalidArgument for a nil or released buffer, ErrUnimplemented for a
// kind without a registered handler, and nil on success. FILTER_NONE always succeeds
// and leaves the buffer untouched.
func Apply(buf *Buffer, kind FilterKind, face *FaceRect, frameCount int) error {
  if buf == nil || buf.pix == nil { return ErrInvalidArgument }
  if kind < 0 || kind >= FILTER_COUNT_ { return ErrUnimplemented }
  if kind == FILTER_NONE { return nil }
  fn := filterTable[kind]
  if fn == nil { return ErrUnimplemented }
  return fn(buf, face, frameCount)
}

// FilterCount returns the number of entries in the filter enumeration, including
// unimplemented placeholders.
func FilterCount() int {
  return int(FILTER_COUNT_)
}

// FilterName returns the identifier of the given filter kind, or an empty string for
// an out-of-range value.
func FilterName(kind FilterKind) string {
  if kind < 0 || kind >= FILTER_COUNT_ { return "" }
  return filterNames[kind]
}

// FilterByName looks up a filter kind by its identifier. The match is
// case-insensitive. Returns false if no such filter exists.
func FilterByName(name string) (FilterKind, bool) {
  name = strings.ToLower(strings.TrimSpace(name))
  for kind, n := range filterNames {
    if n == name { return FilterKind(kind), true }
  }
  return FILTER_NONE, false
}

// FilterImplemented returns whether the given kind has a registered handler.
// FILTER_NONE counts as implemented.
func FilterImplemented(kind FilterKind) bool {
  if kind < 0 || kind >= FILTER_COUNT_ { return false }
  return kind == FILTER_NONE || filterTable[kind] != nil
}
