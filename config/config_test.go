package config

import (
  "strings"
  "testing"
)

const sampleJob = `
{
  "output": { "file": "out/filtered.png", "format": "PNG" },
  "input": { "static": true, "files": [" webcam.png ", "frame2.png"] },
  "settings": {
    "face": [120, 80, 200, 240],
    "mask": "masks/glasses.png",
    "framestart": 30,
    "channels": 3
  },
  "filters": [
    { "name": "sepia" },
    { "name": "bulge", "options": [ { "key": "strength", "value": "0.5" } ] }
  ]
}`

func TestImportConfig(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(sampleJob))
  if err != nil { t.Fatalf("ImportConfig: %v", err) }

  if s, ok := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_PATH); !ok || s != "out/filtered.png" {
    t.Errorf("output path = (%q, %v)", s, ok)
  }
  if s, ok := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_FORMAT); !ok || s != "png" {
    t.Errorf("output format = (%q, %v)", s, ok)
  }
  if b, ok := cfg.GetConfigValueBool(SECTION_INPUT, KEY_INPUT_STATIC); !ok || !b {
    t.Errorf("input static = (%v, %v)", b, ok)
  }
  files, ok := cfg.GetConfigValueTextSeq(SECTION_INPUT, KEY_INPUT_FILES)
  if !ok || len(files) != 2 || files[0] != "webcam.png" {
    t.Errorf("input files = (%v, %v)", files, ok)
  }
  face, ok := cfg.GetConfigValueFloatSeq(SECTION_SETTINGS, KEY_FACE)
  if !ok || len(face) != 4 || face[2] != 200 {
    t.Errorf("face = (%v, %v)", face, ok)
  }
  if s, ok := cfg.GetConfigValueText(SECTION_SETTINGS, KEY_MASK); !ok || s != "masks/glasses.png" {
    t.Errorf("mask = (%q, %v)", s, ok)
  }
  if i, ok := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_FRAME_START); !ok || i != 30 {
    t.Errorf("frame start = (%d, %v)", i, ok)
  }
  if i, ok := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_CHANNELS); !ok || i != 3 {
    t.Errorf("channels = (%d, %v)", i, ok)
  }

  if n := cfg.GetConfigFilterLength(); n != 2 {
    t.Fatalf("filter length = %d, want 2", n)
  }
  if name, ok := cfg.GetConfigFilterName(0); !ok || name != "sepia" {
    t.Errorf("filter 0 = (%q, %v)", name, ok)
  }
  opts, ok := cfg.GetConfigFilterOptions(1)
  if !ok || len(opts) != 1 || opts[0][0] != "strength" || opts[0][1] != "0.5" {
    t.Errorf("filter 1 options = (%v, %v)", opts, ok)
  }
}

func TestImportConfigDefaults(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(`{"input": {"static": true, "files": ["in.png"]}}`))
  if err != nil { t.Fatalf("ImportConfig: %v", err) }

  if s, _ := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_PATH); s != "output.png" {
    t.Errorf("default output path = %q", s)
  }
  if i, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_CHANNELS); i != 4 {
    t.Errorf("default channels = %d, want 4", i)
  }
  if i, _ := cfg.GetConfigValueInt(SECTION_SETTINGS, KEY_FRAME_START); i != 0 {
    t.Errorf("default frame start = %d", i)
  }
  face, ok := cfg.GetConfigValueFloatSeq(SECTION_SETTINGS, KEY_FACE)
  if !ok || len(face) != 0 {
    t.Errorf("default face = (%v, %v)", face, ok)
  }
  if n := cfg.GetConfigFilterLength(); n != 0 {
    t.Errorf("default filter length = %d", n)
  }
}

func TestImportConfigRejects(t *testing.T) {
  tests := []struct {
    name  string
    text  string
  }{
    {"not json", "<xml></xml>"},
    {"empty input", ""},
    {"jpeg alias ok but bad format", `{"output": {"format": "tiff"}}`},
    {"face length", `{"settings": {"face": [1, 2, 3]}}`},
    {"face dimensions", `{"settings": {"face": [0, 0, -10, 20]}}`},
    {"negative frame start", `{"settings": {"framestart": -1}}`},
    {"channels", `{"settings": {"channels": 2}}`},
    {"sequence suffix length", `{"input": {"static": false, "filesequence": {"suffixlength": 0}}}`},
  }
  for _, tt := range tests {
    if _, err := ImportConfig(strings.NewReader(tt.text)); err == nil {
      t.Errorf("%s: expected an error", tt.name)
    }
  }
}

func TestImportConfigJpegAlias(t *testing.T) {
  cfg, err := ImportConfig(strings.NewReader(`{"input": {"static": true}, "output": {"format": "jpeg"}}`))
  if err != nil { t.Fatalf("ImportConfig: %v", err) }
  if s, _ := cfg.GetConfigValueText(SECTION_OUTPUT, KEY_OUTPUT_FORMAT); s != "jpg" {
    t.Errorf("format = %q, want \"jpg\"", s)
  }
}

func TestAssembleFilePath(t *testing.T) {
  tests := []struct {
    path, prefix, ext  string
    index, width       int64
    want               string
  }{
    {"frames", "cap", "png", 7, 4, "frames/cap0007.png"},
    {"frames/", "cap", ".png", 7, 4, "frames/cap0007.png"},
    {".", "", "bmp", 12, 1, "./12.bmp"},
    {"out", "f", "gif", -3, 3, "out/f-03.gif"},
  }
  for _, tt := range tests {
    got := AssembleFilePath(tt.path, tt.prefix, tt.ext, tt.index, tt.width)
    if got != tt.want {
      t.Errorf("AssembleFilePath(%q, %q, %q, %d, %d) = %q, want %q",
               tt.path, tt.prefix, tt.ext, tt.index, tt.width, got, tt.want)
    }
  }
}
