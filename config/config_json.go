package config
// Parse functionality for JSON structures.

import (
  "encoding/json"
  "fmt"
  "strconv"
  "strings"

  "github.com/InfinityTools/go-logging"
)

// Used internally by json.Unmarshal to store output settings.
type JsonOutput struct {
  File          string
  Format        string
}

// Used internally by json.Unmarshal to store file input sequences.
type JsonInputSequence struct {
  Path          string
  Prefix        string
  SuffixStart   int64
  SuffixEnd     int64
  SuffixLength  int64
  Ext           string
}

// Used internally by json.Unmarshal to store input settings.
type JsonInput struct {
  Static        bool
  Files         []string
  FileSequence  JsonInputSequence
}

// Used internally by json.Unmarshal to store general job settings.
type JsonSettings struct {
  Face          []float64
  Mask          string
  FrameStart    int64
  Channels      int64
}

// Used internally by json.Unmarshal to store filter settings.
type JsonFilterOptions struct {
  Key           string
  Value         string
}

// Used internally by json.Unmarshal to store filter options.
type JsonFilter struct {
  Name          string
  Options       []JsonFilterOptions
}

// Used internally by json.Unmarshal to store configuration data from JSON job definitions.
type JsonJob struct {
  Output        JsonOutput
  Input         JsonInput
  Settings      JsonSettings
  Filters       []JsonFilter
}

// Used internally. Parses JSON source into intermediate structures.
func importJson(buffer []byte) (config *JobConfig, err error) {
  jsonJob := JsonJob{}
  err = json.Unmarshal(buffer, &jsonJob)
  if err != nil { return }

  config, err = processConfigJson(&jsonJob)
  return
}


// Used internally. Converts parsed JSON input into useful data types, taking defaults into account for omitted input.
func processConfigJson(input *JsonJob) (config *JobConfig, err error) {
  job := make(JobConfig)
  config = &job
  logging.Logln("Processing output settings")
  err = processConfigJsonOutput(input, config)
  if err != nil { return }
  logging.Logln("Processing input settings")
  err = processConfigJsonInput(input, config)
  if err != nil { return }
  logging.Logln("Processing job settings")
  err = processConfigJsonSettings(input, config)
  if err != nil { return }
  logging.Logln("Processing filter settings")
  err = processConfigJsonFilters(input, config)
  return
}

// Used internally. Process "output" section.
func processConfigJsonOutput(input *JsonJob, config *JobConfig) error {
  (*config)[SECTION_OUTPUT] = make(JobMap)

  var textVal string
  textVal = fixPath(strings.TrimSpace(input.Output.File))
  if len(textVal) == 0 { textVal = "output.png" }
  for len(textVal) > 1 && textVal[len(textVal)-1:] == "/" { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_PATH] = Text{textVal}

  textVal = strings.ToLower(strings.TrimSpace(input.Output.Format))
  switch textVal {
    case "", "png", "jpg", "bmp", "gif":
    case "jpeg":
      textVal = "jpg"
    default:
      return fmt.Errorf("Output>Format: Unrecognized output format: %q", textVal)
  }
  (*config)[SECTION_OUTPUT][KEY_OUTPUT_FORMAT] = Text{textVal}

  return nil
}

// Used internally. Process "input" section.
func processConfigJsonInput(input *JsonJob, config *JobConfig) error {
  (*config)[SECTION_INPUT] = make(JobMap)

  static := input.Input.Static
  (*config)[SECTION_INPUT][KEY_INPUT_STATIC] = Bool{static}

  size := len(input.Input.Files)
  textSeq := make([]string, size)
  for i := 0; i < size; i++ {
    textSeq[i] = strings.TrimSpace(input.Input.Files[i])
  }
  (*config)[SECTION_INPUT][KEY_INPUT_FILES] = TextArray{textSeq}

  var textVal string
  textVal = fixPath(strings.TrimSpace(input.Input.FileSequence.Path))
  if len(textVal) == 0 { textVal = "." }
  for len(textVal) > 1 && (textVal[len(textVal)-1:] == "/" || textVal[len(textVal)-1:] == "\\") { textVal = textVal[:len(textVal)-1] }
  (*config)[SECTION_INPUT][KEY_INPUT_PATH] = Text{textVal}

  textVal = strings.TrimSpace(input.Input.FileSequence.Prefix)
  (*config)[SECTION_INPUT][KEY_INPUT_PREFIX] = Text{textVal}

  var intVal int64
  intVal = input.Input.FileSequence.SuffixStart
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_START] = Int{intVal}

  intVal = input.Input.FileSequence.SuffixEnd
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_END] = Int{intVal}

  intVal = input.Input.FileSequence.SuffixLength
  if !static && (intVal < 1 || intVal > 16) { return fmt.Errorf("Input>FileSequence>SuffixLength not in range [1,16]: %d", intVal) }
  (*config)[SECTION_INPUT][KEY_INPUT_SUFFIX_LEN] = Int{intVal}

  textVal = strings.TrimSpace(input.Input.FileSequence.Ext)
  for len(textVal) > 0 && textVal[0:1] == "." { textVal = textVal[1:] }
  (*config)[SECTION_INPUT][KEY_INPUT_EXT] = Text{textVal}

  return nil
}

// Used internally. Process "settings" section.
func processConfigJsonSettings(input *JsonJob, config *JobConfig) error {
  (*config)[SECTION_SETTINGS] = make(JobMap)

  face := input.Settings.Face
  if len(face) != 0 && len(face) != 4 {
    return fmt.Errorf("Settings>Face: Need 4 values (x, y, width, height), have %d", len(face))
  }
  if len(face) == 4 && (face[2] <= 0.0 || face[3] <= 0.0) {
    return fmt.Errorf("Settings>Face: Invalid face dimensions: %vx%v", face[2], face[3])
  }
  (*config)[SECTION_SETTINGS][KEY_FACE] = FloatArray{face}

  textVal := fixPath(strings.TrimSpace(input.Settings.Mask))
  (*config)[SECTION_SETTINGS][KEY_MASK] = Text{textVal}

  intVal := input.Settings.FrameStart
  if intVal < 0 { return fmt.Errorf("Settings>FrameStart must not be negative: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_FRAME_START] = Int{intVal}

  intVal = input.Settings.Channels
  if intVal == 0 { intVal = 4 }
  if intVal != 3 && intVal != 4 { return fmt.Errorf("Settings>Channels must be 3 or 4: %d", intVal) }
  (*config)[SECTION_SETTINGS][KEY_CHANNELS] = Int{intVal}

  return nil
}

func processConfigJsonFilters(input *JsonJob, config *JobConfig) error {
  (*config)[SECTION_FILTERS] = make(JobMap)

  // process filters sequentially
  for index, filter := range input.Filters {
    f := Filter{ Name: filter.Name, Options: make(map[string]string) }
    for _, option := range filter.Options {
      f.Options[option.Key] = option.Value
    }
    (*config)[SECTION_FILTERS][strconv.Itoa(index)] = f
  }

  return nil
}
