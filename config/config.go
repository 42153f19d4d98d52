/*
Package config translates filter job configurations from JSON structures into a preprocessed map structure
for quick access.

camfx is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package config

import (
  "bytes"
  "errors"
  "io"
  "strconv"

  "github.com/InfinityTools/go-logging"
)


// Available job configuration section names
const (
  SECTION_OUTPUT    = "output"
  SECTION_INPUT     = "input"
  SECTION_SETTINGS  = "settings"
  SECTION_FILTERS   = "filters"
)

// Available job configuration key names
const (
  KEY_OUTPUT_PATH         = "output_path"
  KEY_OUTPUT_FORMAT       = "output_format"
  KEY_INPUT_STATIC        = "input_static"
  KEY_INPUT_PATH          = "input_path"
  KEY_INPUT_PREFIX        = "input_prefix"
  KEY_INPUT_SUFFIX_START  = "input_suffix_start"
  KEY_INPUT_SUFFIX_END    = "input_suffix_end"
  KEY_INPUT_SUFFIX_LEN    = "input_suffix_len"
  KEY_INPUT_EXT           = "input_ext"
  KEY_INPUT_FILES         = "input_files"
  KEY_FACE                = "face"
  KEY_MASK                = "mask"
  KEY_FRAME_START         = "frame_start"
  KEY_CHANNELS            = "channels"
  KEY_FILTERS             = "filter"
)

// JobMap maps key => value associations.
type JobMap map[string]Variant

// JobConfig maps section => key => value.
type JobConfig map[string]JobMap


// ImportConfig constructs a JobConfig object from configuration data found in the source wrapped by the Reader object.
func ImportConfig(r io.Reader) (config *JobConfig, err error) {
  // reading configuration data into byte buffer
  logging.Logln("Loading configuration data")
  buffer := make([]byte, 1024)
  totalRead := 0
  for {
    bytesRead, errRead := r.Read(buffer[totalRead:])
    totalRead += bytesRead
    if errRead != nil {
      if errRead != io.EOF { err = errRead; return }
      break
    }
    if totalRead == len(buffer) {
      buffer = append(buffer, make([]byte, len(buffer))...)
    }
  }
  if totalRead < len(buffer) {
    buffer = buffer[:totalRead]
  }

  // a job definition is a single JSON object
  whiteSpace := []byte{0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x20}
  ofs := 0
  for ofs < len(buffer) && bytes.IndexByte(whiteSpace, buffer[ofs]) >= 0 { ofs++ }
  if ofs == len(buffer) || buffer[ofs] != '{' {
    err = errors.New("Configuration: Unrecognized format")
    return
  }

  config, err = importJson(buffer)
  if err != nil { return }

  logging.Logln("Finished loading configuration data")
  return
}

// GetConfigValueBool returns the boolean value assigned to the specified section => key location. ok returns whether
// the value is available.
func (job *JobConfig) GetConfigValueBool(section, key string) (retVal bool, ok bool) {
  value, ok := (*job)[section][key].(VarBool)
  if !ok { return }
  retVal = value.ToBool()
  return
}

// GetConfigValueInt returns the numeric value assigned to the specified section => key location. ok returns whether
// the value is available.
func (job *JobConfig) GetConfigValueInt(section, key string) (retVal int64, ok bool) {
  value, ok := (*job)[section][key].(VarInt)
  if !ok { return }
  retVal = value.ToInt()
  return
}

// GetConfigValueText returns the string value assigned to the specified section => key location. ok returns whether
// the value is available.
func (job *JobConfig) GetConfigValueText(section, key string) (retVal string, ok bool) {
  value, ok := (*job)[section][key].(Variant)
  if !ok { return }
  retVal = value.ToString()
  return
}

// GetConfigValueFloatSeq returns the array of floating point values assigned to the specified section => key location.
// ok returns whether the value is available.
func (job *JobConfig) GetConfigValueFloatSeq(section, key string) (retVal []float64, ok bool) {
  value, ok := (*job)[section][key].(VarFloatArray)
  if !ok { return }
  retVal = value.ToFloatArray()
  return
}

// GetConfigValueTextSeq returns the array of strings assigned to the specified section => key location. ok returns
// whether the value is available.
func (job *JobConfig) GetConfigValueTextSeq(section, key string) (retVal []string, ok bool) {
  value, ok := (*job)[section][key].(VarTextArray)
  if !ok { return }
  retVal = value.ToTextArray()
  return
}

// GetConfigFilterLength returns the number of available filter definitions.
func (job *JobConfig) GetConfigFilterLength() int {
  return len((*job)[SECTION_FILTERS])
}

// GetConfigFilterName returns the name of the filter at the specified index. ok returns whether the filter is available.
func (job *JobConfig) GetConfigFilterName(index int) (retVal string, ok bool) {
  var option VarFilterMap
  if option, ok = (*job)[SECTION_FILTERS][strconv.Itoa(index)].(VarFilterMap); ok {
    retVal = option.GetName()
  }
  return
}

// GetConfigFilterOptions returns the options of the specified filter as multi-array. First item of each entry contains
// key, second item contains value. ok returns whether the filter is available.
func (job *JobConfig) GetConfigFilterOptions(index int) (retVal [][]string, ok bool) {
  var filter VarFilterMap
  if filter, ok = (*job)[SECTION_FILTERS][strconv.Itoa(index)].(VarFilterMap); ok {
    retVal = filter.GetOptions()
  } else {
    retVal = make([][]string, 0)
  }
  return
}
