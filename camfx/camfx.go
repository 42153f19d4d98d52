/*
camfx is a command line tool for applying real-time style image filters to frames from scripts.

camfx is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package main

import (
  "errors"
  "fmt"
  "io"
  "os"
  "path/filepath"
  "runtime"
  "strconv"
  "strings"
  "sync"

  "github.com/InfinityTools/camfx"
  "github.com/InfinityTools/camfx/config"
  "github.com/InfinityTools/camfx/fx"
  "github.com/InfinityTools/camfx/graphics"
  "github.com/InfinityTools/go-logging"
  "github.com/pbenner/threadpool"
)


const TOOL_NAME = "camfx"

var multithreaded bool = runtime.NumCPU() > 1


func main() {
  err := loadArgs(os.Args)
  if err != nil {
    fmt.Printf("%v\n", err)
    os.Exit(1)
  }

  // Setting global options
  if b, x := argsVerbose(); x {
    if b {
      logging.SetVerbosity(logging.LOG)
    } else {
      logging.SetVerbosity(logging.ERROR)
    }
  }
  logging.SetPrefixCaller(false)
  if b, x := argsLogStyle(); x && b {
    logging.SetPrefixTimestamp(true)
    logging.SetPrefixLevel(true)
  } else {
    logging.SetPrefixTimestamp(false)
    logging.SetPrefixLevel(false)
  }
  if b, x := argsThreaded(); x { multithreaded = b }

  if _, x := argsVersion(); x {
    camfx.PrintVersion(TOOL_NAME)
  } else if _, x := argsListFilters(); x {
    printFilters()
  } else if _, x := argsHelp(); x {
    printHelp()
  } else if argsExtraLength() == 0 {
    printHelp()
  } else {
    logging.Infoln("Starting filter processing")
    err = process()
    if err != nil {
      logging.Errorf("%v\n", err)
      os.Exit(1)
    }
    logging.Infoln("Filter processing finished successfully.")
  }
}


func process() error {
  length := argsExtraLength()
  for idx := 0; idx < length; idx++ {
    configFile := argsExtra(idx)
    if len(configFile) == 0 { continue }  // should not happen
    if configFile == "-" {
      logging.Infof("Starting job %d: (standard input)\n", idx)
    } else {
      logging.Infof("Starting job %d: %s\n", idx, configFile)
    }
    err := processJob(configFile)
    if err != nil { return fmt.Errorf("Job %d: %v", idx, err) }
    logging.Infof("Finished job %d\n", idx)
  }

  return nil
}


func processJob(configFile string) error {
  // consistency checks
  isStdIn := configFile == "-"
  if !isStdIn {
    fi, err := os.Stat(configFile)
    if err != nil { return err }
    if !fi.Mode().IsRegular() { return fmt.Errorf("File not found: %q", configFile) }
  }

  var r io.Reader = nil
  if isStdIn {
    r = os.Stdin
  } else {
    fin, err := os.Open(configFile)
    if err != nil { return fmt.Errorf("Cannot open %q: %v", configFile, err) }
    defer fin.Close()
    r = fin
  }
  cfg, err := config.ImportConfig(r)
  if err != nil { return fmt.Errorf("Error parsing configuration: %v", err) }

  return runJob(cfg)
}


// Fully assembled state of a single filter job.
type job struct {
  inputFiles  []string
  outputPath  string
  format      int
  channels    int
  frameStart  int
  face        *fx.FaceRect
  mask        []byte
  maskWidth   int
  maskHeight  int
  chain       []fx.FilterKind
}


func runJob(cfg *config.JobConfig) error {
  if cfg == nil { return errors.New("No configuration data found") }

  j := job{}
  if err := jobSetupOutput(cfg, &j); err != nil { return err }
  if err := jobSetupInput(cfg, &j); err != nil { return err }
  if err := jobSetupSettings(cfg, &j); err != nil { return err }
  if err := jobSetupFilters(cfg, &j); err != nil { return err }

  // printing a summary of current job options (INFO level)
  var sb strings.Builder
  sb.WriteString("Options: ")
  sb.WriteString(fmt.Sprintf("verbose: %v", logging.GetVerbosity() < logging.INFO))
  sb.WriteString(fmt.Sprintf(", threading: %v", multithreaded))
  sb.WriteString(fmt.Sprintf(", inputs: %d", len(j.inputFiles)))
  sb.WriteString(fmt.Sprintf(", output: %q", j.outputPath))
  sb.WriteString(fmt.Sprintf(", channels: %d", j.channels))
  sb.WriteString(fmt.Sprintf(", face: %v", j.face != nil))
  sb.WriteString(fmt.Sprintf(", mask: %v", j.mask != nil))
  sb.WriteString(fmt.Sprintf(", filters: %d", len(j.chain)))
  logging.Infoln(sb.String())

  // importing input frames
  logging.Logln("Importing input graphics files")
  frames := make([]*fx.Buffer, 0)
  delays := make([]int, 0)
  for _, fileName := range j.inputFiles {
    logging.Logf("Importing %s\n", fileName)
    g, err := loadGraphics(fileName)
    if err != nil { return err }
    for idx := 0; idx < g.GetImageLength(); idx++ {
      buf := g.GetBuffer(idx, j.channels)
      if g.Error() != nil { return fmt.Errorf("Input file %q, frame %d: %v", fileName, idx, g.Error()) }
      frames = append(frames, buf)
      delays = append(delays, g.GetDelay(idx))
    }
  }
  if len(frames) == 0 { return errors.New("No input frames found") }
  logging.Logln("Finished importing input graphics files")

  // applying filter chain
  if err := jobApplyFilters(&j, frames); err != nil { return err }

  // exporting
  if dir := filepath.Dir(j.outputPath); !directoryExists(dir) {
    err := os.MkdirAll(dir, 0755)
    if err != nil { return fmt.Errorf("Cannot create output path %q: %v", dir, err) }
  }
  if len(frames) > 1 && j.format != graphics.TYPE_GIF {
    logging.Warnf("Output format supports only a single frame. Skipping %d remaining frames.\n", len(frames) - 1)
    frames = frames[:1]
  }

  logging.Logln("Exporting output file")
  out := graphics.CreateNew()
  for idx, buf := range frames {
    out.AddFrame(graphics.FromBuffer(buf), delays[idx])
    buf.Release()
  }
  fout, err := os.Create(j.outputPath)
  if err != nil { return fmt.Errorf("Cannot create %q: %v", j.outputPath, err) }
  defer fout.Close()
  out.Export(fout, j.format)
  if out.Error() != nil { return out.Error() }
  logging.Logln("Finished exporting output file")

  return nil
}


// Used internally. Resolves output path and format.
func jobSetupOutput(cfg *config.JobConfig, j *job) error {
  j.outputPath, _ = cfg.GetConfigValueText(config.SECTION_OUTPUT, config.KEY_OUTPUT_PATH)
  if s, x := argsOutput(); x { j.outputPath = s }

  format, _ := cfg.GetConfigValueText(config.SECTION_OUTPUT, config.KEY_OUTPUT_FORMAT)
  if s, x := argsFormat(); x { format = s }
  if len(format) == 0 {
    // falling back to the output file extension
    format = strings.TrimPrefix(strings.ToLower(filepath.Ext(j.outputPath)), ".")
    if format == "jpeg" { format = "jpg" }
  }
  switch format {
    case "bmp":
      j.format = graphics.TYPE_BMP
    case "gif":
      j.format = graphics.TYPE_GIF
    case "jpg":
      j.format = graphics.TYPE_JPG
    case "", "png":
      j.format = graphics.TYPE_PNG
    default:
      return fmt.Errorf("Unsupported output format: %q", format)
  }
  return nil
}


// Used internally. Assembles the list of input files from a static list or a generated
// file sequence.
func jobSetupInput(cfg *config.JobConfig, j *job) error {
  useStatic, _ := cfg.GetConfigValueBool(config.SECTION_INPUT, config.KEY_INPUT_STATIC)
  j.inputFiles = make([]string, 0)

  if useStatic {
    entries, _ := cfg.GetConfigValueTextSeq(config.SECTION_INPUT, config.KEY_INPUT_FILES)
    if len(entries) == 0 { return errors.New("No input files defined") }
    for eidx, entry := range entries {
      if !fileExists(entry) { return fmt.Errorf("Input file %d does not exist: %q", eidx, entry) }
      j.inputFiles = append(j.inputFiles, entry)
    }
  } else {
    path, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_PATH)
    prefix, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_PREFIX)
    ext, _ := cfg.GetConfigValueText(config.SECTION_INPUT, config.KEY_INPUT_EXT)
    suffixStart, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_START)
    suffixEnd, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_END)
    suffixLen, _ := cfg.GetConfigValueInt(config.SECTION_INPUT, config.KEY_INPUT_SUFFIX_LEN)

    // sequence may be incremented or decremented
    var inc int64
    if suffixEnd < suffixStart { inc = -1; suffixEnd-- } else { inc = 1; suffixEnd++ }
    for index := suffixStart; index != suffixEnd; index += inc {
      fileName := config.AssembleFilePath(path, prefix, ext, index, suffixLen)
      if !fileExists(fileName) { return fmt.Errorf("Input file does not exist: %q", fileName) }
      j.inputFiles = append(j.inputFiles, fileName)
    }
  }

  return nil
}


// Used internally. Resolves face rectangle, overlay mask and frame counter options.
func jobSetupSettings(cfg *config.JobConfig, j *job) error {
  channels, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_CHANNELS)
  j.channels = int(channels)

  frame, _ := cfg.GetConfigValueInt(config.SECTION_SETTINGS, config.KEY_FRAME_START)
  if i, x := argsFrame(); x { frame = int64(i) }
  j.frameStart = int(frame)

  face, _ := cfg.GetConfigValueFloatSeq(config.SECTION_SETTINGS, config.KEY_FACE)
  if seq, x := argsFace(); x { face = seq }
  if len(face) == 4 {
    j.face = &fx.FaceRect{X: face[0], Y: face[1], Width: face[2], Height: face[3], Confidence: 1.0}
  }

  maskFile, _ := cfg.GetConfigValueText(config.SECTION_SETTINGS, config.KEY_MASK)
  if s, x := argsMask(); x { maskFile = s }
  if len(maskFile) > 0 {
    if j.face == nil { return errors.New("Overlay mask requires a face rectangle") }
    g, err := loadGraphics(maskFile)
    if err != nil { return fmt.Errorf("Overlay mask: %v", err) }
    j.mask, j.maskWidth, j.maskHeight = g.GetMask(0)
    if g.Error() != nil { return fmt.Errorf("Overlay mask: %v", g.Error()) }
  }

  return nil
}


// Used internally. Resolves the filter chain from configuration and command line.
func jobSetupFilters(cfg *config.JobConfig, j *job) error {
  names := make([]string, 0)
  numFilters := cfg.GetConfigFilterLength()
  for idx := 0; idx < numFilters; idx++ {
    name, ok := cfg.GetConfigFilterName(idx)
    if !ok { return fmt.Errorf("Empty filter at index=%d", idx) }
    if options, ok := cfg.GetConfigFilterOptions(idx); ok {
      for _, option := range options {
        if len(option) > 0 {
          logging.Warnf("Filter %q: Ignoring unsupported option %q\n", name, option[0])
        }
      }
    }
    names = append(names, name)
  }

  // command line filters replace the configured chain
  if overrides, x := argsFilters(); x {
    logging.Logf("Overriding filter chain from command line: %v\n", overrides)
    names = overrides
  }

  j.chain = make([]fx.FilterKind, 0, len(names))
  for idx, name := range names {
    kind, err := resolveFilter(name)
    if err != nil { return fmt.Errorf("Filter at index=%d: %v", idx, err) }
    j.chain = append(j.chain, kind)
  }

  return nil
}


// Used internally. Looks up a filter by name or ordinal value.
func resolveFilter(name string) (fx.FilterKind, error) {
  kind, ok := fx.FilterByName(name)
  if !ok {
    // ordinal value?
    i, err := strconv.Atoi(strings.TrimSpace(name))
    if err != nil || i < 0 || i >= fx.FilterCount() {
      return fx.FILTER_NONE, fmt.Errorf("Unrecognized filter: %q", name)
    }
    kind = fx.FilterKind(i)
  }
  if !fx.FilterImplemented(kind) {
    return fx.FILTER_NONE, fmt.Errorf("Filter is not implemented: %q", fx.FilterName(kind))
  }
  return kind, nil
}


// Used internally. Applies the filter chain to all frames, in parallel when enabled.
func jobApplyFilters(j *job, frames []*fx.Buffer) error {
  if len(j.chain) == 0 && j.mask == nil { return nil }

  msg := "Applying filters"
  logging.Log(msg)
  var err error = nil
  if multithreaded && len(frames) > 1 {
    // Multi-threaded operation
    numThreads := runtime.NumCPU()
    pool := threadpool.New(numThreads, len(frames))
    g := pool.NewJobGroup()
    var m sync.Mutex
    progressIdx := 0
    for frameIdx, frame := range frames {
      idx := frameIdx
      frm := frame
      err = pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
        if erf() != nil { return nil }
        if err := filterFrame(j, frm, idx); err != nil { return err }
        func() {
          m.Lock()
          defer m.Unlock()
          logging.LogProgressDot(progressIdx, len(frames), 79 - len(msg))
          progressIdx++
        }()
        return nil
      })
      if err != nil { break }
    }
    if err2 := pool.Wait(g); err2 != nil && err == nil { err = err2 }
  } else {
    // Single-threaded operation
    for idx, frame := range frames {
      err = filterFrame(j, frame, idx)
      if err != nil { break }
      logging.LogProgressDot(idx, len(frames), 79 - len(msg))
    }
  }
  logging.OverridePrefix(false, false, false).Logln("")
  if err != nil { return err }
  logging.Log("Finished applying filters")

  return nil
}


// Used internally. Runs the filter chain and the optional overlay mask on one frame.
func filterFrame(j *job, frame *fx.Buffer, frameIdx int) error {
  frameCount := j.frameStart + frameIdx
  for _, kind := range j.chain {
    if err := fx.Apply(frame, kind, j.face, frameCount); err != nil {
      return fmt.Errorf("Filter %q at frame %d: %v", fx.FilterName(kind), frameIdx, err)
    }
  }
  if j.mask != nil {
    if err := fx.ApplyFaceMask(frame, j.face, j.mask, j.maskWidth, j.maskHeight); err != nil {
      return fmt.Errorf("Overlay mask at frame %d: %v", frameIdx, err)
    }
  }
  return nil
}


// Loads a graphics file from the given path.
func loadGraphics(fileName string) (*graphics.Graphics, error) {
  fin, err := os.Open(fileName)
  if err != nil { return nil, fmt.Errorf("Could not open %q: %v", fileName, err) }
  defer fin.Close()

  retVal := graphics.Import(fin)
  return retVal, retVal.Error()
}


func printFilters() {
  fmt.Println("Available filters:")
  for kind := fx.FilterKind(0); int(kind) < fx.FilterCount(); kind++ {
    state := ""
    if !fx.FilterImplemented(kind) { state = "  (not implemented)" }
    fmt.Printf("  %2d  %s%s\n", int(kind), fx.FilterName(kind), state)
  }
}


func printHelp() {
  fmt.Printf("Usage: %s [options] configfile [configfile2 ...]\n", os.Args[0])
  const helpText = "Applies filter chains to image frames based on settings defined in configuration\n" +
                   "files.\n" +
                   "\n" +
                   "Options:\n" +
                   "  --verbose                 Show additional log messages during the filter\n" +
                   "                            process.\n" +
                   "  --silent                  Suppress any log messages during the filter\n" +
                   "                            process except for errors.\n" +
                   "  --log-style               Print log messages in log style, complete with\n" +
                   "                            timestamp and log level.\n" +
                   "  --threaded                Enable multithreading for filter processing. May\n" +
                   "                            speed up processing of multi-frame input on\n" +
                   "                            multi-core systems. Enabled by default if multiple\n" +
                   "                            CPU cores are detected.\n" +
                   "  --no-threaded             Disable multithreading for filter processing.\n" +
                   "  --output file             Set the output file. Overrides setting in the\n" +
                   "                            config file.\n" +
                   "  --format type             Set the output format. Can be one of png, jpg, bmp\n" +
                   "                            or gif. Overrides setting in the config file, or\n" +
                   "                            the output file extension.\n" +
                   "  --face x,y,w,h            Set the face rectangle used by face-relative\n" +
                   "                            filters and the overlay mask. Overrides setting in\n" +
                   "                            the config file.\n" +
                   "  --mask file               Set an RGBA overlay image that is blended over the\n" +
                   "                            face region. Requires a face rectangle. Overrides\n" +
                   "                            setting in the config file.\n" +
                   "  --frame index             Set the frame counter base for animated filters.\n" +
                   "                            Overrides setting in the config file.\n" +
                   "  --filter name             Apply the given filter. Accepts a filter name or\n" +
                   "                            ordinal value. Add multiple --filter instances to\n" +
                   "                            build a filter chain. Replaces the filter chain\n" +
                   "                            from the config file.\n" +
                   "  --list-filters            Print the list of available filters and terminate.\n" +
                   "  --help                    Print this help and terminate.\n" +
                   "  --version                 Print version information and terminate.\n" +
                   "\n" +
                   "Note: Use minus sign (-) in place of configfile to read configuration data\n" +
                   "      from standard input."
  fmt.Println(helpText)
}


// Used internally. Returns whether the specified filename points to a regular existing file.
func fileExists(file string) bool {
  if len(file) == 0 { return false }
  fi, err := os.Stat(file)
  if err != nil { return false }
  return fi.Mode().IsRegular()
}

// Used internally. Returns whether the specified path points to an existing directory.
func directoryExists(dir string) bool {
  if len(dir) == 0 { return true }  // special
  fi, err := os.Stat(dir)
  if err != nil { return false }
  return fi.Mode().IsDir()
}
