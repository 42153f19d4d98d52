package main
// Handles command line arguments for camfx.

import (
  "errors"
  "fmt"
  "os"
  "strconv"
  "strings"

  "github.com/InfinityTools/go-cmdargs"
  "github.com/InfinityTools/go-logging"
)

const (
  CMDOPT_HELP = "help"
  CMDOPT_VERSION = "version"
  CMDOPT_VERBOSE = "verbose"
  CMDOPT_SILENT = "silent"
  CMDOPT_LOG_STYLE = "log-style"
  CMDOPT_THREADED = "threaded"
  CMDOPT_NO_THREADED = "no-threaded"
  CMDOPT_LIST_FILTERS = "list-filters"
  CMDOPT_OUTPUT = "output"
  CMDOPT_FORMAT = "format"
  CMDOPT_FACE = "face"
  CMDOPT_MASK = "mask"
  CMDOPT_FRAME = "frame"
  CMDOPT_FILTER = "filter"
)

type OptBool struct { value bool; set bool }
type OptInt struct { value int; set bool }
type OptText struct { value string; set bool }
type OptFloatSeq struct { value []float64; set bool }

type CmdOptions struct {
  help          OptBool
  version       OptBool
  verbose       OptBool
  logStyle      OptBool
  threaded      OptBool
  listFilters   OptBool
  output        OptText
  format        OptText
  face          OptFloatSeq
  mask          OptText
  frame         OptInt
  filters       []OptText
  optionsLength int
  argSelf       string
  argsExtra     []string
}

var cmdOptions  CmdOptions


func loadArgs(args []string) error {
  params := cmdargs.Create()
  params.AddParameter(CMDOPT_HELP, nil, 0)
  params.AddParameter(CMDOPT_VERSION, nil, 0)
  params.AddParameter(CMDOPT_VERBOSE, nil, 0)
  params.AddParameter(CMDOPT_SILENT, nil, 0)
  params.AddParameter(CMDOPT_LOG_STYLE, nil, 0)
  params.AddParameter(CMDOPT_THREADED, nil, 0)
  params.AddParameter(CMDOPT_NO_THREADED, nil, 0)
  params.AddParameter(CMDOPT_LIST_FILTERS, nil, 0)
  params.AddParameter(CMDOPT_OUTPUT, nil, 1)
  params.AddParameter(CMDOPT_FORMAT, nil, 1)
  params.AddParameter(CMDOPT_FACE, nil, 1)
  params.AddParameter(CMDOPT_MASK, nil, 1)
  params.AddParameter(CMDOPT_FRAME, nil, 1)
  params.AddParameter(CMDOPT_FILTER, nil, 1)

  err := params.Evaluate(args)
  if err != nil { return err }

  // validating extra arguments
  cmdOptions.argSelf = params.GetArgSelf()
  cmdOptions.argsExtra = make([]string, 0)
  for i := 0; i < params.GetArgExtraLength(); i++ {
    s := params.GetArgExtra(i).ToString()
    if s == "-" {
      // Add Stdin as is
      cmdOptions.argsExtra = append(cmdOptions.argsExtra, s)
    } else {
      // Expanding wildcard
      expanded := params.GetExpandedArgExtra(i)
      if len(expanded) == 0 { expanded = []string{s} }  // falling back to check directly
      for _, name := range expanded {
        fi, err := os.Stat(name)
        if err != nil { return fmt.Errorf("Configuration file at %d: %v", len(cmdOptions.argsExtra), err) }
        if !fi.Mode().IsRegular() { return fmt.Errorf("Configuration file does not exist: %q", name) }
        cmdOptions.argsExtra = append(cmdOptions.argsExtra, name)
      }
    }
  }

  // validating options
  cmdOptions.filters = make([]OptText, 0)
  cmdOptions.optionsLength = 0
  for idx := 0; idx < params.GetArgLength(); idx++ {
    arg, err := params.GetArgAt(idx)
    if err != nil {
      logging.Warnf("Could not parse command line option at index %d. Skipping...\n", idx)
      continue
    }
    switch arg.Name {
      case CMDOPT_HELP:
        if !cmdOptions.help.set { cmdOptions.optionsLength++ }
        cmdOptions.help = OptBool{true, true}
        return nil
      case CMDOPT_VERSION:
        if !cmdOptions.version.set { cmdOptions.optionsLength++ }
        cmdOptions.version = OptBool{true, true}
        return nil
      case CMDOPT_LIST_FILTERS:
        if !cmdOptions.listFilters.set { cmdOptions.optionsLength++ }
        cmdOptions.listFilters = OptBool{true, true}
        return nil
      case CMDOPT_VERBOSE:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{true, true}
      case CMDOPT_SILENT:
        if !cmdOptions.verbose.set { cmdOptions.optionsLength++ }
        cmdOptions.verbose = OptBool{false, true}
      case CMDOPT_LOG_STYLE:
        if !cmdOptions.logStyle.set { cmdOptions.optionsLength++ }
        cmdOptions.logStyle = OptBool{true, true}
      case CMDOPT_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{true, true}
      case CMDOPT_NO_THREADED:
        if !cmdOptions.threaded.set { cmdOptions.optionsLength++ }
        cmdOptions.threaded = OptBool{false, true}
      case CMDOPT_OUTPUT:
        if !cmdOptions.output.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := arg.Arguments[0].ToString()
          if len(s) == 0 { return fmt.Errorf("Option %q: No output file specified", arg.Name) }
          cmdOptions.output = OptText{s, true}
        }
      case CMDOPT_FORMAT:
        if !cmdOptions.format.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          s := strings.ToLower(arg.Arguments[0].ToString())
          switch s {
            case "png", "jpg", "jpeg", "bmp", "gif":
              if s == "jpeg" { s = "jpg" }
            default:
              return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
          cmdOptions.format = OptText{s, true}
        }
      case CMDOPT_FACE:
        if !cmdOptions.face.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          seq, err := parseFaceValues(arg.Arguments[0].ToString())
          if err != nil { return fmt.Errorf("Option %q: %v", arg.Name, err) }
          cmdOptions.face = OptFloatSeq{seq, true}
        }
      case CMDOPT_MASK:
        if !cmdOptions.mask.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          cmdOptions.mask = OptText{arg.Arguments[0].ToString(), true}
        }
      case CMDOPT_FRAME:
        if !cmdOptions.frame.set { cmdOptions.optionsLength++ }
        if len(arg.Arguments) > 0 {
          if i, x := arg.Arguments[0].Int(); x && i >= 0 {
            cmdOptions.frame = OptInt{int(i), true}
          } else {
            return fmt.Errorf("Option %q: Invalid argument %v", arg.Name, arg.Arguments[0])
          }
        }
      case CMDOPT_FILTER:
        if len(arg.Arguments) > 0 {
          cmdOptions.optionsLength++
          cmdOptions.filters = append(cmdOptions.filters, OptText{arg.Arguments[0].ToString(), true})
        }
      default:
        return fmt.Errorf("Unrecognized option: %q", arg.Name)
    }
  }

  // Invalid combination: Options, but no config files
  if len(cmdOptions.argsExtra) == 0 && cmdOptions.optionsLength > 0 {
    return errors.New("No configuration file specified")
  }

  return nil
}


// Used internally. Parses a comma-separated "x,y,width,height" quadruple.
func parseFaceValues(s string) ([]float64, error) {
  items := strings.Split(s, ",")
  if len(items) != 4 { return nil, fmt.Errorf("Need 4 values (x,y,width,height), have %d", len(items)) }
  seq := make([]float64, len(items))
  for idx, item := range items {
    f, err := strconv.ParseFloat(strings.TrimSpace(item), 64)
    if err != nil { return nil, fmt.Errorf("Invalid face value %q", item) }
    seq[idx] = f
  }
  if seq[2] <= 0.0 || seq[3] <= 0.0 { return nil, errors.New("Face width and height must be positive") }
  return seq, nil
}


func argsExtraLength() int {
  if cmdOptions.argsExtra == nil { return 0 }
  return len(cmdOptions.argsExtra)
}

func argsExtra(index int) string {
  if cmdOptions.argsExtra == nil { return "" }
  if index < 0 || index >= len(cmdOptions.argsExtra) { return "" }
  return cmdOptions.argsExtra[index]
}

func argsHelp() (bool, bool) {
  return cmdOptions.help.value, cmdOptions.help.set
}

func argsVersion() (bool, bool) {
  return cmdOptions.version.value, cmdOptions.version.set
}

func argsListFilters() (bool, bool) {
  return cmdOptions.listFilters.value, cmdOptions.listFilters.set
}

func argsVerbose() (bool, bool) {
  return cmdOptions.verbose.value, cmdOptions.verbose.set
}

func argsLogStyle() (bool, bool) {
  return cmdOptions.logStyle.value, cmdOptions.logStyle.set
}

func argsThreaded() (bool, bool) {
  return cmdOptions.threaded.value, cmdOptions.threaded.set
}

func argsOutput() (string, bool) {
  return cmdOptions.output.value, cmdOptions.output.set
}

func argsFormat() (string, bool) {
  return cmdOptions.format.value, cmdOptions.format.set
}

func argsFace() ([]float64, bool) {
  return cmdOptions.face.value, cmdOptions.face.set
}

func argsMask() (string, bool) {
  return cmdOptions.mask.value, cmdOptions.mask.set
}

func argsFrame() (int, bool) {
  return cmdOptions.frame.value, cmdOptions.frame.set
}

func argsFilters() ([]string, bool) {
  retVal := make([]string, len(cmdOptions.filters))
  for idx, v := range cmdOptions.filters {
    retVal[idx] = v.value
  }
  return retVal, len(cmdOptions.filters) > 0
}
