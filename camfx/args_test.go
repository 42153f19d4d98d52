package main

import (
  "testing"
)

func TestArgsExtraBounds(t *testing.T) {
  defer func() { cmdOptions = CmdOptions{} }()
  cmdOptions.argsExtra = []string{"first.json", "second.json"}
  if got := argsExtra(0); got != "first.json" { t.Errorf("argsExtra(0) = %q", got) }
  if got := argsExtra(1); got != "second.json" { t.Errorf("argsExtra(1) = %q", got) }
  if got := argsExtra(2); got != "" { t.Errorf("argsExtra(2) = %q, want empty", got) }
  if got := argsExtra(-1); got != "" { t.Errorf("argsExtra(-1) = %q, want empty", got) }
}

func TestParseFaceValues(t *testing.T) {
  seq, err := parseFaceValues("10, 20, 30.5, 40")
  if err != nil { t.Fatalf("parseFaceValues: %v", err) }
  if len(seq) != 4 || seq[0] != 10 || seq[1] != 20 || seq[2] != 30.5 || seq[3] != 40 {
    t.Errorf("parsed values = %v", seq)
  }

  for _, s := range []string{"10,20,30", "10,20,30,40,50", "a,b,c,d", "10,20,0,40", "10,20,30,-5"} {
    if _, err := parseFaceValues(s); err == nil {
      t.Errorf("parseFaceValues(%q) must fail", s)
    }
  }
}
