package commands

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func newRegistry(steps *int, ran *bool) *Registry {
	r := NewRegistry()
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(steps, "steps", 1, "")
	r.Register("simulate", "run the world", fs, func() error {
		*ran = true
		return nil
	})
	r.Register("fail", "always fails", flag.NewFlagSet("fail", flag.ContinueOnError), func() error {
		return errors.New("boom")
	})
	return r
}

func TestExecute(t *testing.T) {
	var steps int
	var ran bool
	r := newRegistry(&steps, &ran)

	if err := r.Execute([]string{"simulate", "-steps", "30"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !ran || steps != 30 {
		t.Errorf("ran=%v steps=%d, want true 30", ran, steps)
	}
	if err := r.Execute([]string{"simulate"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if steps != 1 {
		t.Errorf("steps = %d after a bare run, want default 1", steps)
	}
	if err := r.Execute([]string{"fail"}); err == nil || err.Error() != "boom" {
		t.Errorf("Execute(fail) error = %v, want boom", err)
	}
}

func TestExecuteErrors(t *testing.T) {
	var steps int
	var ran bool
	r := newRegistry(&steps, &ran)

	if err := r.Execute(nil); !errors.Is(err, ErrMissingCommand) {
		t.Errorf("Execute(nil) error = %v, want ErrMissingCommand", err)
	}
	err := r.Execute([]string{"explode"})
	if !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), "explode") {
		t.Errorf("Execute(explode) error = %v", err)
	}
	if err := r.Execute([]string{"simulate", "-steps", "many"}); err == nil {
		t.Error("Execute with bad flag error = nil")
	}
	if ran {
		t.Error("Run called despite flag error")
	}
}

func TestUsage(t *testing.T) {
	var steps int
	var ran bool
	r := newRegistry(&steps, &ran)
	if got := r.Names(); len(got) != 2 || got[0] != "fail" || got[1] != "simulate" {
		t.Errorf("Names() = %v", got)
	}
	var buf bytes.Buffer
	r.PrintUsage(&buf)
	if !strings.Contains(buf.String(), "simulate") || !strings.Contains(buf.String(), "run the world") {
		t.Errorf("PrintUsage() = %q", buf.String())
	}
}
