package main

import (
	"errors"
	"testing"
)

type probe = struct {
	name string
	fd   uintptr
}

func TestProbeFDs_PicksFirstSizedTerminal(t *testing.T) {
	isTerminal := func(fd int) bool { return fd != 0 }
	getSize := func(fd int) (int, int, error) {
		if fd == 1 {
			return 0, 0, errors.New("inappropriate ioctl")
		}
		return 120, 40, nil
	}

	got := probeFDs([]probe{{"stdin", 0}, {"stdout", 1}, {"stderr", 2}}, isTerminal, getSize)
	if got.Detected == nil || got.Detected.Source != "stderr" || got.Detected.Width != 120 {
		t.Fatalf("unexpected detection %+v", got.Detected)
	}
	if got.Probes[0].IsTerminal || !got.Probes[1].IsTerminal || got.Probes[1].Error == "" {
		t.Fatalf("unexpected probes %+v", got.Probes)
	}
}

func TestProbeFDs_NoTerminal(t *testing.T) {
	got := probeFDs([]probe{{"stdin", 0}}, func(int) bool { return false }, nil)
	if got.Detected != nil {
		t.Fatalf("expected no terminal, got %+v", got.Detected)
	}
	if v := got.LogValue(); len(v.Group()) != 1 {
		t.Fatalf("expected one probe group in log value, got %v", v)
	}
}

func TestUsageError(t *testing.T) {
	inner := errors.New("bad flag")
	var usage usageError
	if err := error(usageError{err: inner}); !errors.As(err, &usage) || !errors.Is(err, inner) {
		t.Fatalf("expected usageError to wrap %v", inner)
	}
}

func TestRun_Help(t *testing.T) {
	if err := run([]string{"--help"}); err != nil {
		t.Fatalf("expected help to succeed, got %v", err)
	}
}

func TestRun_InvalidFlagIsUsageError(t *testing.T) {
	err := run([]string{"--renderer", "sixel"})
	var usage usageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected usageError, got %v", err)
	}
}
