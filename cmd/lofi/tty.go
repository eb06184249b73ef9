package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

type ttyProbeResult struct {
	Name       string
	IsTerminal bool
	Width      int
	Height     int
	Error      string
}

type ttyDetected struct {
	Source string
	Width  int
	Height int
}

type ttyDetails struct {
	Detected *ttyDetected
	Probes   []ttyProbeResult
}

func (d ttyDetails) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(d.Probes)+1)
	if d.Detected != nil {
		attrs = append(attrs, slog.Group("detected",
			"source", d.Detected.Source,
			"width", d.Detected.Width,
			"height", d.Detected.Height,
		))
	}
	for _, p := range d.Probes {
		attrs = append(attrs, slog.Group(p.Name,
			"terminal", p.IsTerminal,
			"width", p.Width,
			"height", p.Height,
			"error", p.Error,
		))
	}
	return slog.GroupValue(attrs...)
}

func probeTTY() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	return probeFDs(probes, term.IsTerminal, term.GetSize)
}

func probeFDs(probes []struct {
	name string
	fd   uintptr
}, isTerminal func(int) bool, getSize func(int) (int, int, error)) ttyDetails {
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && isTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := getSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
