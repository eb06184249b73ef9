package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
)

// ChafaRenderer pipes the image through the chafa binary. Kitty graphics are
// used when the terminal advertises them, symbol art otherwise.
type ChafaRenderer struct {
	LookPath func(string) (string, error)
	Run      func(ctx context.Context, path string, args []string, stdin []byte) ([]byte, error)
}

func (r ChafaRenderer) Render(ctx context.Context, img image.Image, cols, rows int) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("empty preview box %dx%d", cols, rows)
	}
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	run := r.Run
	if run == nil {
		run = runChafa
	}

	chafaPath, err := lookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return "", fmt.Errorf("encode image for chafa: %w", err)
	}

	kitty := SupportsKittyGraphics()
	output, err := run(ctx, chafaPath, ChafaArgs(cols, rows, kitty), encoded.Bytes())
	raw := string(output)
	trimmed := strings.TrimSpace(raw)
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, trimmed)
	}
	if kitty && ContainsKittyGraphicsEscape(raw) {
		return strings.TrimRight(raw, "\r\n"), nil
	}
	if trimmed == "" {
		return "", fmt.Errorf("empty output")
	}
	return strings.TrimRight(raw, "\r\n"), nil
}

// ChafaArgs builds the chafa command line for a box of cols x rows cells.
func ChafaArgs(cols, rows int, kitty bool) []string {
	size := fmt.Sprintf("%dx%d", cols, rows)
	if kitty {
		return []string{
			"--size", size,
			"--view-size", size,
			"--align", "top,left",
			"--format", "kitty",
			"--passthrough", KittyPassthroughMode(),
			"--relative", "on",
			"-",
		}
	}
	return []string{
		"--size", size,
		"--view-size", size,
		"--align", "top,left",
		"--format", "symbols",
		"-",
	}
}

func runChafa(ctx context.Context, path string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	return cmd.CombinedOutput()
}

func SupportsKittyGraphics() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	termProgram := strings.ToLower(strings.TrimSpace(os.Getenv("TERM_PROGRAM")))
	if strings.Contains(termProgram, "ghostty") || strings.Contains(termProgram, "kitty") {
		return true
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	return strings.Contains(term, "xterm-kitty") || strings.Contains(term, "ghostty")
}

func ContainsKittyGraphicsEscape(s string) bool {
	return strings.Contains(s, "\x1b_G")
}

// ClearKittyGraphicsSequence deletes every kitty image on screen, wrapped for
// tmux when needed.
func ClearKittyGraphicsSequence() string {
	base := "\x1b_Ga=d,d=A\x1b\\"
	if os.Getenv("TMUX") == "" {
		return base
	}
	escaped := strings.ReplaceAll(base, "\x1b", "\x1b\x1b")
	return "\x1bPtmux;\x1b" + escaped + "\x1b\\"
}

func KittyPassthroughMode() string {
	if os.Getenv("TMUX") != "" {
		return "screen"
	}
	return "none"
}
