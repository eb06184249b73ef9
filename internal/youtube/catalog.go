package youtube

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const DefaultChannelURL = "https://www.youtube.com/@LofiGirl/streams"

// Stream is the subset of yt-dlp playlist fields required by the app.
type Stream struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CatalogClient enumerates the live streams of a channel through yt-dlp.
type CatalogClient struct {
	binary     string
	channelURL string
	items      string
	run        Runner
}

func NewCatalogClient(binary, channelURL, items string, run Runner) *CatalogClient {
	if binary == "" {
		binary = "yt-dlp"
	}
	if channelURL == "" {
		channelURL = DefaultChannelURL
	}
	if items == "" {
		items = "1:20"
	}
	if run == nil {
		run = runCommand
	}
	return &CatalogClient{
		binary:     binary,
		channelURL: channelURL,
		items:      items,
		run:        run,
	}
}

// ListStreams returns the streams of the configured channel in playlist
// order. Lines that are not valid stream records are skipped.
func (c *CatalogClient) ListStreams(ctx context.Context) ([]Stream, error) {
	output, err := c.run(ctx, c.binary, c.args()...)
	if err != nil {
		// yt-dlp exits non-zero when a single playlist item fails; the
		// records it did print are still usable.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || len(bytes.TrimSpace(output)) == 0 {
			return nil, fmt.Errorf("list streams via %s: %w", c.binary, err)
		}
	}
	streams, err := ParseStreams(output)
	if err != nil {
		return nil, fmt.Errorf("read %s output: %w", c.binary, err)
	}
	return streams, nil
}

func (c *CatalogClient) args() []string {
	return []string{
		"--flat-playlist",
		"-I", c.items,
		c.channelURL,
		"-j",
	}
}

// ParseStreams decodes one JSON object per line. Malformed lines and records
// without an id or title are dropped.
func ParseStreams(output []byte) ([]Stream, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	streams := make([]Stream, 0, 20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var stream Stream
		if err := json.Unmarshal(line, &stream); err != nil {
			continue
		}
		stream.ID = strings.TrimSpace(stream.ID)
		if stream.ID == "" || stream.Title == "" {
			continue
		}
		streams = append(streams, stream)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return streams, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return output, fmt.Errorf("%w: %s", err, lastLine(msg))
		}
		return output, err
	}
	return output, nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
