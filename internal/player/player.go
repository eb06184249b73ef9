package player

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glabrego/lofi-tui/internal/youtube"
)

// Process is the handle of a started player.
type Process interface {
	Kill() error
	Wait() error
}

// Starter launches name with args and returns without waiting for it.
type Starter func(name string, args []string) (Process, error)

// Launcher starts the media player for a stream, replacing whatever it
// started before. Exit statuses of players are never reported.
type Launcher struct {
	player   string
	watchURL string
	start    Starter
	pkill    func(pattern string) error
	logger   *slog.Logger

	mu      sync.Mutex
	current Process
}

func NewLauncher(player, watchURL string, logger *slog.Logger) *Launcher {
	if player == "" {
		player = "mpv"
	}
	if watchURL == "" {
		watchURL = youtube.DefaultWatchURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		player:   player,
		watchURL: watchURL,
		start:    startDetached,
		pkill:    runPkill,
		logger:   logger,
	}
}

// PlayerCommand returns the command line that plays streamID.
func PlayerCommand(player, watchURL, streamID string) (string, []string) {
	return player, []string{"--no-terminal", youtube.WatchURL(watchURL, streamID)}
}

// KillPattern matches command lines of players started for watchURL, in
// the form understood by pkill -f.
func KillPattern(player, watchURL string) string {
	target := watchURL
	if parsed, err := url.Parse(watchURL); err == nil && parsed.Host != "" {
		target = strings.TrimPrefix(parsed.Host, "www.") + parsed.Path
	}
	return filepath.Base(player) + ".*" + target
}

// Play stops the previous player and starts a new one for streamID.
func (l *Launcher) Play(streamID string) error {
	if strings.TrimSpace(streamID) == "" {
		return errors.New("stream has no id")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()
	// Players left over from an earlier session are not tracked by us.
	if err := l.pkill(KillPattern(l.player, l.watchURL)); err != nil {
		l.logger.Debug("pkill failed", "error", err)
	}

	name, args := PlayerCommand(l.player, l.watchURL, streamID)
	proc, err := l.start(name, args)
	if err != nil {
		return fmt.Errorf("start %s: %w", l.player, err)
	}
	l.current = proc
	l.logger.Info("player started", "stream", streamID, "player", l.player)

	go func() {
		err := proc.Wait()
		l.logger.Debug("player exited", "stream", streamID, "error", err)
		l.mu.Lock()
		if l.current == proc {
			l.current = nil
		}
		l.mu.Unlock()
	}()
	return nil
}

// Running reports whether a player started by l is still tracked.
func (l *Launcher) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil
}

func (l *Launcher) stopLocked() {
	if l.current == nil {
		return
	}
	if err := l.current.Kill(); err != nil {
		l.logger.Debug("kill previous player failed", "error", err)
	}
	l.current = nil
}

type cmdProcess struct {
	cmd *exec.Cmd
}

func (p cmdProcess) Kill() error { return p.cmd.Process.Kill() }
func (p cmdProcess) Wait() error { return p.cmd.Wait() }

// startDetached leaves stdio unset so the player is attached to the null
// device and cannot draw over the UI.
func startDetached(name string, args []string) (Process, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmdProcess{cmd: cmd}, nil
}

func runPkill(pattern string) error {
	if _, err := exec.LookPath("pkill"); err != nil {
		return err
	}
	err := exec.Command("pkill", "-f", pattern).Run()
	var exitErr *exec.ExitError
	// Exit status 1 means nothing matched.
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil
	}
	return err
}
