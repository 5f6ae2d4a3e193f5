package rahasher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cheevo-checker/core/reconcile"

	"go.uber.org/zap"
)

// GameCubeConsoleID is the RetroAchievements id of the Nintendo GameCube.
const GameCubeConsoleID = 16

var (
	// ErrToolUnavailable is returned when the hashing tool for a console is
	// not configured or does not exist. No process is started.
	ErrToolUnavailable = errors.New("hash tool unavailable")
	// ErrInvalidOutput is returned when the tool does not print a 32 character hex digest.
	ErrInvalidOutput = errors.New("hash tool returned invalid output")
)

// Option configures a Computer.
type Option func(*Computer)

// WithExecutor replaces the process runner, mostly for tests.
func WithExecutor(e Executor) Option {
	return func(c *Computer) {
		if e != nil {
			c.exec = e
		}
	}
}

// WithDiscConsoles sets the console ids hashed with DolphinTool instead of RAHasher.
func WithDiscConsoles(ids ...int) Option {
	return func(c *Computer) {
		c.disc = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			c.disc[id] = struct{}{}
		}
	}
}

// WithStat replaces the existence check for tool binaries.
func WithStat(stat func(string) error) Option {
	return func(c *Computer) {
		if stat != nil {
			c.stat = stat
		}
	}
}

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Computer) {
		if l != nil {
			c.logger = l
		}
	}
}

// Computer derives RetroAchievements content hashes by running RAHasher, or
// DolphinTool for disc based consoles. It implements reconcile.Hasher.
type Computer struct {
	rahasher    string
	dolphinTool string
	timeout     time.Duration
	disc        map[int]struct{}
	exec        Executor
	stat        func(string) error
	logger      *zap.Logger
}

var _ reconcile.Hasher = (*Computer)(nil)

// New creates a Computer from cfg.
func New(cfg Config, opts ...Option) *Computer {
	c := &Computer{
		rahasher:    cfg.RAHasherPath,
		dolphinTool: cfg.DolphinToolPath,
		disc:        map[int]struct{}{GameCubeConsoleID: {}},
		exec:        commandExecutor{},
		stat:        statFile,
		logger:      zap.NewNop(),
	}
	if cfg.TimeoutSeconds > 0 {
		c.timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Hash computes the content hash of the file at path for consoleID and
// returns it lower-cased.
func (c *Computer) Hash(ctx context.Context, consoleID int, path string) (string, error) {
	binary, args := c.command(consoleID, path)
	if binary == "" {
		return "", fmt.Errorf("console %d: %w: path not configured", consoleID, ErrToolUnavailable)
	}
	if err := c.stat(binary); err != nil {
		return "", fmt.Errorf("console %d: %w: %v", consoleID, ErrToolUnavailable, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.exec.Output(ctx, binary, args)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", binary, err)
	}

	h := lastLine(string(out))
	if !reconcile.ValidHash(h) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutput, truncate(h, 64))
	}

	h = reconcile.NormalizeHash(h)
	c.logger.Debug("Computed hash",
		zap.Int("console_id", consoleID),
		zap.String("path", path),
		zap.String("hash", h),
		zap.Duration("took", time.Since(start)),
	)
	return h, nil
}

// Command returns the tool invocation used for consoleID, for display.
func (c *Computer) Command(consoleID int, path string) []string {
	binary, args := c.command(consoleID, path)
	return append([]string{binary}, args...)
}

func (c *Computer) command(consoleID int, path string) (string, []string) {
	if _, ok := c.disc[consoleID]; ok {
		return c.dolphinTool, []string{"verify", "-i", path, "-a", "rchash"}
	}
	return c.rahasher, []string{strconv.Itoa(consoleID), path}
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// lastLine returns the last non-empty line of out, trimmed.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
