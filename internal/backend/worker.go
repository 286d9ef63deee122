package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"babd/pkg/types"
)

// workerEngine hosts a backend's numeric computation in a worker subprocess
// serving a small JSON API on loopback. Loading the model happens inside the
// worker during startup; readiness is polled before the engine is handed out.
type workerEngine struct {
	cmd     *exec.Cmd
	baseURL string
	client  *http.Client
	log     zerolog.Logger
	// exited is closed by the reaper goroutine once the process is gone.
	exited  chan struct{}
	waitErr error
}

// WorkerConfig configures spawned worker processes.
type WorkerConfig struct {
	// Bin is the worker executable (e.g. bab-worker).
	Bin string
	// PortStart/PortEnd bound the loopback port search.
	PortStart, PortEnd int
	// StartupTimeout bounds the readiness wait; the dominant cost is the
	// worker reading multi-gigabyte weights from disk.
	StartupTimeout time.Duration
}

const (
	defaultPortStart      = 31000
	defaultPortEnd        = 31999
	defaultStartupTimeout = 5 * time.Minute
)

// NewWorkerOpener returns an EngineOpener that spawns one worker process per
// loaded backend.
func NewWorkerOpener(cfg WorkerConfig, log zerolog.Logger) EngineOpener {
	if cfg.PortStart == 0 {
		cfg.PortStart = defaultPortStart
	}
	if cfg.PortEnd == 0 {
		cfg.PortEnd = defaultPortEnd
	}
	if cfg.StartupTimeout == 0 {
		cfg.StartupTimeout = defaultStartupTimeout
	}
	return func(ctx context.Context, b types.Backend, dir string) (Engine, error) {
		return spawnWorker(ctx, cfg, b, dir, log)
	}
}

func pickPortInRange(host string, start, end int) (int, error) {
	for p := start; p <= end; p++ {
		l, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, p))
		if err != nil {
			continue
		}
		_ = l.Close()
		return p, nil
	}
	return 0, fmt.Errorf("no free port in range %d-%d", start, end)
}

func spawnWorker(ctx context.Context, cfg WorkerConfig, b types.Backend, dir string, log zerolog.Logger) (*workerEngine, error) {
	if cfg.Bin == "" {
		return nil, errors.New("worker binary not configured")
	}
	port, err := pickPortInRange("127.0.0.1", cfg.PortStart, cfg.PortEnd)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(cfg.Bin,
		"--backend", b.ID,
		"--model-dir", dir,
		"--port", strconv.Itoa(port),
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}
	e := &workerEngine{
		cmd:     cmd,
		baseURL: "http://127.0.0.1:" + strconv.Itoa(port),
		// Timeout stays 0: translation calls carry context deadlines.
		client: &http.Client{Timeout: 0},
		log:    log,
		exited: make(chan struct{}),
	}
	go func() {
		e.waitErr = cmd.Wait()
		close(e.exited)
	}()
	log.Info().Str("backend", b.ID).Int("pid", cmd.Process.Pid).Int("port", port).Msg("worker started")

	if err := e.waitReady(ctx, cfg.StartupTimeout); err != nil {
		_ = e.Close()
		return nil, err
	}
	return e, nil
}

// waitReady polls the worker's health endpoint until it answers or the
// deadline passes. An early process exit fails immediately.
func (e *workerEngine) waitReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		if e.healthy(2 * time.Second) {
			return nil
		}
		select {
		case <-e.exited:
			return fmt.Errorf("worker exited during startup: %v", e.waitErr)
		default:
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("worker not ready after %s", timeout)
		}
		select {
		case <-time.After(250 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		case <-e.exited:
			return fmt.Errorf("worker exited during startup: %v", e.waitErr)
		}
	}
}

func (e *workerEngine) healthy(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

type workerTranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	Error          string `json:"error,omitempty"`
}

func (e *workerEngine) Translate(ctx context.Context, req EngineRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := e.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("worker http error: %s: %s", resp.Status, string(b))
	}
	var out workerTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", errors.New(out.Error)
	}
	return out.TranslatedText, nil
}

// Close terminates the worker: SIGTERM first, SIGKILL after a short grace.
func (e *workerEngine) Close() error {
	if e.cmd == nil || e.cmd.Process == nil {
		return nil
	}
	pid := e.cmd.Process.Pid
	_ = e.cmd.Process.Signal(syscall.SIGTERM)
	select {
	case <-e.exited:
	case <-time.After(5 * time.Second):
		_ = e.cmd.Process.Kill()
		<-e.exited
	}
	e.log.Info().Int("pid", pid).Msg("worker stopped")
	return nil
}
