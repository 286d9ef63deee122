package download

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"babd/pkg/types"
)

// DefaultHubBase is the Hugging Face hub endpoint artifacts resolve against.
const DefaultHubBase = "https://huggingface.co"

// HubFetcher downloads each manifest file from
// {base}/{repo}/resolve/main/{name}. No resume support: a failed transfer
// leaves partial files that the verifier rejects on the next attempt.
type HubFetcher struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

// NewHubFetcher builds a fetcher against base (DefaultHubBase if empty).
func NewHubFetcher(base string, log zerolog.Logger) *HubFetcher {
	if base == "" {
		base = DefaultHubBase
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	// Timeout stays 0 on the client: multi-gigabyte transfers are bounded by
	// the request context, not a flat client deadline.
	return &HubFetcher{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Transport: tr, Timeout: 0},
		log:    log,
	}
}

func (f *HubFetcher) Fetch(ctx context.Context, b types.Backend, dir, token string) error {
	for _, af := range b.Manifest {
		if err := f.fetchOne(ctx, b, af, dir, token); err != nil {
			return err
		}
	}
	return nil
}

func (f *HubFetcher) fetchOne(ctx context.Context, b types.Backend, af types.ArtifactFile, dir, token string) error {
	url := f.base + "/" + b.RepoID + "/resolve/main/" + af.Name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("access denied for %s (%d): accept the license at %s/%s and set %s",
			b.RepoID, resp.StatusCode, f.base, b.RepoID, TokenEnv)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("fetch %s: unexpected status %d", af.Name, resp.StatusCode)
	}

	dst := filepath.Join(dir, af.Name)
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	n, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", af.Name, err)
	}
	f.log.Info().
		Str("backend", b.ID).
		Str("file", af.Name).
		Int64("bytes", n).
		Dur("dur", time.Since(start)).
		Msg("artifact fetched")
	return nil
}
