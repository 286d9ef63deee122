package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"babd/pkg/types"
)

// apiClient is a thin helper for the client subcommands; it talks to a
// running daemon over HTTP and prints JSON responses.
type apiClient struct {
	base string
	hc   *http.Client
}

func newAPIClient(base string) *apiClient {
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		// Downloads can take a long time; rely on server-side bounds.
		hc: &http.Client{Timeout: 0},
	}
}

func (c *apiClient) get(path string) error {
	resp, err := c.hc.Get(c.base + path)
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func (c *apiClient) post(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := c.hc.Post(c.base+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	return printResponse(resp)
}

// printResponse pretty-prints the JSON body and returns an error for
// non-2xx statuses so the process exit code reflects the outcome.
func printResponse(resp *http.Response) error {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if json.Indent(&buf, raw, "", "  ") == nil {
		fmt.Fprintln(os.Stdout, buf.String())
	} else {
		fmt.Fprintln(os.Stdout, string(raw))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

func buildClientCmds() []*cobra.Command {
	var server string
	withServer := func(cmd *cobra.Command) *cobra.Command {
		cmd.Flags().StringVar(&server, "server", envOr("BABD_SERVER", "http://127.0.0.1:8080"), "Daemon base URL")
		return cmd
	}

	models := withServer(&cobra.Command{
		Use:   "models",
		Short: "List registered backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newAPIClient(server).get("/models")
		},
	})

	status := withServer(&cobra.Command{
		Use:   "status [backend]",
		Short: "Show daemon or per-backend status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/status"
			if len(args) == 1 {
				path += "/" + args[0]
			}
			return newAPIClient(server).get(path)
		},
	})

	verifyCmd := withServer(&cobra.Command{
		Use:   "verify <backend>",
		Short: "Check artifact integrity for a backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newAPIClient(server).get("/verify/" + args[0])
		},
	})

	languages := withServer(&cobra.Command{
		Use:   "languages <backend>",
		Short: "Show the language table for a backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newAPIClient(server).get("/languages/" + args[0])
		},
	})

	var force bool
	downloadCmd := withServer(&cobra.Command{
		Use:   "download [backend]",
		Short: "Download a backend's model artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.DownloadRequest{Force: force}
			if len(args) == 1 {
				req.Backend = args[0]
			}
			start := time.Now()
			err := newAPIClient(server).post("/download", req)
			if err == nil {
				fmt.Fprintf(os.Stderr, "done in %s\n", time.Since(start).Round(time.Second))
			}
			return err
		},
	})
	downloadCmd.Flags().BoolVar(&force, "force", false, "Re-fetch even when artifacts are present")

	removeCmd := withServer(&cobra.Command{
		Use:   "remove [backend]",
		Short: "Remove a backend's artifacts from disk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.RemoveRequest{}
			if len(args) == 1 {
				req.Backend = args[0]
			}
			return newAPIClient(server).post("/remove", req)
		},
	})

	var tBackend, tFrom, tTo string
	translateCmd := withServer(&cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text through a backend",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newAPIClient(server).post("/translate", types.TranslateRequest{
				Backend:    tBackend,
				Text:       strings.Join(args, " "),
				SourceCode: tFrom,
				TargetCode: tTo,
			})
		},
	})
	translateCmd.Flags().StringVar(&tBackend, "backend", "", "Backend id (server default if empty)")
	translateCmd.Flags().StringVar(&tFrom, "from", "", "Source language code in the backend's scheme")
	translateCmd.Flags().StringVar(&tTo, "to", "", "Target language code in the backend's scheme")
	_ = translateCmd.MarkFlagRequired("from")
	_ = translateCmd.MarkFlagRequired("to")

	return []*cobra.Command{models, status, verifyCmd, languages, downloadCmd, removeCmd, translateCmd}
}
