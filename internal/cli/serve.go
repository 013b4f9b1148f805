package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/precastlab/qcradial/internal/server"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

// defaultAddr is the listen address when neither flag nor config set one.
const defaultAddr = ":8080"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address, e.g. ":8080"
	endpoint string // backend observations endpoint URL
	noCache  bool   // disable the pipeline cache
}

// newServeCmd creates the serve command that runs the HTTP chart API.
// The server exposes /v1/chart.{svg,png,pdf,json} plus /healthz and shuts
// down gracefully on SIGINT/SIGTERM.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "observations endpoint URL (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the pipeline cache")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := newRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	endpoint := cfg.Backend.Endpoint
	if opts.endpoint != "" {
		endpoint = opts.endpoint
	}

	addr := opts.addr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if addr == "" {
		addr = defaultAddr
	}

	base := pipeline.Options{
		Chart:     cfg.ChartOptions(),
		AuthToken: cfg.Backend.AuthToken,
	}
	srv := server.New(runner, endpoint, logger, server.WithBaseOptions(base))

	printInfo("Serving chart API on %s", addr)
	if endpoint != "" {
		printKeyValue("Endpoint", endpoint)
	}
	return srv.ListenAndServe(ctx, addr)
}
