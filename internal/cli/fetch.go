package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

// fetchOpts holds the command-line flags for the fetch command.
type fetchOpts struct {
	endpoint string // backend observations endpoint URL
	output   string // output file path (stdout if empty)
	window   string // reporting window passed to the backend
	noCache  bool   // bypass the pipeline cache
	refresh  bool   // force a fresh fetch, ignoring cached observations
}

// newFetchCmd creates the fetch command for downloading observations.
// The result is written as a JSON payload of the same shape the backend
// serves, so it can later be rendered offline with render --input.
func newFetchCmd() *cobra.Command {
	var opts fetchOpts

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch QC observations and save them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "observations endpoint URL (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.window, "window", "", "reporting window, e.g. 7d or 30d")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the pipeline cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "force a fresh fetch, ignoring cached observations")

	return cmd
}

// fetchPayload mirrors the backend response shape so fetched files are
// interchangeable with live endpoint responses.
type fetchPayload struct {
	Data []chart.Observation `json:"data"`
}

func runFetch(ctx context.Context, opts *fetchOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := newRunner(ctx, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Endpoint:  cfg.Backend.Endpoint,
		AuthToken: cfg.Backend.AuthToken,
		Window:    opts.window,
		Refresh:   opts.refresh,
	}
	if opts.endpoint != "" {
		pipeOpts.Endpoint = opts.endpoint
	}

	logger.Debugf("Fetching from %s", pipeOpts.Endpoint)
	sp := newSpinnerWithContext(ctx, "Fetching observations")
	sp.Start()
	obs, err := runner.Fetch(ctx, pipeOpts)
	if err != nil {
		sp.StopWithError(err.Error())
		return err
	}
	sp.StopWithSuccess(fmt.Sprintf("Fetched %d observations", len(obs)))

	data, err := json.MarshalIndent(fetchPayload{Data: obs}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if opts.output != "" {
		printFile(opts.output)
		printNextStep("Render it", "qcradial render --input "+opts.output)
	}
	return nil
}
