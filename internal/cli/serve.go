package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordcast/internal/server"
	"github.com/matzehuels/wordcast/pkg/observability"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		maxEvals int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Endpoints:
  POST /v1/layout            JSON layout for {"words": [...], "options": {...}}
  POST /v1/render/{format}   rendered svg, png, pdf or json
  GET  /healthz              liveness probe
  GET  /version              build information
  GET  /metrics              Prometheus metrics

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			hooks := server.NewPrometheusHooks(reg)
			observability.SetPipelineHooks(hooks)
			observability.SetHTTPHooks(hooks)
			defer observability.Reset()

			srv := server.New(server.Config{
				Addr:     addr,
				Runner:   c.newRunner(),
				Logger:   logger,
				Gatherer: reg,

				MaxEvaluations: maxEvals,
			})
			printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(srv.Addr())))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&maxEvals, "max-evaluations", server.DefaultMaxEvaluations, "per-request candidate budget ceiling (-1 = none)")
	return cmd
}

// displayAddr turns a bare ":port" into a clickable localhost address.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
