package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/wordcast/pkg/cloud"
	"github.com/matzehuels/wordcast/pkg/observability"
	"github.com/matzehuels/wordcast/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. extra options
// are applied after the ones derived from opts.
func (r *Runner) Render(ctx context.Context, res cloud.Result, opts Options, extra ...sink.Option) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts, _, err := r.render(ctx, res, opts, extra...)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, res cloud.Result, opts Options, extra ...sink.Option) (map[string][]byte, time.Duration, error) {
	cfg, err := opts.CloudConfig()
	if err != nil {
		return nil, 0, err
	}
	sinkOpts := append(opts.SinkOptions(cfg), sink.WithFonts(r.Fonts))
	sinkOpts = append(sinkOpts, extra...)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, 0, err
		}
		data, err := sink.Render(ctx, format, res, sinkOpts...)
		if err != nil {
			err = fmt.Errorf("render %s: %w", format, err)
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, 0, err
		}
		artifacts[format] = data
		opts.Logger.Debug("rendered artifact", "format", format, "bytes", len(data))
	}

	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, elapsed, nil)
	return artifacts, elapsed, nil
}
