// Package graphfile loads the route graph from a pipe-separated file of
// SOURCE|DESTINATION|DISTANCE lines.
package graphfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/defaults"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/psv"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// Adapter reads a graph file. An empty path reads the bundled default graph.
// It holds no state between calls and is safe for concurrent use.
type Adapter struct {
	filePath string
	log      zerolog.Logger
}

// NewAdapter creates a graph file adapter.
func NewAdapter(filePath string, log zerolog.Logger) *Adapter {
	return &Adapter{
		filePath: filePath,
		log:      log.With().Str("source", defaults.Describe(filePath, defaults.GraphFile)).Logger(),
	}
}

// Name identifies the file being read.
func (a *Adapter) Name() string {
	return defaults.Describe(a.filePath, defaults.GraphFile)
}

// LoadGraph implements domain.GraphSource. The header line is skipped; lines with a
// missing or unparsable distance and edges the graph rejects are logged and skipped.
func (a *Adapter) LoadGraph(ctx context.Context, graph *domain.RouteGraph) (domain.LoadReport, error) {
	var report domain.LoadReport

	f, err := defaults.Open(ctx, a.filePath, defaults.GraphFile)
	if err != nil {
		return report, fmt.Errorf("open graph file: %w", err)
	}
	defer f.Close()

	a.log.Debug().Msg("reading graph file")

	r := psv.NewReader(f, false)
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if psv.IsRecordError(err) {
				a.skip(&report, rec.Line, err)
				continue
			}
			return report, fmt.Errorf("read graph file: %w", err)
		}

		if err := addRoute(graph, rec.Fields); err != nil {
			a.skip(&report, rec.Line, err)
			continue
		}
		report.Read++
	}

	a.log.Debug().
		Int("read", report.Read).
		Int("skipped", report.Skipped).
		Msg("graph file loaded")
	return report, nil
}

func (a *Adapter) skip(report *domain.LoadReport, line int, err error) {
	report.Skipped++
	a.log.Debug().Int("line", line).Err(err).Msg("ignored graph line")
}

// addRoute inserts both airports and the edge between them.
func addRoute(graph *domain.RouteGraph, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	distance, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("invalid distance %q", fields[2])
	}

	graph.AddAirport(fields[0])
	graph.AddAirport(fields[1])
	_, err = graph.CreateEdge(fields[0], fields[1], distance)
	return err
}

var _ domain.GraphSource = (*Adapter)(nil)
