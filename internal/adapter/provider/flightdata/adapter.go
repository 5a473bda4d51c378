// Package flightdata ingests recorded flights from a pipe-separated data file.
//
// Each line after the header holds sixteen fields:
//
//	SOURCE|DESTINATION|DISTANCE|SIZE|4 x MAX SEATS|4 x FILLED SEATS|4 x SEAT PRICE
//
// with the per-section values ordered economy basic, economy plus, business, first.
package flightdata

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

// FieldCount is the number of fields in a data line.
const FieldCount = 4 + 3*domain.SectionCount

// Adapter reads a flight data file. An empty path reads the bundled example data.
type Adapter struct {
	filePath string
	log      zerolog.Logger
}

// NewAdapter creates a flight data adapter.
func NewAdapter(filePath string, log zerolog.Logger) *Adapter {
	return &Adapter{
		filePath: filePath,
		log:      log.With().Str("source", defaults.Describe(filePath, defaults.DataFile)).Logger(),
	}
}

// Name identifies the file being read.
func (a *Adapter) Name() string {
	return defaults.Describe(a.filePath, defaults.DataFile)
}

// LoadFlights implements domain.FlightDataSource. Whitespace is removed from every line.
// Malformed rows and rows with more filled seats than capacity are logged and skipped.
// For each accepted row the route is added to graph (a rejected edge is ignored),
// and the flight is built and added to ledger.
func (a *Adapter) LoadFlights(ctx context.Context, graph *domain.RouteGraph, ledger *domain.FlightLedger, builder domain.FlightBuilder) (domain.LoadReport, error) {
	var report domain.LoadReport

	f, err := defaults.Open(ctx, a.filePath, defaults.DataFile)
	if err != nil {
		return report, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	a.log.Debug().Msg("reading data file")

	r := psv.NewReader(f, true)
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
			return report, fmt.Errorf("read data file: %w", err)
		}

		in, err := ParseRow(rec.Fields)
		if err == nil {
			err = in.Validate()
		}
		if err != nil {
			a.skip(&report, rec.Line, err)
			continue
		}

		graph.AddAirport(in.Source)
		graph.AddAirport(in.Destination)
		if _, err := graph.CreateEdge(in.Source, in.Destination, in.Distance); err != nil {
			a.log.Debug().Int("line", rec.Line).Err(err).Msg("ignored edge input")
		}

		flight, err := builder.Build(in)
		if err != nil {
			return report, fmt.Errorf("build flight at line %d: %w", rec.Line, err)
		}
		ledger.Add(flight, graph)
		report.Read++
	}

	a.log.Debug().
		Int("read", report.Read).
		Int("skipped", report.Skipped).
		Msg("data file loaded")
	return report, nil
}

func (a *Adapter) skip(report *domain.LoadReport, line int, err error) {
	report.Skipped++
	a.log.Debug().Int("line", line).Err(err).Msg("ignored invalid input in data")
}

// ParseRow converts the sixteen fields of a data line into a flight description.
// It checks syntax only; call Validate for seat and distance rules.
func ParseRow(fields []string) (domain.FlightInput, error) {
	var in domain.FlightInput
	if len(fields) != FieldCount {
		return in, fmt.Errorf("%w: expected %d fields, got %d", domain.ErrInvalidFlight, FieldCount, len(fields))
	}

	in.Source = fields[0]
	in.Destination = fields[1]

	distance, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return in, fmt.Errorf("%w: invalid distance %q", domain.ErrInvalidFlight, fields[2])
	}
	in.Distance = distance

	in.Size = domain.ParseAircraftSize(fields[3])
	if !in.Size.IsValid() {
		return in, fmt.Errorf("%w: unknown aircraft size %q", domain.ErrInvalidFlight, fields[3])
	}

	const maxAt, filledAt, priceAt = 4, 4 + domain.SectionCount, 4 + 2*domain.SectionCount
	for i := 0; i < domain.SectionCount; i++ {
		if in.MaxSeats[i], err = strconv.Atoi(fields[maxAt+i]); err != nil {
			return in, fmt.Errorf("%w: invalid max seats %q", domain.ErrInvalidFlight, fields[maxAt+i])
		}
		if in.Occupied[i], err = strconv.Atoi(fields[filledAt+i]); err != nil {
			return in, fmt.Errorf("%w: invalid filled seats %q", domain.ErrInvalidFlight, fields[filledAt+i])
		}
		if in.Prices[i], err = domain.ParseMoney(fields[priceAt+i]); err != nil {
			return in, fmt.Errorf("%w: invalid seat price %q", domain.ErrInvalidFlight, fields[priceAt+i])
		}
	}
	return in, nil
}

var _ domain.FlightDataSource = (*Adapter)(nil)
