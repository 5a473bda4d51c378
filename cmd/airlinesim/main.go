// Command airlinesim runs airline route simulations from the command line.
//
//	airlinesim run --seed 7 --size L --route JFK:BOS --top 5
//	airlinesim run --data flights.psv
//	airlinesim run --compare S,M,L
//	airlinesim defaults --dir ./sim
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/defaults"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/flightdata"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/graphfile"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/properties"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/infrastructure/logger"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("airlinesim failed")
		os.Exit(1)
	}
}

// newApp builds the command tree. Results go to out, logs to logOut.
func newApp(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "airlinesim",
		Usage:  "Simulate flights over an airline route graph and report revenue, cost and profit",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "json or console",
				Value:   "console",
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
		},
		Commands: []*cli.Command{
			runCommand(out, logOut),
			defaultsCommand(out),
		},
	}
}

func runCommand(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run one simulation, or compare preferred aircraft sizes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "properties",
				Aliases: []string{"p"},
				Usage:   "Model properties file (.properties, .env, .yaml); embedded defaults when empty",
				Sources: cli.EnvVars("SIM_PROPERTIES_FILE"),
			},
			&cli.StringFlag{
				Name:    "graph",
				Aliases: []string{"g"},
				Usage:   "Route graph file; embedded default graph when empty",
				Sources: cli.EnvVars("SIM_GRAPH_FILE"),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Flight data file; setting it selects data mode",
				Sources: cli.EnvVars("SIM_DATA_FILE"),
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "synthetic or data",
				Value: string(usecase.ModeSynthetic),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "Random seed; 0 seeds from the clock",
				Sources: cli.EnvVars("SIM_RANDOM_SEED"),
			},
			&cli.StringFlag{
				Name:  "size",
				Usage: "Override PREFERRED_AIRCRAFT_SIZE (S, M, L)",
			},
			&cli.IntFlag{
				Name:  "flights",
				Usage: "Override NUMBER_OF_FLIGHTS",
			},
			&cli.StringSliceFlag{
				Name:  "compare",
				Usage: "Compare preferred sizes instead of running once, e.g. --compare S,M,L",
			},
			&cli.StringSliceFlag{
				Name:  "route",
				Usage: "Report the average profit of a route, SRC:DST; repeatable",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Print the N most profitable routes per flight",
			},
			&cli.BoolFlag{
				Name:  "show-graph",
				Usage: "Print the route graph adjacency list",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			appLog := logger.NewWithOutput(logger.Config{
				Level:  cmd.String("log-level"),
				Format: cmd.String("log-format"),
			}, logOut)
			return runSimulation(ctx, cmd, out, appLog)
		},
	}
}

func defaultsCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "defaults",
		Usage: "Write the bundled properties, graph and data files to a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Target directory",
				Value: ".",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			written, err := defaults.WriteTo(cmd.String("dir"))
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}
}

func runSimulation(ctx context.Context, cmd *cli.Command, out io.Writer, appLog *logger.Logger) error {
	mode, ok := usecase.ParseRunMode(cmd.String("mode"))
	if !ok {
		return fmt.Errorf("unknown mode %q", cmd.String("mode"))
	}
	if cmd.IsSet("data") && !cmd.IsSet("mode") {
		mode = usecase.ModeData
	}

	loaderLog := appLog.WithComponent("loader").Logger
	sources := usecase.Sources{
		Graph:    graphfile.NewAdapter(cmd.String("graph"), loaderLog),
		Data:     flightdata.NewAdapter(cmd.String("data"), loaderLog),
		Settings: properties.NewAdapter(cmd.String("properties"), loaderLog),
	}
	sim := usecase.NewSimulationUseCase(sources, appLog.WithComponent("simulation").Logger, &usecase.SimulationConfig{
		Seed: cmd.Int("seed"),
	})

	if sizes := cmd.StringSlice("compare"); len(sizes) > 0 {
		return compareSizes(ctx, out, sim, sizes, cmd.Int("seed"))
	}

	var (
		result *usecase.SimulationResult
		err    error
	)
	switch mode {
	case usecase.ModeData:
		result, err = sim.RunFromData(ctx)
	default:
		opts := usecase.RunOptions{Seed: cmd.Int("seed"), Flights: int(cmd.Int("flights"))}
		if s := cmd.String("size"); s != "" {
			if opts.PreferredSize = domain.ParseAircraftSize(s); !opts.PreferredSize.IsValid() {
				return fmt.Errorf("unknown aircraft size %q", s)
			}
		}
		result, err = sim.RunSynthetic(ctx, opts)
	}
	if err != nil {
		return err
	}

	printResult(out, result)

	for _, route := range cmd.StringSlice("route") {
		printRouteProfit(ctx, out, sim, route)
	}

	if n := cmd.Int("top"); n > 0 {
		routes, err := sim.Routes(ctx, usecase.RouteReportOptions{
			SortBy: domain.SortByAverageProfit,
			Limit:  int(n),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printRoutes(out, routes)
	}

	if cmd.Bool("show-graph") {
		graph, err := sim.Graph(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, graph.Dump)
	}
	return nil
}

func printResult(out io.Writer, r *usecase.SimulationResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Run:\t%s\n", r.RunID)
	fmt.Fprintf(w, "Mode:\t%s\n", r.Mode)
	if r.Mode == usecase.ModeSynthetic {
		fmt.Fprintf(w, "Seed:\t%d\n", r.Seed)
		fmt.Fprintf(w, "Preferred size:\t%s\n", r.PreferredSize.Name())
	} else {
		fmt.Fprintf(w, "Rows read:\t%d (%d skipped)\n", r.Load.Read, r.Load.Skipped)
	}
	fmt.Fprintf(w, "Airports:\t%d\n", r.Airports)
	fmt.Fprintf(w, "Routes:\t%d\n", r.Routes)
	fmt.Fprintf(w, "Flights:\t%d\n", r.Totals.Flights)
	fmt.Fprintf(w, "Total revenue:\t%s\n", r.Totals.Revenue)
	fmt.Fprintf(w, "Total cost:\t%s\n", r.Totals.Cost)
	fmt.Fprintf(w, "Total profit:\t%s\n", r.Totals.Profit)
	fmt.Fprintf(w, "Average profit per flight:\t%s\n", r.AverageProfit)
	w.Flush()
}

func printRoutes(out io.Writer, routes []usecase.RouteStats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tDISTANCE\tFLIGHTS\tPROFIT\tAVERAGE")
	for _, r := range routes {
		fmt.Fprintf(w, "%s-%s\t%g\t%d\t%s\t%s\n",
			r.Route.Source, r.Route.Destination, r.Route.Distance, r.Totals.Flights, r.Totals.Profit, r.AverageProfit)
	}
	w.Flush()
}

// printRouteProfit reports one SRC:DST query. Query errors are printed, not returned,
// so one unknown airport does not hide the other answers.
func printRouteProfit(ctx context.Context, out io.Writer, sim usecase.SimulationUseCase, route string) {
	src, dst, found := strings.Cut(route, ":")
	if !found {
		fmt.Fprintf(out, "%s: expected SRC:DST\n", route)
		return
	}
	avg, err := sim.AverageProfit(ctx, src, dst)
	switch {
	case err == nil:
		fmt.Fprintf(out, "Average profit %s -> %s: %s\n",
			domain.NormalizeAirportName(src), domain.NormalizeAirportName(dst), avg)
	case errors.Is(err, domain.ErrNoFlightsOnEdge):
		fmt.Fprintf(out, "No flights between %s and %s\n",
			domain.NormalizeAirportName(src), domain.NormalizeAirportName(dst))
	default:
		fmt.Fprintf(out, "%s: %v\n", route, err)
	}
}

func compareSizes(ctx context.Context, out io.Writer, sim usecase.SimulationUseCase, names []string, seed int64) error {
	sizes := make([]domain.AircraftSize, 0, len(names))
	for _, n := range names {
		size := domain.ParseAircraftSize(n)
		if !size.IsValid() {
			return fmt.Errorf("unknown aircraft size %q", n)
		}
		sizes = append(sizes, size)
	}

	results, err := sim.Compare(ctx, sizes, seed)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSEED\tFLIGHTS\tREVENUE\tCOST\tPROFIT\tAVERAGE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Size.Name(), r.Seed, r.Totals.Flights, r.Totals.Revenue, r.Totals.Cost, r.Totals.Profit, r.AverageProfit)
	}
	return w.Flush()
}
