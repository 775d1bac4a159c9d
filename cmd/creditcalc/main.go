package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/cloud-ru/creditcalc-go/internal/config"
	"github.com/cloud-ru/creditcalc-go/internal/handlers"
	"github.com/cloud-ru/creditcalc-go/internal/logging"
	"github.com/cloud-ru/creditcalc-go/internal/metrics"
	"github.com/cloud-ru/creditcalc-go/internal/report"
	"github.com/cloud-ru/creditcalc-go/internal/tracing"
	"github.com/cloud-ru/creditcalc-go/internal/validators"
)

const (
	exitOK          = 0
	exitCalculation = 1
	exitUsage       = 2
)

var (
	principalFlag = cli.Float64Flag{Name: "principal, pri", Usage: "loan principal"}
	paymentFlag   = cli.Float64Flag{Name: "payment, pay", Usage: "monthly payment"}
	periodsFlag   = cli.IntFlag{Name: "periods, per", Usage: "number of monthly payments"}
	interestFlag  = cli.Float64Flag{Name: "interest, int", Usage: "annual interest rate, percent"}
	typeFlag      = cli.StringFlag{Name: "type, t", Usage: "loan type: annuity or diff"}
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitCalculation
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, stderr)

	ctx := context.Background()
	tracer, shutdown, err := tracing.InitTracing(ctx, cfg, logger)
	if err != nil {
		logger.Error("tracing init failed", slog.Any("error", err))
		return exitCalculation
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("tracing shutdown failed", slog.Any("error", err))
		}
	}()

	m := metrics.New()
	if cfg.MetricsTextfile != "" {
		defer func() {
			if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Warn("metrics textfile write failed", slog.String("path", cfg.MetricsTextfile), slog.Any("error", err))
			}
		}()
	}

	h := handlers.New(cfg, tracer, m, logger)
	app := newApp(ctx, cfg, h, stdout, stderr)

	return exitCode(app.Run(args), stdout, logger)
}

func newApp(ctx context.Context, cfg *config.Config, h *handlers.Handler, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "creditcalc"
	app.Usage = "calculate annuity and differentiated loan payments"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{principalFlag, paymentFlag, periodsFlag, interestFlag, typeFlag}
	app.OnUsageError = usageError
	app.Action = func(c *cli.Context) error {
		if c.NArg() > 0 {
			return fmt.Errorf("%w: unexpected arguments %v", validators.ErrIncorrectParameters, c.Args())
		}

		req, err := validators.ParseRequest(cfg, paramsFromContext(c))
		if err != nil {
			return err
		}

		result, err := h.Calculate(ctx, req)
		if err != nil {
			return err
		}
		return report.Write(c.App.Writer, result)
	}
	app.Commands = []cli.Command{
		{
			Name:         "compare",
			Usage:        "compare annuity and differentiated schemes for the same loan",
			Flags:        []cli.Flag{principalFlag, periodsFlag, interestFlag},
			OnUsageError: usageError,
			Action: func(c *cli.Context) error {
				if !c.IsSet("principal") || !c.IsSet("periods") || !c.IsSet("interest") {
					return fmt.Errorf("%w: compare needs principal, periods and interest", validators.ErrIncorrectParameters)
				}

				result, err := h.Compare(ctx, c.Float64("principal"), c.Float64("interest"), c.Int("periods"))
				if err != nil {
					return err
				}
				return report.WriteComparison(c.App.Writer, result)
			},
		},
	}

	return app
}

// paramsFromContext собирает флаги; не переданный флаг остается nil
func paramsFromContext(c *cli.Context) validators.Params {
	p := validators.Params{Type: c.String("type")}
	if c.IsSet("principal") {
		v := c.Float64("principal")
		p.Principal = &v
	}
	if c.IsSet("payment") {
		v := c.Float64("payment")
		p.Payment = &v
	}
	if c.IsSet("periods") {
		v := c.Int("periods")
		p.Periods = &v
	}
	if c.IsSet("interest") {
		v := c.Float64("interest")
		p.Interest = &v
	}
	return p
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %v", validators.ErrIncorrectParameters, err)
}

func exitCode(err error, stdout io.Writer, logger *slog.Logger) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, handlers.ErrCalculationFailed):
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return exitCalculation
	case errors.Is(err, validators.ErrIncorrectParameters):
		logger.Info("rejected parameters", slog.Any("error", err))
		fmt.Fprintln(stdout, report.IncorrectParameters)
		return exitUsage
	default:
		logger.Error("creditcalc failed", slog.Any("error", err))
		return exitCalculation
	}
}
