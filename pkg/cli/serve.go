package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rightsgrid/rightsgrid/pkg/cli/config"
	httpctrl "github.com/rightsgrid/rightsgrid/pkg/controller/http"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
	"github.com/rightsgrid/rightsgrid/pkg/utils/logging"
	"github.com/rightsgrid/rightsgrid/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var seed bool
	var appCfg config.AppConfig
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RIGHTSGRID_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "seed",
			Usage:       "Register the builtin reference model scores when the repository is empty",
			Value:       true,
			Sources:     cli.EnvVars("RIGHTSGRID_SEED"),
			Destination: &seed,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load jurisdiction configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, registry)

			if seed {
				if err := uc.Score.Seed(ctx); err != nil {
					return goerr.Wrap(err, "failed to seed reference model scores")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Graceful shutdown on SIGINT/SIGTERM
			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(sigCtx)

			g.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"jurisdictions", registry.Len(),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})

			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return g.Wait()
		},
	}
}
