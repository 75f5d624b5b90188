package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"blogapi/app/config"
	"blogapi/app/logging"
	"blogapi/app/repositories"
	"blogapi/app/routes"
	"blogapi/app/services"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the CLI command. With no arguments it serves the API.
func RealMain() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = strings.ToLower(os.Args[1])
	}

	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", CliVersion)
	case "serve":
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog API server (default).

Environment:
  PORT, LOG_LEVEL, LOG_PATH, RATE_LIMIT_RPS, RATE_LIMIT_BURST, SHUTDOWN_TIMEOUT
`
	fmt.Println(helpText)
}

// serve loads configuration and runs the API until SIGINT or SIGTERM.
func serve() error {
	cfg := config.Load()

	log, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, log)
}

// run serves the API on cfg.Addr() until ctx is done, then shuts down
// within cfg.ShutdownTimeout.
func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	db, err := repositories.OpenInMemory(log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	postRepo := repositories.NewBadgerPostRepository(db)

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	router := routes.SetupRoutes(routes.Dependencies{
		PostService:    services.NewPostService(postRepo),
		CommentService: services.NewCommentService(postRepo),
		Logger:         log,
		Limiter:        limiter,
	})
	srv := routes.NewServer(cfg.Addr(), router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
