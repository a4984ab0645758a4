package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/studydeck/internal/db"
	"github.com/ziadkadry99/studydeck/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the studydeck web server",
	Long:  `Starts the studydeck web app: the training shell, the document viewer, the PDF materials and the JSON and websocket endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		// Open database.
		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv, err := server.New(server.Config{
			Port:         cfg.Port,
			MaterialsDir: cfg.MaterialsDir,
			AllowAll:     cfg.AllowAllOrigins,
			OpenDelay:    cfg.OpenDelay(),
			SessionIdle:  cfg.SessionIdle(),
		}, database, c)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go srv.SweepSessions(ctx, time.Minute)
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "studydeck server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		fmt.Fprintf(os.Stderr, "  Materials: %s\n", cfg.MaterialsDir)
		fmt.Fprintf(os.Stderr, "  Catalog: %s (%d modules)\n", c.Name, len(c.Modules))

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
