package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pipeslide/internal/games/pipeslide"
	"github.com/vovakirdan/pipeslide/internal/registry"
	"github.com/vovakirdan/pipeslide/internal/storage"
	"github.com/vovakirdan/pipeslide/internal/transport/ws"
)

var (
	flagWSAddr    string
	flagWSGame    string
	flagWSOrigins []string
)

var serveWSCmd = &cobra.Command{
	Use:   "serve-ws",
	Short: "Start the websocket server",
	Long: `Serve PipeSlide over websockets at /ws. Every connection plays its
own board and receives JSON state updates.

Client messages:
  {"type":"select","dir":"left"}   move the selection
  {"type":"slide","dir":"up"}      slide the selected pipe into a gap
  {"type":"move","dir":"right"}    select, or slide when selection cannot move
  {"type":"rotate"}                rotate the selected pipe
  {"type":"pause"} {"type":"restart"} {"type":"ping"}

Examples:
  pipeslide serve-ws
  pipeslide serve-ws --addr :9000 --variant pipeslide_mini
  pipeslide serve-ws --origin example.com`,
	RunE: runServeWS,
}

func init() {
	serveWSCmd.Flags().StringVar(&flagWSAddr, "addr", ":8080", "HTTP listen address")
	serveWSCmd.Flags().StringVar(&flagWSGame, "variant", pipeslide.IDClassic, "Variant served to every connection")
	serveWSCmd.Flags().StringSliceVar(&flagWSOrigins, "origin", nil, "Extra allowed browser origins")
}

func runServeWS(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagWSGame) {
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, flagWSGame)
	}

	logger := log.Default().WithPrefix("pipeslide-ws")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	srv := ws.NewServer(ws.Config{
		GameID:         flagWSGame,
		Options:        pipeslide.GetOptions(),
		TickRate:       flagFPS,
		Seed:           flagSeed,
		OriginPatterns: flagWSOrigins,
		Store:          store,
		Logger:         logger,
	})

	mux := http.NewServeMux()
	mux.Handle("GET /ws", srv)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpSrv := &http.Server{
		Addr:              flagWSAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", flagWSAddr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
