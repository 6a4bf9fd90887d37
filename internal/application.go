package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/blockfall/internal/config"
	"github.com/rocketscienceinc/blockfall/internal/tetris"
	"github.com/rocketscienceinc/blockfall/internal/transport/tui"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	options := conf.Game.Options()
	game := tetris.NewDefault(options, conf.Game.Seed)
	session := usecase.NewSession(logger, game)

	go session.Run(ctx)
	defer func() {
		session.Close()
		<-session.Done()
	}()

	log.Info("Starting game",
		"session_id", session.ID(),
		"height", game.Options().Height,
		"width", game.Options().Width,
		"queue_length", game.Options().QueueLength,
	)

	if err := tui.Run(ctx, session, game.Options().Height, conf.Game.FrameRate); err != nil {
		log.Error("terminal UI error", "error", err)
		return err
	}

	log.Info("Game finished")
	return nil
}
