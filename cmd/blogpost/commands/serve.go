package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/handler"
	"github.com/ncobase/blogpost/server"
	"github.com/ncobase/blogpost/service"
	"github.com/spf13/cobra"
)

const flushTimeout = 2 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, cleanup, err := newApp(ctx, *configFile, false)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := repository.NewBlogPostRepository(a.data.Collection(), a.logger)
			svc := service.NewService(repo, a.data, a.logger)
			h := handler.NewHandler(svc, a.logger)

			srv, err := server.NewServer(a.config, h, a.logger)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}
