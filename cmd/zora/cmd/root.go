package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	zora "github.com/NIHAAL084/ultimate-ai-assistant"
	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	params := &struct {
		Port     int
		CardFile string
	}{}
	cmd := &cobra.Command{
		Use:   "zora",
		Short: "ZORA assistant server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logConfig, err := config.ResolveLogConfig()
			if err != nil {
				return err
			}
			logger := mylog.NewLogger(logConfig.LogLevel, logConfig.LogHandler)

			options := []zora.Option{
				zora.WithLogger(logger),
				zora.WithLogConfig(logConfig),
			}

			if params.CardFile != "" {
				card, err := loadAgentCard(params.CardFile)
				if err != nil {
					return err
				}
				options = append(options, zora.WithAgentCard(card))
			}

			serverConfig, err := config.ResolveServerConfig()
			if err != nil {
				return err
			}
			if params.Port > 0 {
				serverConfig.Port = params.Port
			}
			options = append(options, zora.WithServerConfig(serverConfig))

			app, err := zora.New(ctx, options...)
			if err != nil {
				return err
			}
			defer app.Close()

			addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)
			logger.Info("server started", "addr", addr, "agent", app.Card().Name)
			defer logger.Info("server stopped")

			server := &http.Server{
				Addr:    addr,
				Handler: app.Handler(),
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			go func() {
				<-ctx.Done()
				if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
					logger.Error("failed to shutdown server", "error", err)
				}
			}()

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&params.Port, "port", "p", 0, "Port to listen on, overrides A2A_SERVER_PORT")
	cmd.Flags().StringVarP(&params.CardFile, "card", "c", "", "Agent card yaml file")

	cmd.AddCommand(newAgentsCmd())

	return cmd
}

func loadAgentCard(path string) (*entity.AgentCard, error) {
	cardBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read agent card file: %s", path)
	}
	var card entity.AgentCard
	if err := yaml.Unmarshal(cardBytes, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal agent card file: %s", path)
	}
	if card.Name == "" {
		return nil, errors.New("agent card has no name")
	}
	return &card, nil
}

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}
