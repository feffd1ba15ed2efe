package cmd

import (
	"fmt"

	"github.com/NIHAAL084/ultimate-ai-assistant/config"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/NIHAAL084/ultimate-ai-assistant/network"
	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Inspect and talk to remote agents",
	}

	cmd.AddCommand(
		newAgentsListCmd(),
		newAgentsDescribeCmd(),
		newAgentsSendCmd(),
	)

	return cmd
}

func newNetworkService() (network.Service, error) {
	logConfig, err := config.ResolveLogConfig()
	if err != nil {
		return nil, err
	}
	a2aConfig, err := config.ResolveA2AConfig()
	if err != nil {
		return nil, err
	}
	logger := mylog.NewLogger(logConfig.LogLevel, logConfig.LogHandler)
	return network.NewService(logger, a2aConfig), nil
}

func newAgentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remote agents reachable from the configured URLs",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newNetworkService()
			if err != nil {
				return err
			}
			defer service.Close()
			fmt.Println(service.ListAgents(cmd.Context()))
			return nil
		},
	}
}

func newAgentsDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <agent-name>",
		Short: "Show a remote agent's capabilities and skills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newNetworkService()
			if err != nil {
				return err
			}
			defer service.Close()
			fmt.Println(service.GetCapabilities(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newAgentsSendCmd() *cobra.Command {
	params := &struct {
		ContextID string
		TaskID    string
	}{}
	cmd := &cobra.Command{
		Use:   "send <agent-name> <message>",
		Short: "Send a message to a remote agent and print the reply",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newNetworkService()
			if err != nil {
				return err
			}
			defer service.Close()
			reply, err := service.SendMessage(cmd.Context(), args[0], args[1], &network.SendOptions{
				ContextID: params.ContextID,
				TaskID:    params.TaskID,
			})
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.ContextID, "context-id", "", "Conversation context id to continue")
	cmd.Flags().StringVar(&params.TaskID, "task-id", "", "Task id to continue")
	return cmd
}
