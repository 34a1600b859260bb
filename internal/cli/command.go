// Package cli implements the eapi command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/katatrina/eapi-connector/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Loader reads the configuration and creates the gateway client.
type Loader func(configPath string) (*util.Config, csob.Gateway, error)

type app struct {
	configPath string
	load       Loader
}

// NewCommand creates the root command backed by the real gateway client.
func NewCommand() *cobra.Command {
	return newRootCommand(loadGateway)
}

func newRootCommand(load Loader) *cobra.Command {
	a := &app{load: load}

	cmd := &cobra.Command{
		Use:           "eapi",
		Short:         "Payment gateway eAPI connector",
		Long:          `eapi signs requests for the payment gateway eAPI, sends them and verifies the signed responses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "./app.env", "Path to config file")

	cmd.AddCommand(
		a.newInitCommand(),
		a.newProcessCommand(),
		a.newStatusCommand(),
		a.newCloseCommand(),
		a.newReverseCommand(),
		a.newRefundCommand(),
		a.newEchoCommand(),
		a.newCustomerCommand(),
		a.newOneclickInitCommand(),
		a.newOneclickStartCommand(),
		a.newServeCommand(),
	)

	return cmd
}

func loadGateway(configPath string) (*util.Config, csob.Gateway, error) {
	config, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	client, err := csob.NewClientFromConfig(&config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gateway client: %w", err)
	}
	log.Debug().Str("gateway_url", config.GatewayURL).Str("merchant_id", config.MerchantID).Msg("gateway client created")

	return &config, client, nil
}

func (a *app) gateway() (*util.Config, csob.Gateway, error) {
	return a.load(a.configPath)
}

func printPayment(w io.Writer, res *csob.PaymentResponse) {
	if res.PayID != "" {
		fmt.Fprintf(w, "payId:         %s\n", res.PayID)
	}
	fmt.Fprintf(w, "resultCode:    %d (%s)\n", *res.ResultCode, res.ResultMessage)
	if res.PaymentStatus != nil {
		fmt.Fprintf(w, "paymentStatus: %d (%s)\n", *res.PaymentStatus, csob.PaymentStatusText(*res.PaymentStatus))
	}
	if res.AuthCode != "" {
		fmt.Fprintf(w, "authCode:      %s\n", res.AuthCode)
	}
	for _, ext := range res.Extensions {
		switch ext.Extension {
		case csob.ExtensionMaskedCard:
			fmt.Fprintf(w, "card:          %s (expires %s)\n", ext.MaskedCln, ext.Expiration)
		case csob.ExtensionTrxDates:
			fmt.Fprintf(w, "created:       %s\n", ext.CreatedDate)
			if ext.AuthDate != "" {
				fmt.Fprintf(w, "authorized:    %s\n", ext.AuthDate)
			}
			if ext.SettlementDate != "" {
				fmt.Fprintf(w, "settled:       %s\n", ext.SettlementDate)
			}
		}
	}
}
