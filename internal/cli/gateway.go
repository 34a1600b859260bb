package cli

import (
	"fmt"

	"github.com/katatrina/eapi-connector/api"
	"github.com/katatrina/eapi-connector/internal/csob"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newEchoCommand() *cobra.Command {
	var post bool

	cmd := &cobra.Command{
		Use:   "echo",
		Short: "Check the connection and both keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			var res *csob.EchoResponse
			if post {
				res, err = gateway.EchoPost(cmd.Context())
			} else {
				res, err = gateway.Echo(cmd.Context())
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "echo OK (dttm %s)\n", res.Dttm)
			return nil
		},
	}

	cmd.Flags().BoolVar(&post, "post", false, "Send the echo as a POST request")
	return cmd
}

func (a *app) newCustomerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "customer <customerId>",
		Short: "Check whether a customer has a stored card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			res, err := gateway.CustomerInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (resultCode %d)\n", args[0], res.ResultMessage, *res.ResultCode)
			return nil
		},
	}
}

func (a *app) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, gateway, err := a.gateway()
			if err != nil {
				return err
			}

			server := api.NewServer(config, gateway)
			log.Info().Str("address", config.HTTPServerAddress).Msg("starting HTTP server ✅")

			return server.Start(config.HTTPServerAddress)
		},
	}
}
