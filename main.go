package main

import (
	"os"

	_ "github.com/katatrina/eapi-connector/docs"
	"github.com/katatrina/eapi-connector/internal/cli"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			eAPI Connector
//	@version		1.0.0
//	@description	HTTP surface for creating and managing payment gateway eAPI payments

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.NewCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed 😣")
		os.Exit(1)
	}
}
