package main

import (
	"github.com/spf13/cobra"

	"github.com/meetoza/resume-analyzer/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume parsing, scoring and analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	parser, jdParser, scorer, recommender := buildServices(cfg)
	srv := server.New(server.Config{Port: cfg.ListenPort()}, server.Deps{
		Parser:      parser,
		JDParser:    jdParser,
		Scorer:      scorer,
		Recommender: recommender,
	})
	return srv.Start()
}
