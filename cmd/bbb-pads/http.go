package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/antobinary/bbb-pads/cron"
	"github.com/antobinary/bbb-pads/gin"
	registryhttp "github.com/antobinary/bbb-pads/registry/http"
)

func init() {
	RootCmd.AddCommand(&HTTPCommand)
}

var HTTPCommand = cobra.Command{
	Use:   "http",
	Short: "Start the registry http server",
	Long:  "Start the registry http server",
	Run: func(cmd *cobra.Command, args []string) {
		srv := gin.New(env)

		registryhttp.RegisterMeetingEndpoints(srv, registryService)
		registryhttp.RegisterUserEndpoints(srv, registryService)
		registryhttp.RegisterGroupEndpoints(srv, registryService)
		registryhttp.RegisterPadEndpoints(srv, registryService)
		registryhttp.RegisterSessionEndpoints(srv, registryService)

		events, cancel := eventBus.Subscribe(64)
		defer cancel()
		go func() {
			for evt := range events {
				logger.WithField("meeting", evt.MeetingID).Printf("event %s", evt.Name)
			}
		}()

		janitor := cron.NewJanitor(registryService, logger)
		janitor.Start(context.Background())
		defer janitor.Stop()

		addr := cfg.HTTP.Addr
		if addr == "" {
			addr = ":1789"
		}
		logger.Print("server started, listening on ", addr)
		if err := srv.Run(addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
