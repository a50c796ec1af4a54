package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/scusemua/alert-view/m/v2/src/components"
	"github.com/scusemua/alert-view/m/v2/src/config"
	"github.com/scusemua/alert-view/m/v2/src/registry"
	"github.com/scusemua/alert-view/m/v2/src/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	StylesheetPath  = "/web/alert-view.css"
	FontAwesomePath = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css"
)

func main() {
	// Routes must be identical on the client and on the server, so registration happens before
	// RunWhenOnBrowser.
	reg := registry.New()
	if err := registry.RegisterDefaults(reg); err != nil {
		panic(err)
	}
	reg.Mount()

	app.RouteFunc("/", func() app.Composer {
		return newIndex()
	})

	// When executed on the client-side, RunWhenOnBrowser() launches the app and never returns.
	// On the server-side it does nothing.
	app.RunWhenOnBrowser()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newIndex() app.Composer {
	return components.NewAlertViewStory()
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		address    string
	)

	cmd := &cobra.Command{
		Use:           "alertview",
		Short:         "Serve the alert-view component gallery.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.GetConfiguration()
			if configPath != "" {
				var err error
				opts, err = config.Load(configPath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
					return err
				}
			}

			if cmd.Flags().Changed("addr") {
				opts.Address = address
			}

			if err := opts.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
				return err
			}

			return serve(opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the YAML configuration file.")
	cmd.Flags().StringVar(&address, "addr", ":8000", "Address that the HTTP server will listen on.")

	return cmd
}

func serve(opts *config.Configuration) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	provider, err := opts.ThemeProvider()
	if err != nil {
		return err
	}

	http.Handle(StylesheetPath, server.NewStylesheetHandler(provider, logger))
	http.Handle(components.ConfigWebsocketPath, server.NewConfigHttpHandler(opts, logger))

	// The Handler serves the client and all the resources it requires to run in a web browser.
	http.Handle("/", &app.Handler{
		Name:        "AlertView",
		Title:       opts.Title,
		Description: "Dismissible alert component gallery.",
		Styles: []string{
			FontAwesomePath,
			StylesheetPath,
		},
	})

	logger.Info("AlertView HTTP server is starting now.", zap.String("address", opts.Address))

	if err := http.ListenAndServe(opts.Address, nil); err != nil {
		logger.Error("HTTP server stopped.", zap.Error(err))
		return err
	}

	return nil
}
