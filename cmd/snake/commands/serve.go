package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/classic/api"
	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiListen  = ":3005"
	twoPlayer  = false
	promEnable = true
	promListen = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
	serveCmd.Flags().BoolVar(&twoPlayer, "two-player", twoPlayer, "start rounds in two player mode")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves a snake session over http and websocket",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		cfg, err := roundConfig(modeFor(twoPlayer))
		if err != nil {
			log.WithError(err).Fatal("invalid round configuration")
		}
		k, closer, err := openKeeper()
		if err != nil {
			log.WithError(err).WithField("backend", backendName).Fatal("unable to start up backend store")
		}
		defer closer()

		s := session.New(cfg, k, session.Options{})
		defer s.Close()

		srv := api.New(apiListen, s)
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("api shutdown failed")
			}
		}()

		if err := srv.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", apiListen).
				Fatal("api server failed")
		}
	},
}

func modeFor(two bool) rules.GameMode {
	if two {
		return rules.GameModeTwoPlayer
	}
	return rules.GameModeSinglePlayer
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
