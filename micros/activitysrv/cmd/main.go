package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sweemingdow/sdact/external/econfig"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/actboot"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/config/asncfg"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hhttp"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hrpc"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/routers"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/services/actsrv"
	"github.com/sweemingdow/sdact/pkg/applog"
	"github.com/sweemingdow/sdact/pkg/routebinder"
)

func main() {
	cfgPath := flag.String("config", "", "static config yaml path, defaults are used when empty")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "activitysrv: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	staticCfg, err := asncfg.LoadStaticConfig(cfgPath)
	if err != nil {
		return err
	}

	if err = applog.Init(econfig.LogConfigConvert(staticCfg.LogCfg)); err != nil {
		return err
	}
	defer applog.Close()

	lg := applog.AppLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	booter := actboot.NewBooter(staticCfg.ServerCfg, actboot.HttpErrorHandler)

	err = booter.StartAndServe(ctx, func() (routebinder.AppRouterBinder, error) {
		as := actsrv.NewActivityService()

		return routers.NewActivityServerRouteBinder(
			hrpc.NewActivityHandler(as),
			hhttp.NewActivityHandler(as),
		), nil
	})

	if err != nil {
		lg.Error().Stack().Err(err).Msg("activity server stopped with error")
		return err
	}

	lg.Info().Msg("activity server stopped")
	return nil
}
