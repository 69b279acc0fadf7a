package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/danmuck/ghostwire/internal/auth"
	"github.com/danmuck/ghostwire/internal/config"
	"github.com/danmuck/ghostwire/internal/server"
)

func runServe(args []string, _ io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	cfgPath := fs.String("config", "", "session config TOML")
	listen := fs.String("listen", "", "packet listen address (overrides server.listen)")
	admin := fs.String("admin", "", "admin HTTP address (overrides server.admin_addr; empty disables)")
	if ok, err := parseFlags(fs, args, stdout); !ok {
		return err
	}
	if *cfgPath == "" {
		return fmt.Errorf("serve: --config is required")
	}

	fileCfg, err := config.LoadSessionConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		fileCfg.Server.Listen = *listen
	}
	if fs.Changed("admin") {
		fileCfg.Server.AdminAddr = *admin
	}
	sessCfg, err := fileCfg.Session()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	responder := server.NewResponder(sessCfg)
	ln, err := net.Listen("tcp", fileCfg.Server.Listen)
	if err != nil {
		return fmt.Errorf("serve: listen %s: %w", fileCfg.Server.Listen, err)
	}

	if fileCfg.Server.AdminAddr != "" {
		httpSrv := &http.Server{
			Addr:              fileCfg.Server.AdminAddr,
			Handler:           server.AdminRouter(responder, adminValidator(fileCfg.Server.AdminToken)),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info().Str("addr", httpSrv.Addr).Msg("admin listening")
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("admin server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			httpSrv.Shutdown(shutdownCtx)
		}()
	}

	return responder.Serve(ctx, ln)
}

func adminValidator(token string) auth.Validator {
	if token == "" {
		return nil
	}
	return auth.StaticToken{Token: token}
}
