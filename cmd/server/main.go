/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the FormFlow server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	serverHome, homeErr := getServerHome()

	// LOG_LEVEL and LOG_FORMAT may come from the .env file, so it is applied before the logger exists.
	envPath, envErr := config.LoadEnvFile(serverHome)
	logger := log.GetLogger()

	if homeErr != nil {
		logger.Fatal("Failed to get current working directory", log.Error(homeErr))
	}
	logger.Info("Using home directory", log.String("home", serverHome))
	if envErr != nil {
		logger.Debug("No .env file loaded", log.String("path", envPath), log.Error(envErr))
	} else {
		logger.Debug("Loaded environment from .env file", log.String("path", envPath))
	}

	cfg := initConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	if _, err := events.Initialize(cfg.Events); err != nil {
		logger.Fatal("Failed to initialize the event publisher", log.Error(err))
	}

	mux := initMultiplexer(logger, cfg)
	if mux == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runHTTPServer(ctx, logger, cfg, mux)
}

// getServerHome returns the home directory given on the command line, or the working directory.
func getServerHome() (string, error) {
	homeFlag := flag.String("home", "", "Path to the FormFlow home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag, nil
	}
	return os.Getwd()
}

// initConfigurations loads the deployment configuration and initializes the server runtime.
func initConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(logger *log.Logger, cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()
	if err := registerServices(mux, cfg); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}
	return mux
}

// runHTTPServer serves requests until the context is cancelled, then drains in-flight requests
// and releases the data source connections.
func runHTTPServer(ctx context.Context, logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("FormFlow server started (HTTP)...", log.String("address", serverAddr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve HTTP requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down FormFlow server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(err))
	}
	shutdownServices(shutdownCtx, logger)
	logger.Sync()
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
