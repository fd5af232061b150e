// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"phonq/cnf"
	"phonq/dict/handlers"
	"phonq/dict/loader"
	"phonq/docs"
	"phonq/general"
	"phonq/monitoring"
	monitoringActions "phonq/monitoring/handlers"
	"phonq/openapi"
)

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

type apiServer struct {
	server    *http.Server
	conf      *cnf.Conf
	provider  *loader.Provider
	opsLogger *monitoring.OpsLogger
	version   general.VersionInfo
}

//go:embed docs/swagger.json
var swaggerJSON embed.FS

// opsRecorder feeds the monitoring log with one record
// per handled dictionary operation.
func opsRecorder(logger *monitoring.OpsLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		begin := time.Now()
		ctx.Next()
		op := ctx.FullPath()
		if op == "" {
			return
		}
		var opErr error
		if len(ctx.Errors) > 0 {
			opErr = ctx.Errors.Last()

		} else if ctx.Writer.Status() >= http.StatusBadRequest {
			opErr = fmt.Errorf("operation failed with status %d", ctx.Writer.Status())
		}
		logger.Log(monitoring.OpLog{
			Operation: op,
			Begin:     begin,
			End:       time.Now(),
			Err:       opErr,
		})
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.Use(opsRecorder(api.opsLogger))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	dictActions := handlers.NewActions(api.provider)

	engine.GET("/", mkServerInfo(api.version))

	if api.version.Version != "" {
		docs.SwaggerInfo.Version = api.version.Version
	}
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET(
		"/openapi",
		openapi.MkHandleRequest(api.conf, api.version.Version),
	)

	// also serve the raw swagger JSON for generic clients:
	engine.GET(
		"/openapi-json",
		func(ctx *gin.Context) {
			jsonFile, err := swaggerJSON.ReadFile("docs/swagger.json")
			if err != nil {
				err = fmt.Errorf("Failed to read Swagger file: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, jsonFile)
		},
	)

	engine.GET(
		"/dictionary", dictActions.DictionaryInfo)

	engine.GET(
		"/pronunciation/:word", dictActions.Pronunciation)

	engine.GET(
		"/syllables/:word", dictActions.Syllables)

	engine.GET(
		"/stress/:word", dictActions.Stress)

	engine.GET(
		"/rhymes/:word", dictActions.Rhymes)

	engine.GET(
		"/search", dictActions.Search)

	engine.GET(
		"/phoneme/:symbol", dictActions.PhonemeCategory)

	engine.GET(
		"/phonemes", dictActions.PhonemeList)

	engine.POST(
		"/analysis", dictActions.Analysis)

	monitActions := monitoringActions.NewActions(api.opsLogger)
	protected := engine.Group("/monitoring").Use(AuthRequired(api.conf))

	protected.GET(
		"/queries", monitActions.QueriesLoad)

	protected.GET(
		"/queries/:operation", monitActions.SingleOperationLoad)

	protected.GET(
		"/recent", monitActions.RecentRecords)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

}

func (s *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down PHONQ HTTP API server")
	return s.server.Shutdown(ctx)
}

// watchReloadSignal rebuilds the dictionary snapshot on SIGHUP.
// A failed rebuild keeps the previous snapshot in place.
func watchReloadSignal(ctx context.Context, provider *loader.Provider) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			select {
			case <-ctx.Done():
				signal.Stop(hup)
				return
			case <-hup:
				log.Info().Msg("received SIGHUP, reloading dictionary sources")
				if err := provider.Reload(); err != nil {
					log.Error().Err(err).Msg("failed to reload dictionary sources")
				}
			}
		}
	}()
}

func runApiServer(conf *cnf.Conf, version general.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := loader.NewProvider(conf.Sources)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary sources")
		return
	}
	watchReloadSignal(ctx, provider)

	var statusWriter monitoring.StatusWriter
	services := make([]service, 0, 3)
	if conf.Monitoring != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(
			ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to monitoring database")
			return
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)

	} else {
		statusWriter = &monitoring.NullWriter{}
	}
	opsLogger := monitoring.NewOpsLogger(statusWriter)
	services = append(services, opsLogger)

	server := &apiServer{
		conf:      conf,
		provider:  provider,
		opsLogger: opsLogger,
		version:   version,
	}
	services = append(services, server)

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
