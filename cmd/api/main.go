package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"mnsreestr/cmd/internal/config"
	"mnsreestr/cmd/internal/infrastructure/mnsra"
	"mnsreestr/cmd/internal/service"
	"mnsreestr/cmd/internal/utils/validators"
)

const (
	envVarsPrefix   = "/mnsreestr/prod/"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	validate := validator.New()
	validators.Register(validate)

	registry := mnsra.NewClient(cfg.Registry)
	registryService := service.NewRegistryService(registry, validate)

	e := newServer(registryService)

	go func() {
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.SSMRegion()))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := (*param.Name)[prefixLength:]
			value := *param.Value
			if enverr := os.Setenv(key, value); enverr != nil {
				log.Fatalf("unable to set environment variable, %v", enverr)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
}
