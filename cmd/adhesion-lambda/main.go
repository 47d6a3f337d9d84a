// Package main is the AWS Lambda entry point for the serverless company
// registration function. It persists companies to DynamoDB.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/jsamuelsen11/company-adhesion-service/internal/adapters/lambda/adhesion"
	dynamorepo "github.com/jsamuelsen11/company-adhesion-service/internal/adapters/repository/dynamodb"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/clock"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/config"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/logging"
	"github.com/jsamuelsen11/company-adhesion-service/internal/platform/storeguard"
)

func main() {
	handler, err := build(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	lambda.Start(handler.Handle)
}

// build runs once per cold start. The DynamoDB client and breaker are reused
// across invocations.
func build(ctx context.Context) (*adhesion.Handler, error) {
	cfg, err := config.LoadFunction()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.DynamoDB.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	})

	guard := storeguard.New("dynamodb", cfg.Breaker, nil, logger)
	repo := dynamorepo.NewCompanyRepository(client, cfg.DynamoDB.TableName, guard)

	logger.Info("adhesion function initialized",
		slog.String("table", cfg.DynamoDB.TableName),
		slog.String("region", cfg.DynamoDB.Region),
	)

	return adhesion.NewHandler(repo, clock.System{}, logger), nil
}
