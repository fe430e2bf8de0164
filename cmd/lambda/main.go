package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/lucalvex/hub-projeto-diag-api/internal/config"
	"github.com/lucalvex/hub-projeto-diag-api/internal/container"
	"github.com/lucalvex/hub-projeto-diag-api/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	c := container.New()

	h := router.New(router.RouterConfig{
		UserHandler:          c.UserContainer.Handler,
		QuestionnaireHandler: c.QuestionnaireContainer.Handler,
		AnswerHandler:        c.AnswerContainer.Handler,
		ReportHandler:        c.ReportContainer.Handler,
		ReportRatePerMinute:  c.Settings.ReportRatePerMinute,
	})
	adapter = httpadapter.New(h)
	config.Logger.Info("Lambda handler ready")
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
