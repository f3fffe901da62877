package main

import (
	"github.com/AugustoOmena/Checkout-MerPag/internal/config"
	"github.com/AugustoOmena/Checkout-MerPag/internal/logging"
	"github.com/AugustoOmena/Checkout-MerPag/pkg/lambda"
	"github.com/AugustoOmena/Checkout-MerPag/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func main() {
	awslambda.Start(lambda.FunctionURLHandler(container.PaymentHandler.Handler()))
}
