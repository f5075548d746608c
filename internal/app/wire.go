//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	estimateChangedGateway "delivery-estimator/internal/gateway/kafka/estimate_changed"
	grpc_estimator "delivery-estimator/internal/handlers/grpc/estimator"
	"delivery-estimator/internal/handlers/rest/delivery_check_post"
	"delivery-estimator/internal/handlers/rest/delivery_estimate_get"
	"delivery-estimator/internal/handlers/rest/serviceabilities_get"
	"delivery-estimator/internal/handlers/rest/serviceability_get"
	"delivery-estimator/internal/handlers/rest/serviceability_put"
	"delivery-estimator/internal/handlers/tasks/estimate_refresh"
	"delivery-estimator/internal/pkg/clock"
	"delivery-estimator/internal/pkg/config"
	"delivery-estimator/internal/pkg/factory/delivery_estimate"
	"delivery-estimator/internal/pkg/kafka"

	serviceabilityRepo "delivery-estimator/internal/repository/serviceability"
	stockRepo "delivery-estimator/internal/repository/stock"
	countdownService "delivery-estimator/internal/service/countdown"
	deliveryService "delivery-estimator/internal/service/delivery"
	serviceabilityService "delivery-estimator/internal/service/serviceability"

	"delivery-estimator/pkg/background"
	"delivery-estimator/pkg/logger"
	"delivery-estimator/pkg/querier"
	"delivery-estimator/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RefreshInterval time.Duration
)

type Application struct {
	ServiceDelivery       ServiceDelivery
	ServiceServiceability ServiceServiceability
	BackgroundWorkers     *background.Worker
}

type ServiceDelivery interface {
	delivery_estimate_get.Service
	delivery_check_post.Service
	grpc_estimator.Service
}

type ServiceServiceability interface {
	serviceability_get.Service
	serviceability_put.Service
	serviceabilities_get.Service
}

// InitializeApplication for the HTTP and gRPC service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideRefreshInterval,

		provideServiceabilityRepository,
		provideStockRepository,

		delivery_estimate.New,
		provideServiceServiceability,
		provideServiceDelivery,

		provideEstimateChangedGateway,
		provideCountdown,
		provideEstimateRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceServiceability), new(*serviceabilityService.Serviceability)),

		wire.Bind(new(serviceabilityService.Repository), new(*serviceabilityRepo.Repository)),
		wire.Bind(new(deliveryService.StockRepository), new(*stockRepo.Repository)),
		wire.Bind(new(deliveryService.ServiceabilityService), new(*serviceabilityService.Serviceability)),
		wire.Bind(new(deliveryService.Estimator), new(*delivery_estimate.DeliveryEstimateFactory)),
		wire.Bind(new(deliveryService.Clock), new(*clock.Clock)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(countdownService.ServiceabilityService), new(*serviceabilityService.Serviceability)),
		wire.Bind(new(countdownService.Estimator), new(*delivery_estimate.DeliveryEstimateFactory)),
		wire.Bind(new(countdownService.Publisher), new(*estimateChangedGateway.EstimateChangedGateway)),
		wire.Bind(new(countdownService.Clock), new(*clock.Clock)),

		wire.Bind(new(estimate_refresh.Service), new(*countdownService.Countdown)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceabilityService *serviceabilityService.Serviceability
}

// InitializeKafkaWorkerApp for the serviceability feed worker
// (cmd/worker-serviceability-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideServiceabilityRepository,
		provideServiceServiceability,

		wire.Bind(new(serviceabilityService.Repository), new(*serviceabilityRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock(cfg *config.Config) (*clock.Clock, error) {
	loc, err := cfg.Estimate.Location()
	if err != nil {
		return nil, err
	}
	return clock.New(loc), nil
}

func provideServiceabilityRepository(querier *querier.Querier) *serviceabilityRepo.Repository {
	return serviceabilityRepo.New(querier)
}

func provideStockRepository(querier *querier.Querier) *stockRepo.Repository {
	return stockRepo.New(querier)
}

func provideServiceServiceability(repository serviceabilityService.Repository) *serviceabilityService.Serviceability {
	return serviceabilityService.New(repository)
}

func provideServiceDelivery(
	serviceability deliveryService.ServiceabilityService,
	stock deliveryService.StockRepository,
	estimator deliveryService.Estimator,
	clock deliveryService.Clock,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		serviceability,
		stock,
		estimator,
		clock,
		txManager,
	)
}

func provideEstimateChangedGateway(producer *kafka.Producer) *estimateChangedGateway.EstimateChangedGateway {
	return estimateChangedGateway.New(producer)
}

func provideCountdown(
	serviceability countdownService.ServiceabilityService,
	estimator countdownService.Estimator,
	publisher countdownService.Publisher,
	clock countdownService.Clock,
) *countdownService.Countdown {
	return countdownService.New(serviceability, estimator, publisher, clock)
}

func provideRefreshInterval(cfg *config.Config) RefreshInterval {
	return RefreshInterval(cfg.Tasks.EstimateRefreshInterval)
}

func provideEstimateRefreshTask(
	log logger.Logger,
	service estimate_refresh.Service,
	interval RefreshInterval,
) *estimate_refresh.EstimateRefresh {
	return estimate_refresh.NewEstimateRefresh(log, service, time.Duration(interval))
}

func provideTaskList(
	estimateRefreshTask *estimate_refresh.EstimateRefresh,
) []background.Task {
	return []background.Task{
		estimateRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
