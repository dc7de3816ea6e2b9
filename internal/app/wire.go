//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/cache"
	pushGateway "dispatch/internal/gateway/rmq/push"
	courier_active_delivery_get "dispatch/internal/handlers/rest/courier_active_delivery_get"
	courier_availability_put "dispatch/internal/handlers/rest/courier_availability_put"
	courier_cashout_post "dispatch/internal/handlers/rest/courier_cashout_post"
	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_history_get "dispatch/internal/handlers/rest/courier_history_get"
	courier_location_put "dispatch/internal/handlers/rest/courier_location_put"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	courier_verify_post "dispatch/internal/handlers/rest/courier_verify_post"
	delivery_accept_post "dispatch/internal/handlers/rest/delivery_accept_post"
	delivery_confirm_post "dispatch/internal/handlers/rest/delivery_confirm_post"
	delivery_get "dispatch/internal/handlers/rest/delivery_get"
	delivery_pickup_post "dispatch/internal/handlers/rest/delivery_pickup_post"
	delivery_post "dispatch/internal/handlers/rest/delivery_post"
	delivery_rate_post "dispatch/internal/handlers/rest/delivery_rate_post"
	delivery_reject_post "dispatch/internal/handlers/rest/delivery_reject_post"
	"dispatch/internal/handlers/tasks/acceptance_sweep"
	"dispatch/internal/handlers/tasks/search_retry"
	wstracking "dispatch/internal/handlers/ws/tracking"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_handle"
	"dispatch/internal/pkg/rabbitmq"

	courierRepo "dispatch/internal/repository/courier"
	deliveryRepo "dispatch/internal/repository/delivery"
	locationRepo "dispatch/internal/repository/location"
	orderRepo "dispatch/internal/repository/order"
	transactionRepo "dispatch/internal/repository/transaction"
	courierService "dispatch/internal/service/courier"
	deliveryService "dispatch/internal/service/delivery"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"
	trackingService "dispatch/internal/service/tracking"
	walletService "dispatch/internal/service/wallet"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AcceptanceSweepInterval time.Duration
	SearchRetryInterval     time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDelivery   ServiceDelivery
	ServiceWallet     ServiceWallet
	ServiceTracking   ServiceTracking
	Markers           *cache.Markers
	Hub               *wstracking.Hub
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_availability_put.Service
	courier_location_put.Service
	courier_verify_post.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	delivery_accept_post.Service
	delivery_reject_post.Service
	delivery_pickup_post.Service
	delivery_confirm_post.Service
	delivery_rate_post.Service
	courier_active_delivery_get.Service
	courier_history_get.Service

	// Хук истечения окна принятия регистрируется в main на кеше маркеров.
	HandleAcceptanceTimeout(ctx context.Context, deliveryID, courierID int64) error
}

type ServiceWallet interface {
	courier_cashout_post.Service
}

type ServiceTracking interface {
	wstracking.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rabbit *rabbitmq.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMarkers,
		provideHub,
		providePushGateway,
		provideAcceptanceSweepInterval,
		provideSearchRetryInterval,

		provideCourierRepository,
		provideDeliveryRepository,
		provideLocationRepository,
		provideOrderRepository,
		provideTransactionRepository,

		provideServiceCourier,
		provideServiceWallet,
		provideServiceDispatch,
		provideServiceDelivery,
		provideServiceTracking,

		provideAcceptanceSweepTask,
		provideSearchRetryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(trackingService.Repository), new(*locationRepo.Repository)),
		wire.Bind(new(walletService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(walletService.TransactionRepository), new(*transactionRepo.Repository)),

		wire.Bind(new(deliveryService.Dispatcher), new(*dispatchService.Dispatch)),
		wire.Bind(new(deliveryService.Settler), new(*walletService.Wallet)),

		wire.Bind(new(courierService.Markers), new(*cache.Markers)),
		wire.Bind(new(deliveryService.Markers), new(*cache.Markers)),
		wire.Bind(new(dispatchService.Markers), new(*cache.Markers)),
		wire.Bind(new(trackingService.Markers), new(*cache.Markers)),

		wire.Bind(new(courierService.Push), new(*pushGateway.Gateway)),
		wire.Bind(new(deliveryService.Push), new(*pushGateway.Gateway)),
		wire.Bind(new(dispatchService.Push), new(*pushGateway.Gateway)),

		wire.Bind(new(deliveryService.Broadcaster), new(*wstracking.Hub)),
		wire.Bind(new(trackingService.Broadcaster), new(*wstracking.Hub)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(acceptance_sweep.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(search_retry.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	rabbit *rabbitmq.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMarkers,
		provideHub,
		providePushGateway,

		provideCourierRepository,
		provideDeliveryRepository,
		provideOrderRepository,
		provideTransactionRepository,

		provideServiceCourier,
		provideServiceWallet,
		provideServiceDispatch,
		provideServiceDelivery,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(walletService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(walletService.TransactionRepository), new(*transactionRepo.Repository)),

		wire.Bind(new(deliveryService.Dispatcher), new(*dispatchService.Dispatch)),
		wire.Bind(new(deliveryService.Settler), new(*walletService.Wallet)),

		wire.Bind(new(courierService.Markers), new(*cache.Markers)),
		wire.Bind(new(deliveryService.Markers), new(*cache.Markers)),
		wire.Bind(new(dispatchService.Markers), new(*cache.Markers)),

		wire.Bind(new(courierService.Push), new(*pushGateway.Gateway)),
		wire.Bind(new(deliveryService.Push), new(*pushGateway.Gateway)),
		wire.Bind(new(dispatchService.Push), new(*pushGateway.Gateway)),

		wire.Bind(new(deliveryService.Broadcaster), new(*wstracking.Hub)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

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

func provideMarkers() *cache.Markers {
	return cache.NewMarkers()
}

func provideHub(log logger.Logger) *wstracking.Hub {
	return wstracking.NewHub(log)
}

func providePushGateway(log logger.Logger, rabbit *rabbitmq.Client) *pushGateway.Gateway {
	return pushGateway.New(log, rabbit)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func provideServiceCourier(
	repository courierService.Repository,
	markers courierService.Markers,
	push courierService.Push,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, markers, push, txManager)
}

func provideServiceWallet(
	courierRepository walletService.CourierRepository,
	transactionRepository walletService.TransactionRepository,
	txManager walletService.TxManager,
) *walletService.Wallet {
	return walletService.New(courierRepository, transactionRepository, txManager)
}

func provideServiceDispatch(
	log logger.Logger,
	repository dispatchService.Repository,
	markers dispatchService.Markers,
	push dispatchService.Push,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(log, repository, markers, push, txManager)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	orderRepository deliveryService.OrderRepository,
	courierRepository deliveryService.CourierRepository,
	dispatcher deliveryService.Dispatcher,
	settler deliveryService.Settler,
	markers deliveryService.Markers,
	push deliveryService.Push,
	broadcaster deliveryService.Broadcaster,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		orderRepository,
		courierRepository,
		dispatcher,
		settler,
		markers,
		push,
		broadcaster,
		txManager,
	)
}

func provideServiceTracking(
	repository trackingService.Repository,
	markers trackingService.Markers,
	broadcaster trackingService.Broadcaster,
) *trackingService.Tracking {
	return trackingService.New(repository, markers, broadcaster)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	orderRepository orderService.OrderRepository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(orderRepository, handlerFactory)
}

func provideStatusHandlerFactory(deliveryService *deliveryService.Delivery) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(deliveryService)
}

func provideAcceptanceSweepInterval(cfg *config.Config) AcceptanceSweepInterval {
	return AcceptanceSweepInterval(cfg.Tasks.AcceptanceSweepInterval)
}

func provideSearchRetryInterval(cfg *config.Config) SearchRetryInterval {
	return SearchRetryInterval(cfg.Tasks.SearchRetryInterval)
}

func provideAcceptanceSweepTask(
	log logger.Logger,
	deliveryService acceptance_sweep.Service,
	interval AcceptanceSweepInterval,
) *acceptance_sweep.AcceptanceSweep {
	return acceptance_sweep.New(log, deliveryService, time.Duration(interval))
}

func provideSearchRetryTask(
	log logger.Logger,
	deliveryService search_retry.Service,
	interval SearchRetryInterval,
) *search_retry.SearchRetry {
	return search_retry.New(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	acceptanceSweepTask *acceptance_sweep.AcceptanceSweep,
	searchRetryTask *search_retry.SearchRetry,
) []background.Task {
	return []background.Task{
		acceptanceSweepTask,
		searchRetryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
