package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DioGolang/GoCheckout/configs"
	"github.com/DioGolang/GoCheckout/internal/application/usecase"
	customeruc "github.com/DioGolang/GoCheckout/internal/application/usecase/customer"
	orderuc "github.com/DioGolang/GoCheckout/internal/application/usecase/order"
	productuc "github.com/DioGolang/GoCheckout/internal/application/usecase/product"
	"github.com/DioGolang/GoCheckout/internal/domain/customer"
	"github.com/DioGolang/GoCheckout/internal/domain/product"
	"github.com/DioGolang/GoCheckout/internal/infra/cache"
	"github.com/DioGolang/GoCheckout/internal/infra/database"
	"github.com/DioGolang/GoCheckout/internal/infra/event"
	"github.com/DioGolang/GoCheckout/internal/infra/web"
	"github.com/DioGolang/GoCheckout/internal/infra/web/handler"
	"github.com/DioGolang/GoCheckout/internal/infra/web/middleware"
	"github.com/DioGolang/GoCheckout/pkg/events"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	tracing "github.com/DioGolang/GoCheckout/pkg/otel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	log := logger.NewLogger(config.ServiceName, config.LogProd)

	shutdownTracer, err := tracing.InitProvider(ctx, config.ServiceName, config.Environment, config.OTELCollector)
	if err != nil {
		log.Error(ctx, "failed to init tracer", logger.WithError(err))
		os.Exit(1)
	}
	defer shutdownTracer()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewPrometheusMetrics(reg, config.ServiceName)

	conn, err := database.Open(ctx, config)
	if err != nil {
		log.Error(ctx, "failed to connect to database", logger.WithError(err))
		os.Exit(1)
	}
	defer conn.Close()

	if err := database.CreateSchema(ctx, conn); err != nil {
		log.Error(ctx, "failed to create schema", logger.WithError(err))
		os.Exit(1)
	}

	customers := database.NewCustomerRepository(conn, log)
	orders := database.NewOrderRepository(conn, log)
	var products product.Repository = database.NewProductRepository(conn, log)

	var rdb *redis.Client
	if config.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: net.JoinHostPort(config.RedisHost, config.RedisPort),
		})
		defer rdb.Close()
		products = cache.NewProductRepository(products, cache.NewRedisStore(rdb), config.CacheTTL, log, m)
	}

	dispatcher := events.NewDispatcher()
	mustRegister := func(name string, h events.EventHandler) {
		if err := dispatcher.Register(name, h); err != nil {
			log.Error(ctx, "failed to register event handler", logger.String("event", name), logger.WithError(err))
			os.Exit(1)
		}
	}
	mustRegister(customer.CustomerCreatedEventName, &customer.LogWhenCustomerCreatedHandler{Logger: log})
	mustRegister(customer.CustomerCreatedEventName, &customer.LogWhenCustomerCreatedSecondHandler{Logger: log})
	mustRegister(customer.AddressChangedEventName, &customer.LogWhenAddressChangedHandler{Logger: log})
	mustRegister(product.ProductCreatedEventName, event.WrapResilient(m, 5*time.Second, event.NewBreaker("product-mailer"),
		event.WrapExponentialBackoff(log, "SendEmailWhenProductIsCreated", 2, 100*time.Millisecond,
			&product.SendEmailWhenProductIsCreatedHandler{Mailer: &product.LogMailer{Logger: log}},
		),
	))

	health, err := handler.NewHealthHandler(config.ServiceName,
		handler.WithDatabase(config.DBDriver, conn.DB.DB),
		handler.WithRedis(rdb),
	)
	if err != nil {
		log.Error(ctx, "failed to build health handler", logger.WithError(err))
		os.Exit(1)
	}

	router := web.NewRouter(web.RouterConfig{
		ServiceName: config.ServiceName,
		Logger:      log,
		Metrics:     m,
		Gatherer:    reg,
		Health:      health,
		RateLimiter: middleware.NewRateLimiter(ctx, middleware.RateLimiterConfig{
			RequestsPerSecond: config.RateLimitRPS,
			Burst:             config.RateLimitBurst,
			CleanupInterval:   time.Minute,
			ClientTimeout:     3 * time.Minute,
		}),
		Customers: &handler.Customer{
			CreateUseCase: usecase.Instrument[customeruc.CreateInput, customeruc.Output]("CreateCustomer", m, customeruc.NewCreateUseCase(customers, dispatcher)),
			FindUseCase:   usecase.Instrument[customeruc.FindInput, customeruc.Output]("FindCustomer", m, customeruc.NewFindUseCase(customers)),
			ListUseCase:   usecase.Instrument[customeruc.ListInput, customeruc.ListOutput]("ListCustomers", m, customeruc.NewListUseCase(customers)),
			UpdateUseCase: usecase.Instrument[customeruc.UpdateInput, customeruc.Output]("UpdateCustomer", m, customeruc.NewUpdateUseCase(customers, dispatcher)),
			Logger:        log,
		},
		Products: &handler.Product{
			CreateUseCase:         usecase.Instrument[productuc.CreateInput, productuc.Output]("CreateProduct", m, productuc.NewCreateUseCase(products, dispatcher)),
			FindUseCase:           usecase.Instrument[productuc.FindInput, productuc.Output]("FindProduct", m, productuc.NewFindUseCase(products)),
			ListUseCase:           usecase.Instrument[productuc.ListInput, productuc.ListOutput]("ListProducts", m, productuc.NewListUseCase(products)),
			UpdateUseCase:         usecase.Instrument[productuc.UpdateInput, productuc.Output]("UpdateProduct", m, productuc.NewUpdateUseCase(products)),
			IncreasePricesUseCase: usecase.Instrument[productuc.IncreasePricesInput, productuc.ListOutput]("IncreasePrices", m, productuc.NewIncreasePricesUseCase(products, 4)),
			Logger:                log,
		},
		Orders: &handler.Order{
			PlaceUseCase:  usecase.Instrument[orderuc.PlaceInput, orderuc.PlaceOutput]("PlaceOrder", m, orderuc.NewPlaceUseCase(orders, customers, products, m, log)),
			FindUseCase:   usecase.Instrument[orderuc.FindInput, orderuc.Output]("FindOrder", m, orderuc.NewFindUseCase(orders)),
			ListUseCase:   usecase.Instrument[orderuc.ListInput, orderuc.ListOutput]("ListOrders", m, orderuc.NewListUseCase(orders)),
			UpdateUseCase: usecase.Instrument[orderuc.UpdateInput, orderuc.Output]("UpdateOrder", m, orderuc.NewUpdateUseCase(orders, products)),
			Logger:        log,
		},
	})

	srv := &http.Server{
		Addr:              ":" + config.WebServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(ctx, "server running", logger.String("port", config.WebServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server failed", logger.WithError(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.WithError(err))
	}
}
