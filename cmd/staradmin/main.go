package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"staradmin/config"
	"staradmin/internal/delivery"
	"staradmin/internal/delivery/http"
	"staradmin/internal/delivery/http/middleware"
	"staradmin/internal/delivery/http/router/handler"
	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/service"
	"staradmin/internal/infra/assistant"
	logs "staradmin/internal/infra/log"
	"staradmin/internal/infra/media"
	"staradmin/internal/infra/prefs"
	"staradmin/internal/infra/qrcode"
	"staradmin/internal/infra/starstore"
	"staradmin/internal/infra/translate"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
	"staradmin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startPoller,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.NewState,
		store.NewNotifier,
		store.NewActivityLog,
		prefs.New,
		newUpstreamClient,
	)
}

// newUpstreamClient wires the upstream HTTP client to the persisted
// bearer token so every authenticated call picks up the live session.
func newUpstreamClient(cfg *config.Config, prefsStore *prefs.Store) *starstore.Client {
	tokens := starstore.TokenFunc(func() string {
		return prefsStore.Get(prefs.KeyAuthToken)
	})

	return starstore.NewClient(cfg, tokens)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			starstore.NewAuthRepository,
			starstore.NewProductRepository,
			starstore.NewOrderRepository,
			starstore.NewCustomerRepository,
			starstore.NewCategoryRepository,
			starstore.NewCouponRepository,
			starstore.NewDefectiveRepository,
			starstore.NewSectionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			translate.New,
			media.New,
			newQRCodeService,
			newAssistant,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

// newAssistant grounds the chat assistant in a live snapshot of the
// cached working set.
func newAssistant(cfg *config.Config, state *store.State, logger *slog.Logger) service.Assistant {
	stats := func() assistant.Stats {
		snapshot := assistant.Stats{
			Products:  state.Products.Len(),
			Customers: state.Customers.Len(),
		}
		for _, order := range state.Orders.Items() {
			snapshot.Orders++
			if order.Status == entity.OrderProcessing {
				snapshot.Processing++
			}
			if order.Status != entity.OrderCancelled {
				snapshot.TotalRevenue += order.Price
			}
		}

		return snapshot
	}

	return assistant.New(cfg, stats, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewProductService,
			impl.NewOrderService,
			impl.NewCustomerService,
			impl.NewMarketingService,
			impl.NewBuilderService,
			impl.NewFinanceService,
			impl.NewDashboardService,
			impl.NewSettingsService,
			impl.NewAssistantService,
			impl.NewNotificationService,
			impl.NewUploadService,
			impl.NewSyncService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewCustomerHandler,
			handler.NewMarketingHandler,
			handler.NewFinanceHandler,
			handler.NewBuilderHandler,
			handler.NewAssistantHandler,
			handler.NewUploadHandler,
			handler.NewSettingsHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

type pollerParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Session usecase.SessionUsecase
	Sync    usecase.SyncUsecase
}

// startPoller restores the persisted session, then mirrors the upstream
// collections on a fixed interval until shutdown.
func startPoller(params pollerParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go runPoller(ctx, params, done)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}

func runPoller(ctx context.Context, params pollerParams, done chan<- struct{}) {
	defer close(done)

	if _, err := params.Session.Restore(ctx); err != nil {
		params.Logger.Info("No session to restore", slog.Any("reason", err))
	} else if err := params.Sync.RefreshAll(ctx); err != nil {
		params.Logger.Warn("Initial sync incomplete", slog.Any("error", err))
	}

	ticker := time.NewTicker(params.Config.Poll.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := params.Sync.RefreshAll(ctx); err != nil {
				params.Logger.Warn("Sync incomplete", slog.Any("error", err))
			}
		}
	}
}
