package momo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/event"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/inbound"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/store"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgconfig"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgrouter"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgroutine"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
}

// New wires the transaction module: store driver, review event pipeline,
// usecase and HTTP endpoints. The returned closer stops the consumer and
// releases the store.
func New(dep Dependency) (func(context.Context) error, error) {
	storage, storeCloser, err := newStore(dep.Context, dep.Config)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus(512)
	consumer := event.NewReviewConsumer(bus, event.LogReviewer{}, event.ConsumerConfig{
		Workers:     4,
		MaxRetries:  3,
		BaseBackoff: 200 * time.Millisecond,
	})
	consumer.Start()

	eventID, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, err
	}

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Events:  bus,
		EventID: eventID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, authMiddleware(dep.Config)...)

	bootImport(dep, uc)

	closer := func(ctx context.Context) error {
		err := consumer.Stop(ctx)
		if storeCloser != nil {
			if cerr := storeCloser(ctx); err == nil {
				err = cerr
			}
		}
		return err
	}

	return closer, nil
}

func newStore(ctx context.Context, cfg pkgconfig.Config) (usecase.Store, func(context.Context) error, error) {
	driver := cfg.GetString("modules.momo.store.driver")
	switch driver {
	case "", "memory":
		return store.NewMemory(), nil, nil
	case "file":
		s, err := store.OpenFile(cfg.GetString("modules.momo.store.file.path"))
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case "mongo":
		s, closer, err := store.NewMongo(ctx, store.MongoConfig{
			URI:        cfg.GetString("modules.momo.store.mongo.uri"),
			Database:   cfg.GetString("modules.momo.store.mongo.database"),
			Collection: cfg.GetString("modules.momo.store.mongo.collection"),
		})
		if err != nil {
			return nil, nil, err
		}
		return s, closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func authMiddleware(cfg pkgconfig.Config) []pkgrouter.Middleware {
	username := cfg.GetString("modules.momo.auth.username")
	password := cfg.GetString("modules.momo.auth.password")
	if username == "" || password == "" {
		slog.Warn("transaction endpoints run without basic auth, set modules.momo.auth")
		return nil
	}

	return []pkgrouter.Middleware{pkgrouter.BasicAuth(username, password, "transactions")}
}

// bootImport loads a backup file at startup when one is configured. Failure
// is logged, not fatal: the API still serves an empty store.
func bootImport(dep Dependency, uc *usecase.Usecase) {
	path := dep.Config.GetString("modules.momo.source")
	if path == "" {
		return
	}

	dep.Goroutine.Go(dep.Context, func(ctx context.Context) error {
		result, err := uc.ImportFile(ctx, path)
		if err != nil {
			slog.WarnContext(ctx, "boot import failed", "path", path, "error", err)
			return nil
		}

		slog.InfoContext(ctx, "boot import complete", "path", path, "count", result.Count, "review", result.Reviewed)
		return nil
	})
}
