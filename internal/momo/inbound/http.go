package inbound

import (
	"context"
	"io"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgrouter"
)

type uc interface {
	Import(ctx context.Context, r io.Reader) (usecase.ImportResult, error)
	List(ctx context.Context, filter usecase.TxFilter, page, pageSize int) (usecase.ListResult, error)
	Get(ctx context.Context, internalID int64) (entity.Transaction, error)
	Lookup(ctx context.Context, transactionID string) (entity.Transaction, error)
	Create(ctx context.Context, input usecase.CreateInput) (entity.Transaction, error)
	Update(ctx context.Context, internalID int64, input usecase.UpdateInput) (entity.Transaction, error)
	Delete(ctx context.Context, internalID int64) error
}

// RegisterHTTPEndpoint mounts the transaction API. Every route goes through
// the given middleware, which the application uses for basic auth.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, mws ...pkgrouter.Middleware) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/imports", end.Import, mws...)

	// GET /transactions doubles as the external-id lookup via ?transaction_id=
	// so the path space stays free of conflicts with /transactions/:id.
	r.GET("/transactions", end.ListTransactions, mws...)
	r.POST("/transactions", end.CreateTransaction, mws...)
	r.GET("/transactions/:id", end.GetTransaction, mws...)
	r.PUT("/transactions/:id", end.UpdateTransaction, mws...)
	r.DELETE("/transactions/:id", end.DeleteTransaction, mws...)
}
