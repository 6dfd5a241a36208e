package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

// Import accepts an SMS backup either as a raw XML body or as the "file"
// part of a multipart form.
func (h *HTTPEndpoint) Import(ctx context.Context, r *http.Request) (any, error) {
	reader, cleanup, err := extractXMLReader(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.Import(ctx, reader)
	if err != nil {
		return nil, err
	}

	return ImportResponse{Count: result.Count, Reviewed: result.Reviewed}, nil
}

func (h *HTTPEndpoint) ListTransactions(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	if transactionID := strings.TrimSpace(query.Get("transaction_id")); transactionID != "" {
		tx, err := h.uc.Lookup(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		return TransactionResponse{Transaction: toHTTPTransaction(tx)}, nil
	}

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	filter, err := parseTypeFilter(query.Get("type"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, toHTTPTransaction(tx))
	}

	return ListTransactionsResponse{
		Transactions: transactions,
		page:         result.Page,
		pageSize:     result.PageSize,
		total:        result.Total,
	}, nil
}

func (h *HTTPEndpoint) GetTransaction(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseInternalID(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return TransactionResponse{Transaction: toHTTPTransaction(tx)}, nil
}

func (h *HTTPEndpoint) CreateTransaction(ctx context.Context, r *http.Request) (any, error) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	tx, err := h.uc.Create(ctx, usecase.CreateInput{
		TransactionID: req.TransactionID,
		Type:          req.Type,
		Amount:        req.Amount,
		Fee:           req.Fee,
		Balance:       req.Balance,
		Sender:        req.Sender,
		Receiver:      req.Receiver,
		Timestamp:     req.Timestamp,
		Raw:           req.Raw,
	})
	if err != nil {
		return nil, err
	}

	return CreatedTransactionResponse{Transaction: toHTTPTransaction(tx)}, nil
}

func (h *HTTPEndpoint) UpdateTransaction(ctx context.Context, r *http.Request) (any, error) {
	id, err := parseInternalID(ctx)
	if err != nil {
		return nil, err
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, pkgerror.NewInvalidFormat()
	}

	tx, err := h.uc.Update(ctx, id, usecase.UpdateInput{
		Type:      req.Type,
		Amount:    req.Amount,
		Fee:       req.Fee,
		Balance:   req.Balance,
		Sender:    req.Sender,
		Receiver:  req.Receiver,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return nil, err
	}

	return TransactionResponse{Transaction: toHTTPTransaction(tx)}, nil
}

func (h *HTTPEndpoint) DeleteTransaction(ctx context.Context, r *http.Request) (any, error) {
	if id, err := parseInternalID(ctx); err != nil {
		return nil, err
	} else if err := h.uc.Delete(ctx, id); err != nil {
		return nil, err
	}

	return nil, nil
}

func parseInternalID(ctx context.Context) (int64, error) {
	raw := pkgrouter.GetParam(ctx, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, pkgerror.NewInvalidInput(errors.New("invalid transaction id"))
	}
	return id, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		if value > 100 {
			value = 100
		}
		pageSize = value
	}

	return page, pageSize, nil
}

func parseTypeFilter(typeRaw string) (usecase.TxFilter, error) {
	filter := usecase.TxFilter{}

	if typeRaw == "" {
		return filter, nil
	}

	for _, value := range strings.Split(typeRaw, ",") {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		txType := entity.TransactionType(strings.ToLower(value))
		if !txType.Valid() {
			return filter, pkgerror.NewInvalidInput(errors.New("invalid type filter"))
		}
		filter.Types = append(filter.Types, txType)
	}

	return filter, nil
}

func extractXMLReader(r *http.Request) (io.Reader, func(), error) {
	contentType := r.Header.Get("Content-Type")
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil && strings.EqualFold(mediaType, "multipart/form-data") {
			return extractMultipartFile(r)
		}
	}

	if r.Body == nil {
		return nil, func() {}, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	return r.Body, func() {}, nil
}

func extractMultipartFile(r *http.Request) (io.Reader, func(), error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, func() {}, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, func() {}, pkgerror.NewInvalidInput(errors.New("file part is required"))
			}
			return nil, func() {}, pkgerror.NewInvalidFormat()
		}

		if part.FormName() == "file" {
			return part, func() { _ = part.Close() }, nil
		}
		_ = part.Close()
	}
}
