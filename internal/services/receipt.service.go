package services

import (
	"context"
	"errors"
	"time"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/internal/repository"
	"github.com/Bigsouley03/cat-payment-app/pkg/prom"
)

// ErrNotFound mirrors the repository sentinel at the service boundary.
var ErrNotFound = errors.New("receipt not found")

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error)
	GetByID(ctx context.Context, id int64) (*model.Receipt, error)
	List(ctx context.Context) ([]*model.Receipt, error)
	Update(ctx context.Context, id int64, receipt *model.Receipt) (*model.Receipt, error)
	Delete(ctx context.Context, id int64) error
}

type ReceiptService struct {
	receiptRepo ReceiptRepository
	catalog     *model.Catalog
}

func NewReceiptService(receiptRepo ReceiptRepository, catalog *model.Catalog) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		catalog:     catalog,
	}
}

func (s *ReceiptService) Catalog() *model.Catalog {
	return s.catalog
}

// Create validates the candidate receipt and persists it. Validation
// failures come back as model.ValidationErrors with every violated field.
func (s *ReceiptService) Create(ctx context.Context, p model.ReceiptCreateRequest) (*model.Receipt, error) {
	receipt, err := p.Validate(s.catalog)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	created, err := s.receiptRepo.Create(ctx, receipt)
	prom.AddReceiptStoreDuration(time.Since(start).Seconds(), "create")
	if err != nil {
		return nil, err
	}

	prom.IncCounter(prom.SystemReceipts, prom.MetricReceiptCreated)
	return created, nil
}

func (s *ReceiptService) Get(ctx context.Context, id int64) (*model.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return receipt, nil
}

func (s *ReceiptService) List(ctx context.Context) ([]*model.Receipt, error) {
	return s.receiptRepo.List(ctx)
}

// Update re-validates the full payload, then overwrites every
// client-supplied field of the stored receipt.
func (s *ReceiptService) Update(ctx context.Context, id int64, p model.ReceiptCreateRequest) (*model.Receipt, error) {
	receipt, err := p.Validate(s.catalog)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	updated, err := s.receiptRepo.Update(ctx, id, receipt)
	prom.AddReceiptStoreDuration(time.Since(start).Seconds(), "update")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *ReceiptService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := s.receiptRepo.Delete(ctx, id)
	prom.AddReceiptStoreDuration(time.Since(start).Seconds(), "delete")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	prom.IncCounter(prom.SystemReceipts, prom.MetricReceiptDeleted)
	return nil
}
