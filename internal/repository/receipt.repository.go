package repository

import (
	"context"
	"errors"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/pkg/pg"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a receipt does not exist.
	ErrNotFound = errors.New("receipt not found")
)

type ReceiptRepository struct {
	*pg.DB
}

func NewReceiptRepository(db *pg.DB) *ReceiptRepository {
	return &ReceiptRepository{
		db,
	}
}

// Create persists a new receipt. The store assigns id and both timestamps.
func (r *ReceiptRepository) Create(ctx context.Context, receipt *model.Receipt) (*model.Receipt, error) {
	entity := toReceiptEntity(receipt)
	entity.ID = 0

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toReceiptModel(entity), nil
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id int64) (*model.Receipt, error) {
	var entity ReceiptEntity
	err := r.Read(ctx).WithContext(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReceiptModel(&entity), nil
}

// List returns every stored receipt. The order is id ascending so a given
// storage state always lists the same way.
func (r *ReceiptRepository) List(ctx context.Context) ([]*model.Receipt, error) {
	var entities []*ReceiptEntity
	err := r.Read(ctx).WithContext(ctx).Order("id ASC").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toReceiptModels(entities), nil
}

// Update overwrites every client-supplied field of an existing receipt and
// refreshes updated_at. The id and created_at stay untouched.
func (r *ReceiptRepository) Update(ctx context.Context, id int64, receipt *model.Receipt) (*model.Receipt, error) {
	var updated *model.Receipt
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		var entity ReceiptEntity
		if err := r.Write(ctx).WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		entity.NomComplet = receipt.NomComplet
		entity.PaymentType = receipt.PaymentType
		entity.ChequeDetails = receipt.ChequeDetails
		entity.Amount = receipt.Amount
		entity.DossierNumber = receipt.DossierNumber
		entity.Date = receipt.Date
		entity.Classe = receipt.Classe
		entity.PhoneNumber = receipt.PhoneNumber
		entity.PaymentReason = receipt.PaymentReason

		if err := r.Write(ctx).WithContext(ctx).Save(&entity).Error; err != nil {
			return err
		}
		updated = toReceiptModel(&entity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a receipt permanently. There is no tombstone state.
func (r *ReceiptRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).WithContext(ctx).Delete(&ReceiptEntity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
