package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet transaction statuses
const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
)

// WalletTransaction records a wallet movement. Recharge (cash-in) is
// the only type written by the storefront today.
type WalletTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Type      string    `json:"type" gorm:"type:varchar(50);default:'recharge'"`
	Provider  string    `json:"provider" gorm:"type:varchar(50)"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Status    string    `json:"status" gorm:"type:varchar(50);default:'pending';index"`
	TrxID     string    `json:"trx_id" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

func (t *WalletTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// RechargeRequest is the cash-in payload.
type RechargeRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Provider string  `json:"provider" binding:"required,oneof=bkash nagad rocket card"`
	TrxID    string  `json:"trx_id" binding:"required"`
}

// WalletBalance is the wallet summary for the profile area.
type WalletBalance struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}
