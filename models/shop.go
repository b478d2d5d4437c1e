package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop is a registered seller shop. Discovery cards come from the
// catalog document; this row is the authoritative record behind the
// shop details page and the owner's "my shop" area.
type Shop struct {
	ID           int        `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	OwnerID      *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	OwnerName    string     `json:"owner_name" gorm:"type:varchar(255)"`
	OwnerPhone   string     `json:"owner_phone" gorm:"type:varchar(50)"`
	ShopImage    string     `json:"shop_image" gorm:"type:text"`
	Address      string     `json:"address" gorm:"type:text"`
	DivisionName string     `json:"division_name" gorm:"type:varchar(100)"`
	DistrictName string     `json:"district_name" gorm:"type:varchar(100)"`
	UpazilaName  string     `json:"upazila_name" gorm:"type:varchar(100)"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Shop) TableName() string {
	return "shops"
}

// ShopProduct is a product listed by an individual shop, as opposed to
// the marketplace-wide catalog. Stock is kept as a string on the wire
// ("0" means out of stock) to match the storefront contract.
type ShopProduct struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ShopID      int       `json:"shop" gorm:"index;not null"`
	ShopName    string    `json:"shop_name" gorm:"type:varchar(255)"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Category    string    `json:"category" gorm:"type:varchar(100);index"`
	Price       float64   `json:"price"`
	Stock       string    `json:"stock" gorm:"type:varchar(20);default:'0'"`
	Image       string    `json:"image" gorm:"type:text"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ShopProduct) TableName() string {
	return "shop_products"
}

func (p *ShopProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
