package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the storefront database from the catalog document:
// shop rows, their product listings, and two demo accounts.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ANT2025 STOREFRONT - Database Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.ShopProduct{},
		&models.WalletTransaction{},
		&models.LoginEvent{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	doc := loadCatalogDocument()
	owner := seedDemoAccounts()
	seedShops(doc, owner)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Demo accounts (password: password123):")
	fmt.Println("  buyer:      01700000001")
	fmt.Println("  shop owner: 01700000002")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse products at GET /api/v1/store/products")
}

func loadCatalogDocument() models.CatalogDocument {
	path := os.Getenv("CATALOG_FILE")
	if path == "" {
		path = "data/catalog.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read catalog document %s: %v", path, err)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("Malformed catalog document: %v", err)
	}
	log.Printf("✓ Catalog loaded: %d products, %d shops", len(doc.Products), len(doc.Shops))
	return doc
}

func seedDemoAccounts() *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	buyer := models.User{
		Name:          "Demo Buyer",
		Phone:         "01700000001",
		PasswordHash:  string(hash),
		Role:          models.RoleBuyer,
		Status:        "active",
		PhoneVerified: true,
		Balance:       500,
		DivisionName:  "Dhaka",
		DistrictName:  "Dhaka",
		ReferralCode:  "BUYER001",
	}
	createUserIfMissing(&buyer)

	owner := models.User{
		Name:          "Demo Shop Owner",
		Phone:         "01700000002",
		PasswordHash:  string(hash),
		Role:          models.RoleShopOwner,
		Status:        "active",
		PhoneVerified: true,
		DivisionName:  "Chattogram",
		DistrictName:  "Chattogram",
		ReferralCode:  "OWNER001",
	}
	createUserIfMissing(&owner)

	return &owner
}

func createUserIfMissing(user *models.User) {
	var existing models.User
	err := config.StoreGorm.First(&existing, "phone = ?", user.Phone).Error
	if err == nil {
		*user = existing
		log.Printf("✓ Account %s already exists", user.Phone)
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	if err := config.StoreGorm.Create(user).Error; err != nil {
		log.Fatalf("Failed to create account %s: %v", user.Phone, err)
	}
	log.Printf("✓ Created %s account %s", user.Role, user.Phone)
}

func seedShops(doc models.CatalogDocument, owner *models.User) {
	for i, card := range doc.Shops {
		shop := models.Shop{
			ID:           card.ID,
			Name:         card.Name,
			ShopImage:    card.Image,
			Address:      card.Subtitle,
			DivisionName: "Dhaka",
			DistrictName: "Dhaka",
		}
		// First shop belongs to the demo owner account
		if i == 0 {
			shop.OwnerID = &owner.ID
			shop.OwnerName = owner.Name
			shop.OwnerPhone = owner.Phone
		}

		var existing models.Shop
		if err := config.StoreGorm.First(&existing, "id = ?", shop.ID).Error; err == nil {
			log.Printf("✓ Shop %q already exists", shop.Name)
			continue
		}
		if err := config.StoreGorm.Create(&shop).Error; err != nil {
			log.Fatalf("Failed to create shop %q: %v", shop.Name, err)
		}

		seedShopProducts(doc, &shop)
		log.Printf("✓ Created shop %q", shop.Name)
	}
}

// seedShopProducts spreads the catalog products across shops so every
// shop page has something to list.
func seedShopProducts(doc models.CatalogDocument, shop *models.Shop) {
	for i, p := range doc.Products {
		if len(doc.Shops) > 0 && i%len(doc.Shops) != (shop.ID-1)%len(doc.Shops) {
			continue
		}
		listing := models.ShopProduct{
			ShopID:   shop.ID,
			ShopName: shop.Name,
			Name:     p.Name,
			Category: p.Brand,
			Price:    p.Price,
			Stock:    "25",
			Image:    p.Image,
		}
		if err := config.StoreGorm.Create(&listing).Error; err != nil {
			log.Fatalf("Failed to create listing %q: %v", p.Name, err)
		}
	}
}
