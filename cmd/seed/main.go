package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arms237/backend-vehicleShop/internal/config"
	"github.com/arms237/backend-vehicleShop/internal/domain/entities"
	domainerrors "github.com/arms237/backend-vehicleShop/internal/domain/errors"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/models"
	"github.com/arms237/backend-vehicleShop/internal/infrastructure/repositories"
	"github.com/arms237/backend-vehicleShop/pkg/crypto"
)

var languages = []entities.Language{
	{ID: "fr", Name: "Français"},
	{ID: "en", Name: "English"},
	{ID: "it", Name: "Italiano"},
}

var roles = []string{entities.RoleClient, entities.RoleAdmin, entities.RoleSeller}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{PrepareStmt: false, TranslateError: true})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Language{},
		&models.Brand{},
		&models.BrandTranslation{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.Supplier{},
		&models.SupplierTranslation{},
		&models.Vehicle{},
		&models.VehicleImage{},
		&models.VehicleTranslation{},
		&models.Transaction{},
		&models.VehicleTransaction{},
	); err != nil {
		return err
	}
	log.Println("Schema migrated")

	ctx := context.Background()
	languageRepo := repositories.NewLanguageRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	userRepo := repositories.NewUserRepository(db)

	for i := range languages {
		if err := languageRepo.Upsert(ctx, &languages[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d languages", len(languages))

	for _, name := range roles {
		if _, err := roleRepo.GetOrCreate(ctx, name); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d roles", len(roles))

	return seedAdmin(ctx, userRepo, roleRepo)
}

// seedAdmin creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and the email is still free.
func seedAdmin(ctx context.Context, userRepo *repositories.UserRepository, roleRepo *repositories.RoleRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	if _, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Printf("Admin account %s already exists", email)
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	role, err := roleRepo.GetOrCreate(ctx, entities.RoleAdmin)
	if err != nil {
		return err
	}

	admin := &entities.User{
		FirstName:         "Admin",
		LastName:          "Admin",
		Email:             email,
		PasswordHash:      hash,
		RoleID:            role.ID,
		PreferredLanguage: "fr",
		IsVerified:        true,
		VerificationToken: null.String{},
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin account %s created", email)
	return nil
}
