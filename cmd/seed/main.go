package main

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskconnect/internal/auth"
	"taskconnect/internal/config"
	"taskconnect/internal/db"
	"taskconnect/internal/logger"
	"taskconnect/internal/model"
	"taskconnect/internal/repository"
)

// demoPassword is shared by all seeded accounts. Demo data only.
const demoPassword = "password123"

type seedUser struct {
	Email    string
	Username string
	FullName string
	Role     model.Role
}

var seedUsers = []seedUser{
	{Email: "admin@taskconnect.local", Username: "admin", FullName: "Site Admin", Role: model.RoleAdmin},
	{Email: "alice@taskconnect.local", Username: "alice", FullName: "Alice Carter", Role: model.RoleClient},
	{Email: "bob@taskconnect.local", Username: "bob", FullName: "Bob Romero", Role: model.RoleSubcontractor},
}

type seedService struct {
	Owner       string
	Title       string
	Description string
	Price       int
	Category    string
}

var seedServices = []seedService{
	{
		Owner:       "bob",
		Title:       "Emergency Plumbing Repair",
		Description: "Fixing water leaks, broken pipes, and other plumbing emergencies in residential settings.",
		Price:       120,
		Category:    "Plumbing",
	},
	{
		Owner:       "bob",
		Title:       "Office Deep Cleaning",
		Description: "Complete office deep cleaning including carpets, windows, and bathrooms.",
		Price:       350,
		Category:    "Cleaning",
	},
	{
		Owner:       "bob",
		Title:       "Home Network Setup",
		Description: "Router configuration, wiring, and coverage troubleshooting for home offices.",
		Price:       90,
		Category:    "IT Support",
	},
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Service{}, &model.Job{}, &model.Message{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	users := repository.NewUserRepository(gormDB)
	services := repository.NewServiceRepository(gormDB)

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	ownerIDs := make(map[string]uint, len(seedUsers))
	created := 0
	for _, su := range seedUsers {
		existing, err := users.FindByUsername(ctx, su.Username)
		if err == nil {
			ownerIDs[su.Username] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("username", su.Username).Msg("lookup user")
		}

		user := &model.User{
			Email:        su.Email,
			Username:     su.Username,
			PasswordHash: hash,
			FullName:     su.FullName,
			Role:         su.Role,
			IsActive:     true,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", su.Username).Msg("create user")
		}
		ownerIDs[su.Username] = user.ID
		created++
	}
	log.Info().Int("created", created).Int("total", len(seedUsers)).Msg("seeded users")

	existing, err := services.List(ctx, 0, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("list services")
	}
	if len(existing) > 0 {
		log.Info().Msg("catalog already seeded, skipping services")
		return
	}

	for _, ss := range seedServices {
		svc := &model.Service{
			Title:       ss.Title,
			Description: ss.Description,
			Price:       ss.Price,
			Category:    ss.Category,
			OwnerID:     ownerIDs[ss.Owner],
			IsActive:    true,
		}
		if err := services.Create(ctx, svc); err != nil {
			log.Fatal().Err(err).Str("title", ss.Title).Msg("create service")
		}
	}
	log.Info().Int("created", len(seedServices)).Msg("seeded services")
}
