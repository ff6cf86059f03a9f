// Command seed resets the database to a known state: one test user and five doctors.
package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"medical-directory/config"
	"medical-directory/internal/migrations"
	"medical-directory/internal/model"
	"medical-directory/internal/repository"
	"medical-directory/internal/security"
)

const (
	testUserEmail    = "mohamed.bensalem@example.com"
	testUserPassword = "password123"
)

var doctors = []model.Doctor{
	{
		FirstName: "Amina",
		LastName:  "Boukhelifa",
		Specialty: "Cardiologie",
		Email:     "amina.boukhelifa@urdocto.com",
		Phone:     "0550123457",
		Address:   "12 Rue Didouche Mourad, Alger",
		Avatar:    "https://randomuser.me/api/portraits/women/65.jpg",
	},
	{
		FirstName: "Khaled",
		LastName:  "Saidi",
		Specialty: "Dermatologie",
		Email:     "khaled.saidi@urdocto.com",
		Phone:     "0550123458",
		Address:   "45 Avenue Emir Abdelkader, Oran",
		Avatar:    "https://randomuser.me/api/portraits/men/32.jpg",
	},
	{
		FirstName: "Samira",
		LastName:  "Belkacem",
		Specialty: "Pédiatrie",
		Email:     "samira.belkacem@urdocto.com",
		Phone:     "0550123459",
		Address:   "8 Rue des Frères Bouabsa, Constantine",
		Avatar:    "https://randomuser.me/api/portraits/women/44.jpg",
	},
	{
		FirstName: "Yacine",
		LastName:  "Kherbache",
		Specialty: "Neurologie",
		Email:     "yacine.kherbache@urdocto.com",
		Phone:     "0550123460",
		Address:   "23 Boulevard Mohamed Boudiaf, Annaba",
		Avatar:    "https://randomuser.me/api/portraits/men/76.jpg",
	},
	{
		FirstName: "Nadia",
		LastName:  "Meziane",
		Specialty: "Ophtalmologie",
		Email:     "nadia.meziane@urdocto.com",
		Phone:     "0550123461",
		Address:   "17 Rue Larbi Ben M'hidi, Tizi Ouzou",
		Avatar:    "https://randomuser.me/api/portraits/women/12.jpg",
	},
}

func main() {
	ctx := context.Background()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("loading configuration failed: %v", err)
	}

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		log.Fatalf("connecting to the database failed: %v", err)
	}
	defer db.Close()

	if err := seed(ctx, cfg, db); err != nil {
		log.Printf("seeding failed: %v", err)
		return
	}

	invalidateCache(ctx, cfg)

	log.Printf("%d doctors created", len(doctors))
	log.Printf("test user created (email: %s, password: %s)", testUserEmail, testUserPassword)
}

func seed(ctx context.Context, cfg *config.AppConfig, db *config.Database) error {
	if err := migrations.Up(ctx, db.DB.DB); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `TRUNCATE refresh_tokens, users, doctors`); err != nil {
		return err
	}

	hash, err := security.NewBcryptHasher(cfg.Security.BcryptCost).Hash(testUserPassword)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.CreateUser(ctx, &model.User{
		ID:           uuid.NewString(),
		FullName:     "Mohamed Bensalem",
		Email:        testUserEmail,
		Phone:        "0550123456",
		PasswordHash: hash,
	}); err != nil {
		return err
	}

	doctorRepo := repository.NewDoctorRepository(db)
	for i := range doctors {
		doctors[i].ID = uuid.NewString()
		if err := doctorRepo.Create(ctx, &doctors[i]); err != nil {
			return err
		}
	}

	return nil
}

// invalidateCache : cached listings would hide the new rows until they expire
func invalidateCache(ctx context.Context, cfg *config.AppConfig) {
	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Printf("skipping cache invalidation: %v", err)
		return
	}
	defer redisClient.Close()

	cache := repository.NewCacheRepository(redisClient, config.Duration(cfg.TTL.DoctorsCache))
	if err := cache.InvalidateDoctors(ctx); err != nil {
		log.Printf("cache invalidation failed: %v", err)
	}
}
