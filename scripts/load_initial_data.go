package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"foundation-registry/internal/config"
	"foundation-registry/internal/database"
	"foundation-registry/internal/database/models"
	apperrors "foundation-registry/internal/errors"
	"foundation-registry/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// FoundationData matches one entry of a foundations YAML file
type FoundationData struct {
	Name                 string `yaml:"name"`
	TaxID                string `yaml:"tax_id"`
	Email                string `yaml:"email"`
	Phone                string `yaml:"phone"`
	SupportedInstitution string `yaml:"supported_institution"`
}

// FoundationsFile is the top-level layout of a foundations YAML file
type FoundationsFile struct {
	Foundations []FoundationData `yaml:"foundations"`
}

// seedResult counts what happened to each entry
type seedResult struct {
	Created  int
	Existing int
	Skipped  int
}

func main() {
	log.Println("🚀 Loading initial foundations from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	foundations, err := loadFoundations("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	repo := repository.NewFoundationRepository(db, cfg.FieldPolicy())
	result, err := seedFoundations(repo, foundations)
	if err != nil {
		log.Fatalf("Failed to seed foundations: %v", err)
	}

	log.Printf("📋 Foundations: %d created, %d already present, %d skipped, %d total",
		result.Created, result.Existing, result.Skipped, len(foundations))
	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs, including SQL queries and "record not found"
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		if apperrors.IsConfiguration(err) {
			return nil, err
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadFoundations reads every *.yaml file under dataDir whose path mentions foundations
func loadFoundations(dataDir string) ([]FoundationData, error) {
	var all []FoundationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "foundations") {
			var file FoundationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Foundations...)
		}
		return nil
	})

	return all, err
}

// seedFoundations inserts each entry. Entries whose CNPJ is already registered
// count as existing, so the loader can be re-run. Invalid entries are skipped
// with a warning; storage failures abort.
func seedFoundations(repo repository.FoundationRepositoryInterface, foundations []FoundationData) (seedResult, error) {
	var result seedResult

	for _, data := range foundations {
		foundation := &models.Foundation{
			Name:                 strings.TrimSpace(data.Name),
			TaxID:                data.TaxID,
			Email:                strings.TrimSpace(data.Email),
			Phone:                strings.TrimSpace(data.Phone),
			SupportedInstitution: strings.TrimSpace(data.SupportedInstitution),
		}

		err := repo.Insert(foundation)
		switch {
		case err == nil:
			result.Created++
		case apperrors.IsAlreadyExists(err):
			result.Existing++
		case apperrors.IsValidation(err):
			log.Printf("⚠️  Warning: skipping foundation %q (%s): %v", data.Name, data.TaxID, err)
			result.Skipped++
		default:
			return result, fmt.Errorf("failed to create foundation %s: %w", data.TaxID, err)
		}
	}

	return result, nil
}
