package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"io/fs"
	"os"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/smartcup-service/migrations"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "test-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "test-db"), "Spanner database ID")
	migrateDir = flag.String("migrations", "", "Directory containing migration SQL files (default: embedded)")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	// Check if using emulator
	emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST")
	if emulatorHost != "" {
		log.Printf("Using Spanner emulator at %s", emulatorHost)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully!")
}

func run(ctx context.Context) error {
	// Ensure instance exists
	if err := ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	if err := ensureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	// Apply migrations
	if err := applyMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func ensureInstance(ctx context.Context) error {
	log.Printf("Ensuring instance %s exists...", *instanceID)

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	instanceName := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)

	// Check if instance exists
	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{
		Name: instanceName,
	})

	if err == nil {
		log.Println("Instance already exists")
		return nil
	}

	// Create instance if it doesn't exist
	if status.Code(err) == codes.NotFound {
		log.Println("Creating instance...")
		op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
			Parent:     fmt.Sprintf("projects/%s", *projectID),
			InstanceId: *instanceID,
			Instance: &instancepb.Instance{
				Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
				DisplayName: "Development Instance",
				NodeCount:   1,
			},
		})
		if err != nil {
			// Ignore if already exists
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create instance: %w", err)
			}
			log.Println("Instance already exists")
			return nil
		}

		// Don't wait too long on emulator
		if _, err := op.Wait(ctx); err != nil {
			// Emulator might complete immediately, ignore certain errors
			if status.Code(err) != codes.AlreadyExists {
				log.Printf("Warning during instance creation: %v", err)
			}
		}

		log.Println("Instance created successfully")
		return nil
	}

	log.Printf("Warning: unexpected error checking instance: %v", err)
	return nil
}

func ensureDatabase(ctx context.Context) error {
	log.Printf("Ensuring database %s exists...", *databaseID)

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	dbPath := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	// Check if database exists
	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{
		Name: dbPath,
	})

	if err == nil {
		log.Println("Database already exists")
		return nil
	}

	// Create database if it doesn't exist
	if status.Code(err) == codes.NotFound {
		log.Println("Creating database...")
		op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
			Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
			CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
		})
		if err != nil {
			// Ignore if database already exists
			if status.Code(err) != codes.AlreadyExists {
				return fmt.Errorf("failed to create database: %w", err)
			}
			log.Println("Database already exists")
			return nil
		}

		if _, err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for database creation: %w", err)
		}

		log.Println("Database created successfully")
		return nil
	}

	// For other errors on emulator, just proceed - the DB might exist
	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		log.Printf("Proceeding with database (emulator mode): %v", err)
		return nil
	}

	return fmt.Errorf("failed to check database: %w", err)
}

func applyMigrations(ctx context.Context) error {
	var fsys fs.FS = migrations.Files
	source := "embedded migrations"
	if *migrateDir != "" {
		fsys = os.DirFS(*migrateDir)
		source = *migrateDir
	}
	log.Printf("Applying migrations from %s...", source)

	files, err := migrations.Load(fsys)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Println("No migration files found")
		return nil
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	dbPath := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	current, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: dbPath})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := current.GetStatements()

	for _, migration := range files {
		statements := migrations.Pending(existing, migration.Statements)
		if len(statements) == 0 {
			log.Printf("Skipping %s (already applied)", migration.Name)
			continue
		}
		log.Printf("Applying %s (%d statements)...", migration.Name, len(statements))

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   dbPath,
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", migration.Name, err)
		}

		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", migration.Name, err)
		}

		existing = append(existing, statements...)
		log.Printf("Successfully applied %s", migration.Name)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
