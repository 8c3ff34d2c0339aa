package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bedrijvengids.backend/internal/config"
	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
	domainrepo "bedrijvengids.backend/internal/domain/repositories"
	"bedrijvengids.backend/internal/infrastructure/repositories"
	"bedrijvengids.backend/pkg/crypto"
)

var openSeedAdminDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openSeedAdminSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedAdminRuntime interface {
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
}

type seedAdminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedAdminRuntime, io.Closer, error)
	out     io.Writer
}

type seedAdminRuntimeImpl struct {
	userRepo domainrepo.UserRepository
}

func (r seedAdminRuntimeImpl) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.userRepo.GetByEmail(ctx, email)
}

func (r seedAdminRuntimeImpl) CreateUser(ctx context.Context, user *entities.User) error {
	return r.userRepo.Create(ctx, user)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedAdminDeps() seedAdminDeps {
	return seedAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedAdminRuntime, io.Closer, error) {
			dsn := cfg.Database.URL()
			db, err := openSeedAdminDB(dsn)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openSeedAdminSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			return seedAdminRuntimeImpl{
				userRepo: repositories.NewUserRepository(db),
			}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func validateSeedAdminInput(email, name, password string) error {
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	if name == "" {
		return fmt.Errorf("--name is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("--password must be at least 8 characters")
	}
	return nil
}

func runSeedAdmin(args []string, deps seedAdminDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultSeedAdminDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "admin email address (required)")
	nameFlag := fs.String("name", "", "admin display name (required)")
	passwordFlag := fs.String("password", "", "admin password, min 8 characters (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validateSeedAdminInput(*emailFlag, *nameFlag, *passwordFlag); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	existing, err := runtime.GetUserByEmail(ctx, *emailFlag)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("user %s already exists (role=%s)", *emailFlag, existing.Role)
	}

	hash, err := crypto.HashPassword(*passwordFlag)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        *emailFlag,
		Name:         *nameFlag,
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
	}
	if err := runtime.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed creating admin user: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created ADMIN user")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", user.Email)
	_, _ = fmt.Fprintf(deps.out, "name=%s\n", user.Name)
	return nil
}

func main() {
	if err := runSeedAdmin(os.Args[1:], defaultSeedAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
