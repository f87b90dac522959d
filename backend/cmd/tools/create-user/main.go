// create-user registers an account and prints an access token for it.
// With -login it only checks the password of an existing account and
// prints a fresh token. Accounts are otherwise managed outside this service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/leerobin22/forum-api/backend/internal/storage/pg"
	"github.com/leerobin22/forum-api/shared/config"
	"github.com/leerobin22/forum-api/shared/domain"
	"github.com/leerobin22/forum-api/shared/jwt"
	sharedpg "github.com/leerobin22/forum-api/shared/storage/pg"
	"github.com/leerobin22/forum-api/shared/utils"
)

func main() {
	var (
		configFolder string
		username     string
		password     string
		fullname     string
		login        bool
	)
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&username, "username", "", "username of the new account")
	flag.StringVar(&password, "password", "", "password of the new account")
	flag.StringVar(&fullname, "fullname", "", "display name of the new account")
	flag.BoolVar(&login, "login", false, "issue a token for an existing account")
	flag.Parse()

	if username == "" || password == "" {
		fmt.Fprintln(os.Stderr, "username and password are required")
		flag.Usage()
		os.Exit(2)
	}
	if fullname == "" {
		fullname = username
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}
	cfg := config.MustLoad(configFolder)

	run := register
	if login {
		run = signIn
	}
	if err := run(context.Background(), cfg, username, password, fullname); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (*pg.Storage, error) {
	storage, err := pg.NewWithPool(ctx, cfg.PgDSN(), utils.NewIdGenerator(), sharedpg.LightweightConnectionConfig())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return storage, nil
}

func register(ctx context.Context, cfg *config.Config, username, password, fullname string) error {
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Cleanup()

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	id, err := storage.AddUser(ctx, domain.User{Username: username, PassHash: hash, Fullname: fullname})
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	return printToken(cfg, domain.User{Id: id, Username: username})
}

func signIn(ctx context.Context, cfg *config.Config, username, password, _ string) error {
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Cleanup()

	user, err := storage.UserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if !utils.ComparePassword(user.PassHash, password) {
		return errors.New("wrong password")
	}
	return printToken(cfg, user)
}

func printToken(cfg *config.Config, user domain.User) error {
	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(user)
	if err != nil {
		return err
	}
	fmt.Printf("id: %s\ntoken: %s\n", user.Id, token)
	return nil
}
