// seed 往库里灌演示数据：用户、角色、图书
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"Gin_postgres_redis_library_api/config"
	"Gin_postgres_redis_library_api/db"
	"Gin_postgres_redis_library_api/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type seedData struct {
	Users []struct {
		UserID    int64  `json:"userId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"users"`
	Roles []struct {
		UserID int64       `json:"userId"`
		Role   models.Role `json:"role"`
	} `json:"roles"`
	Books []struct {
		Title       string     `json:"title"`
		Author      string     `json:"author"`
		ISBN        string     `json:"isbn"`
		Genre       string     `json:"genre"`
		PublishDate *time.Time `json:"publishDate"`
	} `json:"books"`
}

func run(file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	repo := db.NewRepo(db.ConnectDB())
	ctx := context.Background()

	for _, u := range data.Users {
		existing, err := repo.FindUserByUserID(ctx, u.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Printf("seed: user %d already exists, skipping", u.UserID)
			continue
		}
		user := &models.User{UserID: u.UserID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
		if err := repo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create user %d: %w", u.UserID, err)
		}
		log.Printf("seed: created user %d (%s %s)", u.UserID, u.FirstName, u.LastName)
	}

	for _, r := range data.Roles {
		existing, err := repo.FindUserRole(ctx, r.UserID)
		if err != nil {
			return err
		}
		if existing != nil {
			// 角色只写一次，seed 也不例外
			log.Printf("seed: user %d already has role %s, skipping", r.UserID, existing.Role)
			continue
		}
		if err := repo.CreateUserRole(ctx, &models.UserRole{UserID: r.UserID, Role: r.Role}); err != nil {
			return fmt.Errorf("create role for user %d: %w", r.UserID, err)
		}
		log.Printf("seed: set role %s for user %d", r.Role, r.UserID)
	}

	for _, b := range data.Books {
		book := &models.Book{
			ID:          uuid.NewString(),
			Title:       b.Title,
			Author:      b.Author,
			ISBN:        b.ISBN,
			Genre:       b.Genre,
			PublishDate: b.PublishDate,
			Status:      models.BookAvailable,
		}
		if err := repo.CreateBook(ctx, book); err != nil {
			// 大概率是 isbn 撞了已有数据，跳过继续
			log.Printf("seed: skipping book %s (%s): %v", b.Title, b.ISBN, err)
			continue
		}
		log.Printf("seed: created book %q (%s)", b.Title, b.ISBN)
	}
	return nil
}

func main() {
	var file string
	root := &cobra.Command{
		Use:   "seed",
		Short: "Seed the library database with users, roles and books",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			return run(file)
		},
	}
	root.Flags().StringVarP(&file, "file", "f", "seed-data.json", "seed data file")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
