// Command seed loads users, tables and menu items from a YAML file.
// Records that already exist are skipped, so it is safe to re-run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/02priyeshraj/Restaurant_Management_Backend/config"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/apperr"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
	"github.com/02priyeshraj/Restaurant_Management_Backend/services"
	"github.com/02priyeshraj/Restaurant_Management_Backend/store"
)

type seedUser struct {
	Name     string      `yaml:"name"`
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Phone    string      `yaml:"phone"`
	Role     models.Role `yaml:"role"`
}

type seedTable struct {
	TableNumber int    `yaml:"tableNumber"`
	Capacity    int    `yaml:"capacity"`
	Location    string `yaml:"location"`
}

type seedMenuItem struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Price        *float64 `yaml:"price"`
	Category     string   `yaml:"category"`
	Availability *bool    `yaml:"availability"`
	ImageURL     string   `yaml:"imageUrl"`
}

type seedFile struct {
	Users     []seedUser     `yaml:"users"`
	Tables    []seedTable    `yaml:"tables"`
	MenuItems []seedMenuItem `yaml:"menuItems"`
}

func parseSeed(data []byte) (*seedFile, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, u := range seed.Users {
		if u.Role == "" {
			seed.Users[i].Role = models.RoleCustomer
		}
	}
	return &seed, nil
}

type seeder struct {
	users  services.UserServiceInterface
	tables services.TableServiceInterface
	menu   services.MenuServiceInterface
	log    logger.ILogger
}

type seedResult struct {
	Created int
	Skipped int
}

func (s *seeder) apply(ctx context.Context, seed *seedFile) (seedResult, error) {
	var res seedResult

	record := func(kind, name string, err error) error {
		switch {
		case err == nil:
			res.Created++
			s.log.Info("seeded", logger.String("kind", kind), logger.String("name", name))
		case apperr.IsConflict(err):
			res.Skipped++
			s.log.Debug("already present", logger.String("kind", kind), logger.String("name", name))
		default:
			return fmt.Errorf("seeding %s %q: %w", kind, name, err)
		}
		return nil
	}

	for _, u := range seed.Users {
		_, err := s.users.Create(ctx, models.CreateUserRequest{
			RegisterRequest: models.RegisterRequest{Name: u.Name, Email: u.Email, Password: u.Password, Phone: u.Phone},
			Role:            u.Role,
		})
		if err := record("user", u.Email, err); err != nil {
			return res, err
		}
	}

	for _, t := range seed.Tables {
		_, err := s.tables.Create(ctx, models.TableRequest{TableNumber: t.TableNumber, Capacity: t.Capacity, Location: t.Location})
		if err := record("table", fmt.Sprintf("#%d", t.TableNumber), err); err != nil {
			return res, err
		}
	}

	for _, m := range seed.MenuItems {
		_, err := s.menu.Create(ctx, models.MenuItemRequest{
			Name:         m.Name,
			Description:  m.Description,
			Price:        m.Price,
			Availability: m.Availability,
			Category:     m.Category,
			ImageURL:     m.ImageURL,
		})
		if err := record("menu item", m.Name, err); err != nil {
			return res, err
		}
	}

	return res, nil
}

func main() {
	file := flag.String("file", "seed.yaml", "path to the YAML seed file")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName+"-seed", cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log, *file); err != nil {
		log.Error("seed failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.ILogger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seed, err := parseSeed(data)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := store.New(client.Database(cfg.MongoDatabase))
	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	s := &seeder{
		users:  services.NewUserService(db.Users, cfg.BcryptCost, log),
		tables: services.NewTableService(db.Tables, db.Reservations, cfg.DefaultReservationMinutes, cfg.Location(), log),
		menu:   services.NewMenuService(db.MenuItems, log),
		log:    log,
	}
	res, err := s.apply(ctx, seed)
	if err != nil {
		return err
	}
	log.Info("seed complete", logger.Int("created", res.Created), logger.Int("skipped", res.Skipped))
	return nil
}
