// agencyctl - operator CLI for the agency site backend.
//
// Usage:
//   agencyctl create-admin --username owner --password ...
//   agencyctl init-booking-settings
//   agencyctl seed-pricing [--force]
//   agencyctl estimate --website-type "Business Website" --tech React --feature "Admin Panel"
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"agencysite/config"
	"agencysite/database"
	"agencysite/database/repository"
	"agencysite/models"
	"agencysite/services/admin"
	"agencysite/services/booking"
	"agencysite/services/pricing"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "agencyctl",
		Usage:   "Operator tooling for the agency site backend",
		Version: version,
		Commands: []*cli.Command{
			createAdminCommand(),
			initBookingSettingsCommand(),
			seedPricingCommand(),
			estimateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// connect loads configuration and opens the database for commands that need it.
func connect(c *cli.Context) (*repository.Repositories, context.Context, context.CancelFunc) {
	config.LoadConfig()
	database.InitDB()
	ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
	return repository.NewMongoRepositories(database.DB()), ctx, cancel
}

func createAdminCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-admin",
		Usage: "Create a back-office account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
			&cli.StringFlag{Name: "role", Value: models.RoleSuperAdmin, Usage: "admin or super_admin"},
		},
		Action: func(c *cli.Context) error {
			repos, ctx, cancel := connect(c)
			defer cancel()

			if err := repos.Admins.EnsureIndexes(ctx); err != nil {
				return err
			}
			svc := admin.NewAdminService(repos.Admins, nil, config.JWTTTL())
			created, err := svc.CreateAdmin(ctx, models.AdminCreateInput{
				Username: c.String("username"),
				Password: c.String("password"),
				Role:     c.String("role"),
			}, "cli")
			if err != nil {
				return err
			}
			fmt.Printf("Created %s %q (id %s)\n", created.Role, created.Username, created.ID)
			return nil
		},
	}
}

func initBookingSettingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "init-booking-settings",
		Usage: "Create the default weekday calendar if none exists",
		Action: func(c *cli.Context) error {
			repos, ctx, cancel := connect(c)
			defer cancel()

			svc := booking.NewSettingsService(repos.Settings, config.Location().String())
			s, created, err := svc.InitDefaults(ctx)
			if err != nil {
				return err
			}
			if !created {
				fmt.Printf("Booking settings already exist (id %s), nothing to do\n", s.ID)
				return nil
			}
			fmt.Printf("Created booking settings %s: %d slots on %v\n", s.ID, len(s.TimeSlots), s.AvailableDays)
			return nil
		},
	}
}

func seedPricingCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed-pricing",
		Usage: "Store the default pricing catalog",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing catalog"},
		},
		Action: func(c *cli.Context) error {
			repos, ctx, cancel := connect(c)
			defer cancel()

			repo := repos.Pricing
			if _, err := repo.Get(ctx); err == nil && !c.Bool("force") {
				fmt.Println("Pricing catalog already exists; use --force to overwrite")
				return nil
			}
			catalog := pricing.DefaultCatalog()
			catalog.UpdatedAt = time.Now().UTC()
			if err := repo.Upsert(ctx, catalog); err != nil {
				return err
			}
			fmt.Println("Default pricing catalog stored")
			return nil
		},
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Price a selection offline against the default or a JSON catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Aliases: []string{"c"}, Usage: "Path to a pricing catalog JSON file"},
			&cli.StringFlag{Name: "website-type", Aliases: []string{"w"}},
			&cli.StringSliceFlag{Name: "tech", Aliases: []string{"t"}},
			&cli.StringSliceFlag{Name: "feature", Aliases: []string{"f"}},
			&cli.StringFlag{Name: "timeline", Aliases: []string{"l"}},
			&cli.StringFlag{Name: "format", Value: "table", Usage: "Output format (table, json)"},
		},
		Action: func(c *cli.Context) error {
			catalog, err := loadCatalog(c.String("catalog"))
			if err != nil {
				return err
			}
			sel := models.Selection{
				WebsiteType:  c.String("website-type"),
				Technologies: c.StringSlice("tech"),
				Features:     c.StringSlice("feature"),
				Timeline:     c.String("timeline"),
			}
			return writeEstimate(os.Stdout, catalog, sel, c.String("format"))
		},
	}
}
