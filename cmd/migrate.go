package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"warehouse.GO/config"
	"warehouse.GO/migrations"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply embedded schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			fmt.Printf("Migration source failed: %v\n", err)
			return
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, "mysql://"+config.DSN())
		if err != nil {
			fmt.Printf("Migrate init failed: %v\n", err)
			return
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No pending migrations.")
			return
		}
		if err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			return
		}
		fmt.Println("Migrations applied.")
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back one migration step")
	rootCmd.AddCommand(migrateCmd)
}
