// Command migrate applies the SQL migrations in ./migrations against the
// configured database. Usage: migrate [up|down|version].
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/coffeevibes888/rentflowhq-sub006/pkg/config"
)

func main() {
	dir := flag.String("dir", "./migrations", "migrations directory")
	flag.Parse()

	_ = godotenv.Load() // missing .env is fine

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://"+*dir, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintln(os.Stderr, "open migrations:", err)
		os.Exit(1)
	}
	defer m.Close()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil {
			err = verr
			break
		}
		fmt.Printf("version %d dirty=%v\n", v, dirty)
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied")
}
