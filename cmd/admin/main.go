package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/juho05/log"
	"github.com/juho05/wavedial/config"
	"github.com/juho05/wavedial/repos/postgres"
)

const usage = `USAGE: %s <command>

COMMANDS:
  users [list|create <email> <username>|delete <id>]
  stations list
  sessions purge
`

func run(args []string, conf config.Config) error {
	if len(args) < 2 {
		fmt.Printf(usage, args[0])
		os.Exit(1)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", conf.DBUser, conf.DBPassword, conf.DBHost, conf.DBPort, conf.DBName)
	db, err := postgres.NewDB(dsn, conf)
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[1] {
	case "users":
		err = users(args, db, conf)
	case "stations":
		err = stationsCmd(args, db)
	case "sessions":
		err = sessions(args, db)
	default:
		fmt.Println("Unknown command")
		fmt.Printf(usage, args[0])
		os.Exit(1)
	}

	return err
}

func main() {
	_ = godotenv.Load()

	conf, errs := config.Load(os.Environ())
	if len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("ERROR: %s", e)
		}
		log.Fatalf("ERROR: failed to load config")
	}

	log.SetSeverity(conf.LogLevel)
	log.SetOutput(conf.LogFile)

	err := run(os.Args, conf)
	if err != nil {
		log.Fatalf("ERROR: %s", err)
	}
}
