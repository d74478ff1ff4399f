package main

import (
	"context"
	"fmt"
	"os"

	"github.com/juho05/wavedial/repos"
)

func sessions(args []string, db repos.DB) error {
	if len(args) < 3 || args[2] != "purge" {
		fmt.Println("USAGE:", args[0], "sessions purge")
		os.Exit(1)
	}
	n, err := db.Session().DeleteExpired(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d expired session(s)\n", n)
	return nil
}
