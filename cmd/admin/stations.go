package main

import (
	"context"
	"fmt"
	"os"

	"github.com/juho05/wavedial/repos"
)

func stationsCmd(args []string, db repos.DB) error {
	if len(args) < 3 || args[2] != "list" {
		fmt.Println("USAGE:", args[0], "stations list")
		os.Exit(1)
	}
	list, err := db.Station().FindAll(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Stations (%d):\n", len(list))
	for _, s := range list {
		fmt.Printf("  - %s %s (%s) %s\n", s.ID, s.Name, s.Language, s.StreamURL)
	}
	return nil
}
