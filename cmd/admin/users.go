package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/juho05/wavedial/auth"
	"github.com/juho05/wavedial/config"
	"github.com/juho05/wavedial/repos"
	"golang.org/x/crypto/ssh/terminal"
)

func users(args []string, db repos.DB, conf config.Config) error {
	if len(args) < 3 {
		fmt.Println("USAGE:", args[0], "users [list|create <email> <username>|delete <id>]")
		os.Exit(1)
	}
	switch args[2] {
	case "list":
		return usersList(db)
	case "create":
		return usersCreate(args, db, conf)
	case "delete":
		return usersDelete(args, db)
	default:
		fmt.Println("USAGE:", args[0], "users [list|create <email> <username>|delete <id>]")
		os.Exit(1)
	}
	return nil
}

func usersList(db repos.DB) error {
	list, err := db.User().FindAll(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Users (%d):\n", len(list))
	for _, u := range list {
		fmt.Printf("  - %s %s <%s>\n", u.ID, u.Username, u.Email)
	}
	return nil
}

func usersCreate(args []string, db repos.DB, conf config.Config) error {
	if len(args) < 5 {
		fmt.Println("USAGE:", args[0], "users create <email> <username>")
		os.Exit(1)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	user, err := auth.NewService(db, conf.SessionLifetime).Register(context.Background(), args[4], args[3], password)
	if err != nil {
		return err
	}
	fmt.Println("Created user", user.ID)
	return nil
}

func usersDelete(args []string, db repos.DB) error {
	if len(args) < 4 {
		fmt.Println("USAGE:", args[0], "users delete <id>")
		os.Exit(1)
	}
	err := db.User().DeleteByID(context.Background(), args[3])
	if err != nil {
		return err
	}
	fmt.Println("Deleted user", args[3])
	return nil
}

func promptPassword() (string, error) {
	var password string
	for password == "" {
		fmt.Print("Enter password: ")
		p1, err := terminal.ReadPassword(syscall.Stdin)
		if err != nil {
			return "", err
		}
		fmt.Print("\nRepeat password: ")
		p2, err := terminal.ReadPassword(syscall.Stdin)
		if err != nil {
			return "", err
		}
		fmt.Println()
		if bytes.Equal(p1, p2) {
			password = string(p1)
		} else {
			fmt.Println("Passwords don't match. Try again.")
		}
	}
	return password, nil
}
