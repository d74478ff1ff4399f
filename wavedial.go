package wavedial

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"regexp"
	"slices"
	"strings"

	"github.com/jaevor/go-nanoid"
)

var (
	ServerName        = "wavedial"
	Version    string = "dev"
)

//go:embed all:repos/migrations
var migrationsFS embed.FS
var MigrationsFS fs.FS

var GenID func() string
var IDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-~"
var IDRegex = regexp.MustCompile(fmt.Sprintf("^(us)|(st)_[%s]{12}$", strings.ReplaceAll(IDAlphabet, "-", "\\-")))

func init() {
	var err error
	MigrationsFS, err = fs.Sub(migrationsFS, "repos/migrations")
	if err != nil {
		log.Fatal(err)
	}
	GenID, err = nanoid.CustomUnicode(IDAlphabet, 12)
	if err != nil {
		panic(err)
	}
}

type IDType string

const (
	IDTypeUser    IDType = "us"
	IDTypeStation IDType = "st"
)

func GenIDUser() string {
	return string(IDTypeUser) + "_" + GenID()
}

func GenIDStation() string {
	return string(IDTypeStation) + "_" + GenID()
}

func GetIDType(id string) (IDType, bool) {
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return "", false
	}
	types := []IDType{
		IDTypeUser, IDTypeStation,
	}
	if !slices.Contains(types, IDType(parts[0])) {
		return "", false
	}
	return IDType(parts[0]), true
}

func IsIDType(id string, idType IDType) bool {
	typ, ok := GetIDType(id)
	return ok && idType == typ
}
