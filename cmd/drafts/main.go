// Command drafts lists the stored draft rows of a running or stopped
// instance in a table. Bodies stay ciphertext: the inspector never loads
// the master key.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"message-service/contract"
	"message-service/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// DRAFTS_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"DRAFTS_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Read-only with BypassLockGuard so the inspector can run alongside
	// the server holding the lock.
	opts := badger.DefaultOptions(cfg.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewDraftRepository(db, slog.Default())
	records, err := repository.List()
	if err != nil {
		log.Fatalf("Failed to list drafts: %v", err)
	}

	if cfg.Colours {
		color.Bold.Printf("%d draft(s) in %s\n", len(records), cfg.BadgerFilepath)
	} else {
		fmt.Printf("%d draft(s) in %s\n", len(records), cfg.BadgerFilepath)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Room", "Type", "Created", "Ciphertext Bytes"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(records, func(rec contract.DraftRecord, _ int) []string {
		return []string{
			rec.UserID,
			rec.RoomID,
			rec.Type,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", len(rec.Ciphertext)),
		}
	}))
	table.Render()
}
