// Package cli implements the kokoro CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kokorohq/kokoro/internal/circle"
	"github.com/kokorohq/kokoro/internal/model"
	"github.com/kokorohq/kokoro/internal/store"
)

var (
	dbPath      string
	verboseFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "kokoro",
	Short: "Personal relationship keeper",
	Long:  "A local-first CLI for the people in your circle: profiles, nuances, important dates, and an AI assistant. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $KOKORO_DB or ~/.kokoro/kokoro.db)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("KOKORO_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kokoro", "kokoro.db")
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verboseFlag {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openCircle opens the store and loads the collection. The caller must
// Close the returned store.
func openCircle(cmd *cobra.Command) (*circle.Circle, *store.SQLiteStore, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return circle.Load(cmd.Context(), s, newLogger()), s, nil
}

// resolvePerson finds a person by id or name, exiting with a message
// when there is no match.
func resolvePerson(c *circle.Circle, idOrName string) *model.Person {
	p := c.Find(idOrName)
	if p == nil {
		exitErr("lookup", fmt.Errorf("no person matching %q", idOrName))
	}
	return p
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
