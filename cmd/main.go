package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shuldan/standalone/pkg/app"
	"github.com/shuldan/standalone/pkg/bootstrap"
	"github.com/shuldan/standalone/pkg/contracts"
	_ "github.com/shuldan/standalone/pkg/database/drivers"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dir, err := os.MkdirTemp("", "standalone-demo")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(dir) }()

	configPath := filepath.Join(dir, "app.yaml")
	configBody := `
app:
  name: demo
db:
  default:
    driver: sqlite3
    url: ":memory:"
stream:
  driver: memory
`
	if err := os.WriteFile(configPath, []byte(configBody), 0o600); err != nil {
		return err
	}

	a, err := bootstrap.New("demo", "DEMO_", configPath).
		WithRoot(dir).
		WithMode(contracts.Dev).
		WithDatabase().
		WithStream().
		CreateApplication()
	if err != nil {
		return err
	}

	app.Start(a)
	defer app.Stop(a)

	current, err := app.Current()
	if err != nil {
		return err
	}
	fmt.Printf("running %s from %s\n", current.Config().GetString("app.name"), current.Path())

	pool, err := app.CachedAs[contracts.DatabasePool](app.Default().Cache(), current)
	if err != nil {
		return err
	}
	db, _ := pool.Default()
	if _, err := db.DB().Exec(`CREATE TABLE greetings (id TEXT PRIMARY KEY, text TEXT)`); err != nil {
		return err
	}
	if _, err := db.DB().Exec(`INSERT INTO greetings (id, text) VALUES (?, ?)`, "1", "hello"); err != nil {
		return err
	}
	var text string
	if err := db.DB().QueryRow(`SELECT text FROM greetings WHERE id = ?`, "1").Scan(&text); err != nil {
		return err
	}
	fmt.Printf("database says %q\n", text)

	broker, err := app.CachedAs[contracts.Broker](app.Default().Cache(), current)
	if err != nil {
		return err
	}
	delivered := make(chan string, 1)
	if err := broker.Consume(context.Background(), "greetings", func(data []byte) error {
		delivered <- string(data)
		return nil
	}); err != nil {
		return err
	}
	if err := broker.Produce(context.Background(), "greetings", []byte(text)); err != nil {
		return err
	}
	select {
	case msg := <-delivered:
		fmt.Printf("stream says %q\n", msg)
	case <-time.After(time.Second):
		return fmt.Errorf("message was not delivered")
	}

	return nil
}
