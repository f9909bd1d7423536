// Command gvero-session drives the session SDK from a terminal: it signs in
// against a gvero backend, persists the session to a local state file (or
// Redis), and prints the resulting identity. Run it again without credentials
// to verify the persisted session.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	gvero "github.com/Pantaleaogc/gvero-sdk"
	"github.com/Pantaleaogc/gvero-sdk/nav"
	"github.com/Pantaleaogc/gvero-sdk/notify"
	"github.com/Pantaleaogc/gvero-sdk/storage"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "", "auth endpoint root, e.g. https://api.example.com/api/v1")
		email     = flag.String("email", "", "email to sign in with; omit to reuse the persisted session")
		password  = flag.String("password", "", "password to sign in with")
		stateFile = flag.String("state", defaultStatePath(), "session state file")
		redisAddr = flag.String("redis-addr", "", "store the session in redis instead of the state file")
		prefix    = flag.String("prefix", "gv", "redis key prefix")
		timeout   = flag.Duration("timeout", 10*time.Second, "per-request timeout")
		logout    = flag.Bool("logout", false, "end the persisted session and exit")
	)
	flag.Parse()

	if *baseURL == "" {
		fmt.Fprintln(os.Stderr, "base-url is required")
		os.Exit(2)
	}

	ctx := context.Background()

	cfg := gvero.DefaultConfig()
	cfg.Endpoint.BaseURL = *baseURL
	cfg.Endpoint.RequestTimeout = *timeout
	cfg.Storage.RedisPrefix = *prefix

	builder := gvero.New().
		WithConfig(cfg).
		WithNavigator(nav.NavigatorFunc(func(path string) {
			fmt.Printf("navigate -> %s\n", path)
		})).
		WithNotifier(notify.NewJSONWriterNotifier(os.Stderr))

	var cleanup func()
	if *redisAddr != "" {
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{*redisAddr},
		})
		cleanup = func() { _ = rdb.Close() }
		builder.WithRedis(rdb)
	} else {
		if err := os.MkdirAll(filepath.Dir(*stateFile), 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "creating state dir: %v\n", err)
			os.Exit(1)
		}
		backend, err := storage.NewFileBackend(*stateFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening state file: %v\n", err)
			os.Exit(1)
		}
		cleanup = func() {}
		builder.WithStorage(backend)
	}
	defer cleanup()

	client, err := builder.Build(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	if *logout {
		client.Logout(ctx)
		fmt.Println("session ended")
		return
	}

	switch {
	case *email != "":
		identity, err := client.Login(ctx, *email, *password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("signed in:")
		printIdentity(identity)
	case client.Authenticated():
		if !client.Verify(ctx) {
			fmt.Fprintln(os.Stderr, "persisted session is no longer valid")
			os.Exit(1)
		}
		fmt.Println("session verified:")
		printIdentity(client.CurrentUser())
	default:
		fmt.Fprintln(os.Stderr, "no persisted session; pass -email and -password to sign in")
		os.Exit(2)
	}
}

func printIdentity(identity *gvero.Identity) {
	out, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gvero-session.json"
	}
	return filepath.Join(dir, "gvero", "session.json")
}
