// Command sourcectl drives the interactive source operations: connecting and
// disconnecting platform accounts, probing connection status, validating
// configuration and suggesting URL patterns for web sources.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsdesk/internal/automation"
	"newsdesk/internal/config"
	"newsdesk/internal/connector"
	"newsdesk/internal/connector/gmail"
	"newsdesk/internal/connector/linkedin"
	"newsdesk/internal/connector/twitter"
	"newsdesk/internal/crypto"
	"newsdesk/internal/discovery"
	"newsdesk/internal/domain"
	"newsdesk/internal/service"
	"newsdesk/internal/storage/postgres"
)

const usage = `usage: sourcectl [-config config.yaml] <command> [args]

commands:
  connect <source-id>                authenticate a source, credentials JSON on stdin
  disconnect <source-id>             drop stored credentials and revoke the session
  status <source-id>                 probe and print connection status
  validate <kind>                    validate config JSON from stdin for the given kind
  suggest <site-url> [article-url...] crawl a site and suggest URL patterns
  senders <source-id>                list newsletter senders of a GMAIL source
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("load config", err)
	}

	codec, err := crypto.NewCodec(cfg.EncryptionKey)
	if err != nil {
		fatal("invalid encryption key", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		fatal("connect to database", err)
	}
	defer db.Close()

	automationClient := automation.New(automation.Config{
		BaseURL:    cfg.Automation.BaseURL,
		Timeout:    cfg.Automation.Timeout,
		MaxRetries: cfg.Automation.MaxRetries,
		RetryDelay: cfg.Automation.RetryDelay,
	}, logger)

	registry := connector.NewRegistry()
	registry.Register(domain.KindGmail, func() connector.Connector {
		return gmail.New(gmail.Config{
			ClientID:     cfg.Gmail.ClientID,
			ClientSecret: cfg.Gmail.ClientSecret,
			RedirectURL:  cfg.Gmail.RedirectURL,
		}, codec, logger)
	})
	registry.Register(domain.KindLinkedIn, func() connector.Connector {
		return linkedin.New(automationClient, codec, logger)
	})
	registry.Register(domain.KindTwitter, func() connector.Connector {
		return twitter.New(automationClient, codec, logger)
	})

	sourceStore := postgres.NewSourceStore(db)
	crawler := discovery.NewCrawler(&http.Client{Timeout: 20 * time.Second}, logger)
	sources := service.NewSourceService(sourceStore, registry, crawler, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	args := flag.Args()
	switch args[0] {
	case "connect":
		err = runConnect(ctx, sources, args[1:])
	case "disconnect":
		err = runDisconnect(ctx, sources, args[1:])
	case "status":
		err = runStatus(ctx, sources, args[1:])
	case "validate":
		err = runValidate(sources, args[1:])
	case "suggest":
		err = runSuggest(ctx, sources, args[1:])
	case "senders":
		err = runSenders(ctx, sourceStore, registry, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(args[0], err)
	}
}

func runConnect(ctx context.Context, sources *service.SourceService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one source id")
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	profile, err := sources.Connect(ctx, args[0], raw)
	if err != nil {
		return err
	}
	return printJSON(map[string]string{"profileName": profile})
}

func runDisconnect(ctx context.Context, sources *service.SourceService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one source id")
	}
	return sources.Disconnect(ctx, args[0])
}

func runStatus(ctx context.Context, sources *service.SourceService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one source id")
	}

	status, err := sources.ConnectionStatus(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(status)
}

func runValidate(sources *service.SourceService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected a source kind")
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := sources.ValidateConfig(domain.SourceKind(args[0]), raw); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func runSuggest(ctx context.Context, sources *service.SourceService, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("expected a site URL")
	}

	suggestion, err := sources.SuggestPatterns(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	return printJSON(suggestion)
}

func runSenders(ctx context.Context, sourceStore *postgres.SourceStore, registry *connector.Registry, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one source id")
	}

	src, err := sourceStore.GetByID(ctx, args[0])
	if err != nil {
		return err
	}

	conn, err := registry.Resolve(domain.KindGmail)
	if err != nil {
		return err
	}
	gmailConn, ok := conn.(*gmail.Connector)
	if !ok || src.Kind != domain.KindGmail {
		return fmt.Errorf("source %s is not a GMAIL source", src.ID)
	}

	senders, err := gmailConn.ListSenders(ctx, src)
	if err != nil {
		return err
	}
	return printJSON(senders)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "sourcectl: %s: %v\n", msg, err)
	os.Exit(1)
}
