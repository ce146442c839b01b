// Package cli implements the Expander command-line tools: configuration,
// logging setup and the shared pagination/printing loop behind the five
// commands under cmd/.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	expander "github.com/tphakala/go-expander"
)

// Environment variables read by NewApp. A .env file in the working directory
// is loaded first when present.
const (
	EnvBaseURL  = "EXPANDER_BASE_URL"
	EnvLogLevel = "EXPANDER_LOG_LEVEL"
)

// App carries the runtime surface of a command: configuration and the writers
// output goes to. Tests substitute buffers for the writers.
type App struct {
	BaseURL string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  zerolog.Logger
}

// NewApp builds an App from the environment.
func NewApp() *App {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	baseURL := os.Getenv(EnvBaseURL)
	if baseURL == "" {
		baseURL = expander.DefaultBaseURL
	}

	return &App{
		BaseURL: baseURL,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  newLogger(os.Getenv(EnvLogLevel), os.Stderr),
	}
}

// newLogger configures a console logger at the given level. An empty level
// disables logging entirely: the commands speak through their progress lines,
// and request-level logging is opt-in diagnostics.
func newLogger(level string, out io.Writer) zerolog.Logger {
	if level == "" {
		return zerolog.Nop()
	}

	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: out}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}

// fail prints the error and returns the command exit code. Every failure
// surfaces here: validation, authentication, API and transport errors alike.
func (a *App) fail(err error) int {
	fmt.Fprintln(a.Stderr, err)
	return 1
}

// newClient builds an Expander client bound to the App's configuration.
func (a *App) newClient(bearerToken string) (*expander.Client, error) {
	return expander.NewClient(
		expander.WithBaseURL(a.BaseURL),
		expander.WithBearerToken(bearerToken),
		expander.WithLogger(a.Logger),
	)
}

// authenticate runs the token exchange, announcing progress like the
// original tooling did.
func (a *App) authenticate(ctx context.Context, client *expander.Client) error {
	fmt.Fprintln(a.Stdout, "Calling /api/v1/idtoken endpoint...")
	if _, err := client.Authenticate(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Stdout, "Successfully Authenticated")
	return nil
}

// printJSON pretty-prints a value to stdout.
func (a *App) printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(a.Stderr, "failed to render results: %v\n", err)
		return
	}
	fmt.Fprintln(a.Stdout, string(data))
}

// listSpec describes one collection listing run.
type listSpec struct {
	// endpoint is the announce string, e.g. the full collection URL.
	endpoint string

	// noun names the records in per-page progress lines, e.g. "Cloud Assets".
	noun string

	// totalNoun names the records in the completion line.
	totalNoun string

	// stream controls whether each page's records are printed as retrieved
	// (true) or only the combined result once pagination completes.
	stream bool

	// pages is the page iterator to drain.
	pages iter.Seq2[*expander.Page, error]
}

// paginate drains a page iterator, accumulating records in arrival order and
// reporting per-page and running totals. The first error aborts the run; any
// partial accumulation is discarded by the caller exiting.
func (a *App) paginate(spec listSpec) ([]json.RawMessage, error) {
	fmt.Fprintf(a.Stdout, "Calling %s endpoint...\n", spec.endpoint)

	results := []json.RawMessage{}
	for page, err := range spec.pages {
		if err != nil {
			return nil, err
		}

		if spec.stream {
			a.printJSON(page.Data)
		}
		results = append(results, page.Data...)

		if total, ok := page.TotalCount(); ok {
			fmt.Fprintf(a.Stdout, "Retrieved %d %s on this page, total so far: %d out of %d\n",
				len(page.Data), spec.noun, len(results), total)
		} else {
			fmt.Fprintf(a.Stdout, "Retrieved %d %s on this page, total so far: %d\n",
				len(page.Data), spec.noun, len(results))
		}

		if page.HasNext() {
			fmt.Fprintln(a.Stdout, "Loading next page...")
		}
	}

	if !spec.stream {
		a.printJSON(results)
	}

	fmt.Fprintf(a.Stdout, "Process has completed: %d Total %s have been loaded\n",
		len(results), spec.totalNoun)

	return results, nil
}
