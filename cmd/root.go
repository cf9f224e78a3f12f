// Package cmd command line
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/explain/internal/explain"
	"github.com/Laisky/explain/library/config"
	"github.com/Laisky/explain/library/log"
	"github.com/Laisky/explain/library/wikipedia"
)

const usageMessage = "Usage: explain [--more|-m] <concept you want explained>"

// exit codes of a failed lookup, 0 is success or usage.
const (
	exitGeneric = 1 + iota
	exitArticleNotFound
	exitUnsuccessfulResponse
	exitURLError
	exitParseError
)

func newRootCMD() *cobra.Command {
	rootCMD := &cobra.Command{
		Use:   "explain [--more|-m] <query words...>",
		Short: "explain a concept using Wikipedia",
		Long: `explain searches Wikipedia for the article best matching the query
and prints its title, a short description and the article URL.

Use --more to print the longer extract instead of the description.
Words after "--" are always treated as the query, e.g. "explain -- tui".`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd.Context(), cmd)
		},
		RunE: runExplain,
	}

	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().String("log-level", "warn", "`debug/info/warn/error`")
	rootCMD.PersistentFlags().StringP("config", "c", "", "optional config file path")
	rootCMD.PersistentFlags().Duration("timeout", wikipedia.DefaultTimeout, "timeout of each http request")
	rootCMD.PersistentFlags().String("language", wikipedia.DefaultLanguage, "wikipedia language edition, like `en`")
	rootCMD.PersistentFlags().String("user-agent", wikipedia.DefaultUserAgent, "User-Agent sent to wikipedia")
	rootCMD.PersistentFlags().String("search-endpoint", "", "query api endpoint, derived from --language when empty")
	rootCMD.PersistentFlags().String("summary-endpoint", "", "page summary endpoint, derived from --language when empty")

	rootCMD.Flags().BoolP("more", "m", false, "print the long extract instead of the short description")
	rootCMD.Flags().String("color", string(explain.ColorAlways), "`always/auto/never` style the title")
	rootCMD.Flags().StringP("output", "o", string(explain.OutputText), "`text/json`")

	// "help" and "completion" are query words, not commands; --help still works
	rootCMD.CompletionOptions.DisableDefaultCmd = true
	rootCMD.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCMD.AddCommand(newTUICMD(), newMCPCMD())
	return rootCMD
}

func initialize(ctx context.Context, cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	if err := setupSettings(ctx); err != nil {
		return err
	}
	if err := setupLogger(ctx); err != nil {
		return err
	}

	return validateStartupConfig()
}

func setupSettings(_ context.Context) error {
	// mode
	if gconfig.Shared.GetBool("debug") {
		gconfig.Shared.Set("log-level", "debug")
	}

	// load configuration
	return config.LoadFromFile(gconfig.Shared.GetString("config"))
}

func setupLogger(_ context.Context) error {
	lvl := strings.ToLower(gconfig.Shared.GetString("log-level"))
	if err := log.Logger.ChangeLevel(logSDK.Level(lvl)); err != nil {
		return errors.Wrapf(err, "change log level to %q", lvl)
	}
	return nil
}

// newServiceFromSettings builds the explain pipeline from the shared settings.
func newServiceFromSettings() (*explain.Service, error) {
	timeout, err := parseStrictDuration(gconfig.Shared.Get("timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "parse timeout")
	}

	httpClient, err := gutils.NewHTTPClient(
		gutils.WithHTTPClientTimeout(timeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "new http client")
	}

	client, err := wikipedia.NewClient(
		wikipedia.WithHTTPClient(httpClient),
		wikipedia.WithLanguage(gconfig.Shared.GetString("language")),
		wikipedia.WithUserAgent(gconfig.Shared.GetString("user-agent")),
		wikipedia.WithSearchEndpoint(gconfig.Shared.GetString("search-endpoint")),
		wikipedia.WithSummaryEndpoint(gconfig.Shared.GetString("summary-endpoint")),
		wikipedia.WithLogger(log.Logger.Named("wikipedia")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "new wikipedia client")
	}

	return explain.NewWikipediaService(client, log.Logger.Named("explain"))
}

func runExplain(cmd *cobra.Command, args []string) error {
	if explain.BuildQuery(args) == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), usageMessage)
		return errors.WithStack(err)
	}

	svc, err := newServiceFromSettings()
	if err != nil {
		return err
	}

	summary, err := svc.Explain(cmd.Context(), args, gconfig.Shared.GetBool("more"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	presenter := explain.NewPresenter(out,
		explain.ColorMode(strings.ToLower(gconfig.Shared.GetString("color"))))
	return presenter.Print(out,
		explain.OutputFormat(strings.ToLower(gconfig.Shared.GetString("output"))), summary)
}

// exitCode maps an error returned by the command tree to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	typed, ok := wikipedia.AsError(err)
	if !ok {
		return exitGeneric
	}

	switch typed.Code {
	case wikipedia.ErrCodeArticleNotFound:
		return exitArticleNotFound
	case wikipedia.ErrCodeUnsuccessfulResponse:
		return exitUnsuccessfulResponse
	case wikipedia.ErrCodeURL:
		return exitURLError
	case wikipedia.ErrCodeParse:
		return exitParseError
	default:
		return exitGeneric
	}
}

// run executes the command tree with args and returns the exit status.
// Failures are reported as one line on the command's standard output.
func run(ctx context.Context, rootCMD *cobra.Command, args []string) int {
	rootCMD.SetArgs(args)
	err := rootCMD.ExecuteContext(ctx)
	if err != nil {
		log.Logger.Debug("explain failed", zap.Error(err))
		fmt.Fprintln(rootCMD.OutOrStdout(), err.Error())
	}
	return exitCode(err)
}

// Execute execute root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, newRootCMD(), os.Args[1:])
	cancel()
	os.Exit(code)
}
