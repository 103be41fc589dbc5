package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"vaxbook/config"
	"vaxbook/services/apiclient"
	"vaxbook/services/session"
	"vaxbook/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Deps lets callers replace the session store and output streams.
type Deps struct {
	Store  session.Store
	Out    io.Writer
	Err    io.Writer
	Logger *zap.Logger
}

type app struct {
	deps   Deps
	v      *viper.Viper
	cfg    *config.Config
	client *apiclient.Client
	json   bool
}

// NewRootCmd builds the command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Err == nil {
		deps.Err = os.Stderr
	}
	a := &app{deps: deps, v: viper.New()}

	root := &cobra.Command{
		Use:           "vaxbook",
		Short:         "Browse vaccines, manage child profiles and book vaccinations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(deps.Out)
	root.SetErr(deps.Err)

	flags := root.PersistentFlags()
	flags.String("base-url", "", "backend base URL (env API_BASE_URL)")
	flags.Duration("timeout", 0, "request timeout (env REQUEST_TIMEOUT)")
	flags.String("log-level", "", "log level (env LOG_LEVEL)")
	flags.BoolVar(&a.json, "json", false, "print results as JSON")
	_ = a.v.BindPFlag("API_BASE_URL", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("REQUEST_TIMEOUT", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	root.AddCommand(
		a.vaccinesCmd(),
		a.loginCmd(),
		a.registerCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.childrenCmd(),
		a.appointmentsCmd(),
		a.supportCmd(),
		a.guideCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	config.AppConfig = *cfg

	logger := a.deps.Logger
	if logger == nil {
		logger, err = utils.NewLogger(config.IsProduction(), cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	store := a.deps.Store
	if store == nil {
		store, err = session.Open(cfg)
		if err != nil {
			return err
		}
	}
	a.client = apiclient.New(apiclient.OptionsFromConfig(cfg), store, logger)
	logger.Debug("CLI ready", zap.String("command", cmd.CommandPath()), zap.String("baseURL", cfg.APIBaseURL))
	return nil
}

func (a *app) out() io.Writer { return a.deps.Out }

// emit prints v as JSON when --json is set, otherwise calls text.
func (a *app) emit(v any, text func(w io.Writer)) error {
	if a.json {
		enc := json.NewEncoder(a.out())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(a.out())
	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Deps) int {
	root := NewRootCmd(deps)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", userMessage(err))
		return 1
	}
	return 0
}

// userMessage is the text shown for a failed command.
func userMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
