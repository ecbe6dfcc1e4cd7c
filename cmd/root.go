package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/config"
	"github.com/abhisek/skillforge/internal/learner"
	"github.com/abhisek/skillforge/internal/questionbank"
	"github.com/abhisek/skillforge/internal/screen"
	"github.com/abhisek/skillforge/internal/selector"
	"github.com/abhisek/skillforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillforge",
	Short: "Adaptive programming quiz with cognitive feedback",
	Long: "SkillForge is a terminal quiz that adapts question difficulty to your answers,\n" +
		"spots patterns such as rushing or guessing, and tracks mastery per concept.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLFORGE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remediateCmd)
	rootCmd.AddCommand(learnersCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if _, err := config.ParseLogLevel(lvl); err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to
// SKILLFORGE_DB and then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// env bundles what every command needs. Close releases the store.
type env struct {
	cfg    *config.Config
	store  *store.Store
	deps   *screen.Deps
	logger *slog.Logger
}

func (e *env) Close() error {
	return e.store.Close()
}

// openCLIEnv is openEnv for non-interactive commands, logging to stderr.
func openCLIEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openEnv(cfg, cmd.ErrOrStderr())
}

// openEnv opens the store and wires the learner service, question bank
// and selector. Logs go to logOut.
func openEnv(cfg *config.Config, logOut io.Writer) (*env, error) {
	logger := cfg.NewLogger(logOut)

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	bank := questionbank.Default()
	if cfg.BankPath != "" {
		bank, err = questionbank.LoadFile(cfg.BankPath)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		logger.Info("question bank loaded", "path", cfg.BankPath, "questions", bank.Len())
	}

	seed := cfg.Quiz.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	logger.Debug("environment ready", "db", dbPath, "seed", seed)
	return &env{
		cfg:    cfg,
		store:  st,
		logger: logger,
		deps: &screen.Deps{
			Learners: learner.NewService(st.RecordRepo(), st.EventRepo(), logger),
			Bank:     bank,
			Selector: selector.New(bank, rng),
			Logger:   logger,
		},
	}, nil
}

// envPassword lets scripts pass the password without a flag.
const envPassword = "SKILLFORGE_PASSWORD"

func addCredentialFlags(c *cobra.Command) {
	c.Flags().String("email", "", "Learner email")
	c.Flags().String("password", "", "Learner password (or set "+envPassword+")")
	_ = c.MarkFlagRequired("email")
}

// authenticate logs in with the --email and --password flags.
func authenticate(cmd *cobra.Command, e *env) (*learner.Learner, error) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv(envPassword)
	}
	if password == "" {
		return nil, fmt.Errorf("password required: use --password or %s", envPassword)
	}
	return e.deps.Learners.Login(cmd.Context(), email, password)
}
