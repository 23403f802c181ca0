package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/internal/config"
	"github.com/katalvlaran/socialpath/populate"
)

// runFlags are the population flags shared by every command.
// They override values from the config file only when set explicitly.
type runFlags struct {
	users       int
	avg         int
	strategy    string
	seed        int64
	root        int
	maxAttempts int
	sorted      bool
	names       string
}

func (f *runFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.users, "users", "n", config.DefaultUsers, "number of users to create")
	fs.IntVarP(&f.avg, "avg", "a", config.DefaultAvgFriendships, "average friendships per user")
	fs.StringVarP(&f.strategy, "strategy", "s", config.DefaultStrategy, "population strategy: exhaustive, rejection")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 = time-seeded)")
	fs.IntVarP(&f.root, "root", "r", config.DefaultRoot, "user to compute paths from")
	fs.IntVar(&f.maxAttempts, "max-attempts", 0, "rejection strategy draw cap (0 = unbounded)")
	fs.BoolVar(&f.sorted, "sorted", false, "break path ties by ascending user ID")
	fs.StringVar(&f.names, "names", config.DefaultNames, "user name scheme: decimal, user, excel")
}

// resolve loads the config file and applies explicitly set flags on top.
func (c *CLI) resolve(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("users") {
		cfg.Users = f.users
	}
	if fs.Changed("avg") {
		cfg.AvgFriendships = f.avg
	}
	if fs.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("root") {
		cfg.Root = f.root
	}
	if fs.Changed("max-attempts") {
		cfg.MaxAttempts = f.maxAttempts
	}
	if fs.Changed("sorted") {
		cfg.Sorted = f.sorted
	}
	if fs.Changed("names") {
		cfg.Names = f.names
	}
	return cfg, cfg.Validate()
}

// populateGraph builds a fresh graph according to cfg.
func populateGraph(ctx context.Context, cfg config.Config) (*core.Graph, populate.Result, error) {
	logger := loggerFromContext(ctx)

	names, err := populate.NameSchemeByName(cfg.Names)
	if err != nil {
		return nil, populate.Result{}, err
	}
	opts := []populate.Option{
		populate.WithNameScheme(names),
		populate.WithMaxAttempts(cfg.MaxAttempts),
		populate.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, populate.WithSeed(cfg.Seed))
	}
	strategy, err := populate.ByName(cfg.Strategy, opts...)
	if err != nil {
		return nil, populate.Result{}, err
	}

	logger.Debug("populating", "strategy", strategy.Name(), "users", cfg.Users, "avg", cfg.AvgFriendships, "seed", cfg.Seed)
	prog := newProgress(logger)
	g := core.NewGraph(core.WithLogger(logger))
	res, err := strategy.Populate(g, cfg.Users, cfg.AvgFriendships)
	if err != nil {
		return nil, res, fmt.Errorf("populate: %w", err)
	}
	prog.done("Populated graph", "users", res.Users, "friendships", res.Friendships)

	return g, res, nil
}
