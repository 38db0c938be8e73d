package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/data/seed"
	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command
func NewSeedCommand(configFile *string) *cobra.Command {
	var (
		opts    seed.Options
		useTest bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert generated blog posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Count < 0 {
				return fmt.Errorf("count must not be negative: %d", opts.Count)
			}

			ctx := context.Background()
			a, cleanup, err := newApp(ctx, *configFile, useTest)
			if err != nil {
				return err
			}
			defer cleanup()

			repo := repository.NewBlogPostRepository(a.data.Collection(), a.logger)
			posts, err := seed.Run(ctx, repo, opts)
			if err != nil {
				return err
			}

			a.logger.Info(ctx, "seeded blog posts", "count", len(posts), "dropped", opts.Drop)
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d blog posts\n", len(posts))
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of posts to insert")
	cmd.Flags().BoolVar(&opts.Drop, "drop", false, "drop the collection first")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().BoolVar(&useTest, "test-db", false, "use the test database URL")
	return cmd
}
