package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moviedb/internal/database"
	"moviedb/internal/repository/postgres"
	"moviedb/internal/seed"
	"moviedb/internal/storage"
)

func populateCmd(e *env) *cobra.Command {
	opts := seed.DefaultOptions()
	var (
		seedValue int64
		mirror    bool
	)

	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Fill the database with random movies, TV shows, people and ratings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := opts.Validate(); err != nil {
				return err
			}
			opts.Seed = uint64(seedValue)
			if !cmd.Flags().Changed("seed") {
				opts.Seed = uint64(time.Now().UnixNano())
			}

			db, err := e.openDB(ctx, e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			// Download posters before the transaction so it is not held open
			// across network calls.
			var m *seed.Mirror
			if mirror {
				if !e.cfg.MinIO.Enabled() {
					return fmt.Errorf("--mirror-posters needs MINIO_ENDPOINT")
				}
				store, err := storage.NewMinIO(ctx, e.cfg.MinIO)
				if err != nil {
					return err
				}
				m = seed.NewMirror(store, nil, e.log)
				if opts.Posters, err = m.MirrorAll(ctx, seed.PosterURLs); err != nil {
					return err
				}
			}

			fmt.Fprintln(e.out, "Starting to populate test data...")
			var sum *seed.Summary
			err = database.WithTx(ctx, db, func(tx *sql.Tx) error {
				var err error
				sum, err = seed.New(postgres.NewSeedPostgres(tx), e.log).Populate(ctx, opts)
				return err
			})
			if err != nil {
				if m != nil {
					m.Cleanup(context.WithoutCancel(ctx), opts.Posters)
				}
				return err
			}

			fmt.Fprintln(e.out, sum.String())
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Movies, "movies", opts.Movies, "number of movies to create")
	f.IntVar(&opts.TVShows, "tv-shows", opts.TVShows, "number of TV shows to create")
	f.IntVar(&opts.Actors, "actors", opts.Actors, "number of actors to create")
	f.IntVar(&opts.Directors, "directors", opts.Directors, "number of directors to create")
	f.Int64Var(&seedValue, "seed", 0, "random seed for a reproducible catalog (default: time based)")
	f.BoolVar(&mirror, "mirror-posters", false, "copy poster images into object storage and store their keys")
	return cmd
}
