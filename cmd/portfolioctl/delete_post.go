package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/repository"
	sqliteClient "portfolio/internal/platform/sqlite"
)

func newDeletePostCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "delete-post",
		Short: "Delete the oldest blog post with the given title",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := sqliteClient.New(cmd.Context(), cfg.Database.Path)
			if err != nil {
				return err
			}
			defer func() {
				if sqlDB, dbErr := db.DB(); dbErr == nil {
					_ = sqlDB.Close()
				}
			}()

			postRepo := repository.NewBlogPostRepository(db)
			post, err := postRepo.GetByTitle(title)
			if err != nil {
				return err
			}
			if post == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Post not found!")
				return nil
			}

			if err := postRepo.DeleteByID(post.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Post deleted successfully!")
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title of the post to delete")
	return cmd
}
