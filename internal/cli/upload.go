// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"staticcms/internal/models"
)

func newUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image or document and print its public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open upload: %w", err)
			}
			defer f.Close()

			ctx, cancel := a.context(cmd)
			defer cancel()

			url, err := a.api.Upload(ctx, filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			return a.emit(models.UploadResult{URL: url}, func() {
				fmt.Fprintln(a.out, url)
			})
		},
	}
}

func newUploadsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "uploads",
		Short: "List recent uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			list, err := a.api.ListUploads(ctx, limit)
			if err != nil {
				return err
			}
			return a.emit(list, func() {
				t := a.newTable("Name", "Type", "Size", "Image", "Uploaded", "URL")
				for _, u := range list {
					t.AppendRow([]any{
						truncate(u.OriginalName, 30), u.ContentType, u.HumanSize(),
						yesNo(u.IsImage()), u.CreatedAt.Local().Format(time.DateTime), u.URL,
					})
				}
				t.Render()
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of uploads to show (max 50)")
	return cmd
}
