// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"staticcms/internal/models"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "build",
		Aliases: []string{"generate"},
		Short:   "Regenerate the static site",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			res, err := a.api.Generate(ctx)
			if err != nil {
				return err
			}
			if err := a.emit(res, func() {
				fmt.Fprintf(a.out, "%s: %s\n", res.Status, res.Message)
			}); err != nil {
				return err
			}
			if res.Status == models.BuildError {
				return fmt.Errorf("site generation failed: %s", res.Message)
			}
			return nil
		},
	}
}
