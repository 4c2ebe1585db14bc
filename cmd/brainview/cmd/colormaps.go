// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cogentcore.org/brainview/app"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newColormaps(g *globals) *cobra.Command {
	steps := 0
	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List the color maps with swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ListColorMaps(cmd.OutOrStdout(), termenv.EnvColorProfile(), steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 32, "the number of colors in the swatch of each continuous scale")
	return cmd
}
