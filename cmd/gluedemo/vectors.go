package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/glue"
)

type sample struct {
	name  string
	value glue.Value
}

func samples() []sample {
	return []sample{
		{"Vector2i", glue.Vec2i(3, 4)},
		{"Vector3i", glue.Vec3i(1920, 1080, 1)},
		{"Vector4", glue.Vec4(1, 2.5, -3, 4)},
		{"Vector4i", glue.Vec4i(1, 2, 3, 4)},
		{"Rect2i", glue.Rect2iXYWH(10, 20, 640, 480)},
		{"Projection", glue.NewProjection()},
	}
}

func newVectorsCmd() *cobra.Command {
	var (
		format string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Print sample value types",
		Long: `Print one value of each glue value type with its hash.

With --format, every component is rendered with the given fmt verb
(e.g. "%.2f" or "%03d"). With --locale, formatting goes through a
locale-aware printer (e.g. "de" or "en-US").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p *message.Printer
			if locale != "" {
				tag, err := language.Parse(locale)
				if err != nil {
					return fmt.Errorf("parse locale %q: %w", locale, err)
				}
				p = message.NewPrinter(tag)
				if format == "" {
					format = "%v"
				}
			}

			out := cmd.OutOrStdout()
			for _, s := range samples() {
				text := s.value.String()
				if format != "" {
					text = s.value.FormattedIn(p, format)
				}
				fmt.Fprintf(out, "%-10s %s hash=%d\n", s.name, text, s.value.Hash())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "fmt verb applied to each component")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for number formatting")
	return cmd
}
