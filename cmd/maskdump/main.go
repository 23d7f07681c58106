// maskdump compiles the collision masks of a TMX room file and prints
// the resulting rectangles, grouped by behavior.
//
// Usage:
//
//	maskdump <room.tmx>              - Dump compiled masks
//	maskdump --behaviors custom.yaml - Use a custom behavior table
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

var flagBehaviors string

var rootCmd = &cobra.Command{
	Use:   "maskdump <room.tmx>",
	Short: "Compile a TMX room's collision masks and print them",
	Long: `maskdump loads a TMX room file, resolves its tile behaviors through
the behavior table, runs the greedy mask compiler and prints every
resulting rectangle. Useful for eyeballing how a room's tiles merge
without starting the game.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.Flags().StringVar(&flagBehaviors, "behaviors", "", "Path to a custom behaviors YAML table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	reg, err := config.LoadBehaviors(flagBehaviors)
	if err != nil {
		return err
	}

	path := args[0]
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	layout, err := leveldata.Load(os.DirFS(dir), file, reg)
	if err != nil {
		return err
	}

	masks, err := collision.Compile(layout.Grid, layout.CellW, layout.CellH)
	if err != nil {
		return err
	}

	cells := 0
	for _, row := range layout.Grid {
		for _, c := range row {
			if c != 0 {
				cells++
			}
		}
	}
	fmt.Printf("%s: %dx%d px, %d behavior cells, %d rectangles\n",
		layout.Name, layout.Width, layout.Height, cells, masks.Len())

	for _, code := range masks.Codes() {
		name, ok := reg.Name(code)
		if !ok {
			name = "?"
		}
		rects := masks.Masks(code)
		fmt.Printf("\n%s (code %d): %d rectangles\n", name, code, len(rects))
		for _, r := range rects {
			fmt.Printf("  %4.0f,%-4.0f %4.0fx%-4.0f\n", r.X, r.Y, r.W, r.H)
		}
	}
	return nil
}
