package system

import (
	"fmt"
	"os"

	"github.com/glitch-xp/loyola-academic-calender/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Delete the existing cache before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	cachePath := ctx.Store.GetCachePath()

	if c.Force {
		if _, err := os.Stat(cachePath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing cache: %w", err)
			}
			if err := os.Remove(cachePath); err != nil {
				return fmt.Errorf("failed to delete existing cache: %w", err)
			}
			fmt.Printf("Deleted existing cache at: %s\n", cachePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing cache: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized loyolacal cache at: %s\n", cachePath)
	fmt.Println("Run 'loyolacal setup' to pick your course.")
	return nil
}
