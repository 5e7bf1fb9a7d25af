package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/store"
)

type Theme struct {
	Toggle bool

	Persistence store.Persistence
}

func (n *Theme) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not read theme, no persistence")
	}

	dark := n.Persistence.Theme()
	if n.Toggle {
		dark = !dark
		if err := n.Persistence.SetTheme(dark); err != nil {
			return fmt.Errorf("set theme: %w", err)
		}
	}

	if dark {
		fmt.Println("dark")
	} else {
		fmt.Println("light")
	}
	return nil
}
