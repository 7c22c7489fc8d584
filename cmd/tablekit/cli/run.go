package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/sdlhost"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/terminal"
)

const (
	hostTerminal = "terminal"
	hostSDL      = "sdl"
)

func runSettings(cmd *cobra.Command) error {
	logger := tablekit.GetLogger()
	demo := newSettingsDemo(cmd.OutOrStdout(), userName)

	var host tablekit.Host
	switch hostName {
	case hostTerminal:
		var opts []terminal.Option
		if cmd.Flags().Changed("alt-screen") {
			opts = append(opts, terminal.WithAltScreen(altScreen))
		}
		host = terminal.New(opts...)
		demo.prompt = promptName
		demo.render = renderMarkdown

	case hostSDL:
		h, err := sdlhost.New(sdlhost.Options{Title: "tablekit", ShowBackground: true})
		if err != nil {
			return err
		}
		defer func() {
			if err := h.Close(); err != nil {
				logger.Error("Failed to close SDL host", "error", err)
			}
		}()
		host = h

	default:
		return fmt.Errorf("unknown host %q (want %s or %s)", hostName, hostTerminal, hostSDL)
	}

	nav := tablekit.NewNavigator(host)
	demo.controller().PresentFrom(nav)

	logger.Info("Showing settings", "host", hostName, "user", demo.user)
	return nav.Run()
}

// promptName asks for a display name with a huh input field.
func promptName(current string) (string, error) {
	name := current
	err := huh.NewInput().
		Title("Display name").
		Value(&name).
		Validate(func(s string) error {
			if len([]rune(s)) > 32 {
				return fmt.Errorf("name is too long")
			}
			return nil
		}).
		Run()
	return name, err
}
