package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
)

// signInDelay stands in for the round trip to an account server.
const signInDelay = 1500 * time.Millisecond

// settingsDemo is the sample application: a Settings screen with an
// Account and a General section, and the sub-screens reached from them.
type settingsDemo struct {
	out        io.Writer
	shareUsage bool

	// mu guards the account state, which sign-in updates in the background.
	mu        sync.Mutex
	user      string
	signedIn  bool
	signingIn bool

	settings *tablekit.Controller

	// authenticate blocks until the account server answers.
	authenticate func(user string) error

	// prompt asks for a new display name. Nil when the host cannot prompt.
	prompt func(current string) (string, error)
	// render turns markdown into printable text. Nil prints it raw.
	render func(markdown string) (string, error)
}

func newSettingsDemo(out io.Writer, user string) *settingsDemo {
	return &settingsDemo{
		out:      out,
		user:     user,
		signedIn: true,
		authenticate: func(string) error {
			time.Sleep(signInDelay)
			return nil
		},
	}
}

func (d *settingsDemo) controller() *tablekit.Controller {
	if d.settings == nil {
		d.settings = tablekit.NewControllerWithContents(d.contents())
	}
	return d.settings
}

func (d *settingsDemo) contents() *tablekit.Contents {
	c := tablekit.NewContentsWithTitle("Settings")

	d.mu.Lock()
	defer d.mu.Unlock()

	account := tablekit.SectionWithTitle("Account", nil)
	switch {
	case d.signingIn:
		account.AddItem(tablekit.Action("Signing In…", func() {
			tablekit.GetLogger().Debug("Sign-in still in progress")
		}))
	case d.signedIn:
		account.AddItem(tablekit.Action(fmt.Sprintf("Name: %s", d.user), d.rename))
		account.AddItem(tablekit.Action("Privacy", d.showPrivacy))
		account.AddItem(tablekit.Action("Log Out", d.confirmLogOut))
	default:
		account.AddItem(tablekit.Action("Sign In", d.signIn))
	}
	c.AddSection(account)

	c.AddSection(tablekit.SectionWithTitle("General", []*tablekit.Item{
		tablekit.Action("About", d.about),
		tablekit.Action("Quit", d.quit),
	}))

	return c
}

func (d *settingsDemo) refresh() {
	d.controller().SetContents(d.contents())
}

func (d *settingsDemo) rename() {
	logger := tablekit.GetLogger()
	if d.prompt == nil {
		logger.Info("Renaming needs the terminal host")
		return
	}

	current := d.currentUser()
	name, err := d.prompt(current)
	if err != nil {
		if !errors.Is(err, huh.ErrUserAborted) {
			logger.Error("Rename prompt failed", "error", err)
		}
		return
	}

	name = strings.TrimSpace(name)
	if name == "" || name == current {
		return
	}

	logger.Info("Renamed user", "from", current, "to", name)
	d.mu.Lock()
	d.user = name
	d.mu.Unlock()
	d.refresh()
}

func (d *settingsDemo) privacyContents(privacy *tablekit.Controller) *tablekit.Contents {
	state := "Off"
	if d.shareUsage {
		state = "On"
	}

	c := tablekit.NewContentsWithTitle("Privacy")
	c.AddSection(tablekit.SectionWithTitle("", []*tablekit.Item{
		tablekit.Action("Share usage data: "+state, func() {
			d.shareUsage = !d.shareUsage
			privacy.SetContents(d.privacyContents(privacy))
		}),
		tablekit.Action("Done", privacy.Dismiss),
	}))
	return c
}

func (d *settingsDemo) showPrivacy() {
	privacy := tablekit.NewController()
	privacy.SetContents(d.privacyContents(privacy))
	privacy.PresentFrom(d.controller())
}

func (d *settingsDemo) confirmLogOut() {
	confirm := tablekit.NewController()

	c := tablekit.NewContentsWithTitle("Log Out")
	user := d.currentUser()
	c.AddSection(tablekit.SectionWithTitle(fmt.Sprintf("Log out of %s?", user), []*tablekit.Item{
		tablekit.Action("Log Out", func() {
			tablekit.GetLogger().Info("Logged out", "user", user)
			d.mu.Lock()
			d.signedIn = false
			d.mu.Unlock()
			confirm.Dismiss()
			d.refresh()
		}),
		tablekit.Action("Cancel", confirm.Dismiss),
	}))
	confirm.SetContents(c)

	confirm.PresentFrom(d.controller())
}

// signIn shows a progress row and finishes in the background. The
// finished tree replaces the one the host is showing.
func (d *settingsDemo) signIn() {
	d.mu.Lock()
	if d.signingIn {
		d.mu.Unlock()
		return
	}
	d.signingIn = true
	user := d.user
	d.mu.Unlock()
	d.refresh()

	go func() {
		logger := tablekit.GetLogger()
		err := d.authenticate(user)

		d.mu.Lock()
		d.signingIn = false
		d.signedIn = err == nil
		d.mu.Unlock()

		if err != nil {
			logger.Error("Sign-in failed", "user", user, "error", err)
		} else {
			logger.Info("Signed in", "user", user)
		}
		d.refresh()
	}()
}

func (d *settingsDemo) currentUser() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.user
}

func (d *settingsDemo) about() {
	text := aboutMarkdown
	if d.render != nil {
		rendered, err := d.render(aboutMarkdown)
		if err != nil {
			tablekit.GetLogger().Error("Failed to render about text", "error", err)
		} else {
			text = rendered
		}
	}
	fmt.Fprintln(d.out, text)
}

func (d *settingsDemo) quit() {
	d.controller().Dismiss()
}
