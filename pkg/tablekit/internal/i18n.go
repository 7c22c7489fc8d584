package internal

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Messages shown by hosts. English text lives here; other languages are
// embedded from locales/active.<lang>.toml.
var (
	MsgHelpSelect    = &i18n.Message{ID: "HelpSelect", Other: "select"}
	MsgHelpBack      = &i18n.Message{ID: "HelpBack", Other: "back"}
	MsgHelpFilter    = &i18n.Message{ID: "HelpFilter", Other: "filter"}
	MsgHelpQuit      = &i18n.Message{ID: "HelpQuit", Other: "quit"}
	MsgHelpMove      = &i18n.Message{ID: "HelpMove", Other: "move"}
	MsgEmptyContents = &i18n.Message{ID: "EmptyContents", Other: "No items"}
	MsgFilterPrompt  = &i18n.Message{ID: "FilterPrompt", Other: "Filter: "}
	MsgNoMatches     = &i18n.Message{ID: "NoMatches", Other: "No matches"}
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizer    *i18n.Localizer
	languageTag  = language.English
	localizerMux sync.Mutex
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		if err := bundle.AddMessages(language.English,
			MsgHelpSelect, MsgHelpBack, MsgHelpFilter, MsgHelpQuit, MsgHelpMove,
			MsgEmptyContents, MsgFilterPrompt, MsgNoMatches,
		); err != nil {
			GetInternalLogger().Error("Failed to register default messages", "error", err)
		}

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name())); err != nil {
				GetInternalLogger().Error("Failed to load locale", "file", entry.Name(), "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage selects the language used by Localize.
// Unknown but well-formed tags fall back to English at lookup time.
func SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}

	localizerMux.Lock()
	defer localizerMux.Unlock()

	languageTag = tag
	localizer = i18n.NewLocalizer(getBundle(), tag.String(), language.English.String())
	return nil
}

// Language returns the active language tag.
func Language() language.Tag {
	localizerMux.Lock()
	defer localizerMux.Unlock()
	return languageTag
}

// Localize renders msg in the active language.
func Localize(msg *i18n.Message) string {
	localizerMux.Lock()
	if localizer == nil {
		localizer = i18n.NewLocalizer(getBundle(), languageTag.String())
	}
	loc := localizer
	localizerMux.Unlock()

	text, err := loc.Localize(&i18n.LocalizeConfig{DefaultMessage: msg})
	if err != nil && text == "" {
		GetInternalLogger().Debug("Missing translation", "id", msg.ID, "error", err)
		return msg.Other
	}
	return text
}
