package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizeDefaultsToEnglish(t *testing.T) {
	require.NoError(t, SetLanguage("en"))

	assert.Equal(t, "No items", Localize(MsgEmptyContents))
	assert.Equal(t, "select", Localize(MsgHelpSelect))
}

func TestLocalizeSpanish(t *testing.T) {
	require.NoError(t, SetLanguage("es"))
	defer SetLanguage("en")

	assert.Equal(t, language.Spanish, Language())
	assert.Equal(t, "Sin elementos", Localize(MsgEmptyContents))
	assert.Equal(t, "Filtrar: ", Localize(MsgFilterPrompt))
}

func TestLocalizeGerman(t *testing.T) {
	require.NoError(t, SetLanguage("de"))
	defer SetLanguage("en")

	assert.NotEqual(t, "No items", Localize(MsgEmptyContents))
}

func TestLocalizeUnknownLanguageFallsBack(t *testing.T) {
	require.NoError(t, SetLanguage("fr"))
	defer SetLanguage("en")

	assert.Equal(t, "No matches", Localize(MsgNoMatches))
}

func TestSetLanguageRejectsMalformedTag(t *testing.T) {
	assert.Error(t, SetLanguage("not a language tag"))
}
