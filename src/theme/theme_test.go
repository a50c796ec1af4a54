package theme

import (
	"strings"
	"testing"

	"github.com/scusemua/alert-view/m/v2/src/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetHasEveryThemeClass(t *testing.T) {
	provider, err := NewProvider(nil)
	require.NoError(t, err)

	css := provider.Stylesheet()

	for _, selector := range []string{
		".alert.info", ".alert.success", ".alert.warning", ".alert.error",
		".alert.infoprimary", ".alert.successprimary", ".alert.warningprimary", ".alert.errorprimary",
		".alert", ".alert .layout", ".alert .content", ".alert .content.center", ".alert .close", ".alert .title",
	} {
		assert.Equal(t, 1, strings.Count(css, selector+" {"), "selector %s", selector)
	}

	// No rule may target a bare class that a host page could also use.
	for _, line := range strings.Split(css, "\n") {
		if strings.HasSuffix(line, "{") {
			assert.True(t, strings.HasPrefix(line, ".alert"), "unscoped rule %q", line)
		}
	}

	assert.Contains(t, css, "var(--lumo-error-color, hsla(3, 85%, 48%, 1.0))")
}

func TestProviderOverrides(t *testing.T) {
	provider, err := NewProvider(map[string]string{"--lumo-error-color": "#cc0000"})
	require.NoError(t, err)

	colors, ok := provider.Colors(domain.LevelError, true)
	require.True(t, ok)
	assert.Equal(t, "var(--lumo-error-color, #cc0000)", colors.Background.CSS())

	// The tinted variant uses a different token and keeps its fallback.
	colors, ok = provider.Colors(domain.LevelError, false)
	require.True(t, ok)
	assert.Equal(t, "hsla(3, 85%, 49%, 0.1)", colors.Background.Fallback)

	assert.Contains(t, provider.Stylesheet(), "#cc0000")
}

func TestProviderRejectsUnknownTokens(t *testing.T) {
	_, err := NewProvider(map[string]string{"--not-a-token": "red"})
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestUnknownLevelHasNoColors(t *testing.T) {
	provider, err := NewProvider(nil)
	require.NoError(t, err)

	_, ok := provider.Colors("critical", false)
	assert.False(t, ok)
}

func TestTokensAreUnique(t *testing.T) {
	tokens := Tokens()
	assert.Len(t, tokens, 16)

	seen := make(map[string]bool)
	for _, token := range tokens {
		assert.False(t, seen[token.Var], token.Var)
		seen[token.Var] = true
	}
}
