// Package theme holds the colour tokens of the alert themes and renders the alert stylesheet.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/scusemua/alert-view/m/v2/src/domain"
)

var (
	ErrUnknownToken = errors.New("unknown theme token")
)

// Token is a named colour. Var is the CSS custom property that a host page may define;
// Fallback is used when it does not.
type Token struct {
	Var      string
	Fallback string
}

func (t Token) CSS() string {
	return fmt.Sprintf("var(%s, %s)", t.Var, t.Fallback)
}

// Colors is the background and foreground pair of one theme class.
type Colors struct {
	Background Token
	Foreground Token
}

var tinted = map[domain.Level]Colors{
	domain.LevelInfo: {
		Background: Token{"--lumo-primary-color-10pct", "hsla(214, 100%, 60%, 0.13)"},
		Foreground: Token{"--lumo-primary-text-color", "hsla(211, 63%, 54%, 1.0)"},
	},
	domain.LevelSuccess: {
		Background: Token{"--lumo-success-color-10pct", "hsla(145, 72%, 31%, 0.1)"},
		Foreground: Token{"--lumo-success-text-color", "hsla(145, 85%, 25%, 1.0)"},
	},
	domain.LevelWarning: {
		Background: Token{"--lumo-warning-color-10pct", "hsla(30, 100%, 50%, 0.1)"},
		Foreground: Token{"--lumo-warning-text-color", "hsla(30, 89%, 42%, 1.0)"},
	},
	domain.LevelError: {
		Background: Token{"--lumo-error-color-10pct", "hsla(3, 85%, 49%, 0.1)"},
		Foreground: Token{"--lumo-error-text-color", "hsla(3, 89%, 42%, 1.0)"},
	},
}

var solid = map[domain.Level]Colors{
	domain.LevelInfo: {
		Background: Token{"--lumo-primary-color", "hsla(211, 63%, 54%, 1.0)"},
		Foreground: Token{"--lumo-primary-contrast-color", "hsla(0, 100%, 100%, 1.0)"},
	},
	domain.LevelSuccess: {
		Background: Token{"--lumo-success-color", "hsla(145, 72%, 30%, 1.0)"},
		Foreground: Token{"--lumo-success-contrast-color", "hsla(0, 100%, 100%, 1.0)"},
	},
	domain.LevelWarning: {
		Background: Token{"--lumo-warning-color", "hsla(30, 100%, 50%, 1.0)"},
		Foreground: Token{"--lumo-warning-contrast-color", "hsla(0, 100%, 100%, 1.0)"},
	},
	domain.LevelError: {
		Background: Token{"--lumo-error-color", "hsla(3, 85%, 48%, 1.0)"},
		Foreground: Token{"--lumo-error-contrast-color", "hsla(0, 100%, 100%, 1.0)"},
	},
}

const layoutRules = `.alert {
    padding: 1rem 1rem;
    margin: 1rem;
    border: 1px solid transparent;
    border-radius: 0.375rem;
    position: relative;
    display: flex;
    justify-content: space-between;
}
.alert .layout {
    display: flex;
    flex-direction: column;
    width: 100%;
}
.alert .content {
    display: flex;
    gap: 10px;
    align-items: center;
    width: 100%;
}
.alert .content.center {
    justify-content: center;
}
.alert .close {
    cursor: pointer;
}
.alert .title {
    font-size: 1.4em;
    padding-bottom: 10px;
}
`

// Provider resolves the colours of each theme class. Fallback values can be overridden
// per custom property, e.g. "--lumo-error-color" -> "#c00".
type Provider struct {
	overrides map[string]string
}

// NewProvider returns a Provider. Every override key must be one of the known tokens.
func NewProvider(overrides map[string]string) (*Provider, error) {
	known := make(map[string]struct{})
	for _, token := range Tokens() {
		known[token.Var] = struct{}{}
	}

	for name := range overrides {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("%w: \"%s\"", ErrUnknownToken, name)
		}
	}

	return &Provider{
		overrides: overrides,
	}, nil
}

// Tokens returns every token used by the themes, sorted by name.
func Tokens() []Token {
	tokens := make([]Token, 0, 4*len(domain.Levels))
	for _, level := range domain.Levels {
		tokens = append(tokens, tinted[level].Background, tinted[level].Foreground)
		tokens = append(tokens, solid[level].Background, solid[level].Foreground)
	}

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Var < tokens[j].Var
	})

	return tokens
}

// Colors returns the colours of the given level and variant.
// The second return value is false for unrecognized levels.
func (p *Provider) Colors(level domain.Level, primary bool) (Colors, bool) {
	table := tinted
	if primary {
		table = solid
	}

	colors, ok := table[level]
	if !ok {
		return Colors{}, false
	}

	return Colors{
		Background: p.resolve(colors.Background),
		Foreground: p.resolve(colors.Foreground),
	}, true
}

func (p *Provider) resolve(token Token) Token {
	if fallback, ok := p.overrides[token.Var]; ok {
		token.Fallback = fallback
	}

	return token
}

// Stylesheet renders the CSS of the alert: the box layout and all eight theme classes.
// Every rule is scoped under .alert so that it does not leak into the host page.
func (p *Provider) Stylesheet() string {
	var sb strings.Builder

	sb.WriteString(layoutRules)

	for _, primary := range []bool{false, true} {
		for _, level := range domain.Levels {
			colors, _ := p.Colors(level, primary)
			attrs := domain.Attributes{Level: level, Primary: primary}

			fmt.Fprintf(&sb, ".alert.%s {\n    background-color: %s;\n    color: %s;\n}\n",
				attrs.Theme(), colors.Background.CSS(), colors.Foreground.CSS())
		}
	}

	return sb.String()
}
