// Package registry maps custom tag names to components. Registration is explicit: start-up
// code creates a Registry, registers the components it wants and mounts them.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/scusemua/alert-view/m/v2/src/components"
)

const (
	RoutePrefix = "/components/"
)

var (
	ErrInvalidTag   = errors.New("invalid custom element tag name")
	ErrDuplicateTag = errors.New("tag is already registered")
	ErrUnknownTag   = errors.New("tag is not registered")

	tagPattern = regexp.MustCompile(`^[a-z][a-z0-9._]*-[a-z0-9._-]*$`)

	// Names reserved by the HTML standard that are valid patterns but cannot be used.
	reservedTags = map[string]struct{}{
		"annotation-xml":   {},
		"color-profile":    {},
		"font-face":        {},
		"font-face-src":    {},
		"font-face-uri":    {},
		"font-face-format": {},
		"font-face-name":   {},
		"missing-glyph":    {},
	}
)

type Factory func() app.Composer

type Registry struct {
	factories cmap.ConcurrentMap[string, Factory]
}

func New() *Registry {
	return &Registry{
		factories: cmap.New[Factory](),
	}
}

func ValidateTag(tag string) error {
	if !tagPattern.MatchString(tag) {
		return fmt.Errorf("%w: \"%s\"", ErrInvalidTag, tag)
	}

	if _, reserved := reservedTags[tag]; reserved {
		return fmt.Errorf("%w: \"%s\" is reserved", ErrInvalidTag, tag)
	}

	return nil
}

// Register associates a tag with a component factory. A tag can only be registered once.
func (r *Registry) Register(tag string, factory Factory) error {
	if err := ValidateTag(tag); err != nil {
		return err
	}

	if factory == nil {
		return fmt.Errorf("nil factory for tag \"%s\"", tag)
	}

	if !r.factories.SetIfAbsent(tag, factory) {
		return fmt.Errorf("%w: \"%s\"", ErrDuplicateTag, tag)
	}

	app.Logf("Registered component <%s>.", tag)

	return nil
}

// New instantiates the component registered under the given tag.
func (r *Registry) New(tag string) (app.Composer, error) {
	factory, ok := r.factories.Get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: \"%s\"", ErrUnknownTag, tag)
	}

	return factory(), nil
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	tags := r.factories.Keys()
	sort.Strings(tags)

	return tags
}

// unknownComponent is routed when a tag cannot be instantiated.
type unknownComponent struct {
	app.Compo

	tag string
}

func (c *unknownComponent) Render() app.UI {
	return app.Div().Text("Unknown component <" + c.tag + ">")
}

func RoutePath(tag string) string {
	return RoutePrefix + tag
}

// Mount routes every registered tag at RoutePath(tag).
func (r *Registry) Mount() {
	for _, tag := range r.Tags() {
		tag := tag
		app.RouteFunc(RoutePath(tag), func() app.Composer {
			compo, err := r.New(tag)
			if err != nil {
				app.Logf("[ERROR] %v", err)
				return &unknownComponent{tag: tag}
			}
			return compo
		})
	}
}

// RegisterDefaults registers the components of this module.
func RegisterDefaults(r *Registry) error {
	return r.Register(components.AlertViewTag, func() app.Composer {
		return components.NewAlertViewElement()
	})
}
