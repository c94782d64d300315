package diggpager

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	DefaultContainer     = "div"
	DefaultPreviousLabel = "&larr;"
	DefaultNextLabel     = "&rarr;"
	DefaultSeparator     = " "
)

var _validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("attrname", func(fl validator.FieldLevel) bool {
		return isAttributeName(fl.Field().String())
	})

	return v
}

// Options holds everything a pager render depends on. Build it with
// DefaultOptions and Option functions, or fill it directly.
type Options struct {
	// Container - tag name of the element wrapping the pager.
	Container string `validate:"required"`
	// Attributes - attributes of the container element. Names must be valid HTML
	// attribute names, values are escaped.
	Attributes map[string]string `validate:"dive,keys,attrname,endkeys"`
	// PreviousLabel, NextLabel - captions of the previous and next controls.
	PreviousLabel string
	NextLabel     string
	// InnerWindow - pages shown on each side of the current page.
	InnerWindow int `validate:"gte=0"`
	// OuterWindow - pages shown next to the first and the last page.
	OuterWindow int `validate:"gte=0"`
	// Separator - string written between fragments. nil is invalid, an empty
	// string is not.
	Separator *string `validate:"required"`
	// WindowLinks - render page numbers; when false only previous and next are
	// rendered.
	WindowLinks bool
	// ActionName, ControllerName - route used for links when URLBuilder is nil.
	ActionName     string
	ControllerName string
	// Query - parameters preserved in generated links.
	Query url.Values
	// URLBuilder - builds page links. Takes precedence over the route names.
	URLBuilder URLBuilder `validate:"-"`
	// Logger - optional, receives a debug entry per render.
	Logger logrus.FieldLogger `validate:"-"`
}

type Option func(*Options)

// DefaultOptions returns the options Render starts from.
func DefaultOptions() Options {
	return Options{
		Container:     DefaultContainer,
		PreviousLabel: DefaultPreviousLabel,
		NextLabel:     DefaultNextLabel,
		InnerWindow:   DefaultInnerWindow,
		OuterWindow:   DefaultOuterWindow,
		Separator:     lo.ToPtr(DefaultSeparator),
		WindowLinks:   true,
	}
}

func WithContainer(name string) Option {
	return func(o *Options) { o.Container = name }
}

// WithAttributes sets the container attributes, replacing previous ones.
func WithAttributes(attributes map[string]string) Option {
	return func(o *Options) { o.Attributes = attributes }
}

func WithLabels(previous, next string) Option {
	return func(o *Options) {
		o.PreviousLabel = previous
		o.NextLabel = next
	}
}

func WithWindow(inner, outer int) Option {
	return func(o *Options) {
		o.InnerWindow = inner
		o.OuterWindow = outer
	}
}

func WithSeparator(separator string) Option {
	return func(o *Options) { o.Separator = &separator }
}

// WithoutWindowLinks renders only the previous and next controls.
func WithoutWindowLinks() Option {
	return func(o *Options) { o.WindowLinks = false }
}

func WithURLBuilder(builder URLBuilder) Option {
	return func(o *Options) { o.URLBuilder = builder }
}

// WithRoute sets the action and controller used for links when no URLBuilder is
// given. query is preserved in every link.
func WithRoute(action, controller string, query url.Values) Option {
	return func(o *Options) {
		o.ActionName = action
		o.ControllerName = controller
		o.Query = query
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = logger }
}

func (o *Options) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// clone returns a copy of o that shares no map or pointer with it.
func (o *Options) clone() Options {
	ret := *o
	if o.Attributes != nil {
		ret.Attributes = lo.Assign(o.Attributes)
	}
	if o.Separator != nil {
		ret.Separator = lo.ToPtr(*o.Separator)
	}
	if o.Query != nil {
		ret.Query = cloneValues(o.Query)
	}

	return ret
}

func (o *Options) validate() error {
	err := _validate.Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	reasons := lo.Map(fieldErrs, func(e validator.FieldError, _ int) string {
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", e.Field())
		case "gte":
			return fmt.Sprintf("%s must be >= %s", e.Field(), e.Param())
		case "attrname":
			return fmt.Sprintf("%s: '%v' is not a valid attribute name", e.Field(), e.Value())
		default:
			return fmt.Sprintf("%s failed on '%s'", e.Field(), e.Tag())
		}
	})

	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, strings.Join(reasons, ", "))
}

// urlBuilder returns the configured builder, a route builder when route names are
// set, or a "?page=N" builder.
func (o *Options) urlBuilder() URLBuilder {
	switch {
	case o.URLBuilder != nil:
		return o.URLBuilder
	case o.ActionName != "" || o.ControllerName != "":
		return RouteURLBuilder(o.ActionName, o.ControllerName, o.Query)
	default:
		return QueryURLBuilder("", o.Query)
	}
}
