package chart

import (
	"github.com/precastlab/qcradial/pkg/errors"
)

// Themes select the ink and default palette used by renderers. The theme
// is always an explicit option; renderers never inspect ambient state.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes is the set of supported themes.
var ValidThemes = map[string]bool{
	ThemeLight: true,
	ThemeDark:  true,
}

// Default geometry values.
const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = 800.0

	// DefaultInnerRadiusFraction is the hole radius as a fraction of the
	// outer radius.
	DefaultInnerRadiusFraction = 0.2

	// DefaultCategoryPadding is the angular gap between category bands as
	// a fraction of the band step.
	DefaultCategoryPadding = 0.1

	// DefaultPadAngle is the corner padding between stacked segments, in
	// radians at the pad radius.
	DefaultPadAngle = 0.02

	// DefaultTickCount is the requested number of radial grid rings.
	DefaultTickCount = 5
)

// Options controls chart geometry and appearance. Every field affects only
// geometry or styling; none of them changes stacking semantics.
type Options struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// InnerRadiusFraction sets the central hole: inner radius as a
	// fraction of the outer radius, in [0, 1).
	InnerRadiusFraction float64 `json:"inner_radius_fraction,omitempty"`

	// CategoryPadding is the fraction of each angular band step left
	// empty between neighboring categories, in [0, 1).
	CategoryPadding float64 `json:"category_padding,omitempty"`

	// PadAngle trims segment corners so adjacent arcs do not touch. The
	// trim is expressed in radians at the inner radius and scaled by
	// radius so the visual gap width stays constant.
	PadAngle float64 `json:"pad_angle,omitempty"`

	// TickCount is the requested number of radial grid rings. The actual
	// count depends on the nice-tick algorithm.
	TickCount int `json:"tick_count,omitempty"`

	// Theme selects the light or dark rendering palette.
	Theme string `json:"theme,omitempty"`

	// Palette overrides the theme's series colors. Colors are assigned to
	// series in domain order, cycling if there are more series than colors.
	Palette []string `json:"palette,omitempty"`

	// SeriesOrder optionally fixes the stacking order. When empty the
	// order is first-appearance after sorting (see Normalize).
	SeriesOrder []string `json:"series_order,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option ranges and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.InnerRadiusFraction == 0 {
		o.InnerRadiusFraction = DefaultInnerRadiusFraction
	}
	if o.CategoryPadding == 0 {
		o.CategoryPadding = DefaultCategoryPadding
	}
	if o.PadAngle == 0 {
		o.PadAngle = DefaultPadAngle
	}
	if o.TickCount == 0 {
		o.TickCount = DefaultTickCount
	}
	if o.Theme == "" {
		o.Theme = ThemeLight
	}

	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "width and height must be positive (got %g x %g)", o.Width, o.Height)
	}
	if o.InnerRadiusFraction < 0 || o.InnerRadiusFraction >= 1 {
		return errors.New(errors.ErrCodeInvalidOption, "inner radius fraction must be in [0, 1) (got %g)", o.InnerRadiusFraction)
	}
	if o.CategoryPadding < 0 || o.CategoryPadding >= 1 {
		return errors.New(errors.ErrCodeInvalidOption, "category padding must be in [0, 1) (got %g)", o.CategoryPadding)
	}
	if o.PadAngle < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "pad angle must be non-negative (got %g)", o.PadAngle)
	}
	if o.TickCount < 2 {
		return errors.New(errors.ErrCodeInvalidOption, "tick count must be at least 2 (got %d)", o.TickCount)
	}
	if !ValidThemes[o.Theme] {
		return errors.New(errors.ErrCodeInvalidTheme, "invalid theme: %q (must be %q or %q)", o.Theme, ThemeLight, ThemeDark)
	}
	for _, c := range o.Palette {
		if err := errors.ValidateHexColor(c); err != nil {
			return err
		}
	}

	o.validated = true
	return nil
}
