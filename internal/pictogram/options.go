package pictogram

import (
	"fmt"
	"net/url"
	"strconv"
)

// Action tints a pictogram for past or future tense.
type Action string

const (
	ActionPast   Action = "past"
	ActionFuture Action = "future"
)

// Identifier overlays a context badge on the pictogram.
type Identifier string

const (
	IdentifierClassroom Identifier = "classroom"
	IdentifierHealth    Identifier = "health"
	IdentifierLibrary   Identifier = "library"
	IdentifierOffice    Identifier = "office"
)

// IdentifierPosition places the identifier badge.
type IdentifierPosition string

const (
	IdentifierLeft  IdentifierPosition = "left"
	IdentifierRight IdentifierPosition = "right"
)

// Skin selects the skin tone variant. The API spells "assian" this way.
type Skin string

const (
	SkinWhite   Skin = "white"
	SkinBlack   Skin = "black"
	SkinAsian   Skin = "assian"
	SkinMulatto Skin = "mulatto"
	SkinAztec   Skin = "aztec"
)

// Hair selects the hair color variant.
type Hair string

const (
	HairBlonde    Hair = "blonde"
	HairBrown     Hair = "brown"
	HairDarkBrown Hair = "darkBrown"
	HairGray      Hair = "gray"
	HairDarkGray  Hair = "darkGray"
	HairRed       Hair = "red"
	HairBlack     Hair = "black"
)

// RenderOptions customizes the rendered pictogram image. The zero values of
// the enum fields mean "not requested".
type RenderOptions struct {
	Resolution         int
	URLOnly            bool
	Plural             bool
	Color              bool
	Action             Action
	Identifier         Identifier
	IdentifierPosition IdentifierPosition
	Skin               Skin
	Hair               Hair
}

// DefaultRenderOptions mirrors the defaults of the original picker: colored
// rendering at 500px with no variants applied.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Resolution:         500,
		Color:              true,
		IdentifierPosition: IdentifierLeft,
	}
}

// ImageURL builds the pictogram image URL for the given render options.
// Query parameters are emitted only for non-default settings, matching the
// API's own defaults.
func ImageURL(id int, opts RenderOptions) string {
	resolution := opts.Resolution
	if resolution <= 0 {
		resolution = 500
	}

	query := url.Values{}
	query.Set("resolution", strconv.Itoa(resolution))
	if opts.URLOnly {
		query.Set("url", "true")
	}
	if opts.Plural {
		query.Set("plural", "true")
	}
	if !opts.Color {
		query.Set("color", "false")
	}
	if opts.Action != "" {
		query.Set("action", string(opts.Action))
	}
	if opts.Skin != "" {
		query.Set("skin", string(opts.Skin))
	}
	if opts.Hair != "" {
		query.Set("hair", string(opts.Hair))
	}
	if opts.Identifier != "" {
		query.Set("identifier", string(opts.Identifier))
		position := opts.IdentifierPosition
		if position == "" {
			position = IdentifierLeft
		}
		query.Set("identifierPosition", string(position))
	}

	return fmt.Sprintf("https://%s/v1/pictograms/%d?%s", DefaultHost, id, query.Encode())
}
