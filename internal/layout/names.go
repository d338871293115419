// Package layout resolves a slide's layout archetype and owns the layout template catalog.
package layout

// Layout archetype names known to the classifier and the built-in catalog.
const (
	TextOnly        = "text_only"
	TitleCenter     = "title_center"
	TwoColumn       = "two_column"
	ThreeColumn     = "three_column"
	FourColumn      = "four_column"
	ImageLeft       = "image_left"
	ImageRight      = "image_right"
	ImageTop        = "image_top"
	ImageBottom     = "image_bottom"
	ImageGrid       = "image_grid"
	ImageBackground = "image_background"
	BigStat         = "big_stat"
	Quote           = "quote"
	Timeline        = "timeline"
	TableCenter     = "table_center"
	Agenda          = "agenda"
)

// Archetypes lists every layout class in classifier label order.
var Archetypes = []string{
	TextOnly, TitleCenter, TwoColumn, ThreeColumn, FourColumn,
	ImageLeft, ImageRight, ImageTop, ImageBottom, ImageGrid, ImageBackground,
	BigStat, Quote, Timeline, TableCenter, Agenda,
}
