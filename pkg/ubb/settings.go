package ubb

// Settings configures conversions in both directions.
type Settings struct {
	// DefaultColor is the color of plain text. Text in this color gets no
	// color tag when converting rich content to UBB.
	DefaultColor string
	// LinkDefaultColor is the color of links. Link text in this color gets no
	// color tag when converting rich content to UBB.
	LinkDefaultColor string
	// KeepWhiteSpace keeps runs of white space in rich text. When false, runs
	// collapse to one space and text is trimmed.
	KeepWhiteSpace bool
	// KeepNewLine keeps newlines found in rich text. When false they are removed.
	KeepNewLine bool
	// FlashImage is the placeholder image shown for video and flash tags.
	FlashImage string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DefaultColor:     "#000000",
		LinkDefaultColor: "#006699",
		KeepWhiteSpace:   true,
		KeepNewLine:      false,
		FlashImage:       "/skin/imgs/flash.png",
	}
}
