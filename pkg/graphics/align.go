package graphics

// TextHorizontalAlignment controls how text is placed along the horizontal
// axis of the box that holds it.
type TextHorizontalAlignment int

const (
	// TextHorizontalLeft aligns text to the left edge.
	TextHorizontalLeft TextHorizontalAlignment = iota
	// TextHorizontalCenter centers text horizontally.
	TextHorizontalCenter
	// TextHorizontalRight aligns text to the right edge.
	TextHorizontalRight
)

// String returns a human-readable representation of the alignment.
func (a TextHorizontalAlignment) String() string {
	switch a {
	case TextHorizontalLeft:
		return "left"
	case TextHorizontalCenter:
		return "center"
	case TextHorizontalRight:
		return "right"
	default:
		return "unknown"
	}
}

// TextVerticalAlignment controls how text is placed along the vertical axis
// of the box that holds it.
type TextVerticalAlignment int

const (
	// TextVerticalTop aligns text to the top edge.
	TextVerticalTop TextVerticalAlignment = iota
	// TextVerticalCenter centers text vertically.
	TextVerticalCenter
	// TextVerticalBottom aligns text to the bottom edge.
	TextVerticalBottom
)

// String returns a human-readable representation of the alignment.
func (a TextVerticalAlignment) String() string {
	switch a {
	case TextVerticalTop:
		return "top"
	case TextVerticalCenter:
		return "center"
	case TextVerticalBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ImageFit controls how an image is scaled into the box that displays it.
type ImageFit int

const (
	// ImageFitFill stretches the image to fill the box, ignoring aspect ratio.
	ImageFitFill ImageFit = iota
	// ImageFitContain scales the image to fit inside the box, preserving
	// aspect ratio.
	ImageFitContain
	// ImageFitCover scales the image to cover the box, preserving aspect
	// ratio and cropping the overflow.
	ImageFitCover
)

// String returns a human-readable representation of the fit mode.
func (f ImageFit) String() string {
	switch f {
	case ImageFitFill:
		return "fill"
	case ImageFitContain:
		return "contain"
	case ImageFitCover:
		return "cover"
	default:
		return "unknown"
	}
}
