package dashboard

// Positioning tracks where the next widget lands on the dashboard grid.
// A single cursor is threaded through every widget builder in a run so
// widgets pack left-to-right and wrap onto a new row when the current one
// is full.
type Positioning struct {
	X        int
	Y        int
	Width    int
	Height   int
	MaxWidth int
}

// Default widget dimensions on the 12 column grid.
const (
	defaultWidgetWidth  = 3
	defaultWidgetHeight = 3
	gridMaxWidth        = 12

	// Queue and function widgets span the full row.
	fullRowWidth = 12

	// Extra rows added to metric widgets so the legend stays readable.
	widgetHeightPadding = 3
)

// NewPositioning returns a cursor at the top-left corner with the default
// widget dimensions.
func NewPositioning() *Positioning {
	return &Positioning{
		X:        0,
		Y:        0,
		Width:    defaultWidgetWidth,
		Height:   defaultWidgetHeight,
		MaxWidth: gridMaxWidth,
	}
}

// Advance moves the cursor to the next widget slot: right if the current
// row still has room, otherwise back to the left edge of a new row. The
// dashboard layout is regression-sensitive to this exact rule.
func (p *Positioning) Advance() {
	if p.X+p.Width < p.MaxWidth {
		p.X += p.Width
	} else {
		p.X = 0
		p.Y += p.Height
	}
}
