package core

// Color is the drawing role of a screen cell. Frontends resolve roles to
// concrete colors from the configured palette.
type Color uint8

const (
	ColorDefault    Color = iota
	ColorForeground       // paddles and ball
	ColorDivider          // center line
	ColorScore            // score digits
)
