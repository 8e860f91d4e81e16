package axes

// Size is a window size in screen pixels.
type Size struct {
	W, H int
}

// PixelToNDC converts a cursor position in window pixels to normalized
// coordinates: the window spans [-1, 1] on both axes, origin at the center,
// with Y pointing up.
func PixelToNDC(px, py float64, size Size) (x, y float64) {
	x = px/(float64(size.W)/2) - 1
	y = 1 - py/(float64(size.H)/2)
	return x, y
}
