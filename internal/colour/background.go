package colour

// isBackground reports whether a colour falls in one of the bands treated as
// image background: near-white, near-black, or very light grey. The light
// grey band overlaps the near-white check but stays as its own explicit band.
func isBackground(rgb RGB) bool {
	if rgb.R > 240 && rgb.G > 240 && rgb.B > 240 {
		return true
	}
	if rgb.R < 15 && rgb.G < 15 && rgb.B < 15 {
		return true
	}
	if rgb.R > 230 && rgb.G > 230 && rgb.B > 230 {
		return true
	}
	return false
}
