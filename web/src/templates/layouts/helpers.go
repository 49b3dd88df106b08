package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Western Edge Gutters"
	}
	return "Western Edge Gutters"
}
