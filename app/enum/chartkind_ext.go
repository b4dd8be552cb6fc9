package enum

// TabLabel returns the label of the tab holding a chart of this kind.
func (c ChartKind) TabLabel() string {
	switch c {
	case ChartKindScatter:
		return "Scatter Plot"
	case ChartKindBox:
		return "Box Plot"
	default:
		return c.String()
	}
}
