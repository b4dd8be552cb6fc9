package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromSwitch maps the theme switch state to a theme, switch on means light.
func ThemeFromSwitch(on bool) Theme {
	if on {
		return ThemeLight
	}
	return ThemeDark
}

// Switch returns the theme switch state matching the theme.
func (t Theme) Switch() bool {
	return t == ThemeLight
}

// Attr returns the value of the document-level data-bs-theme attribute.
// Unset themes fall back to dark, the switch default.
func (t Theme) Attr() string {
	if t == ThemeLight {
		return ThemeLight.String()
	}
	return ThemeDark.String()
}
