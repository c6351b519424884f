package adapter

// ThemeApplier receives the light/dark presentation attribute whenever the dark-mode flag is loaded or changed.
type ThemeApplier interface {
	ApplyTheme(dark bool)
}

// ThemeApplierFunc adapts a plain function to ThemeApplier.
type ThemeApplierFunc func(dark bool)

// ApplyTheme calls f(dark).
func (f ThemeApplierFunc) ApplyTheme(dark bool) {
	f(dark)
}
