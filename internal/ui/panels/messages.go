package panels

// CloseModalMsg signals that the open modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// OpenPickerMsg asks the app to open a file picker for a path field.
type OpenPickerMsg struct {
	Field Field
}

// PathSelectedMsg carries the file chosen in a picker.
type PathSelectedMsg struct {
	Field Field
	Path  string
}
