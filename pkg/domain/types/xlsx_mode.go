package types

// XLSXMode selects how files with the .xlsx extension are decoded
type XLSXMode string

const (
	// XLSXModeSheet decodes the first worksheet of a real spreadsheet
	XLSXModeSheet XLSXMode = "sheet"
	// XLSXModeText reads the file as plain text lines
	XLSXModeText XLSXMode = "text"
)

// String returns the string representation of the mode
func (m XLSXMode) String() string {
	return string(m)
}

// IsValid checks if the mode is valid
func (m XLSXMode) IsValid() bool {
	switch m {
	case XLSXModeSheet, XLSXModeText:
		return true
	default:
		return false
	}
}
