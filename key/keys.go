// Package key defines the canonical set of configuration identifiers.
package key

// Selection defaults - the values each coordinator starts with.
const (
	DefaultsFont  = "defaults.font"
	DefaultsSize  = "defaults.size"
	DefaultsColor = "defaults.color"
	DefaultsText  = "defaults.text"
)

// Catalog overrides - replace the built-in option lists.
const (
	CatalogFonts = "catalog.fonts"
	CatalogSizes = "catalog.sizes"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment's layout.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowHelp    = "tui.show_help"
)

// Logging
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
