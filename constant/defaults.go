package constant

// Built-in selection defaults.
const (
	DefaultFont  = "Helvetica"
	DefaultSize  = "24"
	DefaultColor = "Blue"
	DefaultText  = "CSE 20"

	// DefaultPointSize is used when the selected size key is not a number.
	DefaultPointSize = 24
)

// Built-in catalog contents, in display order.
var (
	Fonts = []string{
		"Helvetica", "Courier", "Times New Roman", "Verdana", "Georgia",
		"Arial", "Chalkboard SE", "Futura", "Avenir", "Gill Sans",
	}

	Sizes = []string{"12", "14", "16", "18", "20", "24", "30", "36", "48", "60"}

	Colors = []string{"Red", "Blue", "Yellow", "Black"}
)

// Logo is printed at the top of the root command help.
const Logo = `     _         _            _      _
 ___| |_ _   _| | ___ _ __ (_) ___| | __
/ __| __| | | | |/ _ \ '_ \| |/ __| |/ /
\__ \ |_| |_| | |  __/ |_) | | (__|   <
|___/\__|\__, |_|\___| .__/|_|\___|_|\_\
         |___/       |_|`
