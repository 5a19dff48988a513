// Command stylepick previews a line of text while you pick its font, size and color.
package main

import (
	"github.com/samber/lo"
	"github.com/stylepick/stylepick/cmd"
	"github.com/stylepick/stylepick/config"
	"github.com/stylepick/stylepick/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
