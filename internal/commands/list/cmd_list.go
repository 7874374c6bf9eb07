package list

import (
	"github.com/k0kubun/go-ansi"

	"github.com/radixform/multibase"
	"github.com/radixform/multibase/internal/logging"
)

const (
	Reset     = "\x1b[0m"
	DarkGray  = "\x1b[90m"
	White     = "\x1b[97m"
	LightGray = "\x1b[37m"
)

// Command prints the table of registered bases.
type Command struct {
	All bool `short:"a" long:"all" description:"Also list the reserved variants without an implemented encoding"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "List bases"
}

//goland:noinspection GoUnhandledErrorResult
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	ansi.Printf(DarkGray+" code  %-18v size"+Reset+"\n", "name")
	for _, base := range multibase.Bases() {
		alphabet, err := base.Alphabet()
		if err != nil {
			if c.All {
				ansi.Printf(DarkGray+" %v     %-18v reserved"+Reset+"\n", string(base.Code()), base.Name())
			}
			continue
		}

		ansi.Printf(LightGray+" %v     "+White+"%-18v"+LightGray+" %v"+Reset+"\n",
			string(base.Code()), base.Name(), len(alphabet))
	}

	return nil
}
