package encode

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/radixform/multibase"
	"github.com/radixform/multibase/internal/logging"
)

// Command encodes data from stdin or a file into the chosen base and writes
// the self-describing text to stdout or a file.
type Command struct {
	Base   string `short:"b" long:"base"   env:"BASE"   description:"Base to encode with, by name (e.g. base58btc) or by one-letter code" default:"base58btc"`
	Input  string `short:"i" long:"input"  env:"INPUT"  description:"Read data from the given file instead of stdin"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"Write the encoded text to the given file instead of stdout"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode data"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	base, err := ResolveBase(c.Base)
	if err != nil {
		return err
	}

	data, err := readInput(c.Input)
	if err != nil {
		return err
	}

	encoded, err := multibase.Encode(base, data)
	if err != nil {
		return errors.Wrapf(err, "Could not encode %v bytes with %v", len(data), base)
	}

	log.Debugf("Encoded %v bytes into %v symbols with %v", len(data), len(encoded)-1, base)

	return writeOutput(c.Output, append(encoded, '\n'))
}

// ResolveBase resolves a base given on the command line, accepting both the
// canonical name and the bare one-letter code.
func ResolveBase(name string) (multibase.Base, error) {
	if base, err := multibase.FromName(name); err == nil {
		return base, nil
	}
	if len(name) == 1 {
		return multibase.FromCode(name[0])
	}
	return 0, errors.Wrapf(multibase.ErrUnknownBase, "no base registered under name %q", name)
}

func readInput(filename string) ([]byte, error) {
	if filename == "" || filename == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.WithStack(err)
	}

	data, err := ioutil.ReadFile(filename)
	return data, errors.Wrapf(err, "Could not read %v", filename)
}

func writeOutput(filename string, data []byte) error {
	if filename == "" || filename == "-" {
		_, err := os.Stdout.Write(data)
		return errors.WithStack(err)
	}

	return errors.Wrapf(ioutil.WriteFile(filename, data, 0644), "Could not write %v", filename)
}
