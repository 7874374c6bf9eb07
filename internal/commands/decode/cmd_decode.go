package decode

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/radixform/multibase"
	"github.com/radixform/multibase/internal/logging"
)

// Command decodes self-describing base-encoded text from stdin or a file and
// writes the recovered bytes to stdout or a file. The base does not need to
// be named, it is read off the first character of the input.
type Command struct {
	Input  string `short:"i" long:"input"  env:"INPUT"  description:"Read encoded text from the given file instead of stdin"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"Write the decoded data to the given file instead of stdout"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode data"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	text, err := readInput(c.Input)
	if err != nil {
		return err
	}

	// No base alphabet contains whitespace, so surrounding whitespace can
	// only come from the shell or an editor.
	base, data, err := multibase.Decode(bytes.TrimSpace(text))
	if err != nil {
		return errors.Wrap(err, "Could not decode input")
	}

	log.Debugf("Decoded %v bytes encoded with %v", len(data), base)

	return writeOutput(c.Output, data)
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
