package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/radixform/multibase/internal/args"
	"github.com/radixform/multibase/internal/commands/decode"
	"github.com/radixform/multibase/internal/commands/encode"
	"github.com/radixform/multibase/internal/commands/list"
	"github.com/radixform/multibase/internal/commands/version"
	mbFlags "github.com/radixform/multibase/internal/flags"
	"github.com/radixform/multibase/internal/util"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Multibase is the main executable
type Multibase struct {
	parser *flags.Parser
}

// NewMultibase will create a new instance of Multibase and initialize the parser
func NewMultibase() *Multibase {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	mb := &Multibase{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	mb.setupGeneral()
	mb.setupVersion()
	mb.setupEncode()
	mb.setupDecode()
	mb.setupList()

	return mb
}

// setupGeneral will configure general options
func (mb *Multibase) setupGeneral() {
	if _, err := mb.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (mb *Multibase) setupVersion() {
	cmd := &version.Command{}
	_, err := mb.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (mb *Multibase) setupEncode() {
	cmd := encode.NewCommand()
	_, err := mb.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode data from stdin or a file into the chosen base",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (mb *Multibase) setupDecode() {
	cmd := decode.NewCommand()
	_, err := mb.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode self-describing base-encoded text, the base is read off the input",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupList adds the `list` command
func (mb *Multibase) setupList() {
	cmd := list.NewCommand()
	_, err := mb.parser.AddCommand(
		"list",
		"List bases",
		"Print the table of registered bases",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main parses the command line, optionally reading defaults from a
// configuration file, and runs the selected command
func main() {

	multibase := NewMultibase()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := mbFlags.NewYamlParser(multibase.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := multibase.parser.Parse()
	util.MustErrorNilOrExit(err)

}
