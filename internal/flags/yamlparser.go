package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser feeds a flags.Parser from a YAML configuration file instead of
// the standard INI format. Every top-level key of a document must match a
// registered command name; its value is unmarshalled straight into that
// command's option struct.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. The returned errors
// can be of the type flags.Error or come from the yaml decoder.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Anchor file references to the configuration file's directory so
	// documents may include files relative to themselves.
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents from the stream one after another (separated by
// triple dashes) and applies each of them to the parser's commands.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		document := make(map[string]interface{})

		err := decoder.Decode(&document)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document %v", i)
		}

		if err = y.applyDocument(document); err != nil {
			return errors.WithStack(err)
		}
	}
}

// applyDocument matches each top-level key of a document to a command of the
// parser and unmarshals the value into the command's backing struct.
func (y *YamlParser) applyDocument(document map[string]interface{}) error {
	for name, val := range document {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		target, err := commandData(command)
		if err != nil {
			return err
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "Could not apply configuration for command '%s'", name)
		}
	}
	return nil
}

// commandData digs the backing option struct out of a flags.Command. The
// flags library keeps it in an unexported field, so there is no way around
// reflecting into it.
func commandData(command *flags.Command) (interface{}, error) {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	dataField := group.FieldByName("data")
	if !dataField.IsValid() {
		return nil, errors.Errorf("command '%s' has no backing data", command.Name)
	}

	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface(), nil
}
