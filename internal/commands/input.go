package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/qbtypes/internal/model"
)

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// loadRecord parses the kind name and decodes the record at path.
func (g *globals) loadRecord(cmd *cobra.Command, kindName, path string) (model.Entity, error) {
	kind, err := model.ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	decode := model.Decode
	if g.cfg.Decode.UnwrapEnvelope {
		decode = model.DecodeResponse
	}
	e, err := decode(kind, data)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"kind":  kind,
			"input": path,
			"error": err,
		}).Error("decode failed")
		return nil, err
	}
	return e, nil
}
