package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/neurite/go-morphtree/morph"
	"github.com/neurite/go-morphtree/morphio"
)

// loadTree reads a morphology from path, dispatching on the file extension:
// .swc for SWC samples, .cbor for morphology documents.
func (c *cli) loadTree(path string) (*morph.Tree, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".swc":
		tree, err := morphio.ReadSWC(bytes.NewReader(data))
		if err != nil {
			return nil, "", err
		}
		c.log.Debug("loaded swc morphology", zap.String("path", path), zap.Uint32("segments", uint32(tree.Size())))
		return tree, strings.TrimSuffix(filepath.Base(path), ext), nil
	case ".cbor":
		codec, err := morphio.NewCodec()
		if err != nil {
			return nil, "", err
		}
		doc, err := codec.UnmarshalDocument(data)
		if err != nil {
			return nil, "", err
		}
		tree, err := doc.Tree()
		if err != nil {
			return nil, "", err
		}
		c.log.Debug("loaded morphology document",
			zap.String("path", path), zap.String("id", doc.ID.String()), zap.Uint32("segments", uint32(tree.Size())))
		return tree, doc.Label, nil
	default:
		return nil, "", fmt.Errorf("unsupported morphology format %q", ext)
	}
}

func (c *cli) saveTree(path string, tree *morph.Tree, label string) error {
	var data []byte

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".swc":
		var b strings.Builder
		if err := morphio.WriteSWC(&b, tree); err != nil {
			return err
		}
		data = []byte(b.String())
	case ".cbor":
		codec, err := morphio.NewCodec()
		if err != nil {
			return err
		}
		data, err = codec.MarshalDocument(morphio.NewDocument(tree, label))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported morphology format %q", ext)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.log.Debug("wrote morphology", zap.String("path", path), zap.Uint32("segments", uint32(tree.Size())))
	return nil
}
