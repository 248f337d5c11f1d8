package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultConfigComment heads the generated config file.
const defaultConfigComment = "quill configuration"

// WriteDefaultConfig writes the default configuration to path, creating
// parent directories as needed. The write is atomic (temp file + rename) so
// a crash never leaves a truncated config behind.
func WriteDefaultConfig(path string) error {
	doc := defaultsNode()

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".quill.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(buf.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// defaultsNode builds the default config as a yaml.Node tree so the
// generated file carries explanatory comments.
func defaultsNode() *yaml.Node {
	d := Defaults()

	scalar := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
	}
	boolean := func(v bool) *yaml.Node {
		n := scalar("false")
		if v {
			n.Value = "true"
		}
		return n
	}

	uiNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("placeholder"), scalar(d.UI.Placeholder),
			scalar("start_in_insert"), boolean(d.UI.StartInInsert),
		},
	}
	clipboardNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("system"), boolean(d.Clipboard.System),
		},
	}

	root := &yaml.Node{
		Kind:        yaml.MappingNode,
		HeadComment: defaultConfigComment,
		Content: []*yaml.Node{
			scalar("ui"), uiNode,
			scalar("clipboard"), clipboardNode,
			scalar("output"), scalar(d.Output),
		},
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}
