package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/settingsexpr/pkg/emitter"
)

// Collapse returns pairs with repeated keys merged: the last value wins and
// the key keeps the position of its first occurrence.
func Collapse(pairs []emitter.KeyValuePair) []emitter.KeyValuePair {
	index := make(map[string]int, len(pairs))
	out := make([]emitter.KeyValuePair, 0, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Key]; ok {
			out[i].Value = p.Value
			continue
		}
		index[p.Key] = len(out)
		out = append(out, p)
	}
	return out
}

var envKeyReplacer = strings.NewReplacer(":", "__", "-", "_")

// EnvKey returns the environment variable name for a settings key.
func EnvKey(prefix, key string) string {
	name := strings.ToUpper(envKeyReplacer.Replace(key))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "__" + name
}

// WriteDotenv writes pairs as dotenv lines in pair order.
func WriteDotenv(w io.Writer, pairs []emitter.KeyValuePair, prefix string) error {
	collapsed := Collapse(pairs)
	seen := make(map[string]string, len(collapsed))

	var b strings.Builder
	for _, p := range collapsed {
		name := EnvKey(prefix, p.Key)
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q and %q both map to %s", ErrKeyCollision, other, p.Key, name)
		}
		seen[name] = p.Key

		line, err := dotenvLine(name, p.Value)
		if err != nil {
			return errors.Join(ErrWriteFailed, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

// dotenvLine formats one variable. godotenv writes integer-looking values
// unquoted and normalized, which would turn "007" into 7, so those are quoted
// here when normalizing would change them.
func dotenvLine(name, value string) (string, error) {
	if d, err := strconv.Atoi(value); err == nil && strconv.Itoa(d) != value {
		return fmt.Sprintf("%s=%q", name, value), nil
	}
	return godotenv.Marshal(map[string]string{name: value})
}

// WriteYAML writes pairs as a mapping nested under section.
func WriteYAML(w io.Writer, pairs []emitter.KeyValuePair, section string) error {
	if section == "" {
		return ErrEmptySection
	}

	body := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range Collapse(pairs) {
		body.Content = append(body.Content, stringNode(p.Key), stringNode(p.Value))
	}

	doc := &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{stringNode(section), body},
		}},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
