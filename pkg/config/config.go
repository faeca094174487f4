package config

import (
	"fmt"
	"strings"

	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/parser"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
)

// Config is the jig configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Extensions lists the file extensions processed when walking directories.
	Extensions []string `mapstructure:"extensions"`
	// Exclude lists directory names skipped when walking directories.
	Exclude []string `mapstructure:"exclude"`
	// LiteralNamespaceCase keeps the duplicated uppercase predicate of the
	// lowercase default+namespace rows.
	LiteralNamespaceCase bool `mapstructure:"literal_namespace_case"`
	// InPlace rewrites files instead of printing them.
	InPlace bool `mapstructure:"in_place"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Extensions: append([]string(nil), utils.DefaultExtensions...),
		Exclude:    append([]string(nil), utils.DefaultExclude...),
	}
}

// Validate checks that every configured extension has a grammar.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", errors.ErrUnsupportedFileType, ext)
		}
		if _, ok := parser.Language("file" + ext); !ok {
			return fmt.Errorf("%w: "+errors.ErrMsgNoGrammarForExtension, errors.ErrUnsupportedFileType, ext)
		}
	}
	return nil
}
