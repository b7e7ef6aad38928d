package cmd

import (
	"github.com/mj1618/forms-cli/internal/keyword"
	"github.com/mj1618/forms-cli/internal/output"
	"github.com/spf13/cobra"
)

// KeywordInfo describes one keyword for the keywords command.
type KeywordInfo struct {
	Name        string      `yaml:"name"              json:"name"`
	Description string      `yaml:"description"       json:"description"`
	Mutates     bool        `yaml:"mutates,omitempty" json:"mutates,omitempty"`
	Params      []ParamInfo `yaml:"params,omitempty"  json:"params,omitempty"`
}

// ParamInfo describes one keyword parameter.
type ParamInfo struct {
	Name        string `yaml:"name"               json:"name"`
	Type        string `yaml:"type"               json:"type"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Description string `yaml:"description"        json:"description"`
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keywords usable in do scripts and as MCP tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		var infos []KeywordInfo
		for _, kw := range keyword.All() {
			info := KeywordInfo{Name: kw.Name, Description: kw.Description, Mutates: kw.Mutates}
			for _, p := range kw.Params {
				info.Params = append(info.Params, ParamInfo{
					Name:        p.Name,
					Type:        string(p.Type),
					Required:    p.Required,
					Description: p.Description,
				})
			}
			infos = append(infos, info)
		}
		return output.Fprint(cmd.OutOrStdout(), infos)
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
