/*
Copyright © 2026 Victor Vargas vavargasdev@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package root

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/vavargasdev/vanotes/internal/constants"
	"github.com/vavargasdev/vanotes/internal/state"
	"github.com/vavargasdev/vanotes/internal/tui/cards"
	"github.com/vavargasdev/vanotes/pkg/cmd/initialize"
)

var dataDir string

func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vanotes",
		Aliases: []string{"vn"},
		Short:   "Keep quick notes as searchable, taggable cards.",
		Long: heredoc.Doc(`
			vanotes keeps your notes as a stack of cards backed by a
			local SQLite file. Type to search, toggle category tags to
			narrow the stack, and paste images straight from the
			clipboard onto a card.

			Running vanotes with no arguments opens the card screen.
		`),
		Example: heredoc.Doc(`
			vanotes
			vanotes --data-dir ~/notes
			vanotes init
		`),
		Version: constants.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := state.NewState(dataDir)
			if err != nil {
				return err
			}
			defer s.Close()
			return cards.Run(s)
		},
	}

	cmd.PersistentFlags().
		StringVarP(&dataDir, "data-dir", "d", "", "Directory for the note database and images (default ./data)")

	cmd.AddCommand(
		initialize.NewCmdInit(&dataDir),
	)

	return cmd
}

func Execute() {
	if err := NewCmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
