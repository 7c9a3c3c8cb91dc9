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
package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vavargasdev/vanotes/internal/state"
)

func NewCmdInit(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initialize",
		Aliases: []string{"i", "init"},
		Short:   "Create the note database, config, and sample notes without opening the UI.",
		Example: "vanotes init --data-dir ~/notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := state.NewState(*dataDir)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized note data in %s\n", s.DataDir)
			return nil
		},
	}

	return cmd
}
