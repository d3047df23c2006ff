package cli

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/bookmark"
	"github.com/gogpu/bookmark/internal/config"
)

var initOpts struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a parameter file with the defaults and a fresh seed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultFile
		switch {
		case len(args) == 1:
			path = args[0]
		case configPath != "":
			path = configPath
		}

		p := bookmark.DefaultParams()
		if err := ensureSeed(&p); err != nil {
			return err
		}
		var err error
		if initOpts.force {
			err = config.Save(path, p)
		} else {
			err = config.Create(path, p)
		}
		if err != nil {
			return err
		}
		cmd.Printf("wrote %s (seed %s)\n", path, p.Seed)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initOpts.force, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
