package cmd

import "github.com/spf13/cobra"

const verboseFlag = "verbose"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dt",
		Short:         "doctrack (dt): capture edits to a reference document and replay them",
		Long:          "dt (doctrack) watches a reference document, records the insertions and deletions made to it as an ordered change log, and replays that log onto a batch of target documents.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDiffCmd(app),
		newTrackCmd(app),
		newLogCmd(app),
		newReplayCmd(app),
	)

	return rootCmd
}
