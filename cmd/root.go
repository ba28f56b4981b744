package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-netsweep",
	Short: "golang-netsweep finds reachable hosts on the local /24 network",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
