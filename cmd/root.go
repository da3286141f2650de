package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gptab",
	Short: "Guitar Pro tablature decoder",
	Long:  `gptab decodes GP3/GP4/GP5/GPX/GP7 tablature files into a unified Song model.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
