package cmd

import (
	"fmt"
	"os"

	"github.com/abiquo/abiquo-inventory/utils"

	"github.com/abiquo/abiquo-inventory/cmd/apimgmt"
	"github.com/abiquo/abiquo-inventory/cmd/hosts"
	"github.com/abiquo/abiquo-inventory/cmd/inventory"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd calls the CLI
var RootCmd = &cobra.Command{
	Use: "abiquo-inventory",
	Long: `
Abiquo-inventory is an Ansible external inventory for the virtual machines in an Abiquo enterprise.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.Set("debug", debug)
		viper.Set("verbose", verbose)
		// If the targetAPI is not set in the persistent flag, we clear it
		if targetAPI == "" {
			viper.Set("target_api", "")
		} else {
			viper.Set("target_api", targetAPI)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		// Ansible invokes the executable itself with --list or --host, so
		// the root command serves the inventory contract directly.
		if list || hostName != "" {
			inventory.RunInventory(refreshCache)
			return
		}
		cmd.Help()
	},
}

var debug, verbose bool
var targetAPI string
var list, refreshCache bool
var hostName string

// All subcommand flags are taken care of in their package's init.
// Root init sets up everything else - all usage templates, Viper, etc.
func init() {

	// Disable sorting
	cobra.EnableCommandSorting = false

	// API management
	RootCmd.AddCommand(apimgmt.AddAPICmd)
	RootCmd.AddCommand(apimgmt.RemoveAPICmd)
	RootCmd.AddCommand(apimgmt.ListAPICmd)
	RootCmd.AddCommand(apimgmt.GetDefaultAPICmd)
	RootCmd.AddCommand(apimgmt.SetDefaultAPICmd)

	// Inventory
	RootCmd.AddCommand(inventory.InventoryCmd)
	RootCmd.AddCommand(hosts.HostsCmd)

	// Version
	RootCmd.AddCommand(versionCmd)

	// Set the usage templates
	for _, c := range RootCmd.Commands() {
		c.SetUsageTemplate(utils.SubCmdTemplate())
	}
	RootCmd.SetUsageTemplate(utils.RootTemplate())

	// Setup Viper
	viper.SetConfigType("yaml")
	if os.Getenv("ABIQUO_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv("ABIQUO_CONFIG"))
	} else {
		viper.SetConfigFile("./abiquo.yaml")
	}
	viper.ReadInConfig()

	// Persistent flags that will be passed into root command pre-run.
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug level logging for troubleshooting.")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "When debug is enabled, include the raw API responses. This makes abiquo-inventory.log increase in size significantly.")
	RootCmd.PersistentFlags().StringVar(&targetAPI, "api", "", "API to use in command if not using default API.")

	// Ansible external-inventory contract on the root command. Listing is
	// the default behavior, so a bare invocation emits the document.
	RootCmd.Flags().BoolVar(&list, "list", true, "list all hosts (default behavior).")
	RootCmd.Flags().StringVar(&hostName, "host", "", "get variables for a specific host. the full inventory document is produced either way.")
	RootCmd.Flags().BoolVar(&refreshCache, "refresh-cache", false, "force a refresh of the cache by making api requests.")

	RootCmd.Flags().SortFlags = false

}

// Execute is called by the CLI main function to initiate the Cobra application
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// versionCmd returns the version of abiquo-inventory
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print abiquo-inventory version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version %s\r\n", utils.GetVersion())
		fmt.Printf("Previous commit: %s \r\n", utils.GetCommit())
	},
}
