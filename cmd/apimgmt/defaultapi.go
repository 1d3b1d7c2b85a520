package apimgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/abiquo/abiquo-inventory/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SetDefaultAPICmd sets the default API endpoint
var SetDefaultAPICmd = &cobra.Command{
	Use:   "set-default [name of api]",
	Short: "Changes the default api to be used for all commands.",
	Long: `
Changes the default api to be used for all commands.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		if len(args) != 1 {
			fmt.Println("Command requires 1 argument for the name of the new default API. See usage help.")
			os.Exit(0)
		}
		newDefaultAPI := args[0]

		// Make sure the API exists in the YAML file
		if viper.Get(newDefaultAPI+".url") == nil {
			utils.LogError(fmt.Sprintf("%s api does not exist.", newDefaultAPI))
		}

		viper.Set("default_api_name", newDefaultAPI)
		if err := viper.WriteConfig(); err != nil {
			utils.LogError(err.Error())
		}

		fmt.Printf("%s is default api.\r\n", newDefaultAPI)

	},
}

// GetDefaultAPICmd prints the default API endpoint
var GetDefaultAPICmd = &cobra.Command{
	Use:   "get-default",
	Short: "Get the default api to be used for all commands.",
	Long: `
Get the default api to be used for all commands.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		utils.LogStartCommand("get-default")

		if viper.GetString("default_api_name") == "" {
			utils.LogInfo("no default api configured. run api-add to add an api to the abiquo.yaml file.", true)
			utils.LogEndCommand("get-default")
			return
		}
		fmt.Printf("%s - %s\r\n", viper.GetString("default_api_name"), viper.GetString(viper.GetString("default_api_name")+".url"))

		utils.LogEndCommand("get-default")

	},
}

// ListAPICmd lists all API endpoints in the abiquo.yaml file
var ListAPICmd = &cobra.Command{
	Use:   "api-list",
	Short: "List all apis in the abiquo.yaml file.",
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		allSettings := viper.AllSettings()
		defaultAPIName := viper.GetString("default_api_name")

		names := []string{}
		for k := range allSettings {
			if viper.Get(k+".url") != nil {
				names = append(names, k)
			}
		}
		sort.Strings(names)

		if len(names) == 0 {
			utils.LogInfo("no api configured. run api-add to add an api to the abiquo.yaml file.", true)
			return
		}

		data := [][]string{{"name", "url", "auth", "default"}}
		for _, k := range names {
			auth := "basic"
			if viper.GetString(k+".app_key") != "" {
				auth = "oauth"
			}
			def := ""
			if k == defaultAPIName {
				def = "*"
			}
			data = append(data, []string{k, viper.GetString(k + ".url"), auth, def})
		}
		utils.WriteTable(data)

	},
}
