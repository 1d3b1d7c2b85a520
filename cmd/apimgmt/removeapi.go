package apimgmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abiquo/abiquo-inventory/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var apiName string

// RemoveAPICmd removes an API endpoint from the abiquo.yaml file
var RemoveAPICmd = &cobra.Command{
	Use:   "api-remove [name of api]",
	Short: "Remove an api from the abiquo.yaml file.",
	Long: `
Remove an api from the abiquo.yaml file.`,
	PreRun: func(cmd *cobra.Command, args []string) {
		configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
		if err != nil {
			utils.LogError(err.Error())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {

		// Get name of API
		if len(args) != 1 {
			fmt.Println("Command requires 1 argument for the name of the API to remove. See usage help.")
			os.Exit(0)
		}
		apiName = args[0]

		removeAPI()
	},
}

func removeAPI() {

	utils.LogStartCommand("api-remove")

	if !viper.IsSet(apiName + ".url") {
		utils.LogError(fmt.Sprintf("%s api does not exist.", apiName))
	}

	// Remove login information from YAML
	configMap := viper.AllSettings()
	delete(configMap, apiName)
	if viper.GetString("default_api_name") == apiName {
		delete(configMap, "default_api_name")
	}
	encodedConfig, _ := json.MarshalIndent(configMap, "", " ")
	err := viper.ReadConfig(bytes.NewReader(encodedConfig))
	if err != nil {
		utils.LogError(err.Error())
	}
	viper.WriteConfig()

	utils.LogInfo(fmt.Sprintf("removed %s from abiquo.yaml.", apiName), true)

	utils.LogEndCommand("api-remove")
}
