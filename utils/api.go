package utils

import (
	"fmt"
	"os"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/spf13/viper"
)

// GetTargetAPI gets the Abiquo API endpoint for a command. The --api flag
// wins over the configured default.
func GetTargetAPI() (*abiquoapi.Client, error) {

	// Get the API name
	var name string
	if viper.GetString("target_api") != "" {
		name = viper.GetString("target_api")
	} else if viper.GetString("default_api_name") != "" {
		name = viper.GetString("default_api_name")
	} else {
		LogError("there is no api set using the --api flag and there is no default api. either run abiquo-inventory api-add to add your first api or abiquo-inventory set-default to set an existing api as default.")
	}

	client, err := GetAPIByName(name)
	if err != nil {
		return nil, err
	}

	// Adjust for when basic auth creds come from the environment
	if !client.Creds.UseOAuth() {
		if client.Creds.Username == "" {
			if os.Getenv("ABQ_API_USER") == "" {
				return nil, fmt.Errorf("%s does not have an api user and the ABQ_API_USER env variable is not set", name)
			}
			client.Creds.Username = os.Getenv("ABQ_API_USER")
		}
		if client.Creds.Password == "" {
			if os.Getenv("ABQ_API_PASS") == "" {
				return nil, fmt.Errorf("%s does not have an api password and the ABQ_API_PASS env variable is not set", name)
			}
			client.Creds.Password = os.Getenv("ABQ_API_PASS")
		}
	}

	return client, nil
}

// GetAPIByName gets an Abiquo API endpoint by its configured name.
func GetAPIByName(name string) (*abiquoapi.Client, error) {
	if !viper.IsSet(name + ".url") {
		return nil, fmt.Errorf("could not retrieve %s api information", name)
	}
	creds := abiquoapi.Credentials{
		Username:    viper.GetString(name + ".username"),
		Password:    viper.GetString(name + ".password"),
		AppKey:      viper.GetString(name + ".app_key"),
		AppSecret:   viper.GetString(name + ".app_secret"),
		Token:       viper.GetString(name + ".token"),
		TokenSecret: viper.GetString(name + ".token_secret"),
	}
	return abiquoapi.NewClient(name, viper.GetString(name+".url"), creds, viper.GetBool(name+".ssl_verify")), nil
}
