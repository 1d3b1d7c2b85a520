package apimgmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/abiquo/abiquo-inventory/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set global variables for flags
var oauth bool
var configFilePath string
var err error

func init() {
	AddAPICmd.Flags().BoolVarP(&oauth, "oauth", "o", false, "Use OAuth1 application keys instead of a username and password.")
}

// AddAPICmd adds an Abiquo API endpoint to the abiquo.yaml file
var AddAPICmd = &cobra.Command{
	Use:   "api-add",
	Short: "Adds an Abiquo API endpoint to the abiquo.yaml file.",
	Long: `
Adds an Abiquo API endpoint to the abiquo.yaml file.

The default file name is abiquo.yaml stored in the current directory.
Set the ABIQUO_CONFIG environment variable for a custom file location, including file name.
This environment variable must be set for future use so abiquo-inventory knows where to look for it. Example:

export ABIQUO_CONFIG="/Users/operator/Desktop/abiquo.yaml"

By default, the command stores a username and password for basic auth. The --oauth (-o) flag
stores OAuth1 application keys instead; requests are then signed and no password is kept.

The command can be automated (avoid prompt) by setting the following environment variables:
ABQ_NAME, ABQ_URL, ABQ_USER, ABQ_PWD, ABQ_SSL_VERIFY.
`,
	Run: func(cmd *cobra.Command, args []string) {

		addAPI()
	},
}

// addAPI creates or updates the YAML file used for authentication
func addAPI() {

	// Log start
	utils.LogStartCommand("api-add")

	var apiName, url, user, pwd, sslVerifyStr string

	// Check if all our env variables are set
	envVars := []string{"ABQ_NAME", "ABQ_URL", "ABQ_USER", "ABQ_PWD", "ABQ_SSL_VERIFY"}
	auto := true
	for _, e := range envVars {
		if os.Getenv(e) == "" {
			auto = false
		}
	}

	// Start user prompt
	if !auto {
		fmt.Println("\r\nDefault values will be shown in [brackets]. Press enter to accept default.")
		fmt.Println("")
	}

	apiName = os.Getenv("ABQ_NAME")
	if apiName == "" {
		fmt.Print("Name of API (no spaces or periods) [default-api]: ")
		fmt.Scanln(&apiName)
		for strings.Contains(apiName, ".") {
			fmt.Println("\r\n[WARNING] - The name of the API cannot contain periods. Please re-enter.")
			fmt.Print("Name of API (no spaces or periods) [default-api]: ")
			fmt.Scanln(&apiName)
		}
		if apiName == "" {
			apiName = "default-api"
		}
	}

	// If they don't have a default API, make it this one.
	defaultAPI := true
	if viper.IsSet("default_api_name") {
		defaultAPI = false
	}

	url = os.Getenv("ABQ_URL")
	if url == "" {
		fmt.Print("API URL (e.g., https://abiquo.example.com/api): ")
		fmt.Scanln(&url)
	}

	sslVerify := true
	sslVerifyEnv := os.Getenv("ABQ_SSL_VERIFY")
	if strings.ToLower(sslVerifyEnv) == "false" {
		sslVerify = false
	} else if sslVerifyEnv == "" {
		fmt.Print("Verify TLS certificates (true/false) [true]: ")
		fmt.Scanln(&sslVerifyStr)
		if strings.ToLower(sslVerifyStr) == "false" {
			sslVerify = false
		}
	}

	creds := abiquoapi.Credentials{}

	if oauth {
		fmt.Print("Application key: ")
		fmt.Scanln(&creds.AppKey)
		fmt.Print("Application secret: ")
		creds.AppSecret = readSecret()
		fmt.Print("Access token: ")
		fmt.Scanln(&creds.Token)
		fmt.Print("Access token secret: ")
		creds.TokenSecret = readSecret()
	} else {
		user = os.Getenv("ABQ_USER")
		if user == "" {
			fmt.Print("Username: ")
			fmt.Scanln(&user)
		}
		pwd = os.Getenv("ABQ_PWD")
		if pwd == "" {
			fmt.Print("Password: ")
			pwd = readSecret()
		}
		creds.Username = user
		creds.Password = pwd
	}

	// Verify the endpoint before saving it
	fmt.Println("\r\nVerifying API endpoint ...")
	client := abiquoapi.NewClient(apiName, url, creds, sslVerify)
	vms, apiResps, err := client.ListVirtualMachines()
	utils.LogMultiAPIResp("ListVirtualMachines", apiResps)
	if err != nil {
		utils.LogError(fmt.Sprintf("checking %s api - %s", apiName, err))
	}
	fmt.Printf("Endpoint OK - %d virtual machines visible.\r\n", len(vms))

	// Write the login details to the YAML
	viper.Set(apiName+".url", url)
	viper.Set(apiName+".ssl_verify", sslVerify)
	if oauth {
		viper.Set(apiName+".app_key", creds.AppKey)
		viper.Set(apiName+".app_secret", creds.AppSecret)
		viper.Set(apiName+".token", creds.Token)
		viper.Set(apiName+".token_secret", creds.TokenSecret)
	} else {
		viper.Set(apiName+".username", creds.Username)
		viper.Set(apiName+".password", creds.Password)
	}
	if defaultAPI {
		viper.Set("default_api_name", apiName)
	}

	configFilePath, err = filepath.Abs(viper.ConfigFileUsed())
	if err != nil {
		utils.LogError(err.Error())
	}
	if err := viper.WriteConfigAs(configFilePath); err != nil {
		utils.LogError(err.Error())
	}

	fmt.Printf("Added %s to %s.\r\n", apiName, configFilePath)

	utils.LogEndCommand("api-add")
}

// readSecret reads a value from the terminal without echoing it.
func readSecret() string {
	b, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println("")
	return string(b)
}
