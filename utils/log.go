package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Logger is the global logger for abiquo-inventory. It writes to
// abiquo-inventory.log; stdout is reserved for the inventory document, so
// echoed messages go to stderr.
var Logger = logrus.New()

var runID string

func init() {

	f, err := os.OpenFile("abiquo-inventory.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	Logger.SetOutput(f)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	Logger.SetLevel(logrus.DebugLevel)
}

// LogError writes the error to abiquo-inventory.log, always echoes it to
// stderr, and exits with a non-zero code.
func LogError(msg string) {
	fmt.Fprintf(os.Stderr, "%s [ERROR] - %s\r\n", time.Now().Format("2006-01-02 15:04:05"), msg)
	Logger.Fatal(msg)
}

// LogErrorf formats and processes the error through LogError.
func LogErrorf(format string, a ...interface{}) {
	LogError(fmt.Sprintf(format, a...))
}

// LogWarning writes the log to abiquo-inventory.log and optionally echoes
// msg to stderr.
func LogWarning(msg string, echo bool) {
	if echo {
		fmt.Fprintf(os.Stderr, "%s [WARNING] - %s\r\n", time.Now().Format("2006-01-02 15:04:05"), msg)
	}
	Logger.Warn(msg)
}

// LogInfo writes the log to abiquo-inventory.log and optionally echoes msg
// to stderr.
func LogInfo(msg string, echo bool) {
	if echo {
		fmt.Fprintf(os.Stderr, "%s [INFO] - %s\r\n", time.Now().Format("2006-01-02 15:04:05"), msg)
	}
	Logger.Info(msg)
}

// LogInfof formats and processes through LogInfo.
func LogInfof(echo bool, format string, a ...interface{}) {
	LogInfo(fmt.Sprintf(format, a...), echo)
}

// LogDebug writes the log to abiquo-inventory.log only if the debug flag or
// the ABQ_DEBUG environment variable is set. A debug conditional is not
// required in app code.
func LogDebug(msg string) {
	if viper.GetBool("debug") || os.Getenv("ABQ_DEBUG") != "" {
		Logger.Debug(msg)
	}
}

// LogAPIResp logs the request method, URL, and response status code of an
// API call. The callType is the name of the call - ListVirtualMachines,
// Follow, etc. - and any string is accepted. Response bodies are logged
// when verbose is set or the status code is not a 2xx.
func LogAPIResp(callType string, apiResp abiquoapi.APIResponse) {
	LogDebug(fmt.Sprintf("%s http request: %s %s", callType, apiResp.ReqMethod, apiResp.ReqURL))
	LogInfo(fmt.Sprintf("%s response status code: %d", callType, apiResp.StatusCode), false)
	if viper.GetBool("verbose") || apiResp.StatusCode > 299 {
		LogDebug(fmt.Sprintf("%s response body: %s", callType, apiResp.RespBody))
	}
}

// LogMultiAPIResp logs a set of API responses from a single call.
func LogMultiAPIResp(callType string, apiResps []abiquoapi.APIResponse) {
	for _, a := range apiResps {
		LogAPIResp(callType, a)
	}
}

// LogStartCommand is used at the beginning of each command.
func LogStartCommand(commandName string) {
	runID = uuid.New().String()
	LogInfo(fmt.Sprintf("abiquo-inventory version %s - run %s - started %s", GetVersion(), runID, commandName), false)
	if viper.GetString("target_api") != "" {
		LogInfo(fmt.Sprintf("using %s api", viper.GetString("target_api")), false)
	} else if viper.GetString("default_api_name") != "" {
		LogInfo(fmt.Sprintf("using default api - %s", viper.GetString("default_api_name")), false)
	}
}

// LogEndCommand is used at the end of each command.
func LogEndCommand(commandName string) {
	LogInfo(fmt.Sprintf("%s completed", commandName), false)
}
