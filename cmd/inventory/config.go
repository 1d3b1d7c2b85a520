package inventory

import (
	"github.com/spf13/viper"
)

// Config carries the inventory behavior settings. It is built once from the
// abiquo.yaml file and passed into the generation pipeline so no component
// reads global state.
type Config struct {
	// GetMetadata attaches each VM's free-form metadata document.
	GetMetadata bool
	// PublicIPOnly only adds VMs with a public IP to the inventory, using
	// the public IP as the host identifier.
	PublicIPOnly bool
	// DeployedOnly excludes VMs in the NOT_ALLOCATED state.
	DeployedOnly bool
	// DefaultNetInterface is the link relation whose title becomes the host
	// identifier when PublicIPOnly is off.
	DefaultNetInterface string

	CacheDir    string
	CacheMaxAge int
}

// ParseConfig reads the inventory settings from the abiquo.yaml file.
func ParseConfig() Config {
	return Config{
		GetMetadata:         viper.GetBool("defaults.get_metadata"),
		PublicIPOnly:        viper.GetBool("defaults.public_ip_only"),
		DeployedOnly:        viper.GetBool("defaults.deployed_only"),
		DefaultNetInterface: viper.GetString("defaults.default_net_interface"),
		CacheDir:            viper.GetString("cache.cache_dir"),
		CacheMaxAge:         viper.GetInt("cache.cache_max_age"),
	}
}
