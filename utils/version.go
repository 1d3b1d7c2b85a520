package utils

// Set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

// GetVersion returns the abiquo-inventory version.
func GetVersion() string {
	return version
}

// GetCommit returns the commit the binary was built from.
func GetCommit() string {
	return commit
}
