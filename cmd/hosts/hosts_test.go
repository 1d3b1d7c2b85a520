package hosts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/abiquo/abiquo-inventory/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An empty inventory takes the early return, which must still close the
// start/end log bracket for the run.
func TestShowHostsEmptyInventoryLogsEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abiquo-inventory"), []byte(`{"_meta":{"hostvars":{}}}`), 0644))

	viper.Set("cache.cache_dir", dir)
	viper.Set("cache.cache_max_age", 300)
	defer func() {
		viper.Set("cache.cache_dir", "")
		viper.Set("cache.cache_max_age", 0)
	}()

	var buf bytes.Buffer
	oldOut := utils.Logger.Out
	utils.Logger.SetOutput(&buf)
	defer utils.Logger.SetOutput(oldOut)

	showHosts()

	assert.Contains(t, buf.String(), "no hosts in inventory")
	assert.Contains(t, buf.String(), "hosts completed")
}
