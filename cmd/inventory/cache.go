package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abiquo/abiquo-inventory/utils"
)

// cacheFileName is fixed - one cache document per cache directory, no
// versioning or schema tag.
const cacheFileName = "abiquo-inventory"

// CacheStore reads and writes the inventory document to a single JSON file,
// gated by an mtime-based freshness check. Cache I/O never fails a run:
// load failures read as a cache miss and store failures are swallowed.
type CacheStore struct {
	Dir    string
	MaxAge int // seconds; zero or negative disables the cache
}

// NewCacheStore builds the store from the cache settings.
func NewCacheStore(cfg Config) CacheStore {
	return CacheStore{Dir: cfg.CacheDir, MaxAge: cfg.CacheMaxAge}
}

func (c CacheStore) path() string {
	return filepath.Join(c.Dir, cacheFileName)
}

// IsFresh is true only when a cache directory and max age are configured,
// the cache file exists, and its age is within the max age.
func (c CacheStore) IsFresh() bool {
	if c.Dir == "" || c.MaxAge <= 0 {
		return false
	}
	info, err := os.Stat(c.path())
	if err != nil {
		return false
	}
	return time.Now().Unix()-info.ModTime().Unix() <= int64(c.MaxAge)
}

// Load deserializes the cache file. Any failure returns an empty document.
func (c CacheStore) Load() Inventory {
	inv := Inventory{}
	data, err := os.ReadFile(c.path())
	if err != nil {
		utils.LogDebug(fmt.Sprintf("reading cache file - %s", err))
		return inv
	}
	if err := json.Unmarshal(data, &inv); err != nil {
		utils.LogDebug(fmt.Sprintf("decoding cache file - %s", err))
		return Inventory{}
	}
	return inv
}

// Store serializes the document over the cache file. Failures are logged
// and swallowed.
func (c CacheStore) Store(inv Inventory) {
	if c.Dir == "" {
		return
	}
	data, err := json.Marshal(inv)
	if err != nil {
		utils.LogDebug(fmt.Sprintf("encoding cache file - %s", err))
		return
	}
	if err := os.WriteFile(c.path(), data, 0644); err != nil {
		utils.LogDebug(fmt.Sprintf("writing cache file - %s", err))
	}
}
