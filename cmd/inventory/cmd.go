package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/abiquo/abiquo-inventory/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Declare local global variables for flags
var list, refreshCache bool
var hostName string

func init() {
	InventoryCmd.Flags().BoolVar(&list, "list", true, "list all hosts (default behavior).")
	InventoryCmd.Flags().StringVar(&hostName, "host", "", "get variables for a specific host. the full inventory document is produced either way.")
	InventoryCmd.Flags().BoolVar(&refreshCache, "refresh-cache", false, "force a refresh of the cache by making api requests.")
	InventoryCmd.Flags().SortFlags = false
}

// InventoryCmd generates the grouped host inventory document
var InventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Generate the Ansible inventory document from Abiquo virtual machines.",
	Long: `
Generate the Ansible inventory document from the virtual machines in the user's enterprise.

Hosts are grouped by template, virtual appliance, virtual datacenter, hardware profile,
and any custom variables set on the VM. The document is written to stdout as JSON with
sorted keys; the --list and --host flags follow the Ansible external-inventory contract
and are also accepted on the root command.

Results are cached in the configured cache directory and served from the cache while it
is fresh. Use --refresh-cache to bypass it.`,
	Run: func(cmd *cobra.Command, args []string) {

		RunInventory(refreshCache)
	},
}

// RunInventory generates or loads the inventory document and writes it to
// stdout. Exported so the root command can serve the Ansible contract
// (abiquo-inventory --list) directly.
func RunInventory(refresh bool) {

	utils.LogStartCommand("inventory")

	cfg := ParseConfig()
	inv, err := GetInventory(refresh, cfg, GenerateFromAPI)
	if err != nil {
		// One policy for every generation failure: abort with a non-zero
		// exit. An empty document is only ever emitted for a genuinely
		// empty enterprise.
		utils.LogError(fmt.Sprintf("generating inventory - %s", err))
	}

	// Two-space indentation, sorted keys. Stdout carries nothing else.
	out, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		utils.LogError(err.Error())
	}
	fmt.Println(string(out))

	utils.LogEndCommand("inventory")
}

// GetInventory returns the inventory document, serving the cached copy when
// it is fresh and a refresh is not forced. generate supplies a fresh
// document from the API. Regardless of source, the result is written back
// to the cache before being returned.
func GetInventory(refresh bool, cfg Config, generate func(Config) (Inventory, error)) (Inventory, error) {

	cache := NewCacheStore(cfg)

	var inv Inventory
	if refresh || !cache.IsFresh() {
		var err error
		inv, err = generate(cfg)
		if err != nil {
			return nil, err
		}
	} else {
		inv = cache.Load()
	}

	cache.Store(inv)
	return inv, nil
}

// GenerateFromAPI builds the configured API client and generates a fresh
// document from it.
func GenerateFromAPI(cfg Config) (Inventory, error) {
	api, err := utils.GetTargetAPI()
	if err != nil {
		return nil, err
	}
	return Generate(api, cfg)
}

// Generate pulls every VM in the enterprise, enriches each one, and builds
// the grouped document.
func Generate(api *abiquoapi.Client, cfg Config) (Inventory, error) {

	vms, apiResps, err := api.ListVirtualMachines()
	utils.LogMultiAPIResp("ListVirtualMachines", apiResps)
	if err != nil {
		return nil, errors.Wrap(err, "listing virtual machines")
	}

	enricher := NewEnricher(api, cfg)
	for _, vm := range vms {
		if err := enricher.Enrich(vm); err != nil {
			return nil, errors.Wrapf(err, "enriching vm %s", vm.Str("name"))
		}
	}

	return Build(vms, cfg), nil
}
