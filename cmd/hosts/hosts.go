package hosts

import (
	"fmt"
	"sort"

	"github.com/abiquo/abiquo-inventory/cmd/inventory"
	"github.com/abiquo/abiquo-inventory/utils"
	"github.com/spf13/cobra"
)

var refreshCache bool

func init() {
	HostsCmd.Flags().BoolVar(&refreshCache, "refresh-cache", false, "force a refresh of the cache by making api requests.")
	HostsCmd.Flags().SortFlags = false
}

// HostsCmd prints a human-readable table of the inventory hosts
var HostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Show the inventory hosts in a table.",
	Long: `
Show the inventory hosts in a table.

This is a convenience view over the same document the inventory command emits: one row
per host with its datacenter, virtual appliance, template, and state.`,
	Run: func(cmd *cobra.Command, args []string) {

		showHosts()
	},
}

func showHosts() {

	utils.LogStartCommand("hosts")

	cfg := inventory.ParseConfig()
	inv, err := inventory.GetInventory(refreshCache, cfg, inventory.GenerateFromAPI)
	if err != nil {
		utils.LogError(fmt.Sprintf("generating inventory - %s", err))
	}

	hostvars := inv.Hostvars()
	names := make([]string, 0, len(hostvars))
	for name := range hostvars {
		names = append(names, name)
	}
	sort.Strings(names)

	data := [][]string{{"host", "vdc", "vapp", "template", "state"}}
	for _, name := range names {
		vars, _ := hostvars[name].(map[string]interface{})
		row := []string{name}
		for _, key := range []string{"abq_virtualdatacenter", "abq_virtualappliance", "abq_virtualmachinetemplate", "abq_state"} {
			value, _ := vars[key].(string)
			row = append(row, value)
		}
		data = append(data, row)
	}

	if len(data) == 1 {
		utils.LogInfo("no hosts in inventory.", true)
		utils.LogEndCommand("hosts")
		return
	}
	utils.WriteTable(data)

	utils.LogEndCommand("hosts")
}
