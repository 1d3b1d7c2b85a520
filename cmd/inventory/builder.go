package inventory

import (
	"fmt"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
)

// notAllocatedState is the sentinel for a VM that exists in Abiquo but has
// never been deployed to a hypervisor.
const notAllocatedState = "NOT_ALLOCATED"

// Inventory is the grouped host document: group name to ordered host list,
// plus the reserved _meta.hostvars mapping. Every host in a group list is
// also a key in hostvars.
type Inventory map[string]interface{}

// EmptyInventory returns the document with no hosts.
func EmptyInventory() Inventory {
	return Inventory{"_meta": map[string]interface{}{"hostvars": map[string]interface{}{}}}
}

// Hostvars returns the _meta.hostvars mapping, or nil if the document does
// not carry one (e.g., a corrupt cache file).
func (inv Inventory) Hostvars() map[string]interface{} {
	meta, ok := inv["_meta"].(map[string]interface{})
	if !ok {
		return nil
	}
	hostvars, _ := meta["hostvars"].(map[string]interface{})
	return hostvars
}

// addToGroup appends a host to a group, creating the group on first use.
func (inv Inventory) addToGroup(group, host string) {
	hosts, _ := inv[group].([]string)
	inv[group] = append(hosts, host)
}

// Build assembles the grouped inventory from enriched VMs, in the order
// the API returned them. VMs without a qualifying network link and - when
// configured - VMs that are not deployed are skipped silently.
func Build(vms []abiquoapi.Resource, cfg Config) Inventory {
	inv := EmptyInventory()

	for _, vm := range vms {
		vars := hostVars(vm)

		var vmVapp, vmVDC, vmTemplate, hwProfile string
		for _, link := range vm.Links() {
			switch link.Rel {
			case "virtualappliance":
				vmVapp = sanitizeName(link.Title)
			case "virtualdatacenter":
				vmVDC = sanitizeName(link.Title)
			case "virtualmachinetemplate":
				vmTemplate = sanitizeName(link.Title)
			case "hardwareprofile":
				hwProfile = sanitizeName(link.Title)
			}
		}

		host := hostIdentifier(vm, cfg)
		if host == "" {
			continue
		}

		if cfg.DeployedOnly && vm.State() == notAllocatedState {
			continue
		}

		inv.Hostvars()[host] = vars

		inv.addToGroup(fmt.Sprintf("template_%s", vmTemplate), host)
		inv.addToGroup(fmt.Sprintf("vapp_%s", vmVapp), host)
		inv.addToGroup(fmt.Sprintf("vdc_%s", vmVDC), host)
		inv.addToGroup(fmt.Sprintf("vdc_%s_vapp_%s", vmVDC, vmVapp), host)

		if hwProfile != "" {
			inv.addToGroup(fmt.Sprintf("hwprof_%s", hwProfile), host)
		}

		if variables, ok := vm["variables"].(map[string]interface{}); ok {
			for key, value := range variables {
				val, ok := value.(string)
				if !ok {
					continue
				}
				inv.addToGroup(fmt.Sprintf("var_%s_%s", sanitizeName(key), sanitizeName(val)), host)
			}
		}
	}

	return inv
}

// hostIdentifier picks the host identifier for a VM. With the public-IP
// policy, only the title of a public IP link qualifies; otherwise the title
// of the configured default network interface relation. An empty return
// means the VM has no qualifying link and is excluded.
func hostIdentifier(vm abiquoapi.Resource, cfg Config) string {
	if cfg.PublicIPOnly {
		for _, link := range vm.Links() {
			if link.Rel == "ip" && link.Type == abiquoapi.PublicIPType {
				return link.Title
			}
		}
		return ""
	}

	for _, link := range vm.Links() {
		if link.Rel == cfg.DefaultNetInterface {
			return link.Title
		}
	}
	return ""
}
