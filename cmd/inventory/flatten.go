package inventory

import (
	"fmt"
	"strings"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
)

// Link relations a NIC can carry to the network it is attached to, and the
// relations a disk or volume can carry to its storage tier. These are
// matched exactly - the Abiquo API also exposes rels like
// "network_configuration" on the VM itself, which must not match here.
var networkRels = map[string]bool{
	"network":          true,
	"privatenetwork":   true,
	"publicnetwork":    true,
	"externalnetwork":  true,
	"unmanagednetwork": true,
}

var tierRels = map[string]bool{
	"tier":          true,
	"datastoretier": true,
}

// Relation titles copied from a VM's top-level links into its host vars.
var hostVarLinkRels = []string{
	"category", "virtualmachinetemplate", "hypervisortype", "ip", "location", "hardwareprofile",
	"state", "network_configuration", "virtualappliance", "virtualdatacenter", "user", "enterprise",
}

// hostVarPrefix namespaces every host var key for consumers.
const hostVarPrefix = "abq"

func isNetworkRel(rel string) bool {
	return networkRels[rel]
}

func isTierRel(rel string) bool {
	return tierRels[rel]
}

// sanitizeName rewrites a group-name component: literal brackets are
// deleted and spaces become underscores.
func sanitizeName(s string) string {
	s = strings.ReplaceAll(s, "[", "")
	s = strings.ReplaceAll(s, "]", "")
	return strings.ReplaceAll(s, " ", "_")
}

// sequence returns a resource's ordinal position within its collection,
// falling back to its index when the attribute is missing so records
// without one cannot collide on the same flattened prefix.
func sequence(r abiquoapi.Resource, index int) int {
	if f, ok := r["sequence"].(float64); ok {
		return int(f)
	}
	return index
}

// flattenNics converts a VM's network interfaces into flat key-value pairs
// keyed by ordinal position: nic0_ip, nic0_mac, etc. The first network
// link, if any, becomes nic<seq>_net_type.
func flattenNics(nics []abiquoapi.Resource) map[string]interface{} {
	flat := make(map[string]interface{})

	for i, nic := range nics {
		prefix := fmt.Sprintf("nic%d", sequence(nic, i))
		for key, value := range nic {
			if key != "links" {
				flat[fmt.Sprintf("%s_%s", prefix, key)] = value
			}
		}

		for _, link := range nic.Links() {
			if isNetworkRel(link.Rel) {
				flat[fmt.Sprintf("%s_net_type", prefix)] = link.Rel
				break
			}
		}
	}
	return flat
}

// flattenDisks does the same for hard disks and volumes. The first tier
// link's title, if any, becomes disk<seq>_tier.
func flattenDisks(disks []abiquoapi.Resource) map[string]interface{} {
	flat := make(map[string]interface{})

	for i, disk := range disks {
		prefix := fmt.Sprintf("disk%d", sequence(disk, i))
		for key, value := range disk {
			if key != "links" {
				flat[fmt.Sprintf("%s_%s", prefix, key)] = value
			}
		}

		for _, link := range disk.Links() {
			if isTierRel(link.Rel) {
				flat[fmt.Sprintf("%s_tier", prefix)] = link.Title
				break
			}
		}
	}
	return flat
}

// hostVars builds the full variable set for one enriched VM: flattened
// nic/disk fields, the titles of the allow-listed top-level link relations,
// and every remaining top-level attribute except links, nics, and disks.
// Keys not already namespaced get the abq_ prefix.
func hostVars(vm abiquoapi.Resource) map[string]interface{} {
	vars := flattenNics(resourceList(vm["nics"]))
	for k, v := range flattenDisks(resourceList(vm["disks"])) {
		vars[k] = v
	}

	for _, rel := range hostVarLinkRels {
		if link, ok := vm.Link(rel); ok {
			vars[rel] = link.Title
		}
	}

	for k, v := range vm {
		if k != "links" && k != "nics" && k != "disks" {
			vars[k] = v
		}
	}

	prefixed := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		if strings.HasPrefix(k, hostVarPrefix) {
			prefixed[k] = v
		} else {
			prefixed[fmt.Sprintf("%s_%s", hostVarPrefix, k)] = v
		}
	}
	return prefixed
}

// resourceList unpacks the nested collections the enricher attaches. A VM
// with zero nics or disks yields an empty list, not an error.
func resourceList(v interface{}) []abiquoapi.Resource {
	list, _ := v.([]abiquoapi.Resource)
	return list
}
