package inventory

import (
	"testing"

	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(rel, title, typ string) map[string]interface{} {
	return map[string]interface{}{"rel": rel, "title": title, "type": typ}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Main_DC", sanitizeName("[Main DC]"))
	assert.Equal(t, "Web_Tier", sanitizeName("Web Tier"))
	assert.Equal(t, "plain", sanitizeName("plain"))
	assert.Equal(t, "", sanitizeName("[]"))
}

func TestFlattenNics(t *testing.T) {
	nics := []abiquoapi.Resource{
		{
			"sequence": float64(0),
			"ip":       "192.168.0.10",
			"mac":      "00:11:22:33:44:55",
			"links":    []interface{}{link("privatenetwork", "default_net", "")},
		},
		{
			"sequence": float64(1),
			"ip":       "10.0.0.5",
			"links":    []interface{}{link("publicnetwork", "public_net", "")},
		},
	}

	flat := flattenNics(nics)
	assert.Equal(t, "192.168.0.10", flat["nic0_ip"])
	assert.Equal(t, "00:11:22:33:44:55", flat["nic0_mac"])
	assert.Equal(t, "privatenetwork", flat["nic0_net_type"])
	assert.Equal(t, "10.0.0.5", flat["nic1_ip"])
	assert.Equal(t, "publicnetwork", flat["nic1_net_type"])

	// The links array itself is never flattened
	assert.NotContains(t, flat, "nic0_links")
}

func TestFlattenNicsNoNetworkLink(t *testing.T) {
	nics := []abiquoapi.Resource{
		{
			"sequence": float64(0),
			"ip":       "192.168.0.10",
			"links":    []interface{}{link("virtualmachine", "vm-1", "")},
		},
	}

	flat := flattenNics(nics)
	assert.NotContains(t, flat, "nic0_net_type")
}

func TestFlattenNicsFirstNetworkLinkWins(t *testing.T) {
	nics := []abiquoapi.Resource{
		{
			"sequence": float64(0),
			"links": []interface{}{
				link("privatenetwork", "a", ""),
				link("externalnetwork", "b", ""),
			},
		},
	}

	assert.Equal(t, "privatenetwork", flattenNics(nics)["nic0_net_type"])
}

func TestFlattenDisks(t *testing.T) {
	disks := []abiquoapi.Resource{
		{
			"sequence":   float64(0),
			"sizeInMb":   float64(51200),
			"diskFormat": "RAW",
			"links":      []interface{}{link("tier", "Premium SSD", "")},
		},
		{
			"sequence": float64(1),
			"sizeInMb": float64(102400),
			"links":    []interface{}{},
		},
	}

	flat := flattenDisks(disks)
	assert.Equal(t, float64(51200), flat["disk0_sizeInMb"])
	assert.Equal(t, "RAW", flat["disk0_diskFormat"])
	// Tier comes from the link title, not the rel
	assert.Equal(t, "Premium SSD", flat["disk0_tier"])
	assert.Equal(t, float64(102400), flat["disk1_sizeInMb"])
	assert.NotContains(t, flat, "disk1_tier")
}

func TestFlattenMissingSequenceFallsBackToPosition(t *testing.T) {
	nics := []abiquoapi.Resource{
		{"ip": "192.168.0.10", "links": []interface{}{}},
		{"ip": "192.168.0.11", "links": []interface{}{}},
	}

	flat := flattenNics(nics)
	assert.Equal(t, "192.168.0.10", flat["nic0_ip"])
	assert.Equal(t, "192.168.0.11", flat["nic1_ip"])

	disks := []abiquoapi.Resource{
		{"sizeInMb": float64(1024), "links": []interface{}{}},
		{"sizeInMb": float64(2048), "links": []interface{}{}},
	}

	dflat := flattenDisks(disks)
	assert.Equal(t, float64(1024), dflat["disk0_sizeInMb"])
	assert.Equal(t, float64(2048), dflat["disk1_sizeInMb"])
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, flattenNics(nil))
	assert.Empty(t, flattenDisks(nil))
}

func TestHostVars(t *testing.T) {
	vm := abiquoapi.Resource{
		"name":  "web-1",
		"state": "DEPLOYED",
		"cpu":   float64(2),
		"links": []interface{}{
			link("virtualmachinetemplate", "Ubuntu 20.04", ""),
			link("virtualdatacenter", "DC1", ""),
			link("ip", "10.0.0.5", abiquoapi.PublicIPType),
		},
		"nics": []abiquoapi.Resource{
			{"sequence": float64(0), "ip": "10.0.0.5", "links": []interface{}{}},
		},
		"disks": []abiquoapi.Resource{
			{"sequence": float64(0), "sizeInMb": float64(51200), "links": []interface{}{}},
		},
	}

	vars := hostVars(vm)

	// Flattened nested collections
	assert.Equal(t, "10.0.0.5", vars["abq_nic0_ip"])
	assert.Equal(t, float64(51200), vars["abq_disk0_sizeInMb"])

	// Allow-listed link titles
	assert.Equal(t, "Ubuntu 20.04", vars["abq_virtualmachinetemplate"])
	assert.Equal(t, "DC1", vars["abq_virtualdatacenter"])
	assert.Equal(t, "10.0.0.5", vars["abq_ip"])

	// Remaining top-level attributes, minus links/nics/disks
	assert.Equal(t, "web-1", vars["abq_name"])
	assert.Equal(t, "DEPLOYED", vars["abq_state"])
	assert.Equal(t, float64(2), vars["abq_cpu"])
	assert.NotContains(t, vars, "abq_links")
	assert.NotContains(t, vars, "abq_nics")
	assert.NotContains(t, vars, "abq_disks")

	// Every key carries the namespace prefix
	for key := range vars {
		require.Regexp(t, "^abq", key)
	}
}

func TestHostVarsMissingRelationsAbsent(t *testing.T) {
	vm := abiquoapi.Resource{
		"name":  "bare",
		"links": []interface{}{},
	}

	vars := hostVars(vm)
	assert.NotContains(t, vars, "abq_hardwareprofile")
	assert.NotContains(t, vars, "abq_enterprise")
	assert.Equal(t, "bare", vars["abq_name"])
}
