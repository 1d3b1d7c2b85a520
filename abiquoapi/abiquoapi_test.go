package abiquoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient("test", url, Credentials{Username: "admin", Password: "xabiquo"}, true)
}

func TestListVirtualMachines(t *testing.T) {
	var gotAccept, gotUser string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUser, _, _ = r.BasicAuth()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"collection": []map[string]interface{}{
				{"name": "vm-1", "state": "DEPLOYED"},
				{"name": "vm-2", "state": "NOT_ALLOCATED"},
			},
		})
	}))
	defer server.Close()

	vms, apiResps, err := testClient(server.URL).ListVirtualMachines()
	require.NoError(t, err)
	require.Len(t, vms, 2)
	assert.Equal(t, "vm-1", vms[0].Str("name"))
	assert.Equal(t, "NOT_ALLOCATED", vms[1].State())
	assert.Equal(t, VirtualMachinesType, gotAccept)
	assert.Equal(t, "admin", gotUser)
	require.Len(t, apiResps, 1)
	assert.Equal(t, 200, apiResps[0].StatusCode)
}

func TestListVirtualMachinesPagination(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cloud/virtualmachines" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"links":      []map[string]string{{"rel": "next", "href": server.URL + "/cloud/virtualmachines/page2"}},
				"collection": []map[string]interface{}{{"name": "vm-1"}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"collection": []map[string]interface{}{{"name": "vm-2"}},
		})
	}))
	defer server.Close()

	vms, apiResps, err := testClient(server.URL).ListVirtualMachines()
	require.NoError(t, err)
	require.Len(t, vms, 2)
	assert.Equal(t, "vm-2", vms[1].Str("name"))
	assert.Len(t, apiResps, 2)
}

func TestListVirtualMachinesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, apiResps, err := testClient(server.URL).ListVirtualMachines()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	require.Len(t, apiResps, 1)
	assert.Equal(t, 401, apiResps[0].StatusCode)
}

func TestFollow(t *testing.T) {
	var gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(map[string]interface{}{"name": "ubuntu-20.04"})
	}))
	defer server.Close()

	vm := Resource{
		"links": []interface{}{
			map[string]interface{}{
				"rel":  "virtualmachinetemplate",
				"href": server.URL + "/template/1",
				"type": "application/vnd.abiquo.virtualmachinetemplate+json",
			},
		},
	}

	template, apiResp, err := testClient(server.URL).Follow(vm, "virtualmachinetemplate")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu-20.04", template.Str("name"))
	assert.Equal(t, "application/vnd.abiquo.virtualmachinetemplate+json", gotAccept)
	assert.Equal(t, 200, apiResp.StatusCode)
}

func TestFollowMissingLink(t *testing.T) {
	_, _, err := testClient("http://localhost").Follow(Resource{}, "metadata")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metadata")
}

func TestFollowCollectionEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"collection": []}`)
	}))
	defer server.Close()

	vm := Resource{
		"links": []interface{}{
			map[string]interface{}{"rel": "nics", "href": server.URL + "/nics"},
		},
	}

	nics, _, err := testClient(server.URL).FollowCollection(vm, "nics")
	require.NoError(t, err)
	assert.Empty(t, nics)
}

func TestResourceLinks(t *testing.T) {
	vm := Resource{
		"links": []interface{}{
			map[string]interface{}{"rel": "ip", "title": "10.0.0.5", "type": PublicIPType},
			map[string]interface{}{"rel": "ip", "title": "192.168.0.5"},
		},
	}

	links := vm.Links()
	require.Len(t, links, 2)

	// First match wins
	link, ok := vm.Link("ip")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", link.Title)

	_, ok = vm.Link("enterprise")
	assert.False(t, ok)
}

func TestResourceWithoutLinks(t *testing.T) {
	assert.Empty(t, Resource{}.Links())
	assert.Equal(t, "", Resource{}.Str("name"))
}
