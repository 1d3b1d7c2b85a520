// Package abiquoapi is a thin client for the Abiquo cloud platform REST API.
// It covers the calls the inventory needs: listing the enterprise's virtual
// machines and following a resource's hyperlinks by relation name.
package abiquoapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/pkg/errors"
)

// VirtualMachinesType is the accept header for the enterprise VM collection.
const VirtualMachinesType = "application/vnd.abiquo.virtualmachines+json"

// Client connects to an Abiquo API endpoint.
type Client struct {
	// FriendlyName is the config section name the endpoint was loaded from.
	FriendlyName string
	BaseURL      string
	Creds        Credentials
	SSLVerify    bool

	httpClient *http.Client
}

// Credentials holds either basic auth or OAuth1 application-key material.
// When AppKey is set the client signs requests with OAuth1; otherwise it
// uses basic auth.
type Credentials struct {
	Username string
	Password string

	AppKey      string
	AppSecret   string
	Token       string
	TokenSecret string
}

// UseOAuth reports whether the credentials are OAuth1 application keys.
func (c Credentials) UseOAuth() bool {
	return c.AppKey != ""
}

// APIResponse contains the request and response details of an API call for
// debug logging.
type APIResponse struct {
	StatusCode int
	ReqMethod  string
	ReqURL     string
	RespBody   string
}

// NewClient builds a client for the given endpoint. The base URL should be
// the API root, e.g. https://abiquo.example.com/api.
func NewClient(name, baseURL string, creds Credentials, sslVerify bool) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !sslVerify},
	}

	var httpClient *http.Client
	if creds.UseOAuth() {
		config := oauth1.NewConfig(creds.AppKey, creds.AppSecret)
		token := oauth1.NewToken(creds.Token, creds.TokenSecret)
		ctx := context.WithValue(oauth1.NoContext, oauth1.HTTPClient, &http.Client{Transport: transport})
		httpClient = config.Client(ctx, token)
	} else {
		httpClient = &http.Client{Transport: transport}
	}

	return &Client{
		FriendlyName: name,
		BaseURL:      strings.TrimSuffix(baseURL, "/"),
		Creds:        creds,
		SSLVerify:    sslVerify,
		httpClient:   httpClient,
	}
}

// get issues a GET with the given accept header and decodes the JSON body
// into target. Any non-2xx status is an error.
func (c *Client) get(url, accept string, target interface{}) (APIResponse, error) {
	api := APIResponse{ReqMethod: http.MethodGet, ReqURL: url}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return api, errors.Wrap(err, "creating request")
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	if !c.Creds.UseOAuth() {
		req.SetBasicAuth(c.Creds.Username, c.Creds.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return api, errors.Wrapf(err, "GET %s", url)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return api, errors.Wrapf(err, "reading response from %s", url)
	}
	api.StatusCode = resp.StatusCode
	api.RespBody = string(body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return api, fmt.Errorf("GET %s returned %d - %s", url, resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.Unmarshal(body, target); err != nil {
			return api, errors.Wrapf(err, "decoding response from %s", url)
		}
	}
	return api, nil
}

// getCollection fetches a collection URL, unwrapping the Abiquo collection
// envelope and following next links until the collection is exhausted.
func (c *Client) getCollection(url, accept string) ([]Resource, []APIResponse, error) {
	var resources []Resource
	var apiResps []APIResponse

	for url != "" {
		var page collection
		api, err := c.get(url, accept, &page)
		apiResps = append(apiResps, api)
		if err != nil {
			return nil, apiResps, err
		}
		resources = append(resources, page.Collection...)

		url = ""
		if next, ok := page.next(); ok {
			url = next.Href
		}
	}
	return resources, apiResps, nil
}

// ListVirtualMachines returns every virtual machine in the user's
// enterprise, in the order the API returns them.
func (c *Client) ListVirtualMachines() ([]Resource, []APIResponse, error) {
	return c.getCollection(c.BaseURL+"/cloud/virtualmachines", VirtualMachinesType)
}

// Follow fetches the single resource behind the named link relation. The
// link's own media type is used as the accept header.
func (c *Client) Follow(r Resource, rel string) (Resource, APIResponse, error) {
	link, ok := r.Link(rel)
	if !ok {
		return nil, APIResponse{}, fmt.Errorf("resource has no %q link", rel)
	}
	var res Resource
	api, err := c.get(link.Href, link.Type, &res)
	return res, api, err
}

// FollowCollection fetches the collection behind the named link relation.
func (c *Client) FollowCollection(r Resource, rel string) ([]Resource, []APIResponse, error) {
	link, ok := r.Link(rel)
	if !ok {
		return nil, nil, fmt.Errorf("resource has no %q link", rel)
	}
	return c.getCollection(link.Href, link.Type)
}
