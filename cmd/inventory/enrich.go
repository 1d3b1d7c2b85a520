package inventory

import (
	"github.com/abiquo/abiquo-inventory/abiquoapi"
	"github.com/abiquo/abiquo-inventory/utils"
	"github.com/pkg/errors"
)

// Enricher populates a bare VM resource with its related collections by
// following one link relation per collection.
type Enricher struct {
	api *abiquoapi.Client
	cfg Config
}

// NewEnricher returns an enricher bound to an API endpoint.
func NewEnricher(api *abiquoapi.Client, cfg Config) *Enricher {
	return &Enricher{api: api, cfg: cfg}
}

// Enrich attaches nics, disks (hard disks then volumes, one list), the
// template with its links stripped, and optionally metadata. Any sub-fetch
// failure aborts the VM - enrichment is not per-VM recoverable.
func (e *Enricher) Enrich(vm abiquoapi.Resource) error {

	nics, apiResps, err := e.api.FollowCollection(vm, "nics")
	utils.LogMultiAPIResp("GetVMNics", apiResps)
	if err != nil {
		return errors.Wrap(err, "fetching nics")
	}

	disks, apiResps, err := e.api.FollowCollection(vm, "harddisks")
	utils.LogMultiAPIResp("GetVMDisks", apiResps)
	if err != nil {
		return errors.Wrap(err, "fetching hard disks")
	}

	vols, apiResps, err := e.api.FollowCollection(vm, "volumes")
	utils.LogMultiAPIResp("GetVMVolumes", apiResps)
	if err != nil {
		return errors.Wrap(err, "fetching volumes")
	}

	vm["nics"] = nics
	vm["disks"] = append(disks, vols...)

	template, apiResp, err := e.api.Follow(vm, "virtualmachinetemplate")
	utils.LogAPIResp("GetVMTemplate", apiResp)
	if err != nil {
		return errors.Wrap(err, "fetching template")
	}
	delete(template, "links")
	vm["template"] = map[string]interface{}(template)

	if e.cfg.GetMetadata {
		metadata, apiResp, err := e.api.Follow(vm, "metadata")
		utils.LogAPIResp("GetVMMetadata", apiResp)
		if err != nil {
			return errors.Wrap(err, "fetching metadata")
		}
		vm["metadata"] = map[string]interface{}(metadata)
	}

	return nil
}
