// ABOUTME: Catalog models for regions, zones, and machine type metadata
// ABOUTME: Display-oriented structures populated from the embedded catalog

package models

// Region is a geographic region with its ordered zone list. Zone order is
// preserved from the catalog document; it drives option numbering.
type Region struct {
	Name  string   `json:"name"`
	Zones []string `json:"zones"`
}

// MachineTypeInfo describes one machine type for display purposes. Family
// and generation are derived from the name at load time, not stored in the
// catalog document.
type MachineTypeInfo struct {
	Name       string         `json:"name"`
	Series     string         `json:"series"`
	Family     ResourceFamily `json:"family"`
	Generation Generation     `json:"generation"`
	VCPUs      int            `json:"vcpus"`
	MemoryGB   float64        `json:"memory_gb"`
	GPUs       int            `json:"gpus,omitempty"`
}

// RegionsResponse wraps the region list for the catalog API.
type RegionsResponse struct {
	Regions []Region `json:"regions"`
}

// MachineTypesResponse wraps the machine type list for the catalog API.
type MachineTypesResponse struct {
	MachineTypes []MachineTypeInfo `json:"machine_types"`
	Count        int               `json:"count"`
}
