// ABOUTME: Embedded region/zone topology and machine type catalog
// ABOUTME: gjson-backed loader with sjson operator overrides from environment

package services

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/matan-gr/capacity-advisor1/models"
)

//go:embed catalog.json
var catalogDocument string

// ErrRegionNotFound indicates the requested region is not in the catalog.
var ErrRegionNotFound = errors.New("region not found")

// Catalog supplies the zone topology and machine type metadata the advisor
// runs against. It is immutable after load; zone order in the document is
// the order the engine scores zones in.
type Catalog struct {
	regions       []models.Region
	zonesByRegion map[string][]string
	machineTypes  []models.MachineTypeInfo
	machineByName map[string]models.MachineTypeInfo
}

// NewCatalog loads the embedded catalog document.
func NewCatalog() (*Catalog, error) {
	return newCatalogFromDocument(catalogDocument, "")
}

// NewCatalogWithOverrides loads the embedded catalog after applying
// operator overrides: semicolon-separated path=value pairs in sjson path
// syntax, e.g. "regions.0.zones.-1=us-central1-g;machine_types.3.vcpus=8".
func NewCatalogWithOverrides(overrides string) (*Catalog, error) {
	return newCatalogFromDocument(catalogDocument, overrides)
}

func newCatalogFromDocument(doc, overrides string) (*Catalog, error) {
	patched, err := applyOverrides(doc, overrides)
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(patched) {
		return nil, fmt.Errorf("catalog document is not valid JSON")
	}

	c := &Catalog{
		zonesByRegion: make(map[string][]string),
		machineByName: make(map[string]models.MachineTypeInfo),
	}

	gjson.Get(patched, "regions").ForEach(func(_, region gjson.Result) bool {
		name := region.Get("name").String()
		var zones []string
		region.Get("zones").ForEach(func(_, zone gjson.Result) bool {
			zones = append(zones, zone.String())
			return true
		})
		c.regions = append(c.regions, models.Region{Name: name, Zones: zones})
		c.zonesByRegion[strings.ToLower(name)] = zones
		return true
	})

	gjson.Get(patched, "machine_types").ForEach(func(_, mt gjson.Result) bool {
		name := mt.Get("name").String()
		family, generation := Classify(name)
		info := models.MachineTypeInfo{
			Name:       name,
			Series:     mt.Get("series").String(),
			Family:     family,
			Generation: generation,
			VCPUs:      int(mt.Get("vcpus").Int()),
			MemoryGB:   mt.Get("memory_gb").Float(),
			GPUs:       int(mt.Get("gpus").Int()),
		}
		c.machineTypes = append(c.machineTypes, info)
		c.machineByName[strings.ToLower(name)] = info
		return true
	})

	if len(c.regions) == 0 {
		return nil, fmt.Errorf("catalog document contains no regions")
	}
	if len(c.machineTypes) == 0 {
		return nil, fmt.Errorf("catalog document contains no machine types")
	}

	return c, nil
}

// applyOverrides patches the catalog document with path=value pairs.
func applyOverrides(doc, overrides string) (string, error) {
	if strings.TrimSpace(overrides) == "" {
		return doc, nil
	}

	patched := doc
	for _, pair := range strings.Split(overrides, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		path, value, found := strings.Cut(pair, "=")
		if !found {
			return "", fmt.Errorf("catalog override %q must be path=value", sanitizeForLog(pair))
		}

		var err error
		patched, err = sjson.Set(patched, strings.TrimSpace(path), parseOverrideValue(value))
		if err != nil {
			return "", fmt.Errorf("applying catalog override %q: %w", sanitizeForLog(pair), err)
		}
	}
	return patched, nil
}

// parseOverrideValue keeps numbers and booleans typed so sjson writes them
// unquoted.
func parseOverrideValue(raw string) interface{} {
	v := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// Regions returns all regions in catalog order.
func (c *Catalog) Regions() []models.Region {
	return c.regions
}

// Zones returns the ordered zone list for a region.
func (c *Catalog) Zones(region string) ([]string, error) {
	zones, ok := c.zonesByRegion[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, sanitizeForLog(region))
	}
	return zones, nil
}

// MachineTypes returns machine types in catalog order, filtered by family
// and generation when those arguments are non-empty.
func (c *Catalog) MachineTypes(family models.ResourceFamily, generation models.Generation) []models.MachineTypeInfo {
	out := make([]models.MachineTypeInfo, 0, len(c.machineTypes))
	for _, mt := range c.machineTypes {
		if family != "" && mt.Family != family {
			continue
		}
		if generation != "" && mt.Generation != generation {
			continue
		}
		out = append(out, mt)
	}
	return out
}

// MachineType looks up one machine type by name, case-insensitively.
func (c *Catalog) MachineType(name string) (models.MachineTypeInfo, bool) {
	info, ok := c.machineByName[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}
