// ABOUTME: End-to-end test walking the full advisory workflow over HTTP
// ABOUTME: Browses the catalog, requests advice, then drills into one zone

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/matan-gr/capacity-advisor1/models"
)

// TestScenario_AdvisoryWorkflow walks the workflow an operator follows:
// list regions, list machine types, ask for placement advice, then score
// the winning zone to see the inputs behind the recommendation.
func TestScenario_AdvisoryWorkflow(t *testing.T) {
	server := newTestServer(t, testConfig())

	// Step 1: discover regions.
	resp, err := http.Get(server.URL + "/api/v1/catalog/regions")
	if err != nil {
		t.Fatalf("Failed to list regions: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 listing regions, got %d", resp.StatusCode)
	}

	var regions models.RegionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&regions); err != nil {
		t.Fatalf("Failed to decode regions response: %v", err)
	}
	if len(regions.Regions) == 0 {
		t.Fatal("Expected at least one region in catalog")
	}
	region := regions.Regions[0]
	if len(region.Zones) == 0 {
		t.Fatalf("Expected zones in region %s", region.Name)
	}

	// Step 2: discover compute-optimized machine types.
	resp, err = http.Get(server.URL + "/api/v1/catalog/machine-types?family=compute_optimized")
	if err != nil {
		t.Fatalf("Failed to list machine types: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 listing machine types, got %d", resp.StatusCode)
	}

	var machineTypes models.MachineTypesResponse
	if err := json.NewDecoder(resp.Body).Decode(&machineTypes); err != nil {
		t.Fatalf("Failed to decode machine types response: %v", err)
	}
	if machineTypes.Count == 0 {
		t.Fatal("Expected at least one compute_optimized machine type")
	}
	machineType := machineTypes.MachineTypes[0]
	if machineType.Family != models.FamilyComputeOptimized {
		t.Errorf("Expected compute_optimized family, got %s", machineType.Family)
	}

	// Step 3: request balanced placement advice.
	body, err := json.Marshal(models.AdviseRequest{
		Region:        region.Name,
		MachineType:   machineType.Name,
		InstanceCount: 9,
		Distribution:  "balanced",
	})
	if err != nil {
		t.Fatalf("Failed to marshal advise request: %v", err)
	}

	resp, err = http.Post(server.URL+"/api/v1/capacity/advise", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to request advice: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for advise, got %d", resp.StatusCode)
	}

	var advice models.AdviseResponse
	if err := json.NewDecoder(resp.Body).Decode(&advice); err != nil {
		t.Fatalf("Failed to decode advise response: %v", err)
	}
	if len(advice.Recommendations) != 1 {
		t.Fatalf("Expected 1 balanced recommendation, got %d", len(advice.Recommendations))
	}
	rec := advice.Recommendations[0]
	if len(rec.Shards) != len(region.Zones) {
		t.Errorf("Expected %d shards, got %d", len(region.Zones), len(rec.Shards))
	}

	total := 0
	for _, shard := range rec.Shards {
		total += shard.Count
		if shard.ProvisioningModel != models.ProvisioningModelSpot {
			t.Errorf("Expected SPOT provisioning model, got %s", shard.ProvisioningModel)
		}
	}
	if total != 9 {
		t.Errorf("Expected shard counts to sum to 9, got %d", total)
	}

	// Step 4: score the first shard's zone to inspect the inputs.
	scoreURL := fmt.Sprintf("%s/api/v1/capacity/score?region=%s&zone=%s&machine_type=%s&count=%d",
		server.URL, region.Name, rec.Shards[0].Location, machineType.Name, rec.Shards[0].Count)
	resp, err = http.Get(scoreURL)
	if err != nil {
		t.Fatalf("Failed to score zone: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 for score, got %d", resp.StatusCode)
	}

	var score models.ZoneScore
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		t.Fatalf("Failed to decode score response: %v", err)
	}
	if score.Zone != rec.Shards[0].Location {
		t.Errorf("Expected zone %s, got %s", rec.Shards[0].Location, score.Zone)
	}
	if score.PoolDepth < 1 {
		t.Errorf("Expected positive pool depth, got %d", score.PoolDepth)
	}
	if score.Obtainability < 0 || score.Obtainability > 1 {
		t.Errorf("Expected obtainability in [0,1], got %f", score.Obtainability)
	}
}

// TestScenario_CompareAcrossRegions asks for compare-mode advice in two
// regions and checks each response is self-consistent and sorted.
func TestScenario_CompareAcrossRegions(t *testing.T) {
	server := newTestServer(t, testConfig())

	for _, region := range []string{"us-central1", "europe-west1"} {
		t.Run(region, func(t *testing.T) {
			body, err := json.Marshal(models.AdviseRequest{
				Region:        region,
				MachineType:   "n2-standard-4",
				InstanceCount: 25,
				Distribution:  "any",
			})
			if err != nil {
				t.Fatalf("Failed to marshal advise request: %v", err)
			}

			resp, err := http.Post(server.URL+"/api/v1/capacity/advise", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Failed to request advice: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", resp.StatusCode)
			}

			var advice models.AdviseResponse
			if err := json.NewDecoder(resp.Body).Decode(&advice); err != nil {
				t.Fatalf("Failed to decode advise response: %v", err)
			}
			if len(advice.Recommendations) < 2 {
				t.Fatalf("Expected one recommendation per zone, got %d", len(advice.Recommendations))
			}

			for i, rec := range advice.Recommendations {
				if len(rec.Shards) != 1 {
					t.Errorf("Recommendation %d: expected 1 shard, got %d", i, len(rec.Shards))
				}
				if rec.Shards[0].Count != 25 {
					t.Errorf("Recommendation %d: expected count 25, got %d", i, rec.Shards[0].Count)
				}
				if i > 0 && rec.Obtainability() > advice.Recommendations[i-1].Obtainability() {
					t.Errorf("Recommendations not sorted: index %d scores higher than %d", i, i-1)
				}
			}
		})
	}
}

// TestScenario_UnknownRegionRejected checks error handling end to end:
// a made-up region travels through the full middleware chain and comes
// back as a structured 404.
func TestScenario_UnknownRegionRejected(t *testing.T) {
	server := newTestServer(t, testConfig())

	body, err := json.Marshal(models.AdviseRequest{
		Region:        "mars-north1",
		MachineType:   "n2-standard-4",
		InstanceCount: 3,
	})
	if err != nil {
		t.Fatalf("Failed to marshal advise request: %v", err)
	}

	resp, err := http.Post(server.URL+"/api/v1/capacity/advise", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to request advice: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", resp.StatusCode)
	}

	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp.Error == "" {
		t.Error("Expected error message in response body")
	}
	if errResp.Code != http.StatusNotFound {
		t.Errorf("Expected code 404 in body, got %d", errResp.Code)
	}
}

// TestScenario_RequestIDPropagated checks the logging middleware stamps
// every response with a request ID, including error responses.
func TestScenario_RequestIDPropagated(t *testing.T) {
	server := newTestServer(t, testConfig())

	resp, err := http.Get(server.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("Failed to call health endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on response")
	}

	resp2, err := http.Get(server.URL + "/api/v1/capacity/score?region=us-central1&zone=us-central1-z&machine_type=n2-standard-4")
	if err != nil {
		t.Fatalf("Failed to call score endpoint: %v", err)
	}
	defer resp2.Body.Close()

	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("Expected status 404 for unknown zone, got %d", resp2.StatusCode)
	}
	if resp2.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header on error response")
	}
}
